// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package tools provides the standard tool implementations executed by the
// pipeline orchestrator.
//
// Three tools cover the document-to-graph flow:
//
//   - DocumentETLTool reads documents from disk, embeds them and stores them
//     as source data records.
//   - BlueprintGenerationTool drafts a topic blueprint from stored source
//     documents.
//   - GraphBuildTool extracts triples from source documents and persists
//     them to the knowledge graph.
//
// Each tool implements tool.Tool and communicates through the loosely typed
// input/output maps defined by the pipeline package's binding table.
// Identifiers cross tool boundaries as decimal strings.
package tools

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


// Package ai defines the AI collaborator interfaces the pipeline tools
// depend on: Embedder for vector embeddings, BlueprintDrafter for topic
// outlines and canonical entity lists, and TripleExtractor for
// subject/predicate/object extraction. AIProvider bundles all three behind
// one constructor and Close.
//
// Tools and storage depend only on these interfaces. The ai/openai package
// implements them against OpenAI-compatible HTTP services; ai/mock provides
// deterministic test doubles.
//
// Production constructors return interfaces so callers cannot couple to a
// concrete client:
//
//	provider, err := openai.NewProvider(ai.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	vector, err := provider.Embedder().EmbedText(ctx, "sample text")
//
// Mock constructors return concrete types instead, so tests can set the
// override function fields and read call counters.
package ai

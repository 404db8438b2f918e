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


package pipeline

// Target types recognized by the selector.
const (
	// TargetKnowledgeGraph is the graph-building target type.
	TargetKnowledgeGraph = "knowledge_graph"
)

// Input types. InputTypeDocument is the only type the current policy
// handles; the parameter exists so future policy versions can branch on
// dialogue-style inputs without changing the signature.
const (
	InputTypeDocument = "document"
)

// SelectDefault chooses the pipeline for the given context signals.
// It is a pure, total function: every combination of inputs maps to a valid
// pipeline name.
//
// The decision table, in precedence order:
//  1. Non-knowledge_graph targets fall back to SingleDocExistingTopic.
//     Known limitation: this policy does not otherwise disambiguate
//     non-graph targets.
//  2. One file, existing topic  -> SingleDocExistingTopic.
//  3. Many files, existing topic -> BatchDocExistingTopic.
//  4. New topic (any file count) -> NewTopicBatch.
//
// A new topic with a single file deliberately takes the full batch pipeline,
// not the lightweight one: a fresh topic has no blueprint yet, so the
// blueprint generation step cannot be skipped.
func SelectDefault(targetType string, fileCount int, isNewTopic bool, inputType string) string {
	if targetType != TargetKnowledgeGraph {
		return SingleDocExistingTopic
	}

	switch {
	case fileCount == 1 && !isNewTopic:
		return SingleDocExistingTopic
	case fileCount > 1 && !isNewTopic:
		return BatchDocExistingTopic
	default:
		return NewTopicBatch
	}
}

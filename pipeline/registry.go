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

import (
	"fmt"
	"slices"
)

// Standard pipeline names.
const (
	// SingleDocExistingTopic adds one document to an existing topic.
	// Blueprint generation is skipped: the topic's structure already exists.
	SingleDocExistingTopic = "single_doc_existing_topic"

	// BatchDocExistingTopic adds multiple documents to an existing topic.
	BatchDocExistingTopic = "batch_doc_existing_topic"

	// NewTopicBatch creates a new topic from one or more documents.
	NewTopicBatch = "new_topic_batch"
)

// Registry tool names.
const (
	ToolDocumentETL         = "DocumentETLTool"
	ToolBlueprintGeneration = "BlueprintGenerationTool"
	ToolGraphBuild          = "GraphBuildTool"
)

// Registry maps pipeline names to their ordered tool sequences.
// Contents are fixed at construction; there is no mutation API. Tool names
// are resolved lazily at execution time, not validated here.
type Registry struct {
	pipelines map[string][]string
}

// NewRegistry creates a Registry holding the standard pipelines.
func NewRegistry() *Registry {
	return &Registry{
		pipelines: map[string][]string{
			SingleDocExistingTopic: {ToolDocumentETL, ToolGraphBuild},
			BatchDocExistingTopic:  {ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild},
			NewTopicBatch:          {ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild},
		},
	}
}

// Get returns the ordered tool sequence for a pipeline name.
// The returned slice is a copy; callers may not alter registry contents.
func (r *Registry) Get(name string) ([]string, error) {
	tools, ok := r.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPipelineNotFound, name)
	}
	return slices.Clone(tools), nil
}

// Names returns the registered pipeline names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

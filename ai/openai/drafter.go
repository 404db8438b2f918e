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


package openai

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/graphit/ai"
	"github.com/tmc/langchaingo/llms"
)

// excerptLimit caps how much of each document is sent to the drafting model.
const excerptLimit = 2000

// BlueprintDrafter implements ai.BlueprintDrafter over an OpenAI-compatible
// chat API.
type BlueprintDrafter struct {
	client llms.Model
	logger *slog.Logger
}

// draft mirrors the JSON document the prompt asks the model for.
type draft struct {
	Outline           string   `json:"outline"`
	CanonicalEntities []string `json:"canonical_entities"`
}

// newBlueprintDrafter returns the concrete type for use by Provider.
func newBlueprintDrafter(config *ai.Config) (*BlueprintDrafter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newGeneratorClient(config)
	if err != nil {
		return nil, err
	}

	return &BlueprintDrafter{
		client: client,
		logger: slog.Default().With("component", "openai-drafter"),
	}, nil
}

// NewBlueprintDrafter creates a blueprint drafter from the given
// configuration, returned as the ai.BlueprintDrafter interface.
func NewBlueprintDrafter(config *ai.Config) (ai.BlueprintDrafter, error) {
	return newBlueprintDrafter(config)
}

// DraftBlueprint drafts a topic outline and canonical entity list from the
// given documents. Each document is truncated to excerptLimit bytes before
// prompting.
func (d *BlueprintDrafter) DraftBlueprint(ctx context.Context, topicName string, documents []string) (*ai.BlueprintDraft, error) {
	var result draft
	err := generateJSON(ctx, d.client, d.logger,
		buildBlueprintPrompt(topicName), joinExcerpts(documents), &result)
	if err != nil {
		return nil, err
	}

	entities := make([]string, 0, len(result.CanonicalEntities))
	for _, entity := range result.CanonicalEntities {
		entity = scrubString(strings.ToLower(entity))
		if entity != "" {
			entities = append(entities, entity)
		}
	}

	d.logger.Debug("drafted blueprint",
		"topic", topicName, "documents", len(documents), "entities", len(entities))

	return &ai.BlueprintDraft{
		Outline:           strings.TrimSpace(result.Outline),
		CanonicalEntities: entities,
	}, nil
}

// joinExcerpts concatenates truncated documents with a separator the prompt
// names as the document boundary.
func joinExcerpts(documents []string) string {
	var sb strings.Builder
	for i, doc := range documents {
		if i > 0 {
			sb.WriteString("\n\n---\n\n")
		}
		if len(doc) > excerptLimit {
			doc = doc[:excerptLimit]
		}
		sb.WriteString(doc)
	}
	return sb.String()
}

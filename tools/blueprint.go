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


package tools

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/poiesic/graphit/ai"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/pipeline"
	"github.com/poiesic/graphit/storage"
	"github.com/poiesic/graphit/tool"
)

// BlueprintGenerationTool drafts a topic blueprint from stored source
// documents and persists it. Blueprint IDs derive from the source set, so
// repeated runs over the same documents reuse the stored blueprint unless
// regeneration is forced.
type BlueprintGenerationTool struct {
	sources    storage.SourceDataRepository
	blueprints storage.BlueprintRepository
	drafter    ai.BlueprintDrafter
	logger     *slog.Logger
}

var _ tool.Tool = (*BlueprintGenerationTool)(nil)

// NewBlueprintGenerationTool creates the blueprint generation tool.
func NewBlueprintGenerationTool(sources storage.SourceDataRepository, blueprints storage.BlueprintRepository, drafter ai.BlueprintDrafter, logger *slog.Logger) (*BlueprintGenerationTool, error) {
	if sources == nil {
		return nil, ErrSourceRepositoryRequired
	}
	if blueprints == nil {
		return nil, ErrBlueprintRepositoryRequired
	}
	if drafter == nil {
		return nil, ErrDrafterRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BlueprintGenerationTool{
		sources:    sources,
		blueprints: blueprints,
		drafter:    drafter,
		logger:     logger,
	}, nil
}

// Name returns the registry name of the tool.
func (t *BlueprintGenerationTool) Name() string {
	return pipeline.ToolBlueprintGeneration
}

// ExecuteWithTracking drafts and stores a blueprint for the topic.
//
// Expected input keys: topic_name (required), source_data_ids (falls back
// to every stored document of the topic) and force_regenerate. On success
// it exports blueprint_id and the topic name.
func (t *BlueprintGenerationTool) ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *tool.Result {
	return tool.Track(t.logger, t.Name(), trackingID, func() *tool.Result {
		topicName := stringValue(input, pipeline.KeyTopicName)
		if topicName == "" {
			return tool.Fail("topic_name is required")
		}

		force := boolValue(input, pipeline.KeyForceRegenerate)

		ids, err := idSlice(input, pipeline.KeySourceDataIDs)
		if err != nil {
			return tool.Fail("invalid source_data_ids: %v", err)
		}

		var records []*core.SourceData
		if len(ids) > 0 {
			records, err = t.sources.GetSourceDataBatch(ctx, ids...)
		} else {
			records, err = t.sources.GetSourceDataByTopic(ctx, topicName)
		}
		if err != nil {
			return tool.Fail("loading source data: %v", err)
		}
		if len(records) == 0 {
			return tool.Fail("no source data found for topic %q", topicName)
		}

		sourceIds := make([]core.ID, len(records))
		documents := make([]string, len(records))
		for i, record := range records {
			sourceIds[i] = record.Id
			documents[i] = record.Content
		}
		// Canonical order so the source set key is stable
		slices.Sort(sourceIds)

		blueprint := &core.Blueprint{
			TopicName:     topicName,
			SourceDataIds: sourceIds,
		}
		blueprintID := core.IDFromContent(blueprint.SourceSetKey())

		if !force {
			existing, err := t.blueprints.GetBlueprint(ctx, blueprintID)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				return tool.Fail("loading blueprint: %v", err)
			}
			if existing != nil {
				t.logger.Debug("blueprint already exists, skipping generation",
					"topic", topicName, "blueprint_id", blueprintID)
				return blueprintResult(existing)
			}
		}

		draft, err := t.drafter.DraftBlueprint(ctx, topicName, documents)
		if err != nil {
			return tool.Fail("drafting blueprint: %v", err)
		}

		blueprint.Outline = draft.Outline
		blueprint.CanonicalEntities = draft.CanonicalEntities
		if err := core.ValidateBlueprint(blueprint); err != nil {
			return tool.Fail("invalid blueprint: %v", err)
		}

		if _, err := t.blueprints.AddBlueprints(ctx, blueprint); err != nil {
			return tool.Fail("storing blueprint: %v", err)
		}

		t.logger.Info("blueprint generated",
			"topic", topicName,
			"blueprint_id", blueprint.Id,
			"sources", len(sourceIds),
			"entities", len(blueprint.CanonicalEntities))

		return blueprintResult(blueprint)
	})
}

func blueprintResult(blueprint *core.Blueprint) *tool.Result {
	result := tool.Succeed(map[string]any{
		pipeline.KeyBlueprintID: formatID(blueprint.Id),
	})
	result.Metadata = map[string]any{
		pipeline.KeyTopicName: blueprint.TopicName,
		"canonical_entities":  len(blueprint.CanonicalEntities),
	}
	return result
}

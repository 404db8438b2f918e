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
	"strings"

	"github.com/poiesic/graphit/ai"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/pipeline"
	"github.com/poiesic/graphit/storage"
	"github.com/poiesic/graphit/tool"
)

// GraphBuildTool extracts triples from stored source documents and persists
// them to the knowledge graph, with provenance back to the source document
// and the blueprint that steered extraction.
type GraphBuildTool struct {
	sources    storage.SourceDataRepository
	blueprints storage.BlueprintRepository
	graph      storage.GraphRepository
	extractor  ai.TripleExtractor
	embedder   ai.Embedder
	logger     *slog.Logger
}

var _ tool.Tool = (*GraphBuildTool)(nil)

// NewGraphBuildTool creates the graph build tool.
func NewGraphBuildTool(sources storage.SourceDataRepository, blueprints storage.BlueprintRepository, graph storage.GraphRepository, extractor ai.TripleExtractor, embedder ai.Embedder, logger *slog.Logger) (*GraphBuildTool, error) {
	if sources == nil {
		return nil, ErrSourceRepositoryRequired
	}
	if blueprints == nil {
		return nil, ErrBlueprintRepositoryRequired
	}
	if graph == nil {
		return nil, ErrGraphRepositoryRequired
	}
	if extractor == nil {
		return nil, ErrExtractorRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GraphBuildTool{
		sources:    sources,
		blueprints: blueprints,
		graph:      graph,
		extractor:  extractor,
		embedder:   embedder,
		logger:     logger,
	}, nil
}

// Name returns the registry name of the tool.
func (t *GraphBuildTool) Name() string {
	return pipeline.ToolGraphBuild
}

// ExecuteWithTracking extracts and stores triples for the given documents.
//
// Expected input keys: topic_name, source_data_id or source_data_ids, and
// optionally blueprint_id (falls back to the topic's latest blueprint).
// Processed documents are marked completed.
func (t *GraphBuildTool) ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *tool.Result {
	return tool.Track(t.logger, t.Name(), trackingID, func() *tool.Result {
		topicName := stringValue(input, pipeline.KeyTopicName)

		ids, err := idSlice(input, pipeline.KeySourceDataIDs)
		if err != nil {
			return tool.Fail("invalid source_data_ids: %v", err)
		}
		if single, err := idValue(input, pipeline.KeySourceDataID); err != nil {
			return tool.Fail("invalid source_data_id: %v", err)
		} else if single != 0 && !slices.Contains(ids, single) {
			ids = append([]core.ID{single}, ids...)
		}
		if len(ids) == 0 {
			return tool.Fail("no source data identifiers provided")
		}

		blueprint, err := t.resolveBlueprint(ctx, input, topicName)
		if err != nil {
			return tool.Fail("loading blueprint: %v", err)
		}

		records, err := t.sources.GetSourceDataBatch(ctx, ids...)
		if err != nil {
			return tool.Fail("loading source data: %v", err)
		}
		if len(records) == 0 {
			return tool.Fail("no source data found for the given identifiers")
		}

		total := 0
		for _, record := range records {
			created, err := t.buildForSource(ctx, record, blueprint)
			if err != nil {
				return tool.Fail("building graph for source %d: %v", record.Id, err)
			}
			total += created
		}

		t.logger.Info("graph build completed",
			"topic", topicName, "sources", len(records), "triples_created", total)

		result := tool.Succeed(map[string]any{
			"triples_created": total,
		})
		result.Metadata = map[string]any{
			pipeline.KeyTopicName: topicName,
			"sources_processed":   len(records),
		}
		return result
	})
}

// resolveBlueprint loads the blueprint named by the input, or falls back to
// the topic's latest one. A missing blueprint is not an error: graph build
// runs without blueprint guidance in the single-document pipeline.
func (t *GraphBuildTool) resolveBlueprint(ctx context.Context, input map[string]any, topicName string) (*core.Blueprint, error) {
	blueprintID, err := idValue(input, pipeline.KeyBlueprintID)
	if err != nil {
		return nil, err
	}

	if blueprintID != 0 {
		return t.blueprints.GetBlueprint(ctx, blueprintID)
	}

	if topicName == "" {
		return nil, nil
	}
	blueprint, err := t.blueprints.GetLatestBlueprint(ctx, topicName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	return blueprint, err
}

// buildForSource extracts, embeds and stores the triples of one document,
// then marks the document completed.
func (t *GraphBuildTool) buildForSource(ctx context.Context, record *core.SourceData, blueprint *core.Blueprint) (int, error) {
	extracted, err := t.extractor.ExtractTriples(ctx, record.Content)
	if err != nil {
		return 0, err
	}

	triples := make([]*core.GraphTriple, 0, len(extracted))
	statements := make([]string, 0, len(extracted))
	for _, e := range extracted {
		triple := &core.GraphTriple{
			TopicName:    record.TopicName,
			Subject:      e.Subject,
			Predicate:    e.Predicate,
			Object:       e.Object,
			SourceDataId: record.Id,
			Confidence:   confidenceScore(e.Confidence),
		}
		if blueprint != nil {
			triple.BlueprintId = blueprint.Id
			triple.Subject = alignEntity(triple.Subject, blueprint.CanonicalEntities)
			triple.Object = alignEntity(triple.Object, blueprint.CanonicalEntities)
		}
		if err := core.ValidateGraphTriple(triple); err != nil {
			t.logger.Warn("dropping invalid triple", "source_data_id", record.Id, "err", err)
			continue
		}
		triples = append(triples, triple)
		statements = append(statements, triple.Statement())
	}

	if len(triples) > 0 {
		vectors, err := t.embedder.EmbedTexts(ctx, statements)
		if err != nil {
			return 0, err
		}
		if len(vectors) != len(triples) {
			return 0, errors.New("embedding result count mismatch")
		}
		for i, vector := range vectors {
			triples[i].Vector = vector
		}

		if _, err := t.graph.AddTriples(ctx, triples...); err != nil {
			return 0, err
		}
	}

	record.Status = core.StatusCompleted
	if _, err := t.sources.UpdateSourceData(ctx, record); err != nil {
		return 0, err
	}

	return len(triples), nil
}

// confidenceScore maps the extractor's 0.0-1.0 confidence onto the stored
// 1-10 scale.
func confidenceScore(confidence float32) int {
	score := int(confidence*10 + 0.5)
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

// alignEntity snaps an extracted entity onto a canonical form when the two
// differ only by case or a plural suffix.
func alignEntity(entity string, canonical []string) string {
	for _, c := range canonical {
		if strings.EqualFold(entity, c) ||
			strings.EqualFold(strings.TrimSuffix(entity, "s"), c) {
			return c
		}
	}
	return entity
}

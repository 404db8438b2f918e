package graphit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/graphit/ai/mock"
	"github.com/poiesic/graphit/core"
	"github.com/poiesic/graphit/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()

	system, err := NewSystem("", true, WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { system.Close() })

	return system
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSystemNewTopicPipeline(t *testing.T) {
	system := newTestSystem(t)
	ctx := context.Background()

	orchestrator, err := system.NewOrchestrator()
	require.NoError(t, err)

	files := []string{
		writeDoc(t, "towers.txt", "The Eiffel Tower stands in Paris. Gustave Eiffel designed the structure."),
		writeDoc(t, "bridges.txt", "The Golden Gate Bridge spans the bay. Engineers completed the bridge in 1937."),
	}

	result := orchestrator.ExecutePipeline(ctx, pipeline.NewTopicBatch, pipeline.ExecutionContext{
		pipeline.KeyTopicName: "architecture",
		pipeline.KeyFilePaths: files,
	}, "")

	require.True(t, result.Success, result.ErrorMessage)
	require.Len(t, result.StepResults, 3)

	// Documents were stored and marked completed by the graph build step
	records, err := system.SourceDataRepository().GetSourceDataByTopic(ctx, "architecture")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, record := range records {
		assert.Equal(t, core.StatusCompleted, record.Status)
		assert.NotEmpty(t, record.Vector)
	}

	// A blueprint covers both documents
	blueprint, err := system.BlueprintRepository().GetLatestBlueprint(ctx, "architecture")
	require.NoError(t, err)
	assert.Len(t, blueprint.SourceDataIds, 2)

	// Triples carry provenance back to the blueprint
	triples, err := system.GraphRepository().GetTriplesByTopic(ctx, "architecture")
	require.NoError(t, err)
	require.NotEmpty(t, triples)
	for _, triple := range triples {
		assert.Equal(t, blueprint.Id, triple.BlueprintId)
		assert.NotZero(t, triple.SourceDataId)
	}
}

func TestSystemSingleDocPipeline(t *testing.T) {
	system := newTestSystem(t)
	ctx := context.Background()

	orchestrator, err := system.NewOrchestrator()
	require.NoError(t, err)

	path := writeDoc(t, "note.txt", "Rome grew into an empire.")

	result := orchestrator.ExecutePipeline(ctx, pipeline.SingleDocExistingTopic, pipeline.ExecutionContext{
		pipeline.KeyTopicName: "history",
		pipeline.KeyFilePaths: []string{path},
	}, "run-single")

	require.True(t, result.Success, result.ErrorMessage)
	assert.Equal(t, "run-single", result.ExecutionID)

	// No blueprint step in this pipeline
	_, ok := result.StepResults[pipeline.ToolBlueprintGeneration]
	assert.False(t, ok)

	triples, err := system.GraphRepository().GetTriplesByTopic(ctx, "history")
	require.NoError(t, err)
	require.NotEmpty(t, triples)
	assert.Equal(t, core.ID(0), triples[0].BlueprintId)
}

func TestSystemUnknownPipeline(t *testing.T) {
	system := newTestSystem(t)

	orchestrator, err := system.NewOrchestrator()
	require.NoError(t, err)

	result := orchestrator.ExecutePipeline(context.Background(), "nonexistent",
		pipeline.ExecutionContext{}, "")
	require.False(t, result.Success)
	assert.Equal(t, pipeline.FailureConfig, result.Kind)
}

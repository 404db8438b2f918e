package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/graphit/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool records the inputs and tracking ids it was invoked with and
// returns a canned result.
type fakeTool struct {
	mu          sync.Mutex
	name        string
	result      *tool.Result
	panicWith   any
	inputs      []map[string]any
	trackingIDs []string
}

func (f *fakeTool) Name() string { return f.name }

func (f *fakeTool) ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *tool.Result {
	f.mu.Lock()
	f.inputs = append(f.inputs, input)
	f.trackingIDs = append(f.trackingIDs, trackingID)
	f.mu.Unlock()

	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.result
}

func (f *fakeTool) lastInput(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.inputs)
	return f.inputs[len(f.inputs)-1]
}

func newFakeTools() (etl, blueprint, graph *fakeTool) {
	etl = &fakeTool{
		name: ToolDocumentETL,
		result: &tool.Result{
			Success:  true,
			Data:     map[string]any{KeySourceDataID: "src-1", KeySourceDataIDs: []string{"src-1"}},
			Metadata: map[string]any{KeyTopicName: "architecture"},
		},
	}
	blueprint = &fakeTool{
		name: ToolBlueprintGeneration,
		result: &tool.Result{
			Success:  true,
			Data:     map[string]any{KeyBlueprintID: "bp-1"},
			Metadata: map[string]any{KeyTopicName: "architecture"},
		},
	}
	graph = &fakeTool{
		name:   ToolGraphBuild,
		result: tool.Succeed(map[string]any{"triples_created": 7}),
	}
	return etl, blueprint, graph
}

func newTestOrchestrator(t *testing.T, tools ...tool.Tool) *Orchestrator {
	t.Helper()
	reg, err := tool.NewRegistry(tools...)
	require.NoError(t, err)
	orch, err := NewOrchestrator(NewRegistry(), reg)
	require.NoError(t, err)
	return orch
}

func TestNewOrchestrator(t *testing.T) {
	reg, err := tool.NewRegistry()
	require.NoError(t, err)

	t.Run("nil pipeline registry", func(t *testing.T) {
		_, err := NewOrchestrator(nil, reg)
		assert.Equal(t, ErrPipelineRegistryRequired, err)
	})

	t.Run("nil tool registry", func(t *testing.T) {
		_, err := NewOrchestrator(NewRegistry(), nil)
		assert.Equal(t, ErrToolRegistryRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		orch, err := NewOrchestrator(NewRegistry(), reg)
		require.NoError(t, err)
		assert.NotNil(t, orch)
	})
}

func TestExecutePipeline_Success(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	ec := ExecutionContext{
		KeyFilePaths: []string{"/docs/a.md", "/docs/b.md"},
		KeyTopicName: "architecture",
	}

	before := time.Now()
	res := orch.ExecutePipeline(context.Background(), BatchDocExistingTopic, ec, "run-42")
	elapsed := time.Since(before)

	require.True(t, res.Success)
	assert.Equal(t, FailureNone, res.Kind)
	assert.Equal(t, "run-42", res.ExecutionID)
	assert.Equal(t, []string{ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild}, res.Pipeline)
	assert.Len(t, res.StepResults, 3)
	assert.GreaterOrEqual(t, res.Duration, time.Duration(0))
	assert.LessOrEqual(t, res.Duration, elapsed)

	// Compound tracking ids are scoped per tool within the run.
	assert.Equal(t, []string{"run-42_DocumentETLTool"}, etl.trackingIDs)
	assert.Equal(t, []string{"run-42_BlueprintGenerationTool"}, blueprint.trackingIDs)
	assert.Equal(t, []string{"run-42_GraphBuildTool"}, graph.trackingIDs)
}

func TestExecutePipeline_StepOutputsFlowForward(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	// The caller never supplies source_data_id or blueprint_id.
	ec := ExecutionContext{
		KeyFilePath:  "/docs/a.md",
		KeyTopicName: "architecture",
	}

	res := orch.ExecutePipeline(context.Background(), NewTopicBatch, ec, "")
	require.True(t, res.Success)

	graphInput := graph.lastInput(t)
	assert.Equal(t, "src-1", graphInput[KeySourceDataID])
	assert.Equal(t, "bp-1", graphInput[KeyBlueprintID])
	assert.Equal(t, "architecture", graphInput[KeyTopicName])

	// Blueprint generation sees the ETL exports through the merged context.
	blueprintInput := blueprint.lastInput(t)
	assert.Equal(t, []string{"src-1"}, blueprintInput[KeySourceDataIDs])
}

func TestExecutePipeline_ContextFallbackForGraphBuild(t *testing.T) {
	_, _, graph := newFakeTools()
	orch := newTestOrchestrator(t, graph)

	// A bare graph-build run: no ETL or blueprint step produced ids, so the
	// caller-supplied values must reach the tool.
	ec := ExecutionContext{
		KeySourceDataID: "caller-src",
		KeyBlueprintID:  "caller-bp",
		KeyTopicName:    "architecture",
	}

	res := orch.ExecuteSequence(context.Background(), []string{ToolGraphBuild}, ec, "")
	require.True(t, res.Success)

	input := graph.lastInput(t)
	assert.Equal(t, "caller-src", input[KeySourceDataID])
	assert.Equal(t, "caller-bp", input[KeyBlueprintID])
}

func TestExecutePipeline_FailureStopsRun(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	blueprint.result = tool.Fail("model unavailable")
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	res := orch.ExecutePipeline(context.Background(), BatchDocExistingTopic, ExecutionContext{
		KeyFilePaths: []string{"/docs/a.md"},
		KeyTopicName: "architecture",
	}, "run-9")

	require.False(t, res.Success)
	assert.Equal(t, FailureTool, res.Kind)
	assert.Equal(t, ToolBlueprintGeneration, res.FailedTool)
	assert.Contains(t, res.ErrorMessage, "model unavailable")
	assert.Equal(t, "run-9", res.ExecutionID)
	assert.GreaterOrEqual(t, res.Duration, time.Duration(0))

	// Partial results hold exactly the steps that succeeded before the
	// failure: the ETL result, nothing for the failing or later tools.
	assert.Len(t, res.StepResults, 1)
	assert.Contains(t, res.StepResults, ToolDocumentETL)
	assert.NotContains(t, res.StepResults, ToolBlueprintGeneration)
	assert.NotContains(t, res.StepResults, ToolGraphBuild)

	// The run stopped before graph build.
	assert.Empty(t, graph.trackingIDs)
}

func TestExecutePipeline_UnknownPipeline(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	res := orch.ExecutePipeline(context.Background(), "memory_direct_graph", ExecutionContext{}, "")

	require.False(t, res.Success)
	assert.Equal(t, FailureConfig, res.Kind)
	assert.Contains(t, res.ErrorMessage, "memory_direct_graph")
	assert.NotEmpty(t, res.ExecutionID)
	assert.Zero(t, res.Duration)
	assert.Empty(t, etl.trackingIDs)
}

func TestExecuteSequence_UnknownTool(t *testing.T) {
	etl, _, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, graph)

	res := orch.ExecuteSequence(context.Background(),
		[]string{ToolDocumentETL, "MissingTool", ToolGraphBuild},
		ExecutionContext{KeyTopicName: "architecture"}, "run-7")

	require.False(t, res.Success)
	assert.Equal(t, FailureConfig, res.Kind)
	assert.Contains(t, res.ErrorMessage, "MissingTool")
	assert.Equal(t, "MissingTool", res.FailedTool)
	// Configuration errors carry no timing for the partial run.
	assert.Zero(t, res.Duration)

	// The step before the bad name ran; nothing after it did.
	assert.Contains(t, res.StepResults, ToolDocumentETL)
	assert.Empty(t, graph.trackingIDs)
}

func TestExecuteSequence_PanicBecomesFailureResult(t *testing.T) {
	etl, _, graph := newFakeTools()
	// A defect outside the tool's own error-reporting contract: the fake
	// panics instead of returning a failed result.
	graph.panicWith = "nil pointer dereference"
	orch := newTestOrchestrator(t, etl, graph)

	res := orch.ExecutePipeline(context.Background(), SingleDocExistingTopic, ExecutionContext{
		KeyFilePath:  "/docs/a.md",
		KeyTopicName: "architecture",
	}, "run-3")

	require.NotNil(t, res)
	require.False(t, res.Success)
	assert.Equal(t, FailureInternal, res.Kind)
	assert.Contains(t, res.ErrorMessage, "nil pointer dereference")
	assert.Equal(t, "run-3", res.ExecutionID)
	assert.GreaterOrEqual(t, res.Duration, time.Duration(0))
}

func TestExecuteSequence_GeneratesUniqueExecutionIDs(t *testing.T) {
	etl, _, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, graph)

	first := orch.ExecutePipeline(context.Background(), SingleDocExistingTopic, ExecutionContext{}, "")
	second := orch.ExecutePipeline(context.Background(), SingleDocExistingTopic, ExecutionContext{}, "")

	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEmpty(t, first.ExecutionID)
	assert.NotEqual(t, first.ExecutionID, second.ExecutionID)
}

func TestExecuteSequence_RunsAreIsolated(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	ec := ExecutionContext{KeyTopicName: "architecture", KeyFilePath: "/docs/a.md"}

	var wg sync.WaitGroup
	results := make([]*Result, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = orch.ExecutePipeline(context.Background(), NewTopicBatch, ec, "")
		}(i)
	}
	wg.Wait()

	require.True(t, results[0].Success)
	require.True(t, results[1].Success)
	assert.NotEqual(t, results[0].ExecutionID, results[1].ExecutionID)

	// The caller's context is never mutated by either run.
	assert.Len(t, ec, 2)
	assert.Nil(t, ec.Value(KeySourceDataID))
	assert.Nil(t, ec.Value(KeyBlueprintID))
}

func TestExecuteScenario(t *testing.T) {
	etl, blueprint, graph := newFakeTools()
	orch := newTestOrchestrator(t, etl, blueprint, graph)

	testCases := []struct {
		scenario string
		tools    []string
	}{
		{ScenarioSingleDocExisting, []string{ToolDocumentETL, ToolGraphBuild}},
		{ScenarioBatchDocExisting, []string{ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild}},
		{ScenarioNewTopic, []string{ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild}},
	}

	for _, tc := range testCases {
		t.Run(tc.scenario, func(t *testing.T) {
			res := orch.ExecuteScenario(context.Background(), tc.scenario, ExecutionContext{
				KeyFilePath:  "/docs/a.md",
				KeyTopicName: "architecture",
			}, "")
			require.True(t, res.Success)
			assert.Equal(t, tc.tools, res.Pipeline)
		})
	}

	t.Run("unknown scenario", func(t *testing.T) {
		res := orch.ExecuteScenario(context.Background(), "dialogue_history", ExecutionContext{}, "")
		require.False(t, res.Success)
		assert.Equal(t, FailureConfig, res.Kind)
		assert.Contains(t, res.ErrorMessage, "dialogue_history")
	})
}

func TestDefaultBindings_UnboundToolPassesContextThrough(t *testing.T) {
	custom := &fakeTool{
		name:   "SnapshotTool",
		result: tool.Succeed(nil),
	}
	orch := newTestOrchestrator(t, custom)

	ec := ExecutionContext{KeyTopicName: "architecture", "extra": 42}
	res := orch.ExecuteSequence(context.Background(), []string{"SnapshotTool"}, ec, "")
	require.True(t, res.Success)

	input := custom.lastInput(t)
	assert.Equal(t, "architecture", input[KeyTopicName])
	assert.Equal(t, 42, input["extra"])
}

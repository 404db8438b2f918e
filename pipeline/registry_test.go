package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_StandardPipelines(t *testing.T) {
	registry := NewRegistry()

	testCases := []struct {
		pipeline string
		tools    []string
	}{
		{SingleDocExistingTopic, []string{ToolDocumentETL, ToolGraphBuild}},
		{BatchDocExistingTopic, []string{ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild}},
		{NewTopicBatch, []string{ToolDocumentETL, ToolBlueprintGeneration, ToolGraphBuild}},
	}

	for _, tc := range testCases {
		t.Run(tc.pipeline, func(t *testing.T) {
			tools, err := registry.Get(tc.pipeline)
			require.NoError(t, err)
			assert.Equal(t, tc.tools, tools)
		})
	}
}

func TestRegistry_Deterministic(t *testing.T) {
	registry := NewRegistry()

	for _, name := range registry.Names() {
		first, err := registry.Get(name)
		require.NoError(t, err)
		second, err := registry.Get(name)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestRegistry_NotFound(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("memory_direct_graph")
	assert.ErrorIs(t, err, ErrPipelineNotFound)
}

func TestRegistry_GetReturnsCopy(t *testing.T) {
	registry := NewRegistry()

	tools, err := registry.Get(SingleDocExistingTopic)
	require.NoError(t, err)
	tools[0] = "MangledTool"

	fresh, err := registry.Get(SingleDocExistingTopic)
	require.NoError(t, err)
	assert.Equal(t, ToolDocumentETL, fresh[0])
}

func TestExecutionContext_Clone(t *testing.T) {
	original := ExecutionContext{
		KeyTopicName: "architecture",
		KeyFilePath:  "/docs/towers.md",
	}

	cloned := original.Clone()
	cloned[KeyTopicName] = "history"
	cloned[KeySourceDataID] = "abc"

	assert.Equal(t, "architecture", original.StringValue(KeyTopicName))
	assert.Nil(t, original.Value(KeySourceDataID))

	var empty ExecutionContext
	fromNil := empty.Clone()
	fromNil[KeyTopicName] = "ok" // must be writable
	assert.Equal(t, "ok", fromNil.StringValue(KeyTopicName))
}

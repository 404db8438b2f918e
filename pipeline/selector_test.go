package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectDefault(t *testing.T) {
	testCases := []struct {
		name       string
		targetType string
		fileCount  int
		isNewTopic bool
		expected   string
	}{
		{
			name:       "single doc to existing topic",
			targetType: TargetKnowledgeGraph,
			fileCount:  1,
			isNewTopic: false,
			expected:   SingleDocExistingTopic,
		},
		{
			name:       "batch docs to existing topic",
			targetType: TargetKnowledgeGraph,
			fileCount:  3,
			isNewTopic: false,
			expected:   BatchDocExistingTopic,
		},
		{
			name:       "new topic with batch docs",
			targetType: TargetKnowledgeGraph,
			fileCount:  2,
			isNewTopic: true,
			expected:   NewTopicBatch,
		},
		{
			// The one non-obvious rule: a fresh topic has no blueprint, so
			// even a single file takes the full batch pipeline.
			name:       "new topic with single doc",
			targetType: TargetKnowledgeGraph,
			fileCount:  1,
			isNewTopic: true,
			expected:   NewTopicBatch,
		},
		{
			name:       "non-graph target falls back regardless of count",
			targetType: "other_target",
			fileCount:  5,
			isNewTopic: false,
			expected:   SingleDocExistingTopic,
		},
		{
			name:       "non-graph target falls back regardless of new topic",
			targetType: "other_target",
			fileCount:  2,
			isNewTopic: true,
			expected:   SingleDocExistingTopic,
		},
		{
			name:       "zero files for existing topic takes batch-new path",
			targetType: TargetKnowledgeGraph,
			fileCount:  0,
			isNewTopic: true,
			expected:   NewTopicBatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := SelectDefault(tc.targetType, tc.fileCount, tc.isNewTopic, InputTypeDocument)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSelectDefault_TotalAndPure(t *testing.T) {
	registry := NewRegistry()

	// Every combination over a broad input sweep must resolve to a
	// registered pipeline, and repeated calls must agree.
	for _, target := range []string{TargetKnowledgeGraph, "personal_memory", "", "other"} {
		for count := 0; count <= 4; count++ {
			for _, isNew := range []bool{true, false} {
				first := SelectDefault(target, count, isNew, InputTypeDocument)
				second := SelectDefault(target, count, isNew, InputTypeDocument)
				assert.Equal(t, first, second)

				_, err := registry.Get(first)
				assert.NoError(t, err, "selector returned unregistered pipeline %q", first)
			}
		}
	}
}

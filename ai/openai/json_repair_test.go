package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanModelJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{
			name:  "plain json",
			input: `{"triples": []}`,
		},
		{
			name:  "fenced json",
			input: "```json\n{\"triples\": []}\n```",
		},
		{
			name:  "bare fence",
			input: "```\n{\"triples\": []}\n```",
		},
		{
			name:  "missing opening quote on key",
			input: `{triples": []}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var result extraction
			cleaned := cleanModelJSON(tc.input)
			require.NoError(t, json.Unmarshal([]byte(cleaned), &result))
			assert.Empty(t, result.Triples)
		})
	}
}

func TestScrubString(t *testing.T) {
	assert.Equal(t, "eiffel tower", scrubString("  eiffel tower.  "))
	assert.Equal(t, "x-ray machine", scrubString("x-ray machine!"))
}

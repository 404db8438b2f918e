package mock

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/graphit/ai"
)

// MockBlueprintDrafter is a test double for ai.BlueprintDrafter.
// It allows custom behavior injection via function fields.
type MockBlueprintDrafter struct {
	// DraftBlueprintFunc is called by DraftBlueprint if set.
	// If nil, uses default word-frequency behavior.
	DraftBlueprintFunc func(ctx context.Context, topicName string, documents []string) (*ai.BlueprintDraft, error)

	callCount int
}

// NewMockBlueprintDrafter creates a mock drafter with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockDrafter().
func NewMockBlueprintDrafter() *MockBlueprintDrafter {
	return &MockBlueprintDrafter{}
}

// DraftBlueprint produces a simple deterministic draft.
// Default behavior: a one-section outline per document plus the distinct
// long words of the documents as canonical entities.
func (m *MockBlueprintDrafter) DraftBlueprint(ctx context.Context, topicName string, documents []string) (*ai.BlueprintDraft, error) {
	m.callCount++

	if m.DraftBlueprintFunc != nil {
		return m.DraftBlueprintFunc(ctx, topicName, documents)
	}

	var outline strings.Builder
	seen := make(map[string]bool)
	entities := make([]string, 0, 8)

	for i, doc := range documents {
		fmt.Fprintf(&outline, "%d. %s section %d\n", i+1, topicName, i+1)

		for _, word := range strings.Fields(strings.ToLower(doc)) {
			word = strings.Trim(word, ".,!?;:\"'()[]{}")
			if len(word) <= 5 || seen[word] {
				continue
			}
			seen[word] = true
			entities = append(entities, word)
			if len(entities) >= 8 { // Limit to 8 entities
				break
			}
		}
	}

	slices.Sort(entities)

	return &ai.BlueprintDraft{
		Outline:           strings.TrimSpace(outline.String()),
		CanonicalEntities: entities,
	}, nil
}

// CallCount returns the number of times DraftBlueprint was called.
func (m *MockBlueprintDrafter) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockBlueprintDrafter) Reset() {
	m.callCount = 0
	m.DraftBlueprintFunc = nil
}

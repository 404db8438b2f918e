package mock

import (
	"context"
	"strings"

	"github.com/poiesic/graphit/ai"
)

// MockTripleExtractor is a test double for ai.TripleExtractor.
// It allows custom behavior injection via function fields.
type MockTripleExtractor struct {
	// ExtractTriplesFunc is called by ExtractTriples if set.
	// If nil, uses default simple sentence-based extraction.
	ExtractTriplesFunc func(ctx context.Context, text string) ([]ai.ExtractedTriple, error)

	callCount int
}

// NewMockTripleExtractor creates a mock triple extractor with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockTripleExtractor() *MockTripleExtractor {
	return &MockTripleExtractor{}
}

// ExtractTriples extracts simple mock triples from text.
// Default behavior: treats the first word of each sentence as the subject
// and the rest as the object, linked by "related_to".
func (m *MockTripleExtractor) ExtractTriples(ctx context.Context, text string) ([]ai.ExtractedTriple, error) {
	m.callCount++

	if m.ExtractTriplesFunc != nil {
		return m.ExtractTriplesFunc(ctx, text)
	}

	sentences := strings.Split(text, ".")
	triples := make([]ai.ExtractedTriple, 0, len(sentences))
	confidence := float32(0.9)
	for _, sentence := range sentences {
		if len(triples) >= 5 { // Limit to 5 triples
			break
		}

		words := strings.Fields(strings.ToLower(strings.TrimSpace(sentence)))
		if len(words) < 2 {
			continue
		}

		triples = append(triples, ai.ExtractedTriple{
			Subject:    strings.Trim(words[0], ".,!?;:\"'()[]{}"),
			Predicate:  "related_to",
			Object:     strings.Trim(strings.Join(words[1:], " "), ".,!?;:\"'()[]{}"),
			Confidence: confidence,
		})

		// Decrease confidence for each subsequent triple
		if confidence > 0.1 {
			confidence -= 0.1
		}
	}

	return triples, nil
}

// CallCount returns the number of times ExtractTriples was called.
func (m *MockTripleExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockTripleExtractor) Reset() {
	m.callCount = 0
	m.ExtractTriplesFunc = nil
}

// Package mock provides deterministic test doubles for the ai interfaces.
//
// Each mock works without configuration: the embedder derives unit vectors
// from the text itself, the drafter builds an outline and entity list from
// the document words, and the extractor splits sentences into naive triples.
// All of them expose an override function field for scripted behavior and a
// CallCount for assertions:
//
//	extractor := mock.NewMockTripleExtractor()
//	extractor.ExtractTriplesFunc = func(ctx context.Context, text string) ([]ai.ExtractedTriple, error) {
//	    return []ai.ExtractedTriple{{Subject: "a", Predicate: "related_to", Object: "b", Confidence: 1}}, nil
//	}
//
// NewMockProvider wires the three into an ai.AIProvider.
package mock

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


package openai

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/graphit/ai"
	"github.com/tmc/langchaingo/llms"
)

// TripleExtractor implements ai.TripleExtractor over an OpenAI-compatible
// chat API.
type TripleExtractor struct {
	client        llms.Model
	minConfidence float32
	logger        *slog.Logger
}

// extraction mirrors the JSON document the prompt asks the model for.
type extraction struct {
	Triples []struct {
		Subject    string  `json:"subject"`
		Predicate  string  `json:"predicate"`
		Object     string  `json:"object"`
		Confidence float32 `json:"confidence"`
	} `json:"triples"`
}

// newTripleExtractor returns the concrete type for use by Provider.
func newTripleExtractor(config *ai.Config) (*TripleExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := newGeneratorClient(config)
	if err != nil {
		return nil, err
	}

	return &TripleExtractor{
		client:        client,
		minConfidence: config.MinConfidence,
		logger:        slog.Default().With("component", "openai-extractor"),
	}, nil
}

// NewTripleExtractor creates a triple extractor from the given configuration,
// returned as the ai.TripleExtractor interface.
func NewTripleExtractor(config *ai.Config) (ai.TripleExtractor, error) {
	return newTripleExtractor(config)
}

// ExtractTriples asks the model for subject/predicate/object triples in the
// text, drops incomplete or low-confidence ones, normalizes the remainder,
// and returns them ordered by confidence, highest first.
func (e *TripleExtractor) ExtractTriples(ctx context.Context, text string) ([]ai.ExtractedTriple, error) {
	var result extraction
	if err := generateJSON(ctx, e.client, e.logger, buildTriplePrompt(), text, &result); err != nil {
		return nil, err
	}

	extracted := make([]ai.ExtractedTriple, 0, len(result.Triples))
	for _, tr := range result.Triples {
		if tr.Subject == "" || tr.Predicate == "" || tr.Object == "" {
			continue
		}
		if tr.Confidence < e.minConfidence {
			continue
		}
		extracted = append(extracted, ai.ExtractedTriple{
			Subject:    scrubString(strings.ToLower(tr.Subject)),
			Predicate:  strings.ReplaceAll(strings.ToLower(tr.Predicate), " ", "_"),
			Object:     scrubString(strings.ToLower(tr.Object)),
			Confidence: tr.Confidence,
		})
	}

	slices.SortFunc(extracted, func(a, b ai.ExtractedTriple) int {
		return cmp.Compare(b.Confidence, a.Confidence)
	})

	e.logger.Debug("extracted triples",
		"returned", len(result.Triples), "kept", len(extracted))

	return extracted, nil
}

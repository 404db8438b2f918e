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
	"log/slog"

	"github.com/poiesic/graphit/ai"
)

// Provider bundles the embedder, drafter and extractor built from one
// config. It implements ai.AIProvider.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	drafter   *BlueprintDrafter
	extractor *TripleExtractor
	logger    *slog.Logger
}

// NewProvider validates the config and constructs all three services,
// returned behind the ai.AIProvider interface.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}
	drafter, err := newBlueprintDrafter(config)
	if err != nil {
		return nil, err
	}
	extractor, err := newTripleExtractor(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		drafter:   drafter,
		extractor: extractor,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

// Embedder returns the embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// BlueprintDrafter returns the drafting service.
func (p *Provider) BlueprintDrafter() ai.BlueprintDrafter {
	return p.drafter
}

// TripleExtractor returns the extraction service.
func (p *Provider) TripleExtractor() ai.TripleExtractor {
	return p.extractor
}

// Close releases provider resources. The HTTP clients hold nothing that
// needs explicit cleanup, so this only logs.
func (p *Provider) Close() error {
	p.logger.Debug("closing provider")
	return nil
}

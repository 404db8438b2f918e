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


package mock

import "github.com/poiesic/graphit/ai"

// MockProvider aggregates the three mocks behind ai.AIProvider.
type MockProvider struct {
	embedder  *MockEmbedder
	drafter   *MockBlueprintDrafter
	extractor *MockTripleExtractor
}

// NewMockProvider creates a provider over fresh default mocks. The GetMock*
// methods expose the concrete mocks for assertions.
func NewMockProvider() ai.AIProvider {
	return NewMockProviderWithServices(
		NewMockEmbedder(), NewMockBlueprintDrafter(), NewMockTripleExtractor())
}

// NewMockProviderWithServices creates a provider over caller-supplied mocks,
// for tests that pre-script behavior before wiring.
func NewMockProviderWithServices(embedder *MockEmbedder, drafter *MockBlueprintDrafter, extractor *MockTripleExtractor) ai.AIProvider {
	return &MockProvider{
		embedder:  embedder,
		drafter:   drafter,
		extractor: extractor,
	}
}

// Embedder returns the mock embedder as ai.Embedder.
func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

// BlueprintDrafter returns the mock drafter as ai.BlueprintDrafter.
func (p *MockProvider) BlueprintDrafter() ai.BlueprintDrafter {
	return p.drafter
}

// TripleExtractor returns the mock extractor as ai.TripleExtractor.
func (p *MockProvider) TripleExtractor() ai.TripleExtractor {
	return p.extractor
}

// Close is a no-op.
func (p *MockProvider) Close() error {
	return nil
}

// GetMockEmbedder exposes the concrete embedder for assertions.
func (p *MockProvider) GetMockEmbedder() *MockEmbedder {
	return p.embedder
}

// GetMockDrafter exposes the concrete drafter for assertions.
func (p *MockProvider) GetMockDrafter() *MockBlueprintDrafter {
	return p.drafter
}

// GetMockExtractor exposes the concrete extractor for assertions.
func (p *MockProvider) GetMockExtractor() *MockTripleExtractor {
	return p.extractor
}

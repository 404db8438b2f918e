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


// Package graphit turns topic documents into a searchable knowledge graph.
// It wires storage, AI services and the standard tools into a pipeline
// orchestrator; the System type is the embedding entry point.
package graphit

import (
	"log/slog"

	"github.com/poiesic/graphit/ai"
	"github.com/poiesic/graphit/ai/openai"
	"github.com/poiesic/graphit/pipeline"
	"github.com/poiesic/graphit/storage"
	"github.com/poiesic/graphit/storage/badger"
	"github.com/poiesic/graphit/tool"
	"github.com/poiesic/graphit/tools"
)

// System bundles the storage backend, AI provider and standard tools of one
// graphit instance.
type System struct {
	repos    *badger.Repositories
	provider ai.AIProvider
	etl      *tools.DocumentETLTool
	registry *tool.Registry
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	poolSize int
}

// WithAIConfig sets the AI service configuration used to build the default
// OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) SystemOption {
	return func(o *systemOptions) {
		o.aiConfig = config
	}
}

// WithAIProvider injects a pre-built AI provider (mocks in tests, or an
// alternative implementation). It takes precedence over WithAIConfig.
func WithAIProvider(provider ai.AIProvider) SystemOption {
	return func(o *systemOptions) {
		o.provider = provider
	}
}

// WithIngestionPoolSize sets the document ETL worker pool size.
func WithIngestionPoolSize(size int) SystemOption {
	return func(o *systemOptions) {
		o.poolSize = size
	}
}

// NewSystem opens the database at filePath and wires up repositories, the AI
// provider and the standard tool set. Pass inMemory for tests.
func NewSystem(filePath string, inMemory bool, opts ...SystemOption) (*System, error) {
	options := &systemOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}

	repos, err := badger.NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			repos.Close()
			return nil, err
		}
	}

	var etlOpts []tools.ETLOption
	if options.poolSize > 0 {
		etlOpts = append(etlOpts, tools.WithETLPoolSize(options.poolSize))
	}
	etl, err := tools.NewDocumentETLTool(repos.Sources, provider.Embedder(), etlOpts...)
	if err != nil {
		provider.Close()
		repos.Close()
		return nil, err
	}

	blueprint, err := tools.NewBlueprintGenerationTool(repos.Sources, repos.Blueprints, provider.BlueprintDrafter(), nil)
	if err != nil {
		etl.Release()
		provider.Close()
		repos.Close()
		return nil, err
	}

	graphBuild, err := tools.NewGraphBuildTool(repos.Sources, repos.Blueprints, repos.Graph,
		provider.TripleExtractor(), provider.Embedder(), nil)
	if err != nil {
		etl.Release()
		provider.Close()
		repos.Close()
		return nil, err
	}

	registry, err := tool.NewRegistry(etl, blueprint, graphBuild)
	if err != nil {
		etl.Release()
		provider.Close()
		repos.Close()
		return nil, err
	}

	return &System{
		repos:    repos,
		provider: provider,
		etl:      etl,
		registry: registry,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider, tools and storage.
func (s *System) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	s.etl.Release()

	if err := s.repos.Close(); err != nil {
		s.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// SourceDataRepository returns the source data repository.
func (s *System) SourceDataRepository() storage.SourceDataRepository {
	return s.repos.Sources
}

// BlueprintRepository returns the blueprint repository.
func (s *System) BlueprintRepository() storage.BlueprintRepository {
	return s.repos.Blueprints
}

// GraphRepository returns the graph repository.
func (s *System) GraphRepository() storage.GraphRepository {
	return s.repos.Graph
}

// Provider returns the AI provider.
func (s *System) Provider() ai.AIProvider {
	return s.provider
}

// ToolRegistry returns the registry holding the standard tools.
func (s *System) ToolRegistry() *tool.Registry {
	return s.registry
}

// NewOrchestrator creates a pipeline orchestrator over the system's tools
// and the standard pipeline registry.
func (s *System) NewOrchestrator(opts ...pipeline.Option) (*pipeline.Orchestrator, error) {
	return pipeline.NewOrchestrator(pipeline.NewRegistry(), s.registry, opts...)
}

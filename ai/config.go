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


package ai

import (
	"errors"
	"strings"
)

// Config holds the connection settings for the AI services. Embedding and
// generation may run on the same host or on two different ones.
type Config struct {
	// EmbeddingHost is the base URL of the embedding service,
	// e.g. "http://localhost:11434/v1".
	EmbeddingHost string

	// GeneratorHost is the base URL of the service used for blueprint
	// drafting and triple extraction.
	GeneratorHost string

	// EmbeddingModel names the embedding model,
	// e.g. "embeddinggemma" or "text-embedding-3-small".
	EmbeddingModel string

	// GeneratorModel names the generation model,
	// e.g. "qwen2.5:3b" or "gpt-4o-mini".
	GeneratorModel string

	// MinConfidence is the lowest extraction confidence (0.0-1.0) kept by
	// the triple extractor.
	MinConfidence float32
}

// ConfigOption mutates a Config under construction.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithGeneratorHost sets the generation service URL.
func WithGeneratorHost(host string) ConfigOption {
	return func(c *Config) {
		c.GeneratorHost = host
	}
}

// WithHost points both services at the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
		c.GeneratorHost = host
	}
}

// WithEmbeddingModel sets the embedding model name.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithGeneratorModel sets the generation model name.
func WithGeneratorModel(model string) ConfigOption {
	return func(c *Config) {
		c.GeneratorModel = model
	}
}

// WithMinConfidence sets the extraction confidence threshold.
func WithMinConfidence(min float32) ConfigOption {
	return func(c *Config) {
		c.MinConfidence = min
	}
}

// DefaultConfig targets a local Ollama instance serving both services.
func DefaultConfig() *Config {
	const localHost = "http://localhost:11434/v1"
	return &Config{
		EmbeddingHost:  localHost,
		GeneratorHost:  localHost,
		EmbeddingModel: "embeddinggemma",
		GeneratorModel: "qwen2.5:3b",
		MinConfidence:  0.5,
	}
}

// NewConfig starts from DefaultConfig and applies the given options.
//
//	cfg := ai.NewConfig(
//	    ai.WithHost("http://localhost:11434"),
//	    ai.WithGeneratorModel("gpt-4o-mini"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the host URLs into the canonical form expected by
// OpenAI-compatible APIs: a "/v1" suffix and no trailing slash before it.
// Empty hosts are left empty for Validate to reject.
func (c *Config) Normalize() {
	c.EmbeddingHost = normalizeHost(c.EmbeddingHost)
	c.GeneratorHost = normalizeHost(c.GeneratorHost)
}

func normalizeHost(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate normalizes the config and reports the first missing or
// out-of-range field.
func (c *Config) Validate() error {
	c.Normalize()

	switch {
	case c.EmbeddingHost == "":
		return errors.New("ai config: EmbeddingHost is required")
	case c.GeneratorHost == "":
		return errors.New("ai config: GeneratorHost is required")
	case c.EmbeddingModel == "":
		return errors.New("ai config: EmbeddingModel is required")
	case c.GeneratorModel == "":
		return errors.New("ai config: GeneratorModel is required")
	case c.MinConfidence < 0 || c.MinConfidence > 1:
		return errors.New("ai config: MinConfidence must be between 0.0 and 1.0")
	}
	return nil
}

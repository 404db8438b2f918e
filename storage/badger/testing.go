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


package badger

import "github.com/poiesic/graphit/storage"

// Repositories bundles the three repositories over one shared backend.
// It exists for tests and for wiring at process startup.
type Repositories struct {
	Sources    storage.SourceDataRepository
	Blueprints storage.BlueprintRepository
	Graph      storage.GraphRepository

	backend *Backend
}

// Close closes the shared backend.
func (r *Repositories) Close() error {
	return r.backend.Close()
}

// NewRepositories creates the three repositories over an open backend.
func NewRepositories(backend *Backend) (*Repositories, error) {
	sources, err := NewSourceDataRepository(backend)
	if err != nil {
		return nil, err
	}

	blueprints, err := NewBlueprintRepository(backend)
	if err != nil {
		return nil, err
	}

	graph, err := NewGraphRepository(backend)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Sources:    sources,
		Blueprints: blueprints,
		Graph:      graph,
		backend:    backend,
	}, nil
}

// NewMemoryRepositories creates in-memory repositories for testing.
// Caller must close the returned bundle when done.
func NewMemoryRepositories() (*Repositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	repos, err := NewRepositories(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return repos, nil
}

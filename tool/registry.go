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


package tool

import (
	"fmt"
	"slices"
)

// Registry resolves tool names to Tool implementations.
// It is populated at construction time and read-only afterwards, so it is
// safe to share across concurrent pipeline runs.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a Registry holding the given tools.
// Returns an error if two tools share a name.
func NewRegistry(tools ...Tool) (*Registry, error) {
	reg := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if t == nil {
			return nil, ErrNilTool
		}
		if _, exists := reg.tools[t.Name()]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTool, t.Name())
		}
		reg.tools[t.Name()] = t
	}
	return reg, nil
}

// Get resolves a tool by name.
// Returns ErrNotFound (wrapped with the name) if no tool is registered.
func (r *Registry) Get(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

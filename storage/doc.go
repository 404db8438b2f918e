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


// Package storage defines the repository interfaces the tools persist
// through, plus the binary serialization helpers shared by backends.
//
// Three repositories cover the domain records: SourceDataRepository for
// ingested documents, BlueprintRepository for topic blueprints, and
// GraphRepository for knowledge-graph triples (including vector similarity
// search over triple statements). Each embeds the base Repository, which
// carries transactions and lifecycle.
//
// Backend constructors return these interfaces, never their concrete types;
// storage/badger is the BadgerDB implementation and also provides an
// in-memory constructor for tests:
//
//	repos, err := badger.NewMemoryRepositories()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer repos.Close()
//
// Implementations must be safe for concurrent use, and every method takes a
// context.Context.
package storage

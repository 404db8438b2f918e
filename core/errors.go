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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidSourceData indicates a SourceData record failed validation.
	ErrInvalidSourceData = errors.New("invalid source data")

	// ErrInvalidBlueprint indicates a Blueprint failed validation.
	ErrInvalidBlueprint = errors.New("invalid blueprint")

	// ErrInvalidTriple indicates a GraphTriple failed validation.
	ErrInvalidTriple = errors.New("invalid graph triple")

	// ErrEmptyTopicName indicates the TopicName field is empty.
	ErrEmptyTopicName = errors.New("topic name cannot be empty")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidStatus indicates an invalid ProcessingStatus value.
	ErrInvalidStatus = errors.New("invalid processing status")

	// ErrEmptyTripleField indicates a subject, predicate, or object is empty.
	ErrEmptyTripleField = errors.New("triple fields cannot be empty")

	// ErrNoSourceData indicates a blueprint references no source documents.
	ErrNoSourceData = errors.New("blueprint requires at least one source document")
)

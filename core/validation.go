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

import "fmt"

// ValidateSourceData validates a SourceData record according to domain rules.
//
// Validation rules:
//   - TopicName must not be empty
//   - Content must not be empty
//   - Status must be a valid ProcessingStatus
//
// NOT validated (populated during processing):
//   - Vector (can be empty until the document is embedded)
//   - ID (0 is valid from database sequences)
func ValidateSourceData(data *SourceData) error {
	if data == nil {
		return fmt.Errorf("%w: source data is nil", ErrInvalidSourceData)
	}

	if data.TopicName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSourceData, ErrEmptyTopicName)
	}

	if data.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSourceData, ErrEmptyContent)
	}

	if err := ValidateProcessingStatus(data.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSourceData, err)
	}

	return nil
}

// ValidateBlueprint validates a Blueprint according to domain rules.
//
// Validation rules:
//   - TopicName must not be empty
//   - SourceDataIds must not be empty
func ValidateBlueprint(blueprint *Blueprint) error {
	if blueprint == nil {
		return fmt.Errorf("%w: blueprint is nil", ErrInvalidBlueprint)
	}

	if blueprint.TopicName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBlueprint, ErrEmptyTopicName)
	}

	if len(blueprint.SourceDataIds) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidBlueprint, ErrNoSourceData)
	}

	return nil
}

// ValidateGraphTriple validates a GraphTriple according to domain rules.
//
// Validation rules:
//   - TopicName must not be empty
//   - Subject, Predicate, and Object must not be empty
//
// NOT validated (populated during processing):
//   - Vector (can be empty until the statement is embedded)
//   - SourceDataId / BlueprintId (0 means unknown provenance)
func ValidateGraphTriple(triple *GraphTriple) error {
	if triple == nil {
		return fmt.Errorf("%w: triple is nil", ErrInvalidTriple)
	}

	if triple.TopicName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTriple, ErrEmptyTopicName)
	}

	if triple.Subject == "" || triple.Predicate == "" || triple.Object == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTriple, ErrEmptyTripleField)
	}

	return nil
}

// ValidateProcessingStatus validates that a ProcessingStatus has a valid value.
func ValidateProcessingStatus(status ProcessingStatus) error {
	if status != StatusPending && status != StatusCompleted && status != StatusFailed {
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
	return nil
}

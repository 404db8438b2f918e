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


package storage

import "errors"

// Sentinel errors shared by all storage backends. Backends wrap these with
// fmt.Errorf("%w: ...") so callers match with errors.Is.
var (
	// ErrNotFound means no record exists for the given identifier.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means a write collided with an existing key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrTransactionFailed wraps a backend transaction error.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrStorageClosed means the backend was used after Close.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery means the query parameters cannot be executed.
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrSerializationFailed wraps a record encode or decode error.
	ErrSerializationFailed = errors.New("serialization failed")
)

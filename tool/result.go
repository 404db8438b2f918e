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
	"context"
	"fmt"
	"time"
)

// Tool is a named unit of work executed by the pipeline orchestrator.
// Implementations must be safe for concurrent use: one tool instance may be
// invoked by multiple pipeline runs at the same time.
type Tool interface {
	// Name returns the unique registry name of the tool.
	Name() string

	// ExecuteWithTracking runs the tool against the given input mapping.
	// The trackingID correlates this invocation with its pipeline run.
	// Failures are reported through the Result, not an error return;
	// the returned Result is never nil.
	ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *Result
}

// Result is the outcome of a single tool invocation.
// It is created by the tool and consumed by the orchestrator.
type Result struct {
	Success      bool
	ErrorMessage string
	Data         map[string]any
	Metadata     map[string]any
	Duration     time.Duration
}

// Succeed creates a successful Result with the given payload.
func Succeed(data map[string]any) *Result {
	return &Result{Success: true, Data: data}
}

// Fail creates a failed Result with a formatted error message.
func Fail(format string, args ...any) *Result {
	return &Result{Success: false, ErrorMessage: fmt.Sprintf(format, args...)}
}

// DataValue returns the named payload entry, or nil if absent.
func (r *Result) DataValue(key string) any {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data[key]
}

// MetadataValue returns the named metadata entry, or nil if absent.
func (r *Result) MetadataValue(key string) any {
	if r == nil || r.Metadata == nil {
		return nil
	}
	return r.Metadata[key]
}

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
	"log/slog"
	"time"
)

// Track wraps a tool body with start/finish logging, duration measurement,
// and panic recovery. Tool implementations call it from ExecuteWithTracking
// so every invocation is observable under its tracking id and a panicking
// tool surfaces as a failed Result rather than tearing down the run.
func Track(logger *slog.Logger, name, trackingID string, fn func() *Result) (result *Result) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("tool panicked", "tool", name, "tracking_id", trackingID, "panic", rec)
			result = Fail("tool %q panicked: %v", name, rec)
		}
		if result != nil {
			result.Duration = time.Since(start)
			if result.Success {
				logger.Info("tool completed", "tool", name, "tracking_id", trackingID, "duration", result.Duration)
			} else {
				logger.Error("tool failed", "tool", name, "tracking_id", trackingID, "err", result.ErrorMessage)
			}
		}
	}()

	logger.Info("executing tool", "tool", name, "tracking_id", trackingID)
	result = fn()
	if result == nil {
		result = Fail("tool %q returned no result", name)
	}
	return result
}

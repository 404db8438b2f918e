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


package pipeline

import "maps"

// Well-known ExecutionContext keys. Callers populate the input keys; tools
// export the identifier keys as their steps complete.
const (
	KeyFilePath         = "file_path"
	KeyFilePaths        = "file_paths"
	KeyTopicName        = "topic_name"
	KeyMetadata         = "metadata"
	KeyForceReprocess   = "force_reprocess"
	KeyLink             = "link"
	KeyOriginalFilename = "original_filename"
	KeySourceDataID     = "source_data_id"
	KeySourceDataIDs    = "source_data_ids"
	KeyForceRegenerate  = "force_regenerate"
	KeyBlueprintID      = "blueprint_id"
)

// ExecutionContext carries key/value data through a pipeline run: caller
// inputs (file path, topic name, flags) plus identifiers exported by earlier
// steps. It is updated by replacement, never in place: the orchestrator
// clones the caller's context at the start of a run and each merge produces
// a fresh map, so concurrent runs cannot observe each other's state.
type ExecutionContext map[string]any

// Clone returns a shallow copy of the context. A nil context clones to an
// empty, writable one.
func (ec ExecutionContext) Clone() ExecutionContext {
	cloned := make(ExecutionContext, len(ec))
	maps.Copy(cloned, ec)
	return cloned
}

// Value returns the entry for key, or nil if absent.
func (ec ExecutionContext) Value(key string) any {
	if ec == nil {
		return nil
	}
	return ec[key]
}

// StringValue returns the entry for key as a string, or "" if the entry is
// absent or not a string.
func (ec ExecutionContext) StringValue(key string) string {
	s, _ := ec.Value(key).(string)
	return s
}

// BoolValue returns the entry for key as a bool, or false if the entry is
// absent or not a bool.
func (ec ExecutionContext) BoolValue(key string) bool {
	b, _ := ec.Value(key).(bool)
	return b
}

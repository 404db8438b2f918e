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

import (
	"fmt"

	"github.com/poiesic/graphit/core"
)

// Marshal helpers over the core mus serializers. Decode failures wrap
// ErrSerializationFailed so backends can classify them with errors.Is.

// MarshalID serializes an ID.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, decodeError("id", err)
	}
	return id, nil
}

// MarshalSourceData serializes a SourceData record.
func MarshalSourceData(record *core.SourceData) []byte {
	buf := make([]byte, core.SourceDataMUS.Size(*record))
	core.SourceDataMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSourceData deserializes a SourceData record.
func UnmarshalSourceData(data []byte) (*core.SourceData, error) {
	record, _, err := core.SourceDataMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError("source data", err)
	}
	return &record, nil
}

// MarshalBlueprint serializes a Blueprint.
func MarshalBlueprint(blueprint *core.Blueprint) []byte {
	buf := make([]byte, core.BlueprintMUS.Size(*blueprint))
	core.BlueprintMUS.Marshal(*blueprint, buf)
	return buf
}

// UnmarshalBlueprint deserializes a Blueprint.
func UnmarshalBlueprint(data []byte) (*core.Blueprint, error) {
	blueprint, _, err := core.BlueprintMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError("blueprint", err)
	}
	return &blueprint, nil
}

// MarshalGraphTriple serializes a GraphTriple.
func MarshalGraphTriple(triple *core.GraphTriple) []byte {
	buf := make([]byte, core.GraphTripleMUS.Size(*triple))
	core.GraphTripleMUS.Marshal(*triple, buf)
	return buf
}

// UnmarshalGraphTriple deserializes a GraphTriple.
func UnmarshalGraphTriple(data []byte) (*core.GraphTriple, error) {
	triple, _, err := core.GraphTripleMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeError("graph triple", err)
	}
	return &triple, nil
}

func decodeError(kind string, err error) error {
	return fmt.Errorf("%w: decoding %s: %v", ErrSerializationFailed, kind, err)
}

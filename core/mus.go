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

import (
	"errors"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain types. Timestamps are encoded
// as Unix microseconds, vectors as raw float32, everything else varint/ord.

var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// SourceDataMUS serializes SourceData records.
	SourceDataMUS = sourceDataMUS{}
	// BlueprintMUS serializes Blueprint records.
	BlueprintMUS = blueprintMUS{}
	// GraphTripleMUS serializes GraphTriple records.
	GraphTripleMUS = graphTripleMUS{}
)

var errNegativeLength = errors.New("negative length")

type idMUS struct{}

func (s idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (s idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (s idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

// timestamps

func marshalTime(t time.Time, bs []byte) int {
	return varint.Int64.Marshal(t.UnixMicro(), bs)
}

func unmarshalTime(bs []byte) (time.Time, int, error) {
	v, n, err := varint.Int64.Unmarshal(bs)
	if err != nil {
		return time.Time{}, n, err
	}
	return time.UnixMicro(v).UTC(), n, nil
}

func sizeTime(t time.Time) int {
	return varint.Int64.Size(t.UnixMicro())
}

// vectors

func marshalVector(v []float32, bs []byte) (n int) {
	n = varint.Int.Marshal(len(v), bs)
	for _, f := range v {
		n += raw.Float32.Marshal(f, bs[n:])
	}
	return n
}

func unmarshalVector(bs []byte) (v []float32, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, errNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	v = make([]float32, length)
	for i := 0; i < length; i++ {
		var m int
		v[i], m, err = raw.Float32.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
	}
	return v, n, nil
}

func sizeVector(v []float32) (size int) {
	size = varint.Int.Size(len(v))
	for _, f := range v {
		size += raw.Float32.Size(f)
	}
	return size
}

// string slices

func marshalStrings(ss []string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(ss), bs)
	for _, s := range ss {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) (ss []string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, errNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	ss = make([]string, length)
	for i := 0; i < length; i++ {
		var m int
		ss[i], m, err = ord.String.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
	}
	return ss, n, nil
}

func sizeStrings(ss []string) (size int) {
	size = varint.Int.Size(len(ss))
	for _, s := range ss {
		size += ord.String.Size(s)
	}
	return size
}

// ID slices

func marshalIDs(ids []ID, bs []byte) (n int) {
	n = varint.Int.Marshal(len(ids), bs)
	for _, id := range ids {
		n += IDMUS.Marshal(id, bs[n:])
	}
	return n
}

func unmarshalIDs(bs []byte) (ids []ID, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, errNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	ids = make([]ID, length)
	for i := 0; i < length; i++ {
		var m int
		ids[i], m, err = IDMUS.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
	}
	return ids, n, nil
}

func sizeIDs(ids []ID) (size int) {
	size = varint.Int.Size(len(ids))
	for _, id := range ids {
		size += IDMUS.Size(id)
	}
	return size
}

// string maps

func marshalStringMap(m map[string]string, bs []byte) (n int) {
	n = varint.Int.Marshal(len(m), bs)
	for k, v := range m {
		n += ord.String.Marshal(k, bs[n:])
		n += ord.String.Marshal(v, bs[n:])
	}
	return n
}

func unmarshalStringMap(bs []byte) (m map[string]string, n int, err error) {
	length, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length < 0 {
		return nil, n, errNegativeLength
	}
	if length == 0 {
		return nil, n, nil
	}
	m = make(map[string]string, length)
	for i := 0; i < length; i++ {
		var k, v string
		var o int
		k, o, err = ord.String.Unmarshal(bs[n:])
		n += o
		if err != nil {
			return nil, n, err
		}
		v, o, err = ord.String.Unmarshal(bs[n:])
		n += o
		if err != nil {
			return nil, n, err
		}
		m[k] = v
	}
	return m, n, nil
}

func sizeStringMap(m map[string]string) (size int) {
	size = varint.Int.Size(len(m))
	for k, v := range m {
		size += ord.String.Size(k)
		size += ord.String.Size(v)
	}
	return size
}

type sourceDataMUS struct{}

func (s sourceDataMUS) Marshal(d SourceData, bs []byte) (n int) {
	n = IDMUS.Marshal(d.Id, bs)
	n += ord.String.Marshal(d.TopicName, bs[n:])
	n += ord.String.Marshal(d.Name, bs[n:])
	n += ord.String.Marshal(d.Link, bs[n:])
	n += ord.String.Marshal(d.ContentType, bs[n:])
	n += ord.String.Marshal(d.Content, bs[n:])
	n += marshalVector(d.Vector, bs[n:])
	n += varint.Int.Marshal(int(d.Status), bs[n:])
	n += marshalStringMap(d.Metadata, bs[n:])
	n += marshalTime(d.InsertedAt, bs[n:])
	n += marshalTime(d.UpdatedAt, bs[n:])
	return n
}

func (s sourceDataMUS) Unmarshal(bs []byte) (d SourceData, n int, err error) {
	var m int
	if d.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return d, n, err
	}
	if d.TopicName, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.Name, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.Link, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.ContentType, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.Content, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.Vector, m, err = unmarshalVector(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	var status int
	if status, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return d, n + m, err
	}
	d.Status = ProcessingStatus(status)
	n += m
	if d.Metadata, m, err = unmarshalStringMap(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	if d.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return d, n + m, err
	}
	n += m
	return d, n, nil
}

func (s sourceDataMUS) Size(d SourceData) (size int) {
	size = IDMUS.Size(d.Id)
	size += ord.String.Size(d.TopicName)
	size += ord.String.Size(d.Name)
	size += ord.String.Size(d.Link)
	size += ord.String.Size(d.ContentType)
	size += ord.String.Size(d.Content)
	size += sizeVector(d.Vector)
	size += varint.Int.Size(int(d.Status))
	size += sizeStringMap(d.Metadata)
	size += sizeTime(d.InsertedAt)
	size += sizeTime(d.UpdatedAt)
	return size
}

type blueprintMUS struct{}

func (s blueprintMUS) Marshal(b Blueprint, bs []byte) (n int) {
	n = IDMUS.Marshal(b.Id, bs)
	n += ord.String.Marshal(b.TopicName, bs[n:])
	n += marshalIDs(b.SourceDataIds, bs[n:])
	n += ord.String.Marshal(b.Outline, bs[n:])
	n += marshalStrings(b.CanonicalEntities, bs[n:])
	n += marshalTime(b.InsertedAt, bs[n:])
	n += marshalTime(b.UpdatedAt, bs[n:])
	return n
}

func (s blueprintMUS) Unmarshal(bs []byte) (b Blueprint, n int, err error) {
	var m int
	if b.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return b, n, err
	}
	if b.TopicName, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	if b.SourceDataIds, m, err = unmarshalIDs(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	if b.Outline, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	if b.CanonicalEntities, m, err = unmarshalStrings(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	if b.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	if b.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return b, n + m, err
	}
	n += m
	return b, n, nil
}

func (s blueprintMUS) Size(b Blueprint) (size int) {
	size = IDMUS.Size(b.Id)
	size += ord.String.Size(b.TopicName)
	size += sizeIDs(b.SourceDataIds)
	size += ord.String.Size(b.Outline)
	size += sizeStrings(b.CanonicalEntities)
	size += sizeTime(b.InsertedAt)
	size += sizeTime(b.UpdatedAt)
	return size
}

type graphTripleMUS struct{}

func (s graphTripleMUS) Marshal(t GraphTriple, bs []byte) (n int) {
	n = IDMUS.Marshal(t.Id, bs)
	n += ord.String.Marshal(t.TopicName, bs[n:])
	n += ord.String.Marshal(t.Subject, bs[n:])
	n += ord.String.Marshal(t.Predicate, bs[n:])
	n += ord.String.Marshal(t.Object, bs[n:])
	n += IDMUS.Marshal(t.SourceDataId, bs[n:])
	n += IDMUS.Marshal(t.BlueprintId, bs[n:])
	n += varint.Int.Marshal(t.Confidence, bs[n:])
	n += marshalVector(t.Vector, bs[n:])
	n += marshalTime(t.InsertedAt, bs[n:])
	n += marshalTime(t.UpdatedAt, bs[n:])
	return n
}

func (s graphTripleMUS) Unmarshal(bs []byte) (t GraphTriple, n int, err error) {
	var m int
	if t.Id, n, err = IDMUS.Unmarshal(bs); err != nil {
		return t, n, err
	}
	if t.TopicName, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.Subject, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.Predicate, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.Object, m, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.SourceDataId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.BlueprintId, m, err = IDMUS.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.Confidence, m, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.Vector, m, err = unmarshalVector(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.InsertedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	if t.UpdatedAt, m, err = unmarshalTime(bs[n:]); err != nil {
		return t, n + m, err
	}
	n += m
	return t, n, nil
}

func (s graphTripleMUS) Size(t GraphTriple) (size int) {
	size = IDMUS.Size(t.Id)
	size += ord.String.Size(t.TopicName)
	size += ord.String.Size(t.Subject)
	size += ord.String.Size(t.Predicate)
	size += ord.String.Size(t.Object)
	size += IDMUS.Size(t.SourceDataId)
	size += IDMUS.Size(t.BlueprintId)
	size += varint.Int.Size(t.Confidence)
	size += sizeVector(t.Vector)
	size += sizeTime(t.InsertedAt)
	size += sizeTime(t.UpdatedAt)
	return size
}

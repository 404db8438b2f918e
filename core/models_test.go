package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent_Deterministic(t *testing.T) {
	id1 := IDFromContent("the eiffel tower is in paris")
	id2 := IDFromContent("the eiffel tower is in paris")
	id3 := IDFromContent("the eiffel tower is in london")

	assert.Equal(t, id1, id2)
	assert.NotEqual(t, id1, id3)
	assert.NotZero(t, id1)
}

func TestGraphTriple_Statement(t *testing.T) {
	triple := &GraphTriple{
		Subject:   "eiffel tower",
		Predicate: "located in",
		Object:    "paris",
	}
	assert.Equal(t, "eiffel tower located in paris", triple.Statement())
}

func TestBlueprint_SourceSetKey(t *testing.T) {
	b1 := &Blueprint{TopicName: "architecture", SourceDataIds: []ID{1, 2, 3}}
	b2 := &Blueprint{TopicName: "architecture", SourceDataIds: []ID{1, 2, 3}}
	b3 := &Blueprint{TopicName: "architecture", SourceDataIds: []ID{1, 2}}
	b4 := &Blueprint{TopicName: "history", SourceDataIds: []ID{1, 2, 3}}

	assert.Equal(t, b1.SourceSetKey(), b2.SourceSetKey())
	assert.NotEqual(t, b1.SourceSetKey(), b3.SourceSetKey())
	assert.NotEqual(t, b1.SourceSetKey(), b4.SourceSetKey())
}

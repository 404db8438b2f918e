package storage

import (
	"testing"
	"time"

	"github.com/poiesic/graphit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalID(t *testing.T) {
	for _, id := range []core.ID{0, 42, core.IDFromContent("test content")} {
		data := MarshalID(id)
		require.NotEmpty(t, data)

		decoded, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, decoded)
	}
}

func TestMarshalUnmarshalSourceData(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	record := &core.SourceData{
		Id:          core.IDFromContent("towers"),
		TopicName:   "architecture",
		Name:        "towers.md",
		Link:        "https://example.com/towers.md",
		ContentType: "text/markdown",
		Content:     "The Eiffel Tower is in Paris.",
		Vector:      []float32{0.1, 0.2, 0.3},
		Status:      core.StatusCompleted,
		Metadata:    map[string]string{"lang": "en"},
		InsertedAt:  now,
		UpdatedAt:   now,
	}

	decoded, err := UnmarshalSourceData(MarshalSourceData(record))
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestMarshalUnmarshalBlueprint(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	blueprint := &core.Blueprint{
		Id:                77,
		TopicName:         "architecture",
		SourceDataIds:     []core.ID{1, 2, 3},
		Outline:           "1. Landmarks\n2. Construction",
		CanonicalEntities: []string{"eiffel tower", "paris"},
		InsertedAt:        now,
		UpdatedAt:         now,
	}

	decoded, err := UnmarshalBlueprint(MarshalBlueprint(blueprint))
	require.NoError(t, err)
	assert.Equal(t, blueprint, decoded)
}

func TestMarshalUnmarshalGraphTriple(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)
	triple := &core.GraphTriple{
		Id:           core.IDFromContent("eiffel tower located_in paris"),
		TopicName:    "architecture",
		Subject:      "eiffel tower",
		Predicate:    "located_in",
		Object:       "paris",
		SourceDataId: 11,
		BlueprintId:  77,
		Confidence:   9,
		Vector:       []float32{0.4, 0.5},
		InsertedAt:   now,
		UpdatedAt:    now,
	}

	decoded, err := UnmarshalGraphTriple(MarshalGraphTriple(triple))
	require.NoError(t, err)
	assert.Equal(t, triple, decoded)
}

func TestUnmarshalTruncatedData(t *testing.T) {
	data := MarshalSourceData(&core.SourceData{TopicName: "architecture", Content: "text"})

	_, err := UnmarshalSourceData(data[:len(data)/2])
	assert.Error(t, err)
}

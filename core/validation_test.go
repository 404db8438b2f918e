package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSourceData() *SourceData {
	return &SourceData{
		TopicName:   "architecture",
		Name:        "towers.md",
		ContentType: "text/markdown",
		Content:     "The Eiffel Tower was completed in 1889.",
		Status:      StatusPending,
		InsertedAt:  time.Now().UTC(),
	}
}

func TestValidateSourceData(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateSourceData(validSourceData()))
	})

	t.Run("nil", func(t *testing.T) {
		err := ValidateSourceData(nil)
		assert.ErrorIs(t, err, ErrInvalidSourceData)
	})

	t.Run("empty topic", func(t *testing.T) {
		data := validSourceData()
		data.TopicName = ""
		err := ValidateSourceData(data)
		assert.ErrorIs(t, err, ErrEmptyTopicName)
	})

	t.Run("empty content", func(t *testing.T) {
		data := validSourceData()
		data.Content = ""
		err := ValidateSourceData(data)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("invalid status", func(t *testing.T) {
		data := validSourceData()
		data.Status = ProcessingStatus(42)
		err := ValidateSourceData(data)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestValidateBlueprint(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateBlueprint(&Blueprint{
			TopicName:     "architecture",
			SourceDataIds: []ID{1},
			Outline:       "Cover major landmarks and their construction dates.",
		}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateBlueprint(nil), ErrInvalidBlueprint)
	})

	t.Run("no sources", func(t *testing.T) {
		err := ValidateBlueprint(&Blueprint{TopicName: "architecture"})
		assert.ErrorIs(t, err, ErrNoSourceData)
	})
}

func TestValidateGraphTriple(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, ValidateGraphTriple(&GraphTriple{
			TopicName: "architecture",
			Subject:   "eiffel tower",
			Predicate: "located in",
			Object:    "paris",
		}))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidateGraphTriple(nil), ErrInvalidTriple)
	})

	t.Run("empty field", func(t *testing.T) {
		err := ValidateGraphTriple(&GraphTriple{
			TopicName: "architecture",
			Subject:   "eiffel tower",
			Object:    "paris",
		})
		assert.ErrorIs(t, err, ErrEmptyTripleField)
	})
}

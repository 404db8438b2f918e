package tool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTool is a minimal Tool for registry tests.
type stubTool struct {
	name string
}

func (s *stubTool) Name() string { return s.name }

func (s *stubTool) ExecuteWithTracking(ctx context.Context, input map[string]any, trackingID string) *Result {
	return Succeed(map[string]any{"echo": input})
}

func TestRegistry(t *testing.T) {
	t.Run("get registered tool", func(t *testing.T) {
		reg, err := NewRegistry(&stubTool{name: "DocumentETLTool"}, &stubTool{name: "GraphBuildTool"})
		require.NoError(t, err)

		got, err := reg.Get("DocumentETLTool")
		require.NoError(t, err)
		assert.Equal(t, "DocumentETLTool", got.Name())
	})

	t.Run("unknown tool", func(t *testing.T) {
		reg, err := NewRegistry(&stubTool{name: "DocumentETLTool"})
		require.NoError(t, err)

		_, err = reg.Get("NoSuchTool")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, err.Error(), "NoSuchTool")
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := NewRegistry(&stubTool{name: "DocumentETLTool"}, &stubTool{name: "DocumentETLTool"})
		assert.ErrorIs(t, err, ErrDuplicateTool)
	})

	t.Run("nil tool", func(t *testing.T) {
		_, err := NewRegistry(nil)
		assert.ErrorIs(t, err, ErrNilTool)
	})

	t.Run("sorted names", func(t *testing.T) {
		reg, err := NewRegistry(&stubTool{name: "GraphBuildTool"}, &stubTool{name: "DocumentETLTool"})
		require.NoError(t, err)
		assert.Equal(t, []string{"DocumentETLTool", "GraphBuildTool"}, reg.Names())
	})
}

func TestTrack(t *testing.T) {
	t.Run("success sets duration", func(t *testing.T) {
		res := Track(nil, "DocumentETLTool", "run1_DocumentETLTool", func() *Result {
			return Succeed(map[string]any{"source_data_id": "abc"})
		})
		require.True(t, res.Success)
		assert.GreaterOrEqual(t, res.Duration, time.Duration(0))
		assert.Equal(t, "abc", res.DataValue("source_data_id"))
	})

	t.Run("panic becomes failure", func(t *testing.T) {
		res := Track(nil, "GraphBuildTool", "run1_GraphBuildTool", func() *Result {
			panic("index out of range")
		})
		require.NotNil(t, res)
		assert.False(t, res.Success)
		assert.Contains(t, res.ErrorMessage, "panicked")
		assert.Contains(t, res.ErrorMessage, "index out of range")
	})

	t.Run("nil result becomes failure", func(t *testing.T) {
		res := Track(nil, "GraphBuildTool", "run1_GraphBuildTool", func() *Result {
			return nil
		})
		require.NotNil(t, res)
		assert.False(t, res.Success)
	})
}

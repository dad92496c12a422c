package preview

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Set(t *testing.T) {
	t.Run("image media type derives a handle", func(t *testing.T) {
		m := NewManager(t.TempDir())

		h, err := m.Set("scan.png", "image/png", strings.NewReader("png-bytes"))
		require.NoError(t, err)
		require.NotNil(t, h)
		assert.Same(t, h, m.Current())

		content, err := os.ReadFile(h.Path())
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(content))
	})

	t.Run("non-image media type yields no handle", func(t *testing.T) {
		m := NewManager(t.TempDir())

		h, err := m.Set("contract.pdf", "application/pdf", strings.NewReader("pdf-bytes"))
		require.NoError(t, err)
		assert.Nil(t, h)
		assert.Nil(t, m.Current())
	})

	t.Run("new preview releases the previous one", func(t *testing.T) {
		m := NewManager(t.TempDir())

		first, err := m.Set("a.png", "image/png", strings.NewReader("a"))
		require.NoError(t, err)
		firstPath := first.Path()

		second, err := m.Set("b.png", "image/png", strings.NewReader("b"))
		require.NoError(t, err)
		require.NotNil(t, second)

		assert.NoFileExists(t, firstPath)
		assert.FileExists(t, second.Path())
	})

	t.Run("selecting a non-image releases the previous preview", func(t *testing.T) {
		m := NewManager(t.TempDir())

		first, err := m.Set("a.png", "image/png", strings.NewReader("a"))
		require.NoError(t, err)

		h, err := m.Set("contract.pdf", "application/pdf", strings.NewReader("pdf"))
		require.NoError(t, err)
		assert.Nil(t, h)
		assert.NoFileExists(t, first.Path())
	})
}

func TestHandle_Release(t *testing.T) {
	t.Run("release removes the file", func(t *testing.T) {
		m := NewManager(t.TempDir())
		h, err := m.Set("a.png", "image/png", strings.NewReader("a"))
		require.NoError(t, err)

		require.NoError(t, h.Release())
		assert.NoFileExists(t, h.Path())
	})

	t.Run("double release is an error", func(t *testing.T) {
		m := NewManager(t.TempDir())
		h, err := m.Set("a.png", "image/png", strings.NewReader("a"))
		require.NoError(t, err)

		require.NoError(t, h.Release())
		assert.ErrorIs(t, h.Release(), ErrReleased)
	})
}

func TestManager_ClearAndClose(t *testing.T) {
	m := NewManager(t.TempDir())

	// Clear with nothing outstanding is a no-op.
	require.NoError(t, m.Clear())

	h, err := m.Set("a.png", "image/png", strings.NewReader("a"))
	require.NoError(t, err)

	require.NoError(t, m.Clear())
	assert.Nil(t, m.Current())
	assert.NoFileExists(t, h.Path())

	// Close after Clear must not release the handle a second time.
	require.NoError(t, m.Close())
}

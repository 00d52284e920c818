package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiskStore(t *testing.T) {
	t.Run("creates the root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "uploads")
		store, err := NewDiskStore(root)
		require.NoError(t, err)
		assert.Equal(t, root, store.Root())
		assert.DirExists(t, root)
	})

	t.Run("empty root rejected", func(t *testing.T) {
		_, err := NewDiskStore("")
		assert.Error(t, err)
	})
}

func TestDiskStore_GenerateFilename(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	t.Run("pattern and extension", func(t *testing.T) {
		name, err := store.GenerateFilename(42, "My Capture.PNG")
		require.NoError(t, err)

		pattern := regexp.MustCompile(`^42_[0-9a-f-]{36}_[0-9a-f]{8}\.png$`)
		assert.Regexp(t, pattern, name)
		assert.NotContains(t, name, "My Capture", "the client name never reaches the filesystem")
	})

	t.Run("names are unique", func(t *testing.T) {
		first, err := store.GenerateFilename(1, "a.png")
		require.NoError(t, err)
		second, err := store.GenerateFilename(1, "a.png")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("missing extension rejected", func(t *testing.T) {
		_, err := store.GenerateFilename(1, "noextension")
		assert.Error(t, err)
	})
}

func TestDiskStore_SaveExistsRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	t.Run("save and read back", func(t *testing.T) {
		stored, err := store.Save("1_test.png", strings.NewReader("content"))
		require.NoError(t, err)
		assert.Equal(t, "1_test.png", stored)
		assert.True(t, store.Exists("1_test.png"))

		data, err := os.ReadFile(filepath.Join(store.Root(), "1_test.png"))
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("existing file is never overwritten", func(t *testing.T) {
		_, err := store.Save("1_test.png", strings.NewReader("other"))
		assert.Error(t, err)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		_, err := store.Save("../escape.png", strings.NewReader("x"))
		assert.Error(t, err)

		assert.Error(t, store.Remove("../escape.png"))
	})

	t.Run("remove", func(t *testing.T) {
		require.NoError(t, store.Remove("1_test.png"))
		assert.False(t, store.Exists("1_test.png"))

		assert.NoError(t, store.Remove("1_test.png"), "removing a missing file is a no-op")
	})
}

package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type snapshot struct {
	Items  []string `json:"items"`
	IsOpen bool     `json:"is_open"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	in := snapshot{Items: []string{"a", "b"}, IsOpen: true}
	require.NoError(t, store.Save(CartKey, in))

	var out snapshot
	found, err := store.Load(CartKey, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, in, out)
}

func TestFileStoreMissingKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	var out snapshot
	found, err := store.Load("never-written", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFileStoreKeysAreIndependent(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save(CartKey, snapshot{Items: []string{"cart"}}))
	require.NoError(t, store.Save(AuthKey, snapshot{Items: []string{"auth"}}))

	var cart, auth snapshot
	_, err = store.Load(CartKey, &cart)
	require.NoError(t, err)
	_, err = store.Load(AuthKey, &auth)
	require.NoError(t, err)

	assert.Equal(t, []string{"cart"}, cart.Items)
	assert.Equal(t, []string{"auth"}, auth.Items)
}

func TestFileStoreOverwritesWholeBlob(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(CartKey, snapshot{Items: []string{"a", "b"}}))
	require.NoError(t, store.Save(CartKey, snapshot{Items: []string{"c"}}))

	var out snapshot
	_, err = store.Load(CartKey, &out)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, out.Items)

	// No leftover temp files from the write-then-rename.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotEqual(t, ".tmp", filepath.Ext(e.Name()))
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	require.NoError(t, store.Save(AuthKey, snapshot{IsOpen: true}))

	var out snapshot
	found, err := store.Load(AuthKey, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, out.IsOpen)

	found, err = store.Load("missing", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

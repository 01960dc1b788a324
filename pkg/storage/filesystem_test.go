package storage

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadStoreSaveKeepsExtension(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save("photo.JPG", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, ".JPG", filepath.Ext(filename))
	assert.NotEqual(t, "photo.JPG", filename)

	file, err := store.Open(filename)
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))
}

func TestUploadStoreSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save("doc.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := store.Save("doc.pdf", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestUploadStoreDelete(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	filename, err := store.Save("doc.pdf", strings.NewReader("a"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(filename))

	_, err = store.Open(filename)
	assert.Error(t, err)
}

func TestUploadStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewUploadStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never-existed.pdf"))
	assert.NoError(t, store.Delete(""))
}

func TestUploadStoreDeleteIgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir)
	require.NoError(t, err)

	filename, err := store.Save("doc.pdf", strings.NewReader("a"))
	require.NoError(t, err)

	// Base name resolution keeps deletes inside the upload directory.
	require.NoError(t, store.Delete("../"+filename))
	_, err = store.Open(filename)
	assert.Error(t, err)
}

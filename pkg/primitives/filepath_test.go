package primitives

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilepath_Join(t *testing.T) {
	base := Filepath("/data")
	result := base.Join("catalog", "tables.page")
	assert.Equal(t, filepath.Join("/data", "catalog", "tables.page"), result.String())
}

func TestFilepath_BaseAndDir(t *testing.T) {
	path := Filepath("/data/catalog/columns.page")
	assert.Equal(t, "columns.page", path.Base())
	assert.Equal(t, filepath.Dir("/data/catalog/columns.page"), path.Dir())
}

func TestFilepath_Hash(t *testing.T) {
	a := Filepath("/data/tables.page")
	b := Filepath("/data/columns.page")

	assert.Equal(t, a.Hash(), a.Hash(), "hash must be deterministic")
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.True(t, a.Hash().IsValid())
}

func TestFilepath_ExistsAndRemove(t *testing.T) {
	dir := Filepath(t.TempDir())
	path := dir.Join("nested", "file.page")

	assert.False(t, path.Exists())
	require.NoError(t, path.Remove(), "removing a missing file is a no-op")

	require.NoError(t, path.MkdirAll(0o755))
	require.NoError(t, os.WriteFile(path.String(), []byte("x"), 0o644))
	assert.True(t, path.Exists())

	require.NoError(t, path.Remove())
	assert.False(t, path.Exists())
}

func TestFilepath_IsEmpty(t *testing.T) {
	assert.True(t, Filepath("").IsEmpty())
	assert.False(t, Filepath("a").IsEmpty())
}

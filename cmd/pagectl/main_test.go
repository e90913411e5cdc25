package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run parses args and runs the selected command, returning its stdout.
func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	var stdout, stderr bytes.Buffer
	parser, err := newParser(&cli,
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(int) { t.Fatalf("unexpected exit: %s", stderr.String()) }),
	)
	require.NoError(t, err)

	ctx, err := parser.Parse(append([]string{"--data-dir", dataDir}, args...))
	require.NoError(t, err)

	err = ctx.Run(&cli.Globals)
	return stdout.String(), err
}

func TestCLI_CatalogWorkflow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ready")

	_, err = run(t, dir, "tables", "add", "1", "accounts")
	require.NoError(t, err)
	_, err = run(t, dir, "tables", "add", "42", "users")
	require.NoError(t, err)

	_, err = run(t, dir, "tables", "add", "3", "ACCOUNTS")
	assert.Error(t, err)

	out, err = run(t, dir, "tables", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "accounts")
	assert.Contains(t, out, "users")

	_, err = run(t, dir, "columns", "add", "1", "42", "user_id", "INTEGER")
	require.NoError(t, err)
	_, err = run(t, dir, "columns", "add", "2", "42", "email", "TEXT", "--nullable")
	require.NoError(t, err)
	_, err = run(t, dir, "columns", "add", "3", "1", "balance", "INTEGER")
	require.NoError(t, err)

	out, err = run(t, dir, "columns", "list", "--table-id", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "user_id")
	assert.Contains(t, out, "email")
	assert.NotContains(t, out, "balance")

	out, err = run(t, dir, "columns", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "balance")
}

func TestCLI_InitCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh", "data")

	out, err := run(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog ready")
	assert.FileExists(t, filepath.Join(dir, "catalog_tables.page"))
	assert.FileExists(t, filepath.Join(dir, "catalog_columns.page"))

	_, err = run(t, dir, "tables", "add", "1", "accounts")
	require.NoError(t, err)
}

func TestCLI_ColumnsListRejectsOutOfRangeTableID(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, dir, "init")
	require.NoError(t, err)

	for _, id := range []string{"4294967338", "-2"} {
		_, err = run(t, dir, "columns", "list", "--table-id="+id)
		assert.Error(t, err, "table id %s", id)
	}
}

func TestCLI_CreateAndInspect(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/scratch.page"

	out, err := run(t, dir, "create", path)
	require.NoError(t, err)
	assert.Contains(t, out, "created")

	out, err = run(t, dir, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, out, "no records")
	assert.Contains(t, out, "blake3")
}

func TestCLI_Version(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

//go:build unix

package page

import (
	"errors"
	"os"
	"testing"

	dberror "slotpage/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ExclusiveLock(t *testing.T) {
	path := tempPagePath(t)
	require.NoError(t, Create(path))

	writer, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	assert.True(t, errors.Is(err, dberror.ErrPageLocked), "second writer: %v", err)

	_, err = OpenReadOnly(path)
	assert.True(t, errors.Is(err, dberror.ErrPageLocked), "reader during write: %v", err)

	assert.True(t, errors.Is(Create(path), dberror.ErrPageLocked), "create during write")

	require.NoError(t, writer.Close())

	again, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestOpenReadOnly_SharedLock(t *testing.T) {
	path := tempPagePath(t)
	require.NoError(t, Create(path))

	r1, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer r1.Close()

	r2, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer r2.Close()

	_, err = Open(path)
	assert.True(t, errors.Is(err, dberror.ErrPageLocked))
}

func TestCreate_FailureKeepsContents(t *testing.T) {
	path := tempPagePath(t)
	require.NoError(t, Create(path))

	writer, err := Open(path)
	require.NoError(t, err)
	p, err := writer.ReadPage()
	require.NoError(t, err)
	_, err = p.Insert([]byte("keep me"))
	require.NoError(t, err)
	require.NoError(t, writer.WritePage(p))

	before, err := os.ReadFile(path.String())
	require.NoError(t, err)

	assert.True(t, errors.Is(Create(path), dberror.ErrPageLocked))
	require.NoError(t, writer.Close())

	after, err := os.ReadFile(path.String())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

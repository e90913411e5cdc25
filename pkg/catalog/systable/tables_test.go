package systable

import (
	"errors"
	"testing"

	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/page"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTablesTable(t *testing.T) *TablesTable {
	t.Helper()
	tt, err := NewTablesTable(primitives.Filepath(t.TempDir()).Join(Tables.FileName()))
	require.NoError(t, err)
	require.NoError(t, tt.File().Create())
	return tt
}

func TestTablesTable_InsertAndStats(t *testing.T) {
	tt := newTablesTable(t)

	require.NoError(t, tt.Insert(
		TableDescriptor{TableID: 1, TableName: "accounts"},
		TableDescriptor{TableID: 2, TableName: "users"},
	))

	all, err := tt.GetAll()
	require.NoError(t, err)
	assert.Equal(t, []TableDescriptor{
		{TableID: 1, TableName: "accounts"},
		{TableID: 2, TableName: "users"},
	}, all)

	stats, err := tt.File().Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 22, stats.Lower)
	assert.EqualValues(t, page.PageSize-14-11, stats.Higher)
}

func TestTablesTable_Lookups(t *testing.T) {
	tt := newTablesTable(t)
	require.NoError(t, tt.Insert(
		TableDescriptor{TableID: 1, TableName: "accounts"},
		TableDescriptor{TableID: 2, TableName: "Users"},
	))

	td, err := tt.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Users", td.TableName)

	td, err = tt.GetByName("USERS")
	require.NoError(t, err)
	assert.EqualValues(t, 2, td.TableID)

	_, err = tt.GetByName("orders")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = tt.GetByID(99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTablesTable_IterateStopsEarly(t *testing.T) {
	tt := newTablesTable(t)
	require.NoError(t, tt.Insert(
		TableDescriptor{TableID: 1, TableName: "a"},
		TableDescriptor{TableID: 2, TableName: "b"},
		TableDescriptor{TableID: 3, TableName: "c"},
	))

	seen := 0
	err := tt.Iterate(func(TableDescriptor) error {
		seen++
		if seen == 2 {
			return ErrSuccess
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}

func TestTablesTable_MissingFile(t *testing.T) {
	tt, err := NewTablesTable(primitives.Filepath(t.TempDir()).Join("missing.page"))
	require.NoError(t, err)

	_, err = tt.GetAll()
	assert.True(t, errors.Is(err, dberror.ErrIO))
}

func TestNewTablesTable_EmptyPath(t *testing.T) {
	_, err := NewTablesTable("")
	assert.True(t, errors.Is(err, dberror.ErrIO))
}

package systable

import (
	"testing"

	"slotpage/pkg/primitives"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnsTable_LoadColumns(t *testing.T) {
	ct, err := NewColumnsTable(primitives.Filepath(t.TempDir()).Join(Columns.FileName()))
	require.NoError(t, err)
	require.NoError(t, ct.File().Create())

	cols := []ColumnDescriptor{
		{ColumnID: 1, TableID: 42, ColumnName: "user_id", DataType: "INTEGER"},
		{ColumnID: 2, TableID: 7, ColumnName: "balance", DataType: "INTEGER"},
		{ColumnID: 3, TableID: 42, ColumnName: "email", DataType: "TEXT", IsNullable: true},
	}
	require.NoError(t, ct.Insert(cols...))

	all, err := ct.GetAll()
	require.NoError(t, err)
	assert.Equal(t, cols, all)

	users, err := ct.LoadColumns(42)
	require.NoError(t, err)
	assert.Equal(t, []ColumnDescriptor{cols[0], cols[2]}, users)

	none, err := ct.LoadColumns(1000)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

package systable

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	dberror "slotpage/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_Encode(t *testing.T) {
	td := TableDescriptor{TableID: 7, TableName: "accounts"}

	size, err := Tables.SizeOf(td)
	require.NoError(t, err)
	assert.Equal(t, 14, size)

	data, err := Tables.Encode(td)
	require.NoError(t, err)
	require.Len(t, data, 14)

	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(data[0:4]))
	assert.Equal(t, uint16(8), binary.LittleEndian.Uint16(data[4:6]))
	assert.Equal(t, "accounts", string(data[6:]))
}

func TestTables_DecodeAtOffset(t *testing.T) {
	data, err := Tables.Encode(TableDescriptor{TableID: 2, TableName: "users"})
	require.NoError(t, err)

	buf := append([]byte{0xAA, 0xBB, 0xCC}, data...)
	td, next, err := Tables.Decode(buf, 3)
	require.NoError(t, err)
	assert.Equal(t, TableDescriptor{TableID: 2, TableName: "users"}, td)
	assert.Equal(t, len(buf), next)
}

func TestColumns_RoundTrip(t *testing.T) {
	col := ColumnDescriptor{
		ColumnID:   1,
		TableID:    42,
		ColumnName: "user_id",
		DataType:   "INTEGER",
		IsNullable: false,
	}

	size, err := Columns.SizeOf(col)
	require.NoError(t, err)
	assert.Equal(t, 4+4+2+7+2+7+1, size)

	data, err := Columns.Encode(col)
	require.NoError(t, err)
	require.Len(t, data, size)
	assert.Equal(t, byte(0), data[len(data)-1])

	got, next, err := Columns.Decode(data, 0)
	require.NoError(t, err)
	assert.Equal(t, col, got)
	assert.Equal(t, size, next)

	col.IsNullable = true
	data, err = Columns.Encode(col)
	require.NoError(t, err)
	assert.Equal(t, byte(1), data[len(data)-1])
}

func TestDescriptors_EncodingErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "table name too long",
			run: func() error {
				_, err := Tables.Encode(TableDescriptor{TableName: strings.Repeat("x", 1<<16)})
				return err
			},
		},
		{
			name: "invalid utf-8 data type",
			run: func() error {
				_, err := Columns.Encode(ColumnDescriptor{ColumnName: "c", DataType: "\xff\xfe"})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, dberror.ErrEncoding))
		})
	}
}

func TestDescriptors_MalformedInput(t *testing.T) {
	good, err := Columns.Encode(ColumnDescriptor{ColumnID: 1, TableID: 1, ColumnName: "id", DataType: "INT"})
	require.NoError(t, err)

	badBool := append([]byte(nil), good...)
	badBool[len(badBool)-1] = 2

	badUTF8, err := Tables.Encode(TableDescriptor{TableID: 1, TableName: "ab"})
	require.NoError(t, err)
	badUTF8[6] = 0xff

	tests := []struct {
		name   string
		decode func() error
	}{
		{"truncated id", func() error { _, _, err := Tables.Decode([]byte{1, 2}, 0); return err }},
		{"length past buffer", func() error { _, _, err := Tables.Decode([]byte{1, 0, 0, 0, 50, 0, 'a'}, 0); return err }},
		{"invalid utf-8", func() error { _, _, err := Tables.Decode(badUTF8, 0); return err }},
		{"bool out of range", func() error { _, _, err := Columns.Decode(badBool, 0); return err }},
		{"missing bool", func() error { _, _, err := Columns.Decode(good[:len(good)-1], 0); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			require.Error(t, err)
			assert.True(t, errors.Is(err, dberror.ErrMalformedRecord))
		})
	}
}

func TestDescriptors_Metadata(t *testing.T) {
	assert.Equal(t, "CATALOG_TABLES", Tables.TableName())
	assert.Equal(t, "catalog_tables.page", Tables.FileName())
	assert.Equal(t, "CATALOG_COLUMNS", Columns.TableName())
	assert.Equal(t, "catalog_columns.page", Columns.FileName())
}

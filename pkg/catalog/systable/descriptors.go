package systable

import (
	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
	"slotpage/pkg/tuple"
)

// SystemTableDescriptor holds all static metadata for a system table and the
// functions that convert its rows to and from bytes. It has NO dependency on
// any I/O layer and satisfies heap.Codec[T].
type SystemTableDescriptor[T any] struct {
	name     string
	fileName string
	sizeFn   func(data T) int
	encodeFn func(b *tuple.Builder, data T)
	decodeFn func(p *tuple.Parser) T
}

// TableName returns the catalog name of the table.
func (std *SystemTableDescriptor[T]) TableName() string {
	return std.name
}

// FileName returns the default page file name for the table.
func (std *SystemTableDescriptor[T]) FileName() string {
	return std.fileName
}

// SizeOf returns the encoded size of data in bytes.
func (std *SystemTableDescriptor[T]) SizeOf(data T) (int, error) {
	return std.sizeFn(data), nil
}

// Encode serializes data. Strings that cannot be length-prefixed or are not
// valid UTF-8 give ENCODING_ERROR.
func (std *SystemTableDescriptor[T]) Encode(data T) ([]byte, error) {
	b := tuple.NewBuilder(std.sizeFn(data))
	std.encodeFn(b, data)

	out, err := b.Bytes()
	if err != nil {
		return nil, dberror.Wrap(err, dberror.CodeEncoding, "Encode", std.name)
	}
	return out, nil
}

// Decode parses one row starting at offset and returns it with the offset
// just past its last byte.
func (std *SystemTableDescriptor[T]) Decode(buf []byte, offset int) (T, int, error) {
	p := tuple.NewParser(buf, offset)
	data := std.decodeFn(p)

	if err := p.Error(); err != nil {
		var zero T
		return zero, offset, dberror.Wrap(err, dberror.CodeMalformedRecord, "Decode", std.name)
	}
	return data, p.Offset(), nil
}

// Tables describes CATALOG_TABLES.
var Tables = &SystemTableDescriptor[TableDescriptor]{
	name:     "CATALOG_TABLES",
	fileName: "catalog_tables.page",
	sizeFn: func(d TableDescriptor) int {
		return tuple.Uint32Size + tuple.StringSize(d.TableName)
	},
	encodeFn: func(b *tuple.Builder, d TableDescriptor) {
		b.AddUint32(uint32(d.TableID)).
			AddString(d.TableName)
	},
	decodeFn: func(p *tuple.Parser) TableDescriptor {
		tableID := primitives.TableID(p.ReadUint32())
		tableName := p.ReadString()

		return TableDescriptor{
			TableID:   tableID,
			TableName: tableName,
		}
	},
}

// Columns describes CATALOG_COLUMNS.
var Columns = &SystemTableDescriptor[ColumnDescriptor]{
	name:     "CATALOG_COLUMNS",
	fileName: "catalog_columns.page",
	sizeFn: func(c ColumnDescriptor) int {
		return tuple.Uint32Size +
			tuple.Uint32Size +
			tuple.StringSize(c.ColumnName) +
			tuple.StringSize(c.DataType) +
			tuple.BoolSize
	},
	encodeFn: func(b *tuple.Builder, c ColumnDescriptor) {
		b.AddUint32(uint32(c.ColumnID)).
			AddUint32(uint32(c.TableID)).
			AddString(c.ColumnName).
			AddString(c.DataType).
			AddBool(c.IsNullable)
	},
	decodeFn: func(p *tuple.Parser) ColumnDescriptor {
		columnID := primitives.ColumnID(p.ReadUint32())
		tableID := primitives.TableID(p.ReadUint32())
		columnName := p.ReadString()
		dataType := p.ReadString()
		nullable := p.ReadBool()

		return ColumnDescriptor{
			ColumnID:   columnID,
			TableID:    tableID,
			ColumnName: columnName,
			DataType:   dataType,
			IsNullable: nullable,
		}
	},
}

package systable

import (
	"slotpage/pkg/primitives"
)

// ColumnDescriptor is one row of CATALOG_COLUMNS.
type ColumnDescriptor struct {
	ColumnID   primitives.ColumnID
	TableID    primitives.TableID
	ColumnName string
	DataType   string
	IsNullable bool
}

// ColumnsTable provides accessors for the CATALOG_COLUMNS page.
type ColumnsTable struct {
	*BaseOperations[ColumnDescriptor]
}

// NewColumnsTable creates a ColumnsTable over the page file at path.
func NewColumnsTable(path primitives.Filepath) (*ColumnsTable, error) {
	base, err := NewBaseOperations(path, Columns)
	if err != nil {
		return nil, err
	}
	return &ColumnsTable{BaseOperations: base}, nil
}

// GetAll retrieves every column of every table.
func (ct *ColumnsTable) GetAll() ([]ColumnDescriptor, error) {
	return ct.FindAll(func(ColumnDescriptor) bool { return true })
}

// LoadColumns returns the columns belonging to tableID in insertion order.
func (ct *ColumnsTable) LoadColumns(tableID primitives.TableID) ([]ColumnDescriptor, error) {
	return ct.FindAll(func(c ColumnDescriptor) bool {
		return c.TableID == tableID
	})
}

package systable

import (
	"strings"

	"slotpage/pkg/primitives"
)

// TableDescriptor is one row of CATALOG_TABLES.
type TableDescriptor struct {
	TableID   primitives.TableID
	TableName string
}

// TablesTable provides accessors for the CATALOG_TABLES page.
type TablesTable struct {
	*BaseOperations[TableDescriptor]
}

// NewTablesTable creates a TablesTable over the page file at path.
func NewTablesTable(path primitives.Filepath) (*TablesTable, error) {
	base, err := NewBaseOperations(path, Tables)
	if err != nil {
		return nil, err
	}
	return &TablesTable{BaseOperations: base}, nil
}

// GetAll retrieves every table registered in the catalog.
func (tt *TablesTable) GetAll() ([]TableDescriptor, error) {
	return tt.FindAll(func(TableDescriptor) bool { return true })
}

// GetByID retrieves the table with the given ID.
func (tt *TablesTable) GetByID(tableID primitives.TableID) (TableDescriptor, error) {
	return tt.FindOne(func(td TableDescriptor) bool {
		return td.TableID == tableID
	})
}

// GetByName retrieves a table by name (case-insensitive).
func (tt *TablesTable) GetByName(tableName string) (TableDescriptor, error) {
	return tt.FindOne(func(td TableDescriptor) bool {
		return strings.EqualFold(td.TableName, tableName)
	})
}

package catalog

import (
	"strings"

	"slotpage/pkg/catalog/systable"
	"slotpage/pkg/primitives"
)

// Snapshot is an in-memory copy of both catalog pages taken by Catalog.Load.
// It never changes after creation.
type Snapshot struct {
	Tables  []systable.TableDescriptor
	Columns []systable.ColumnDescriptor

	byTable map[primitives.TableID][]systable.ColumnDescriptor
}

func newSnapshot(tables []systable.TableDescriptor, columns []systable.ColumnDescriptor) *Snapshot {
	byTable := make(map[primitives.TableID][]systable.ColumnDescriptor)
	for _, col := range columns {
		byTable[col.TableID] = append(byTable[col.TableID], col)
	}
	return &Snapshot{Tables: tables, Columns: columns, byTable: byTable}
}

// Table finds a table by name, ignoring case.
func (s *Snapshot) Table(name string) (systable.TableDescriptor, bool) {
	for _, td := range s.Tables {
		if strings.EqualFold(td.TableName, name) {
			return td, true
		}
	}
	return systable.TableDescriptor{}, false
}

// ColumnsOf returns the columns of tableID in insertion order.
func (s *Snapshot) ColumnsOf(tableID primitives.TableID) []systable.ColumnDescriptor {
	return s.byTable[tableID]
}

// Orphans returns columns whose table_id matches no table. The page format
// does not enforce the reference, so a hand-edited or partially written
// catalog can contain them.
func (s *Snapshot) Orphans() []systable.ColumnDescriptor {
	known := make(map[primitives.TableID]struct{}, len(s.Tables))
	for _, td := range s.Tables {
		known[td.TableID] = struct{}{}
	}

	var orphans []systable.ColumnDescriptor
	for _, col := range s.Columns {
		if _, ok := known[col.TableID]; !ok {
			orphans = append(orphans, col)
		}
	}
	return orphans
}

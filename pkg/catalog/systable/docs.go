// Package systable defines the two system catalog tables that slotpage
// persists in single-page files: CATALOG_TABLES and CATALOG_COLUMNS.
//
// # Architecture
//
// Every catalog table is modelled the same way:
//
//  1. A [SystemTableDescriptor] holds the compile-time knowledge about the
//     table: its name, default filename, and the functions that size, encode
//     and decode domain values. Descriptors implement [heap.Codec] and are
//     pure, goroutine-safe package-level variables ([Tables], [Columns]).
//
//  2. A concrete table type ([TablesTable], [ColumnsTable]) embeds
//     [BaseOperations][T], a generic layer over [heap.HeapFile] that adds
//     Iterate / FindOne / FindAll / Insert, and then domain helpers such as
//     GetByName or LoadColumns.
//
// # Record layouts
//
// All integers are little-endian. Strings are a uint16 byte length followed
// by UTF-8 bytes.
//
// CATALOG_TABLES
//
//	table_id | table_name
//	---------+-----------
//	uint32   | string
//
// CATALOG_COLUMNS
//
//	column_id | table_id | column_name | data_type | is_nullable
//	----------+----------+-------------+-----------+------------
//	uint32    | uint32   | string      | string    | 1 byte 0/1
//
// table_id in CATALOG_COLUMNS refers to CATALOG_TABLES but is not enforced
// here. data_type is free text (e.g. "INTEGER", "TEXT").
package systable

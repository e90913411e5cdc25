package primitives

// LSN (Log Sequence Number) stamps a page header. Pages carry it but nothing
// in this module interprets it.
type LSN uint64

// FileID identifies a page file. It is derived from the file path with
// FNV-1a so the same path always maps to the same ID.
type FileID uint64

// SlotID is the ordinal of a directory entry (item pointer) in a page.
// Slots are handed out in insertion order and never reused.
type SlotID uint16

// TableID identifies a table in the system catalog.
type TableID uint32

// ColumnID identifies a column in the system catalog.
type ColumnID uint32

// Sentinel values for invalid/unset identifiers
const (
	// InvalidFileID represents an invalid or unset file ID
	InvalidFileID FileID = 0
)

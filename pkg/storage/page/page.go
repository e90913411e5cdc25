package page

const (
	// PageSize is the size of every page in bytes (8KB).
	PageSize = 8192

	// HeaderSize is the size of the fixed page header. The item pointer
	// directory starts right after it.
	HeaderSize = 18

	// ItemPointerSize is the width of one directory entry.
	ItemPointerSize = 2

	// MaxRecordSize is the largest record an empty page can hold: everything
	// except the header and the one directory entry pointing at the record.
	MaxRecordSize = PageSize - HeaderSize - ItemPointerSize
)

// Header field offsets. All fields are little-endian.
const (
	lsnOffset          = 0
	checksumOffset     = 8
	flagsOffset        = 10
	lowerOffset        = 12
	higherOffset       = 14
	specialSpaceOffset = 16
)

// Values stamped into a freshly created page. lsn, checksum and flags are
// placeholders; nothing reads them back.
const (
	InitialLSN      = 12345678
	InitialChecksum = 42
	InitialFlags    = 40
)

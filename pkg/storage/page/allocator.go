package page

import (
	"math"

	dberror "slotpage/pkg/error"
)

// Allocation is the result of a successful Allocate call.
type Allocation struct {
	// Slot is the byte address where the new directory entry goes (the old Lower).
	Slot uint16
	// Higher is the new start of the tuple area and the address of the record.
	Higher uint16
}

// Allocate reserves recordSize bytes at the top of the free space plus one
// item pointer at the bottom. It only computes; the caller writes the
// directory entry and moves Lower and Higher.
//
// It fails with SPACE_EXHAUSTED when Higher < recordSize, when one more
// directory entry would run past the page, or when the entry and the record
// would overlap. Sizes a uint16 offset cannot describe are ENCODING_ERROR.
// Freed space is never reclaimed and records are never moved.
func Allocate(h Header, recordSize int) (Allocation, error) {
	if recordSize < 0 || recordSize > math.MaxUint16 {
		return Allocation{}, dberror.Newf(dberror.ErrEncoding,
			"record size %d outside [0, %d]", recordSize, math.MaxUint16)
	}

	lower, higher := int(h.Lower), int(h.Higher)

	if higher < recordSize {
		return Allocation{}, spaceExhausted(h, recordSize)
	}
	if lower+ItemPointerSize > PageSize {
		return Allocation{}, spaceExhausted(h, recordSize)
	}

	newHigher := higher - recordSize
	if lower+ItemPointerSize > newHigher {
		return Allocation{}, spaceExhausted(h, recordSize)
	}

	return Allocation{Slot: h.Lower, Higher: uint16(newHigher)}, nil
}

func spaceExhausted(h Header, recordSize int) *dberror.DBError {
	return dberror.Newf(dberror.ErrSpaceExhausted,
		"record of %d bytes needs %d, %d free (lower=%d higher=%d)",
		recordSize, recordSize+ItemPointerSize, h.FreeSpace(), h.Lower, h.Higher).
		WithHint("start a new page or append a smaller batch")
}

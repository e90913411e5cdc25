package page

import (
	dberror "slotpage/pkg/error"
)

// ScanDirectory walks the item pointer directory from HeaderSize up to lower
// and returns the record offsets in insertion order, oldest first.
//
// The result is derived from buf on every call; nothing is cached, so a
// scan after an insert sees the new entry.
func ScanDirectory(buf Buffer, lower uint16) ([]uint16, error) {
	if lower < HeaderSize || int(lower) > len(buf) {
		return nil, dberror.Newf(dberror.ErrMalformedPage,
			"directory end %d outside [%d, %d]", lower, HeaderSize, len(buf))
	}
	if (lower-HeaderSize)%ItemPointerSize != 0 {
		return nil, dberror.Newf(dberror.ErrMalformedPage,
			"directory end %d is not aligned to an item pointer", lower)
	}

	offsets := make([]uint16, 0, (lower-HeaderSize)/ItemPointerSize)
	for pos := HeaderSize; pos < int(lower); pos += ItemPointerSize {
		off, err := buf.ReadUint16(pos)
		if err != nil {
			return nil, err
		}
		offsets = append(offsets, off)
	}
	return offsets, nil
}

package page

import (
	"encoding/binary"

	dberror "slotpage/pkg/error"
)

// Buffer is a bounds-checked view over raw page bytes. Every accessor
// validates [off, off+n) against the buffer length and returns
// MALFORMED_PAGE instead of panicking, so offsets read from disk can be used
// directly.
type Buffer []byte

func (b Buffer) check(off, n int) error {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return dberror.Newf(dberror.ErrMalformedPage,
			"access [%d, %d) outside page of %d bytes", off, off+n, len(b))
	}
	return nil
}

// ReadUint16 reads a little-endian uint16 at off.
func (b Buffer) ReadUint16(off int) (uint16, error) {
	if err := b.check(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[off:]), nil
}

// WriteUint16 writes v as little-endian at off.
func (b Buffer) WriteUint16(off int, v uint16) error {
	if err := b.check(off, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b[off:], v)
	return nil
}

// ReadUint64 reads a little-endian uint64 at off.
func (b Buffer) ReadUint64(off int) (uint64, error) {
	if err := b.check(off, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[off:]), nil
}

// WriteUint64 writes v as little-endian at off.
func (b Buffer) WriteUint64(off int, v uint64) error {
	if err := b.check(off, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b[off:], v)
	return nil
}

// CopyIn copies src into the buffer starting at off. Nothing is written
// unless all of src fits.
func (b Buffer) CopyIn(off int, src []byte) error {
	if err := b.check(off, len(src)); err != nil {
		return err
	}
	copy(b[off:], src)
	return nil
}

// Slice returns the n bytes starting at off. The result aliases the buffer.
func (b Buffer) Slice(off, n int) ([]byte, error) {
	if err := b.check(off, n); err != nil {
		return nil, err
	}
	return b[off : off+n], nil
}

package tuple

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	dberror "slotpage/pkg/error"
)

// Size of the fixed-width fields a record can hold.
const (
	Uint32Size       = 4
	BoolSize         = 1
	LengthPrefixSize = 2
	MaxStringLen     = math.MaxUint16
)

// StringSize returns the encoded size of s: a 2-byte length prefix plus
// the UTF-8 payload.
func StringSize(s string) int {
	return LengthPrefixSize + len(s)
}

// Builder provides a fluent interface for encoding one record.
// Fields are appended little-endian in call order. The first failure sticks
// and later calls are no-ops, so callers check Error (or Bytes) once.
//
// Example:
//
//	data, err := tuple.NewBuilder(tuple.Uint32Size + tuple.StringSize(name)).
//	    AddUint32(id).
//	    AddString(name).
//	    Bytes()
type Builder struct {
	buf []byte
	err error
}

// NewBuilder creates a builder with room for sizeHint bytes.
func NewBuilder(sizeHint int) *Builder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Builder{buf: make([]byte, 0, sizeHint)}
}

// AddUint32 appends a 4-byte little-endian unsigned integer.
func (b *Builder) AddUint32(value uint32) *Builder {
	if b.err != nil {
		return b
	}
	b.buf = binary.LittleEndian.AppendUint32(b.buf, value)
	return b
}

// AddString appends a 2-byte length prefix followed by the UTF-8 bytes of value.
// Strings longer than MaxStringLen bytes or not valid UTF-8 are ENCODING_ERROR.
func (b *Builder) AddString(value string) *Builder {
	if b.err != nil {
		return b
	}
	if len(value) > MaxStringLen {
		b.err = dberror.Newf(dberror.ErrEncoding,
			"string of %d bytes exceeds %d byte length prefix", len(value), MaxStringLen)
		return b
	}
	if !utf8.ValidString(value) {
		b.err = dberror.Newf(dberror.ErrEncoding, "string %q is not valid UTF-8", value)
		return b
	}
	b.buf = binary.LittleEndian.AppendUint16(b.buf, uint16(len(value)))
	b.buf = append(b.buf, value...)
	return b
}

// AddBool appends a single byte, 1 for true and 0 for false.
func (b *Builder) AddBool(value bool) *Builder {
	if b.err != nil {
		return b
	}
	if value {
		b.buf = append(b.buf, 1)
	} else {
		b.buf = append(b.buf, 0)
	}
	return b
}

// Error returns the first error encountered while building.
func (b *Builder) Error() error {
	return b.err
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Bytes returns the encoded record or the first error.
func (b *Builder) Bytes() ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.buf, nil
}

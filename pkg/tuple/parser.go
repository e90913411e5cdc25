package tuple

import (
	"encoding/binary"
	"unicode/utf8"

	dberror "slotpage/pkg/error"
)

// Parser reads the fields of one record sequentially from a page buffer.
// It mirrors Builder: fields must be read in the order and with the widths
// they were written. Reads never go past the end of buf; the caller bounds
// buf to the record's window. The first failure sticks.
type Parser struct {
	buf    []byte
	offset int
	err    error
}

// NewParser creates a parser positioned at offset in buf.
func NewParser(buf []byte, offset int) *Parser {
	p := &Parser{buf: buf, offset: offset}
	if offset < 0 || offset > len(buf) {
		p.err = dberror.Newf(dberror.ErrMalformedRecord,
			"record offset %d outside buffer of %d bytes", offset, len(buf))
	}
	return p
}

func (p *Parser) take(n int, field string) []byte {
	if p.err != nil {
		return nil
	}
	if n > len(p.buf)-p.offset {
		p.err = dberror.Newf(dberror.ErrMalformedRecord,
			"%s at offset %d needs %d bytes, %d left", field, p.offset, n, len(p.buf)-p.offset)
		return nil
	}
	out := p.buf[p.offset : p.offset+n]
	p.offset += n
	return out
}

// ReadUint32 reads a 4-byte little-endian unsigned integer and advances.
func (p *Parser) ReadUint32() uint32 {
	b := p.take(Uint32Size, "uint32")
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// ReadString reads a length-prefixed UTF-8 string and advances.
func (p *Parser) ReadString() string {
	prefix := p.take(LengthPrefixSize, "length prefix")
	if prefix == nil {
		return ""
	}
	n := int(binary.LittleEndian.Uint16(prefix))

	payload := p.take(n, "string payload")
	if payload == nil {
		return ""
	}
	if !utf8.Valid(payload) {
		p.err = dberror.Newf(dberror.ErrMalformedRecord,
			"string payload at offset %d is not valid UTF-8", p.offset-n)
		return ""
	}
	return string(payload)
}

// ReadBool reads a single byte that must be 0 or 1.
func (p *Parser) ReadBool() bool {
	b := p.take(BoolSize, "bool")
	if b == nil {
		return false
	}
	switch b[0] {
	case 0:
		return false
	case 1:
		return true
	default:
		p.err = dberror.Newf(dberror.ErrMalformedRecord,
			"bool at offset %d holds %d, expected 0 or 1", p.offset-1, b[0])
		return false
	}
}

// Offset returns the position just past the last field read.
func (p *Parser) Offset() int {
	return p.offset
}

// Error returns the first error encountered while parsing.
func (p *Parser) Error() error {
	return p.err
}

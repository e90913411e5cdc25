package page

import (
	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
)

// SlottedPage is an in-memory copy of one page: header, item pointer
// directory and tuple area sharing a single PageSize buffer. The directory
// grows up from HeaderSize, the tuple area grows down from PageSize, and the
// free space between them shrinks from both sides.
//
// Page Layout:
//
//	[Header 18B][ptr0][ptr1]...[ptrN] -> free space <- [recN]...[rec1][rec0]
//	0           18                    lower           higher              8192
//
// A SlottedPage is not safe for concurrent use.
type SlottedPage struct {
	buf    Buffer
	header Header
}

// Span locates one record in the tuple area. Start is the directory entry's
// value; Limit is where the previously inserted record begins (or PageSize
// for the first record). A well-formed record lies in [Start, Limit).
type Span struct {
	Slot  primitives.SlotID
	Start int
	Limit int
}

// Len returns the number of bytes available to the record.
func (s Span) Len() int {
	return s.Limit - s.Start
}

// NewEmptyPage returns a zero-filled page carrying a fresh header.
func NewEmptyPage() *SlottedPage {
	p := &SlottedPage{
		buf:    make(Buffer, PageSize),
		header: NewHeader(),
	}
	_ = p.header.Encode(p.buf)
	return p
}

// LoadPage builds a SlottedPage from raw bytes read from disk. The data is
// copied. The header is decoded but not validated; call Validate before
// trusting Lower and Higher.
func LoadPage(data []byte) (*SlottedPage, error) {
	if len(data) != PageSize {
		return nil, dberror.Newf(dberror.ErrMalformedPage,
			"invalid page data size: expected %d, got %d", PageSize, len(data))
	}

	buf := make(Buffer, PageSize)
	copy(buf, data)

	h, err := DecodeHeader(buf)
	if err != nil {
		return nil, err
	}
	return &SlottedPage{buf: buf, header: h}, nil
}

// Header returns a copy of the page header.
func (p *SlottedPage) Header() Header {
	return p.header
}

// Validate checks the header boundary invariants.
func (p *SlottedPage) Validate() error {
	return p.header.Validate()
}

// Bytes returns the full page buffer. The slice aliases the page and must
// not be modified by the caller.
func (p *SlottedPage) Bytes() []byte {
	return p.buf
}

// NumRecords returns the number of directory entries.
func (p *SlottedPage) NumRecords() int {
	return p.header.NumRecords()
}

// FreeSpace returns the bytes left between the directory and the tuple area.
// A record of n bytes fits when n+ItemPointerSize <= FreeSpace().
func (p *SlottedPage) FreeSpace() int {
	return p.header.FreeSpace()
}

// Insert stores record in the page: it allocates space, writes the record at
// the new Higher, appends a directory entry pointing at it, advances Lower
// and re-encodes the header. On error the page is unchanged.
func (p *SlottedPage) Insert(record []byte) (primitives.SlotID, error) {
	alloc, err := Allocate(p.header, len(record))
	if err != nil {
		return 0, err
	}

	slot := primitives.SlotID(p.header.NumRecords())

	if err := p.buf.CopyIn(int(alloc.Higher), record); err != nil {
		return 0, err
	}
	if err := p.buf.WriteUint16(int(alloc.Slot), alloc.Higher); err != nil {
		return 0, err
	}

	p.header.Lower = alloc.Slot + ItemPointerSize
	p.header.Higher = alloc.Higher
	if err := p.header.Encode(p.buf); err != nil {
		return 0, err
	}
	return slot, nil
}

// Offsets returns the record offsets stored in the directory, oldest first.
func (p *SlottedPage) Offsets() ([]uint16, error) {
	return ScanDirectory(p.buf, p.header.Lower)
}

// Spans returns the span of every record in directory order. Each record is
// bounded below by Higher and above by the record inserted before it, since
// records are packed downward without gaps. An entry pointing outside that
// window is MALFORMED_RECORD.
func (p *SlottedPage) Spans() ([]Span, error) {
	offsets, err := p.Offsets()
	if err != nil {
		return nil, err
	}

	spans := make([]Span, 0, len(offsets))
	limit := PageSize
	for i, off := range offsets {
		start := int(off)
		if start < int(p.header.Higher) || start > limit {
			return nil, dberror.Newf(dberror.ErrMalformedRecord,
				"slot %d points at %d, outside [%d, %d]", i, start, p.header.Higher, limit)
		}
		spans = append(spans, Span{Slot: primitives.SlotID(i), Start: start, Limit: limit})
		limit = start
	}
	return spans, nil
}

// Record returns the raw bytes of the record in the given slot, bounded by
// its span. The slice aliases the page.
func (p *SlottedPage) Record(slot primitives.SlotID) ([]byte, error) {
	spans, err := p.Spans()
	if err != nil {
		return nil, err
	}
	if int(slot) >= len(spans) {
		return nil, dberror.Newf(dberror.ErrMalformedRecord,
			"slot %d out of range, page has %d records", slot, len(spans))
	}
	s := spans[slot]
	return p.buf.Slice(s.Start, s.Len())
}

package page

import (
	"fmt"

	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
)

// Header is the fixed 18-byte prefix of every page.
//
// Layout (little-endian):
//
//	0..8    LSN           uint64  opaque, not used for recovery
//	8..10   Checksum      uint16  persisted, never verified
//	10..12  Flags         uint16  opaque
//	12..14  Lower         uint16  end of the item pointer directory
//	14..16  Higher        uint16  start of the tuple area
//	16..18  SpecialSpace  uint16  reserved
type Header struct {
	LSN          primitives.LSN
	Checksum     uint16
	Flags        uint16
	Lower        uint16
	Higher       uint16
	SpecialSpace uint16
}

// NewHeader returns the header of an empty page: no directory entries and a
// tuple area that starts at the end of the page.
func NewHeader() Header {
	return Header{
		LSN:          InitialLSN,
		Checksum:     InitialChecksum,
		Flags:        InitialFlags,
		Lower:        HeaderSize,
		Higher:       PageSize,
		SpecialSpace: PageSize,
	}
}

// DecodeHeader reads the six header fields from the start of buf.
// Field values are not validated: a zeroed or corrupted prefix decodes
// without error. The only failure is a buffer shorter than HeaderSize.
func DecodeHeader(buf []byte) (Header, error) {
	b := Buffer(buf)
	if err := b.check(0, HeaderSize); err != nil {
		return Header{}, err
	}

	lsn, _ := b.ReadUint64(lsnOffset)
	checksum, _ := b.ReadUint16(checksumOffset)
	flags, _ := b.ReadUint16(flagsOffset)
	lower, _ := b.ReadUint16(lowerOffset)
	higher, _ := b.ReadUint16(higherOffset)
	special, _ := b.ReadUint16(specialSpaceOffset)

	return Header{
		LSN:          primitives.LSN(lsn),
		Checksum:     checksum,
		Flags:        flags,
		Lower:        lower,
		Higher:       higher,
		SpecialSpace: special,
	}, nil
}

// Encode writes the header fields at their fixed offsets in buf.
func (h Header) Encode(buf []byte) error {
	b := Buffer(buf)
	if err := b.check(0, HeaderSize); err != nil {
		return err
	}

	_ = b.WriteUint64(lsnOffset, uint64(h.LSN))
	_ = b.WriteUint16(checksumOffset, h.Checksum)
	_ = b.WriteUint16(flagsOffset, h.Flags)
	_ = b.WriteUint16(lowerOffset, h.Lower)
	_ = b.WriteUint16(higherOffset, h.Higher)
	_ = b.WriteUint16(specialSpaceOffset, h.SpecialSpace)
	return nil
}

// Validate checks HeaderSize <= Lower <= Higher <= PageSize and that the
// directory holds a whole number of item pointers.
func (h Header) Validate() error {
	switch {
	case h.Lower < HeaderSize:
		return dberror.Newf(dberror.ErrMalformedPage, "lower %d is inside the header", h.Lower)
	case h.Higher > PageSize:
		return dberror.Newf(dberror.ErrMalformedPage, "higher %d is past the end of the page", h.Higher)
	case h.Lower > h.Higher:
		return dberror.Newf(dberror.ErrMalformedPage, "lower %d crosses higher %d", h.Lower, h.Higher)
	case (h.Lower-HeaderSize)%ItemPointerSize != 0:
		return dberror.Newf(dberror.ErrMalformedPage, "lower %d is not aligned to an item pointer", h.Lower)
	}
	return nil
}

// NumRecords returns the number of directory entries implied by Lower.
func (h Header) NumRecords() int {
	if h.Lower < HeaderSize {
		return 0
	}
	return int(h.Lower-HeaderSize) / ItemPointerSize
}

// FreeSpace returns the bytes between the directory and the tuple area.
func (h Header) FreeSpace() int {
	if h.Higher < h.Lower {
		return 0
	}
	return int(h.Higher - h.Lower)
}

func (h Header) String() string {
	return fmt.Sprintf("Header{lsn=%d checksum=%d flags=%d lower=%d higher=%d special=%d}",
		h.LSN, h.Checksum, h.Flags, h.Lower, h.Higher, h.SpecialSpace)
}

// Package pagereader inspects a single page file: header fields, a zone map
// of the page regions, the directory with each record's span, free space and
// a content digest. Reports can be rendered once as text or browsed in an
// interactive bubbletea viewer.
package pagereader

import (
	"encoding/hex"

	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/page"

	"github.com/zeebo/blake3"
)

// Entry describes one directory slot.
type Entry struct {
	Slot   primitives.SlotID
	Offset int
	Length int
	Data   []byte
}

// Report is everything the inspector knows about one page.
type Report struct {
	Path     primitives.Filepath
	FileID   primitives.FileID
	FileSize int64
	Header   page.Header
	Digest   string
	Entries  []Entry

	// Problem is set when the header or directory fails validation. The
	// header fields are still reported.
	Problem error
}

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Inspect builds a Report for an in-memory page.
func Inspect(p *page.SlottedPage) *Report {
	r := &Report{
		Header:   p.Header(),
		Digest:   Digest(p.Bytes()),
		FileSize: page.PageSize,
	}

	if err := p.Validate(); err != nil {
		r.Problem = err
		return r
	}

	spans, err := p.Spans()
	if err != nil {
		r.Problem = err
		return r
	}

	data := p.Bytes()
	r.Entries = make([]Entry, len(spans))
	for i, s := range spans {
		r.Entries[i] = Entry{
			Slot:   s.Slot,
			Offset: s.Start,
			Length: s.Len(),
			Data:   data[s.Start:s.Limit],
		}
	}
	return r
}

// InspectFile reads the page at path under a shared lock and inspects it.
func InspectFile(path primitives.Filepath) (*Report, error) {
	f, err := page.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := f.ReadPage()
	if err != nil {
		return nil, err
	}

	r := Inspect(p)
	r.Path = path
	r.FileID = path.Hash()
	if info, err := path.Stat(); err == nil {
		r.FileSize = info.Size()
	}
	return r, nil
}

// UsedBytes returns the bytes taken by the header, directory and records.
func (r *Report) UsedBytes() int {
	return page.PageSize - r.Header.FreeSpace()
}

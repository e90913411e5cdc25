package heap

import (
	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/page"
)

// HeapFile binds one single-page file to the codec of the records it holds.
// It keeps no state between calls: every method opens the file, does its
// work and closes it again.
type HeapFile[T any] struct {
	filePath primitives.Filepath
	codec    Codec[T]
}

// NewHeapFile creates a HeapFile for the page at filePath.
//
// Parameters:
//   - filePath: path of the page file (cannot be empty)
//   - codec: converts records to and from their stored bytes
//
// Returns:
//   - *HeapFile[T]: the heap file
//   - error: if the path is empty or the codec is nil
func NewHeapFile[T any](filePath primitives.Filepath, codec Codec[T]) (*HeapFile[T], error) {
	if filePath.IsEmpty() {
		return nil, dberror.Newf(dberror.ErrIO, "file path cannot be empty").WithOperation("NewHeapFile", component)
	}
	if codec == nil {
		return nil, dberror.Newf(dberror.ErrEncoding, "codec cannot be nil").WithOperation("NewHeapFile", component)
	}
	return &HeapFile[T]{filePath: filePath, codec: codec}, nil
}

// FilePath returns the path of the page file.
func (hf *HeapFile[T]) FilePath() primitives.Filepath {
	return hf.filePath
}

// ID returns the identifier derived from the page file path.
func (hf *HeapFile[T]) ID() primitives.FileID {
	return hf.filePath.Hash()
}

// Create writes an empty page, replacing any existing contents.
func (hf *HeapFile[T]) Create() error {
	return page.Create(hf.filePath)
}

// Exists reports whether the page file is present.
func (hf *HeapFile[T]) Exists() bool {
	return hf.filePath.Exists()
}

// Append adds records to the page. See AppendRecords.
func (hf *HeapFile[T]) Append(records ...T) error {
	return Append(hf.filePath, hf.codec, records)
}

// ReadAll returns every record on the page in insertion order.
func (hf *HeapFile[T]) ReadAll() ([]T, error) {
	return Read(hf.filePath, hf.codec)
}

// Iterate calls fn for each record on the page in insertion order.
func (hf *HeapFile[T]) Iterate(fn func(slot primitives.SlotID, record T) error) error {
	f, err := page.OpenReadOnly(hf.filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	return Iterate(f, hf.codec, fn)
}

// Stats summarises the page without decoding any record.
func (hf *HeapFile[T]) Stats() (Stats, error) {
	f, err := page.OpenReadOnly(hf.filePath)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	p, err := loadPage(f, "Stats")
	if err != nil {
		return Stats{}, err
	}

	h := p.Header()
	return Stats{
		Records:   p.NumRecords(),
		FreeSpace: p.FreeSpace(),
		Lower:     h.Lower,
		Higher:    h.Higher,
	}, nil
}

// Stats describes how full a page is.
type Stats struct {
	Records   int
	FreeSpace int
	Lower     uint16
	Higher    uint16
}

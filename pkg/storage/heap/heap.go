package heap

import (
	"errors"

	dberror "slotpage/pkg/error"
	"slotpage/pkg/logging"
	"slotpage/pkg/primitives"
	"slotpage/pkg/storage/page"
)

const component = "RecordEngine"

// Codec converts records of type T to and from the opaque bytes stored in a
// page. The engine never looks inside a record; it only needs the size to
// reserve space and a decoder that starts at a directory offset.
//
// Decode receives the page bytes truncated at the end of the record's
// window, so a decoder cannot read into the next record or past the page.
// It returns the decoded record and the offset just past its last byte.
type Codec[T any] interface {
	SizeOf(record T) (int, error)
	Encode(record T) ([]byte, error)
	Decode(buf []byte, offset int) (T, int, error)
}

// AppendRecords adds records to the page held by f, in order, and rewrites
// the whole page once at the end.
//
// The caller must hold f (an exclusive page.Open handle) for the whole call;
// the page is read, modified in memory and written back, and any other
// writer in between would be overwritten.
//
// If a record cannot be sized or encoded (ENCODING_ERROR) or does not fit
// (SPACE_EXHAUSTED), the batch is abandoned and nothing is written: the page
// on disk still holds exactly what it held before the call. An empty batch
// performs no write.
func AppendRecords[T any](f *page.File, codec Codec[T], records []T) error {
	log := logging.WithPage(f.Path())

	p, err := loadPage(f, "AppendRecords")
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	for i, r := range records {
		data, err := encode(codec, r)
		if err != nil {
			log.Debug().Int("record", i).Err(err).Msg("record encoding failed, batch abandoned")
			return dberror.Wrap(err, dberror.CodeEncoding, "AppendRecords", component)
		}

		if _, err := p.Insert(data); err != nil {
			log.Debug().Int("record", i).Int("size", len(data)).Int("free", p.FreeSpace()).
				Err(err).Msg("record does not fit, batch abandoned")
			return dberror.Wrap(err, dberror.CodeSpaceExhausted, "AppendRecords", component)
		}
	}

	if err := f.WritePage(p); err != nil {
		return dberror.Wrap(err, dberror.CodeIO, "AppendRecords", component)
	}

	h := p.Header()
	log.Debug().Int("records", len(records)).Int("lower", int(h.Lower)).Int("higher", int(h.Higher)).
		Msg("page persisted")
	return nil
}

// ReadRecords decodes every record on the page held by f, in directory
// order. An empty page yields an empty, non-nil slice.
func ReadRecords[T any](f *page.File, codec Codec[T]) ([]T, error) {
	records := make([]T, 0)
	err := Iterate(f, codec, func(_ primitives.SlotID, r T) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Iterate decodes the records on the page held by f one at a time and calls
// fn for each, oldest first. Iteration stops at the first error from the
// page, the codec or fn.
func Iterate[T any](f *page.File, codec Codec[T], fn func(slot primitives.SlotID, record T) error) error {
	p, err := loadPage(f, "ReadRecords")
	if err != nil {
		return err
	}

	logging.WithPage(f.Path()).Debug().Int("records", p.NumRecords()).Msg("page loaded")
	return scan(p, codec, fn)
}

// DecodePage decodes every record of an in-memory page.
func DecodePage[T any](p *page.SlottedPage, codec Codec[T]) ([]T, error) {
	if err := p.Validate(); err != nil {
		return nil, dberror.Wrap(err, dberror.CodeMalformedPage, "DecodePage", component)
	}

	records := make([]T, 0, p.NumRecords())
	err := scan(p, codec, func(_ primitives.SlotID, r T) error {
		records = append(records, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func loadPage(f *page.File, op string) (*page.SlottedPage, error) {
	p, err := f.ReadPage()
	if err != nil {
		return nil, dberror.Wrap(err, dberror.CodeIO, op, component)
	}
	if err := p.Validate(); err != nil {
		return nil, dberror.Wrap(err, dberror.CodeMalformedPage, op, component)
	}
	return p, nil
}

// scan walks the directory and decodes each record inside its span. Each
// decode is independent and keyed off its own directory entry; the span
// check catches a decoder that claims bytes belonging to the next record.
func scan[T any](p *page.SlottedPage, codec Codec[T], fn func(primitives.SlotID, T) error) error {
	spans, err := p.Spans()
	if err != nil {
		return dberror.Wrap(err, dberror.CodeMalformedRecord, "ReadRecords", component)
	}

	data := p.Bytes()
	for _, s := range spans {
		record, next, err := codec.Decode(data[:s.Limit], s.Start)
		if err != nil {
			return dberror.Wrap(err, dberror.CodeMalformedRecord, "ReadRecords", component)
		}
		if next < s.Start || next > s.Limit {
			return dberror.Newf(dberror.ErrMalformedRecord,
				"slot %d decoded to [%d, %d), outside its span [%d, %d)", s.Slot, s.Start, next, s.Start, s.Limit).
				WithOperation("ReadRecords", component)
		}
		if err := fn(s.Slot, record); err != nil {
			return err
		}
	}
	return nil
}

func encode[T any](codec Codec[T], r T) ([]byte, error) {
	size, err := codec.SizeOf(r)
	if err != nil {
		return nil, asEncodingError(err)
	}

	data, err := codec.Encode(r)
	if err != nil {
		return nil, asEncodingError(err)
	}

	if len(data) != size {
		return nil, dberror.Newf(dberror.ErrEncoding,
			"codec sized record at %d bytes but encoded %d", size, len(data))
	}
	return data, nil
}

func asEncodingError(err error) error {
	var dbErr *dberror.DBError
	if errors.As(err, &dbErr) {
		return err
	}
	return dberror.Wrap(err, dberror.CodeEncoding, "", component)
}

// Append opens the page file at path exclusively, appends records and
// closes it.
func Append[T any](path primitives.Filepath, codec Codec[T], records []T) (err error) {
	f, err := page.Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return AppendRecords(f, codec, records)
}

// Read opens the page file at path under a shared lock and decodes all of
// its records.
func Read[T any](path primitives.Filepath, codec Codec[T]) ([]T, error) {
	f, err := page.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadRecords(f, codec)
}

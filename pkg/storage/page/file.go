package page

import (
	"errors"
	"io"
	"os"
	"sync"

	dberror "slotpage/pkg/error"
	"slotpage/pkg/primitives"
)

const component = "PageFile"

// File is an open single-page file together with the advisory lock that
// makes its holder the only writer.
//
// The page format has no internal concurrency control: every update is a
// full-page read-modify-write. Callers must keep one File open across the
// read and the write of one update. Open takes an exclusive lock and
// OpenReadOnly a shared one, so a second writer fails fast with PAGE_LOCKED
// instead of silently losing an update.
type File struct {
	file     *os.File
	fileID   primitives.FileID
	filePath primitives.Filepath
	readOnly bool
	mutex    sync.Mutex
}

// Open opens an existing page file for read-modify-write and takes an
// exclusive lock on it.
//
// Returns:
//   - *File: the locked file
//   - error: IO_ERROR if the file cannot be opened, PAGE_LOCKED if another
//     handle holds a lock
func Open(filePath primitives.Filepath) (*File, error) {
	return open(filePath, os.O_RDWR, false, "Open")
}

// OpenReadOnly opens an existing page file for reading under a shared lock.
func OpenReadOnly(filePath primitives.Filepath) (*File, error) {
	return open(filePath, os.O_RDONLY, true, "OpenReadOnly")
}

func open(filePath primitives.Filepath, flag int, readOnly bool, op string) (*File, error) {
	if filePath.IsEmpty() {
		return nil, dberror.Newf(dberror.ErrIO, "file path cannot be empty").WithOperation(op, component)
	}

	file, err := os.OpenFile(filePath.String(), flag, 0)
	if err != nil {
		return nil, dberror.WrapIO(err, op, component)
	}

	if err := lockFile(file, !readOnly); err != nil {
		_ = file.Close()
		return nil, lockError(err, filePath).WithOperation(op, component)
	}

	return &File{
		file:     file,
		fileID:   filePath.Hash(),
		filePath: filePath,
		readOnly: readOnly,
	}, nil
}

// Create writes a fresh, empty page to filePath, creating the file or
// replacing whatever it held before. The new page is written over the old
// contents before the file is cut to PageSize, so a failed write never leaves
// an empty file behind. The file is locked exclusively while it is rewritten
// and closed on return.
func Create(filePath primitives.Filepath) error {
	if filePath.IsEmpty() {
		return dberror.Newf(dberror.ErrIO, "file path cannot be empty").WithOperation("Create", component)
	}

	file, err := os.OpenFile(filePath.String(), os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return dberror.WrapIO(err, "Create", component)
	}

	f := &File{file: file, fileID: filePath.Hash(), filePath: filePath}
	if err := lockFile(file, true); err != nil {
		_ = file.Close()
		return lockError(err, filePath).WithOperation("Create", component)
	}

	if err := f.WritePage(NewEmptyPage()); err != nil {
		_ = f.Close()
		return err
	}

	// Trim anything past the first page only once the new page is on disk.
	if err := file.Truncate(PageSize); err != nil {
		_ = f.Close()
		return dberror.WrapIO(err, "Create", component)
	}
	if err := file.Sync(); err != nil {
		_ = f.Close()
		return dberror.WrapIO(err, "Create", component)
	}

	if err := f.Close(); err != nil {
		return dberror.WrapIO(err, "Create", component)
	}
	return nil
}

// ID returns the identifier derived from the file path.
func (f *File) ID() primitives.FileID {
	return f.fileID
}

// Path returns the path the file was opened with.
func (f *File) Path() primitives.Filepath {
	return f.filePath
}

// ReadPage reads the whole page from offset 0.
//
// Returns:
//   - *SlottedPage: a private copy of the page
//   - error: IO_ERROR if the file is closed, shorter than one page, or the read fails
func (f *File) ReadPage() (*SlottedPage, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil, dberror.Newf(dberror.ErrIO, "file is closed").WithOperation("ReadPage", component)
	}

	data := make([]byte, PageSize)
	if _, err := f.file.ReadAt(data, 0); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, dberror.Newf(dberror.ErrIO, "%s is shorter than one page", f.filePath).
				WithOperation("ReadPage", component)
		}
		return nil, dberror.WrapIO(err, "ReadPage", component)
	}

	return LoadPage(data)
}

// WritePage writes all PageSize bytes of p at offset 0 and syncs the file.
// The write is a single call; there is no atomicity beyond what the
// operating system gives one WriteAt.
func (f *File) WritePage(p *SlottedPage) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return dberror.Newf(dberror.ErrIO, "file is closed").WithOperation("WritePage", component)
	}
	if f.readOnly {
		return dberror.Newf(dberror.ErrIO, "%s is open read-only", f.filePath).WithOperation("WritePage", component)
	}

	data := p.Bytes()
	if len(data) != PageSize {
		return dberror.Newf(dberror.ErrMalformedPage,
			"invalid page data size: expected %d, got %d", PageSize, len(data)).WithOperation("WritePage", component)
	}

	if _, err := f.file.WriteAt(data, 0); err != nil {
		return dberror.WrapIO(err, "WritePage", component)
	}
	if err := f.file.Sync(); err != nil {
		return dberror.WrapIO(err, "WritePage", component)
	}
	return nil
}

// Close releases the lock and closes the file. It is safe to call Close
// more than once.
func (f *File) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}

	unlockErr := unlockFile(f.file)
	err := f.file.Close()
	f.file = nil

	if err != nil {
		return dberror.WrapIO(err, "Close", component)
	}
	if unlockErr != nil {
		return dberror.WrapIO(unlockErr, "Close", component)
	}
	return nil
}

func lockError(err error, filePath primitives.Filepath) *dberror.DBError {
	if errors.Is(err, errLocked) {
		return dberror.Newf(dberror.ErrPageLocked, "%s", filePath).
			WithHint("serialize access to the page file; only one writer may hold it")
	}
	return dberror.WrapIO(err, "", component)
}

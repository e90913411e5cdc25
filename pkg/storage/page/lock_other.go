//go:build !unix

package page

import (
	"errors"
	"os"
)

var errLocked = errors.New("file is locked")

// TODO: use LockFileEx from golang.org/x/sys/windows so Windows callers get
// the same single-writer check.
func lockFile(*os.File, bool) error { return nil }

func unlockFile(*os.File) error { return nil }

package primitives

import "fmt"

// IsValid checks if the FileID is a valid non-zero identifier.
func (f FileID) IsValid() bool {
	return f != InvalidFileID
}

// String returns a string representation of the FileID.
func (f FileID) String() string {
	return fmt.Sprintf("FileID(%d)", f)
}

package error

import (
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by their nature and appropriate handling strategy.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by the caller's input.
	// Examples: a batch that does not fit in the page, a string longer than
	// a length prefix can describe. The caller can fix these by changing the request.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents errors requiring administrator intervention.
	// Examples: disk full, missing files, permission issues.
	ErrCategorySystem

	// ErrCategoryData represents errors related to data corruption or integrity.
	// Examples: a length prefix pointing past the page, invalid UTF-8 in a record,
	// a header whose lower/higher boundaries cross.
	ErrCategoryData

	// ErrCategoryConcurrency represents errors from competing access to a page file.
	ErrCategoryConcurrency
)

// String returns the category name used in log output.
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	case ErrCategoryData:
		return "data"
	case ErrCategoryConcurrency:
		return "concurrency"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Error codes raised by the page engine and its codecs.
const (
	CodeIO              = "IO_ERROR"
	CodePageLocked      = "PAGE_LOCKED"
	CodeSpaceExhausted  = "SPACE_EXHAUSTED"
	CodeMalformedRecord = "MALFORMED_RECORD"
	CodeMalformedPage   = "MALFORMED_PAGE"
	CodeEncoding        = "ENCODING_ERROR"
)

// Sentinels for errors.Is. A *DBError matches a sentinel when the codes are equal,
// so callers can write errors.Is(err, dberror.ErrSpaceExhausted) without caring
// about the detail or the wrapped cause.
var (
	ErrIO              = &DBError{Code: CodeIO, Category: ErrCategorySystem, Message: "page file I/O failed"}
	ErrPageLocked      = &DBError{Code: CodePageLocked, Category: ErrCategoryConcurrency, Message: "page file is locked by another writer"}
	ErrSpaceExhausted  = &DBError{Code: CodeSpaceExhausted, Category: ErrCategoryUser, Message: "not enough free space in page"}
	ErrMalformedRecord = &DBError{Code: CodeMalformedRecord, Category: ErrCategoryData, Message: "malformed record"}
	ErrMalformedPage   = &DBError{Code: CodeMalformedPage, Category: ErrCategoryData, Message: "malformed page"}
	ErrEncoding        = &DBError{Code: CodeEncoding, Category: ErrCategoryUser, Message: "record cannot be encoded"}
)

// DBError represents a structured storage error with rich context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "SPACE_EXHAUSTED").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: "record of 120 bytes needs 122, 40 free".
	Detail string

	// Hint suggests how the caller might fix or work around this error.
	Hint string

	// Operation identifies the operation that was being performed.
	// Examples: "AppendRecords", "ReadRecords", "Create".
	Operation string

	// Component identifies the component where the error originated.
	// Examples: "PageFile", "Allocator", "CATALOG_TABLES".
	Component string

	// Cause is the underlying error that triggered this error.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Newf creates a DBError from one of the sentinels, copying its code, category
// and message and filling Detail from the format string.
func Newf(sentinel *DBError, format string, args ...any) *DBError {
	return &DBError{
		Code:     sentinel.Code,
		Category: sentinel.Category,
		Message:  sentinel.Message,
		Detail:   fmt.Sprintf(format, args...),
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with storage-specific context information.
// If the error is already a DBError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	if dbErr, ok := err.(*DBError); ok {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  categoryOf(code),
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WrapIO wraps an operating system error as an IO_ERROR.
func WrapIO(err error, operation, component string) *DBError {
	return Wrap(err, CodeIO, operation, component)
}

func categoryOf(code string) ErrorCategory {
	for _, s := range []*DBError{ErrIO, ErrPageLocked, ErrSpaceExhausted, ErrMalformedRecord, ErrMalformedPage, ErrEncoding} {
		if s.Code == code {
			return s.Category
		}
	}
	return ErrCategorySystem
}

// WithOperation sets the operation and component when they are still empty
// and returns the same error for chaining.
func (e *DBError) WithOperation(operation, component string) *DBError {
	if e.Operation == "" {
		e.Operation = operation
	}
	if e.Component == "" {
		e.Component = component
	}
	return e
}

// WithHint attaches a hint and returns the same error for chaining.
func (e *DBError) WithHint(hint string) *DBError {
	e.Hint = hint
	return e
}

// captureStack captures the current call stack for debugging purposes.
// It skips the first 3 frames to exclude captureStack, New/Wrap, and the
// immediate caller, focusing on the actual error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a DBError with the same code.
func (e *DBError) Is(target error) bool {
	t, ok := target.(*DBError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}

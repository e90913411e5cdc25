package error

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBError_IsMatchesByCode(t *testing.T) {
	err := Newf(ErrSpaceExhausted, "record of %d bytes does not fit", 100)

	assert.True(t, errors.Is(err, ErrSpaceExhausted))
	assert.False(t, errors.Is(err, ErrMalformedRecord))

	wrapped := fmt.Errorf("append: %w", err)
	assert.True(t, errors.Is(wrapped, ErrSpaceExhausted), "match survives fmt wrapping")
}

func TestDBError_ErrorFormat(t *testing.T) {
	err := Newf(ErrMalformedRecord, "length prefix %d runs past page", 9000).
		WithOperation("ReadRecords", "CATALOG_TABLES")

	assert.Equal(t,
		"[MALFORMED_RECORD] malformed record: length prefix 9000 runs past page (operation: ReadRecords, component: CATALOG_TABLES)",
		err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, CodeIO, "Create", "PageFile"))
	})

	t.Run("os error becomes IO_ERROR", func(t *testing.T) {
		cause := &os.PathError{Op: "open", Path: "/nope", Err: os.ErrNotExist}
		err := WrapIO(cause, "Create", "PageFile")

		require.NotNil(t, err)
		assert.Equal(t, CodeIO, err.Code)
		assert.Equal(t, ErrCategorySystem, err.Category)
		assert.True(t, errors.Is(err, ErrIO))
		assert.True(t, errors.Is(err, os.ErrNotExist), "cause stays reachable")
		assert.NotEmpty(t, err.FormatStack())
	})

	t.Run("existing DBError keeps its code", func(t *testing.T) {
		orig := Newf(ErrEncoding, "string too long")
		err := Wrap(orig, CodeIO, "AppendRecords", "RecordEngine")

		assert.Same(t, orig, err)
		assert.Equal(t, CodeEncoding, err.Code)
		assert.Equal(t, "AppendRecords", err.Operation)
	})
}

func TestErrorCategory_String(t *testing.T) {
	assert.Equal(t, "data", ErrCategoryData.String())
	assert.Equal(t, "category(42)", ErrorCategory(42).String())
}

package page

import (
	"errors"
	"testing"

	dberror "slotpage/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirectory_Empty(t *testing.T) {
	p := NewEmptyPage()

	offsets, err := ScanDirectory(p.buf, HeaderSize)
	require.NoError(t, err)
	assert.NotNil(t, offsets)
	assert.Empty(t, offsets)
}

func TestScanDirectory_InsertionOrder(t *testing.T) {
	buf := make(Buffer, PageSize)
	require.NoError(t, buf.WriteUint16(18, 8000))
	require.NoError(t, buf.WriteUint16(20, 7900))
	require.NoError(t, buf.WriteUint16(22, 7000))

	offsets, err := ScanDirectory(buf, 24)
	require.NoError(t, err)
	assert.Equal(t, []uint16{8000, 7900, 7000}, offsets)

	again, err := ScanDirectory(buf, 24)
	require.NoError(t, err)
	assert.Equal(t, offsets, again, "scan is restartable")

	require.NoError(t, buf.WriteUint16(24, 6000))
	grown, err := ScanDirectory(buf, 26)
	require.NoError(t, err)
	assert.Equal(t, []uint16{8000, 7900, 7000, 6000}, grown, "nothing is cached between scans")
}

func TestScanDirectory_BadLower(t *testing.T) {
	buf := make(Buffer, PageSize)

	for _, lower := range []uint16{0, 17, 19, PageSize + 2} {
		_, err := ScanDirectory(buf, lower)
		assert.True(t, errors.Is(err, dberror.ErrMalformedPage), "lower=%d", lower)
	}
}

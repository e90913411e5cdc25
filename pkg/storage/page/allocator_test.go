package page

import (
	"errors"
	"testing"

	dberror "slotpage/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name       string
		lower      uint16
		higher     uint16
		size       int
		wantErr    error
		wantHigher uint16
	}{
		{name: "empty page", lower: 18, higher: 8192, size: 100, wantHigher: 8092},
		{name: "exact fit", lower: 18, higher: 8192, size: MaxRecordSize, wantHigher: HeaderSize + ItemPointerSize},
		{name: "one byte over", lower: 18, higher: 8192, size: MaxRecordSize + 1, wantErr: dberror.ErrSpaceExhausted},
		{name: "zero size", lower: 18, higher: 8192, size: 0, wantHigher: 8192},
		{name: "higher below size", lower: 18, higher: 10, size: 11, wantErr: dberror.ErrSpaceExhausted},
		{name: "directory overrun", lower: 8191, higher: 8192, size: 0, wantErr: dberror.ErrSpaceExhausted},
		{name: "no room for pointer", lower: 100, higher: 101, size: 0, wantErr: dberror.ErrSpaceExhausted},
		{name: "negative size", lower: 18, higher: 8192, size: -1, wantErr: dberror.ErrEncoding},
		{name: "larger than page", lower: 18, higher: 8192, size: 9000, wantErr: dberror.ErrSpaceExhausted},
		{name: "not addressable", lower: 18, higher: 8192, size: 1 << 16, wantErr: dberror.ErrEncoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Header{Lower: tt.lower, Higher: tt.higher}
			alloc, err := Allocate(h, tt.size)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.lower, alloc.Slot)
			assert.Equal(t, tt.wantHigher, alloc.Higher)
		})
	}
}

func TestAllocate_BoundaryAfterInserts(t *testing.T) {
	p := NewEmptyPage()
	_, err := p.Insert(make([]byte, 1000))
	require.NoError(t, err)

	h := p.Header()
	fit := int(h.Higher) - int(h.Lower) - ItemPointerSize

	_, err = Allocate(h, fit+1)
	assert.True(t, errors.Is(err, dberror.ErrSpaceExhausted))

	alloc, err := Allocate(h, fit)
	require.NoError(t, err)
	assert.Equal(t, h.Lower+ItemPointerSize, alloc.Higher)
}

package tuple

import (
	"errors"
	"strings"
	"testing"

	dberror "slotpage/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Layout(t *testing.T) {
	data, err := NewBuilder(0).
		AddUint32(0x01020304).
		AddString("ab").
		AddBool(true).
		AddBool(false).
		Bytes()
	require.NoError(t, err)

	assert.Equal(t, []byte{
		0x04, 0x03, 0x02, 0x01,
		0x02, 0x00, 'a', 'b',
		0x01,
		0x00,
	}, data)
}

func TestBuilder_StickyError(t *testing.T) {
	b := NewBuilder(8).
		AddUint32(1).
		AddString(strings.Repeat("x", MaxStringLen+1)).
		AddUint32(2)

	_, err := b.Bytes()
	assert.True(t, errors.Is(err, dberror.ErrEncoding))
	assert.Equal(t, 4, b.Len(), "nothing written after the failure")

	_, err = NewBuilder(0).AddString("\xff\xfe").Bytes()
	assert.True(t, errors.Is(err, dberror.ErrEncoding))
}

func TestStringSize(t *testing.T) {
	assert.Equal(t, 2, StringSize(""))
	assert.Equal(t, 10, StringSize("accounts"))
	assert.Equal(t, 2+len("héllo"), StringSize("héllo"))
}

func TestParser_RoundTrip(t *testing.T) {
	data, err := NewBuilder(0).AddUint32(42).AddString("héllo").AddBool(true).Bytes()
	require.NoError(t, err)

	buf := append([]byte{0xaa, 0xbb}, data...)
	p := NewParser(buf, 2)

	assert.Equal(t, uint32(42), p.ReadUint32())
	assert.Equal(t, "héllo", p.ReadString())
	assert.True(t, p.ReadBool())
	require.NoError(t, p.Error())
	assert.Equal(t, len(buf), p.Offset())
}

func TestParser_Malformed(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		read func(p *Parser)
	}{
		{
			name: "truncated uint32",
			buf:  []byte{1, 2, 3},
			read: func(p *Parser) { p.ReadUint32() },
		},
		{
			name: "truncated length prefix",
			buf:  []byte{5},
			read: func(p *Parser) { p.ReadString() },
		},
		{
			name: "length prefix past buffer",
			buf:  []byte{10, 0, 'a', 'b'},
			read: func(p *Parser) { p.ReadString() },
		},
		{
			name: "invalid utf8",
			buf:  []byte{2, 0, 0xff, 0xfe},
			read: func(p *Parser) { p.ReadString() },
		},
		{
			name: "bool out of range",
			buf:  []byte{2},
			read: func(p *Parser) { p.ReadBool() },
		},
		{
			name: "reading a length where none was written",
			buf:  []byte{1, 0, 0, 0},
			read: func(p *Parser) { p.ReadUint32(); p.ReadString() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParser(tt.buf, 0)
			tt.read(p)
			assert.True(t, errors.Is(p.Error(), dberror.ErrMalformedRecord), "got %v", p.Error())
		})
	}
}

func TestParser_BadStartOffset(t *testing.T) {
	p := NewParser(make([]byte, 4), 5)
	assert.Equal(t, uint32(0), p.ReadUint32())
	assert.True(t, errors.Is(p.Error(), dberror.ErrMalformedRecord))
}

func TestParser_StickyError(t *testing.T) {
	p := NewParser([]byte{9}, 0)
	p.ReadBool()
	require.Error(t, p.Error())

	first := p.Error()
	p.ReadUint32()
	assert.Same(t, first, p.Error())
}

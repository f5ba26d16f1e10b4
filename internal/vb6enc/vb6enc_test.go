package vb6enc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTF8PlainASCIIPassesThrough(t *testing.T) {
	src := []byte("Sub Foo()\r\nEnd Sub\r\n")
	out, err := ToUTF8(src)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestToUTF8StripsUTF8BOM(t *testing.T) {
	src := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Sub Foo()\r\nEnd Sub\r\n")...)
	out, err := ToUTF8(src)
	require.NoError(t, err)
	assert.Equal(t, "Sub Foo()\r\nEnd Sub\r\n", string(out))
}

func TestToUTF8TranscodesWindows1252(t *testing.T) {
	// 0xE9 is "é" in Windows-1252, but is not valid standalone UTF-8.
	src := []byte{'C', 'a', 'f', 0xE9}
	out, err := ToUTF8(src)
	require.NoError(t, err)
	assert.Equal(t, "Café", string(out))
}

func TestFromUTF8RoundTripsWindows1252(t *testing.T) {
	src := []byte("Café")
	encoded, err := FromUTF8(src)
	require.NoError(t, err)
	assert.Equal(t, []byte{'C', 'a', 'f', 0xE9}, encoded)

	back, err := ToUTF8(encoded)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

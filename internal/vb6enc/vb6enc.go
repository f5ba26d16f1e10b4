// Package vb6enc is the character-decoding collaborator spec §6 calls for:
// "character decoding is a collaborator's responsibility; this core
// consumes bytes/UTF-8 and does not re-encode." VB6 source files are
// BOM-optional and may carry either UTF-8 or a legacy Windows code page
// (most commonly Windows-1252); neither internal/vb6/lexer nor
// internal/vb6/parser ever re-encodes anything, so callers reading
// arbitrary `.bas`/`.cls`/`.frm`/`.ctl`/`.vbp` files from disk use this
// package first.
package vb6enc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// ToUTF8 normalizes raw VB6 source bytes to UTF-8: a leading UTF-8 byte-order
// mark is stripped outright, a leading UTF-16 BOM is transcoded via
// BOMOverride, and anything else that isn't already valid UTF-8 is assumed
// to be Windows-1252 (VB6's default code page on an English-locale install)
// and transcoded. The UTF-8 and Windows-1252 checks are done directly
// against utf8.Valid rather than through UTF8.NewDecoder(), which silently
// replaces ill-formed bytes with U+FFFD instead of reporting them — routing
// through it first would mask every Windows-1252 file as "already valid"
// and the charmap branch below would never run.
func ToUTF8(src []byte) ([]byte, error) {
	if bytes.HasPrefix(src, utf8BOM) {
		return bytes.TrimPrefix(src, utf8BOM), nil
	}
	if bytes.HasPrefix(src, utf16LEBOM) || bytes.HasPrefix(src, utf16BEBOM) {
		return transformBytes(src, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))
	}
	if utf8.Valid(src) {
		return src, nil
	}
	return transformBytes(src, charmap.Windows1252.NewDecoder())
}

// FromUTF8 transcodes UTF-8 text back to Windows-1252, for writers that
// need to reproduce a legacy project's original code page on disk.
func FromUTF8(src []byte) ([]byte, error) {
	return transformBytes(src, charmap.Windows1252.NewEncoder())
}

func transformBytes(src []byte, t transform.Transformer) ([]byte, error) {
	out, _, err := transform.Bytes(t, src)
	if err != nil {
		return nil, err
	}
	return out, nil
}

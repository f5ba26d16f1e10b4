package formheader

import (
	"strings"

	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// unquoteVB6String strips a StringLiteral token's surrounding quotes and
// un-doubles any embedded `""` escapes. raw is the token's exact source
// text, quotes included; a malformed (unquoted) input is returned as-is.
func unquoteVB6String(raw string) string {
	if len(raw) < 2 || !strings.HasPrefix(raw, `"`) || !strings.HasSuffix(raw, `"`) {
		return raw
	}
	inner := raw[1 : len(raw)-1]
	return strings.ReplaceAll(inner, `""`, `"`)
}

// readInlineValue reads everything from the cursor up to (but not
// including) the line's Newline or trailing comment, skipping Whitespace,
// and concatenates the remaining tokens' text verbatim — reconstructing a
// `&H00000000&` color literal from its Ampersand/Identifier/Ampersand
// token triple exactly as well as it reconstructs a plain number or bare
// word. A value that lexed as a single StringLiteral token is unquoted;
// anything else is returned exactly as it appeared in source.
func (x *extractor) readInlineValue() string {
	var sb strings.Builder
	count := 0
	var only token.Token

loop:
	for !x.atEnd() {
		switch x.currentKind() {
		case token.Newline, token.EndOfLineComment, token.RemComment:
			break loop
		case token.Whitespace:
			x.advance()
			continue
		}
		only = x.advance()
		sb.WriteString(only.Text)
		count++
	}

	if count == 1 && only.Kind == token.StringLiteral {
		return unquoteVB6String(only.Text)
	}
	return sb.String()
}

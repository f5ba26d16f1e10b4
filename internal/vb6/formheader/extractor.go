package formheader

import (
	"fmt"
	"strings"

	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// extractor is the cursor the direct extraction functions share. It walks
// the same token vector the generic parser would, but with its own
// lightweight state rather than a cst.Builder: nothing it reads becomes a
// CST node, since the header it extracts is returned only as typed domain
// values.
type extractor struct {
	fileName string
	src      []byte
	all      []token.Token
	toks     *token.Stream
	diags    []diag.Diagnostic
}

func newExtractor(fileName string, src []byte, toks []token.Token, seedDiags []diag.Diagnostic) *extractor {
	return &extractor{
		fileName: fileName,
		src:      src,
		all:      toks,
		toks:     token.NewStream(toks),
		diags:    append([]diag.Diagnostic{}, seedDiags...),
	}
}

func (x *extractor) atEnd() bool { return x.toks.IsAtEnd() }

// current returns the token under the cursor. Callers must check atEnd
// first; like token.Stream.Current, it panics at end of stream.
func (x *extractor) current() token.Token { return x.toks.Current() }

func (x *extractor) currentKind() token.Kind {
	if x.atEnd() {
		return token.Unknown
	}
	return x.current().Kind
}

// advance consumes and returns the current token. Callers must check atEnd
// first.
func (x *extractor) advance() token.Token { return x.toks.Advance() }

func (x *extractor) is(k token.Kind) bool { return !x.atEnd() && x.currentKind() == k }

// isIdentWithText reports whether the current token is an Identifier whose
// text matches want case-insensitively — how pseudo-keywords like
// BeginProperty/EndProperty are recognized, since neither of them
// occupy a dedicated token.Kind (spec §4.G's keyword-boundary rule only
// reserves a kind when the candidate text is followed by a non-identifier
// character at lex time; "BeginProperty" fails that test because "P"
// follows "Begin" directly).
func (x *extractor) isIdentWithText(want string) bool {
	return x.is(token.Identifier) && strings.EqualFold(x.current().Text, want)
}

// remainingTokens returns every token from the cursor's current position to
// the end of the stream, for handoff to the generic parser.
func (x *extractor) remainingTokens() []token.Token {
	if x.atEnd() {
		return nil
	}
	return x.all[x.toks.Pos():]
}

func (x *extractor) errorf(kind diag.Kind, format string, args ...any) {
	offset := len(x.src)
	if !x.atEnd() {
		offset = x.current().Offset
	}
	x.diags = append(x.diags, diag.New(kind, x.fileName, x.src, offset, fmt.Sprintf(format, args...)))
}

// skipInline skips Whitespace only, stopping at a Newline or any other
// non-trivia token.
func (x *extractor) skipInline() {
	for !x.atEnd() && x.currentKind() == token.Whitespace {
		x.advance()
	}
}

// skipBlank skips Whitespace, Newline, and comment trivia — blank lines and
// standalone comment lines between header constructs.
func (x *extractor) skipBlank() {
	for !x.atEnd() {
		switch x.currentKind() {
		case token.Whitespace, token.Newline, token.EndOfLineComment, token.RemComment:
			x.advance()
		default:
			return
		}
	}
}

// consumeThroughNewline skips any trailing inline trivia and comment on the
// current line, then consumes the line's terminating Newline if present. A
// header construct calls this once it has read everything it recognizes on
// its own line, so that a trailing comment never confuses the next reader.
func (x *extractor) consumeThroughNewline() {
	for !x.atEnd() {
		switch x.currentKind() {
		case token.Whitespace, token.EndOfLineComment, token.RemComment:
			x.advance()
		case token.Newline:
			x.advance()
			return
		default:
			return
		}
	}
}

// recoverToNextLine discards tokens until (and including) the next Newline,
// or EOF. Used after a malformed line so extraction can keep making forward
// progress instead of looping on the same token.
func (x *extractor) recoverToNextLine() {
	for !x.atEnd() {
		if x.currentKind() == token.Newline {
			x.advance()
			return
		}
		x.advance()
	}
}

// readName concatenates Identifier, keyword, and leading-Underscore tokens
// into a single name, since the lexer only starts an Identifier on an ASCII
// letter: a name like `_ExtentX` lexes as Underscore followed by
// Identifier("ExtentX") rather than one token, and a property key such as
// `Name` lexes as a keyword token.
func (x *extractor) readName() string {
	var sb strings.Builder
	for !x.atEnd() {
		switch k := x.currentKind(); {
		case k == token.Underscore, k == token.Identifier, k.IsKeyword():
			sb.WriteString(x.advance().Text)
		default:
			return sb.String()
		}
	}
	return sb.String()
}

// readDottedTypeName reads a Begin-line type name such as `VB.CommandButton`
// or `MSComctlLib.ImageList`: a name, then zero or more
// (PeriodOperator name) pairs, concatenated back into one dotted string.
func (x *extractor) readDottedTypeName() string {
	var sb strings.Builder
	sb.WriteString(x.readName())
	for x.is(token.PeriodOperator) {
		sb.WriteString(x.advance().Text)
		sb.WriteString(x.readName())
	}
	return sb.String()
}

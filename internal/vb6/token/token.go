package token

import "github.com/scriptandcompile/vb6parse/internal/vb6/source"

// Token is a lexed (text, kind) pair. Text is always an exact slice of the
// original source buffer — the lexer never normalizes case or strips
// characters — so concatenating every Token's Text in order reconstructs the
// input byte-for-byte (spec §3, "Round-trip").
type Token struct {
	Text   string
	Kind   Kind
	Offset int // byte offset of Text[0] in the source buffer
}

// End returns the offset one past the end of the token's text.
func (t Token) End() int { return t.Offset + len(t.Text) }

// Stream is a cursor over a fixed slice of Tokens produced by the lexer. It
// never mutates the underlying slice; the parser only advances the cursor
// and looks ahead with Peek (spec §4.C).
type Stream struct {
	tokens []Token
	cur    int
}

// NewStream wraps tokens in a Stream positioned at the first token.
func NewStream(tokens []Token) *Stream {
	return &Stream{tokens: tokens}
}

// Len returns the total number of tokens.
func (s *Stream) Len() int { return len(s.tokens) }

// Pos returns the current cursor index.
func (s *Stream) Pos() int { return s.cur }

// Seek moves the cursor to an absolute index previously returned by Pos.
// Nothing in this module calls it: the parser's bounded lookahead uses Peek
// and never moves the cursor backwards.
func (s *Stream) Seek(pos int) { s.cur = pos }

// IsAtEnd reports whether the cursor has reached (or passed) the final
// token. The lexer emits no end-of-text token, so callers detect end of
// input with IsAtEnd; every Token already carries an Offset usable for EOF
// diagnostics.
func (s *Stream) IsAtEnd() bool { return s.cur >= len(s.tokens) }

// Remaining returns the number of unconsumed tokens.
func (s *Stream) Remaining() int { return len(s.tokens) - s.cur }

// Current returns the token at the cursor. Panics if IsAtEnd(); callers must
// check first (the parser always does, since grammar productions know how
// many tokens they require).
func (s *Stream) Current() Token { return s.tokens[s.cur] }

// Peek returns the token i positions ahead of the cursor (Peek(0) ==
// Current()) and whether that position is in bounds.
func (s *Stream) Peek(i int) (Token, bool) {
	idx := s.cur + i
	if idx < 0 || idx >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[idx], true
}

// Advance returns the current token and moves the cursor forward by one.
// Panics if IsAtEnd().
func (s *Stream) Advance() Token {
	t := s.tokens[s.cur]
	s.cur++
	return t
}

// LastOffset returns the offset just past the final token, suitable as an
// EOF position for diagnostics. Returns 0 for an empty stream.
func (s *Stream) LastOffset() int {
	if len(s.tokens) == 0 {
		return 0
	}
	last := s.tokens[len(s.tokens)-1]
	return last.End()
}

// PositionOf resolves a token's (line, column) against contents. Exposed as
// a free function (not a Stream method) because the stream itself does not
// retain the source buffer — only offsets — per spec §3 ("tokens ... carry
// offsets, not copies").
func PositionOf(contents []byte, t Token) source.Position {
	return source.PositionAt(contents, t.Offset)
}

// Package lexer turns raw VB6 source bytes into a flat token sequence.
//
// Tokenize never aborts: an unrecognized byte becomes a one-byte Unknown
// token plus a diagnostic, and scanning resumes at the next byte (spec §4.B,
// "Failure model"). Every byte of the input is accounted for by exactly one
// token, so concatenating token text reproduces the source exactly.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/source"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// Tokenize lexes contents in full, resetting s to offset 0 first since
// callers (the form-header extractor, in particular) may have partially
// consumed the stream already.
func Tokenize(s *source.Stream) ([]token.Token, []diag.Diagnostic) {
	s.ResetToStart()

	var tokens []token.Token
	var diags []diag.Diagnostic

	for !s.IsEmpty() {
		start := s.Offset()

		if nl, ok := s.TakeNewline(); ok {
			tokens = append(tokens, token.Token{Text: nl, Kind: token.Newline, Offset: start})
			continue
		}

		if text, nl, hasNL, ok := takeLineComment(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.EndOfLineComment, Offset: start})
			if hasNL {
				tokens = append(tokens, token.Token{Text: nl, Kind: token.Newline, Offset: start + len(text)})
			}
			continue
		}

		if text, nl, hasNL, ok := takeRemComment(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.RemComment, Offset: start})
			if hasNL {
				tokens = append(tokens, token.Token{Text: nl, Kind: token.Newline, Offset: start + len(text)})
			}
			continue
		}

		if text, ok := takeStringLiteral(s); ok {
			if len(text) < 2 || text[len(text)-1] != '"' {
				diags = append(diags, diag.New(diag.UnterminatedString, s.FileName, s.Contents(), start,
					"string literal has no closing quote"))
			}
			tokens = append(tokens, token.Token{Text: text, Kind: token.StringLiteral, Offset: start})
			continue
		}

		if text, ok := takeDateTimeLiteral(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.DateLiteral, Offset: start})
			continue
		}

		if text, ok := takeTimeLiteral(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.DateLiteral, Offset: start})
			continue
		}

		if text, kind, ok := takeKeyword(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: kind, Offset: start})
			continue
		}

		if text, kind, ok := takeSymbol(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: kind, Offset: start})
			continue
		}

		if text, kind, ok := takeNumericLiteral(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: kind, Offset: start})
			continue
		}

		if text, ok := takeIdentifier(s); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.Identifier, Offset: start})
			continue
		}

		if text, ok := s.TakeASCIIWhitespace(); ok {
			tokens = append(tokens, token.Token{Text: text, Kind: token.Whitespace, Offset: start})
			continue
		}

		text, _ := s.TakeCount(1)
		diags = append(diags, diag.New(diag.UnknownToken, s.FileName, s.Contents(), start,
			fmt.Sprintf("unrecognized byte %q", text)))
		tokens = append(tokens, token.Token{Text: text, Kind: token.Unknown, Offset: start})
	}

	return tokens, diags
}

// TokenizeWithoutWhitespace lexes contents and discards Whitespace tokens,
// for use by the form-header extractor, which walks token-by-token without
// needing trivia between them (spec §4.B).
func TokenizeWithoutWhitespace(s *source.Stream) ([]token.Token, []diag.Diagnostic) {
	all, diags := Tokenize(s)
	filtered := make([]token.Token, 0, len(all))
	for _, t := range all {
		if t.Kind == token.Whitespace {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered, diags
}

// takeLineComment matches a `'`-introduced end-of-line comment.
func takeLineComment(s *source.Stream) (text, newline string, hasNewline bool, ok bool) {
	if !s.PeekText("'", source.CaseSensitive) {
		return "", "", false, false
	}
	text, newline, hasNewline = s.TakeUntilNewline()
	return text, newline, hasNewline, true
}

// takeRemComment matches a `REM`-introduced end-of-line comment. The match
// only counts if REM is not itself a prefix of a longer identifier.
func takeRemComment(s *source.Stream) (text, newline string, hasNewline bool, ok bool) {
	if !s.PeekText("REM", source.CaseInsensitiveASCII) {
		return "", "", false, false
	}
	if peek, boundOK := s.Peek(4); boundOK {
		last := peek[3]
		if isIdentChar(last) {
			return "", "", false, false
		}
	}
	text, newline, hasNewline = s.TakeUntilNewline()
	return text, newline, hasNewline, true
}

// takeStringLiteral matches a `"`-delimited string, tracking a running count
// of consecutive quote characters so that a doubled `""` is treated as an
// escaped embedded quote rather than the string's terminator.
func takeStringLiteral(s *source.Stream) (string, bool) {
	if !s.PeekText("\"", source.CaseSensitive) {
		return "", false
	}
	quoteRun := 0
	text, ok := s.TakeUntilFunc(func(r rune) bool {
		switch {
		case r == '"' && quoteRun == 2:
			quoteRun = 1
			return true
		case quoteRun == 2:
			return false
		case r == '"' && quoteRun < 2:
			quoteRun++
			return true
		default:
			return true
		}
	}, false)
	return text, ok
}

func isIdentChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// --- date/time literal -------------------------------------------------

func checkMonthDigits(s *source.Stream) (int, bool) {
	d1, ok := s.Peek(1)
	if !ok {
		return 0, false
	}
	if d1 == "0" {
		return 0, false
	}
	if d1 != "1" {
		n, err := strconv.Atoi(d1)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	d2, ok := s.Peek(2)
	if !ok {
		return 0, false
	}
	if d2 == "1/" {
		return 1, true
	}
	n, err := strconv.Atoi(d2)
	if err != nil {
		return 0, false
	}
	return n, true
}

func checkDayDigits(s *source.Stream) (int, bool) {
	d1, ok := s.Peek(1)
	if !ok {
		return 0, false
	}
	if d1 == "0" {
		return 0, false
	}
	if d1 != "1" && d1 != "2" && d1 != "3" {
		n, err := strconv.Atoi(d1)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	d2, ok := s.Peek(2)
	if !ok {
		return 0, false
	}
	switch d2 {
	case "1/":
		return 1, true
	case "2/":
		return 2, true
	case "3/":
		return 3, true
	}
	n, err := strconv.Atoi(d2)
	if err != nil {
		return 0, false
	}
	if n > 31 {
		return 0, false
	}
	return n, true
}

func checkYearDigits(s *source.Stream) (int, bool) {
	if d4, ok := s.Peek(4); ok {
		if n, err := strconv.Atoi(d4); err == nil {
			return n, true
		}
	}
	if d3, ok := s.Peek(3); ok {
		if n, err := strconv.Atoi(d3); err == nil {
			return n, true
		}
	}
	return 0, false
}

func checkHourDigits(s *source.Stream) (int, bool) {
	if d2, ok := s.Peek(2); ok {
		if n, err := strconv.Atoi(d2); err == nil {
			if n >= 1 && n <= 12 {
				return n, true
			}
			return 0, false
		}
	}
	if d1, ok := s.Peek(1); ok {
		if n, err := strconv.Atoi(d1); err == nil {
			if n >= 1 && n <= 12 {
				return n, true
			}
		}
	}
	return 0, false
}

func checkMinuteOrSecondDigits(s *source.Stream) (int, bool) {
	d2, ok := s.Peek(2)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(d2)
	if err != nil {
		return 0, false
	}
	if n > 59 {
		return 0, false
	}
	return n, true
}

// takeDateTimeLiteral matches `#M[M]/D[D]/YYYY[ H[H]:MM:SS AM|PM]#`. Any
// field failing its range check rewinds the stream to the opening `#` and
// reports no match, leaving the `#` available to the symbol table instead.
func takeDateTimeLiteral(s *source.Stream) (string, bool) {
	start := s.Offset()
	fail := func() (string, bool) { s.Seek(start); return "", false }

	if _, ok := s.Take("#", source.CaseSensitive); !ok {
		return fail()
	}

	month, ok := checkMonthDigits(s)
	if !ok {
		return fail()
	}
	if month >= 10 {
		s.TakeCount(2)
	} else {
		s.TakeCount(1)
	}

	if _, ok := s.Take("/", source.CaseSensitive); !ok {
		return fail()
	}

	day, ok := checkDayDigits(s)
	if !ok {
		return fail()
	}
	if day >= 10 {
		s.TakeCount(2)
	} else {
		s.TakeCount(1)
	}

	if _, ok := s.Take("/", source.CaseSensitive); !ok {
		return fail()
	}

	year, ok := checkYearDigits(s)
	if !ok {
		return fail()
	}
	if year < 100 {
		return fail()
	}
	if year <= 999 {
		s.TakeCount(3)
	} else {
		s.TakeCount(4)
	}

	afterYear, ok := s.Peek(1)
	if !ok {
		return fail()
	}
	if afterYear == "#" {
		s.TakeCount(1)
		return string(s.Contents()[start:s.Offset()]), true
	}
	if afterYear != " " {
		return fail()
	}
	s.TakeCount(1)

	hour, ok := checkHourDigits(s)
	if !ok {
		return fail()
	}
	if hour > 12 || hour == 0 {
		return fail()
	}
	if hour >= 10 {
		s.TakeCount(2)
	} else {
		s.TakeCount(1)
	}

	if p, ok := s.Peek(1); !ok || p != ":" {
		return fail()
	}
	s.TakeCount(1)

	minute, ok := checkMinuteOrSecondDigits(s)
	if !ok || minute > 59 {
		return fail()
	}
	s.TakeCount(2)

	if p, ok := s.Peek(1); !ok || p != ":" {
		return fail()
	}
	s.TakeCount(1)

	second, ok := checkMinuteOrSecondDigits(s)
	if !ok || second > 59 {
		return fail()
	}
	s.TakeCount(2)

	tail, ok := s.Peek(4)
	if !ok || (tail != " PM#" && tail != " AM#") {
		return fail()
	}
	s.TakeCount(4)

	return string(s.Contents()[start:s.Offset()]), true
}

// takeTimeLiteral matches the time-only form `#H[H]:MM:SS AM|PM#`.
func takeTimeLiteral(s *source.Stream) (string, bool) {
	start := s.Offset()
	fail := func() (string, bool) { s.Seek(start); return "", false }

	if _, ok := s.Take("#", source.CaseSensitive); !ok {
		return fail()
	}

	hour, ok := checkHourDigits(s)
	if !ok {
		return fail()
	}
	if hour > 12 || hour == 0 {
		return fail()
	}
	if hour >= 10 {
		s.TakeCount(2)
	} else {
		s.TakeCount(1)
	}

	if p, ok := s.Peek(1); !ok || p != ":" {
		return fail()
	}
	s.TakeCount(1)

	minute, ok := checkMinuteOrSecondDigits(s)
	if !ok || minute > 59 {
		return fail()
	}
	s.TakeCount(2)

	if p, ok := s.Peek(1); !ok || p != ":" {
		return fail()
	}
	s.TakeCount(1)

	second, ok := checkMinuteOrSecondDigits(s)
	if !ok || second > 59 {
		return fail()
	}
	s.TakeCount(2)

	tail, ok := s.Peek(4)
	if !ok || (tail != " PM#" && tail != " AM#") {
		return fail()
	}
	s.TakeCount(4)

	return string(s.Contents()[start:s.Offset()]), true
}

// --- keyword / symbol tables --------------------------------------------

// takeKeyword scans the ordered keyword table in order, accepting the first
// entry whose text matches at the current position and is not itself a
// prefix of a longer identifier (spec §4.B step 7).
func takeKeyword(s *source.Stream) (string, token.Kind, bool) {
	for _, entry := range token.Keywords {
		if text, ok := takeMatchingText(s, entry.Text); ok {
			return text, entry.Kind, true
		}
	}
	return "", 0, false
}

// takeMatchingText consumes literal if present at the cursor under
// case-insensitive ASCII comparison, but only when the character
// immediately following it (if any) is not an identifier-continuation
// character — otherwise "Time" would shadow "Timer".
func takeMatchingText(s *source.Stream, literal string) (string, bool) {
	remaining := s.Remaining()
	n := len(literal)

	if remaining == n {
		return s.Take(literal, source.CaseInsensitiveASCII)
	}
	if remaining < n+1 {
		return "", false
	}
	peek, ok := s.Peek(n + 1)
	if !ok {
		return "", false
	}
	boundary := peek[n]
	if isIdentChar(boundary) {
		return "", false
	}
	return s.Take(literal, source.CaseInsensitiveASCII)
}

// takeSymbol scans the ordered symbol table for the first exact, case-
// sensitive match at the current position (spec §4.B step 8).
func takeSymbol(s *source.Stream) (string, token.Kind, bool) {
	for _, entry := range token.Symbols {
		if text, ok := s.Take(entry.Text, source.CaseSensitive); ok {
			return text, entry.Kind, true
		}
	}
	return "", 0, false
}

// --- numeric literal -----------------------------------------------------

// takeNumericLiteral matches digits, an optional fractional part, an
// optional E/D exponent, and an optional type suffix (spec §4.B step 9).
func takeNumericLiteral(s *source.Stream) (string, token.Kind, bool) {
	start := s.Offset()

	if _, ok := s.TakeASCIIDigits(); !ok {
		return "", 0, false
	}

	hasDecimal := false
	hasExponent := false

	if s.PeekText(".", source.CaseSensitive) {
		mark := s.Offset()
		s.TakeCount(1)
		if p, ok := s.Peek(1); ok && p >= "0" && p <= "9" {
			s.TakeASCIIDigits()
			hasDecimal = true
		} else {
			s.Seek(mark)
		}
	}

	if s.PeekText("E", source.CaseInsensitiveASCII) || s.PeekText("D", source.CaseInsensitiveASCII) {
		s.TakeCount(1)
		if s.PeekText("+", source.CaseSensitive) || s.PeekText("-", source.CaseSensitive) {
			s.TakeCount(1)
		}
		s.TakeASCIIDigits()
		hasExponent = true
	}

	var kind token.Kind
	switch {
	case s.PeekText("%", source.CaseSensitive):
		s.TakeCount(1)
		kind = token.IntegerLiteral
	case s.PeekText("&", source.CaseSensitive):
		s.TakeCount(1)
		kind = token.LongLiteral
	case s.PeekText("!", source.CaseSensitive):
		s.TakeCount(1)
		kind = token.SingleLiteral
	case s.PeekText("#", source.CaseSensitive):
		s.TakeCount(1)
		kind = token.DoubleLiteral
	case s.PeekText("@", source.CaseSensitive):
		s.TakeCount(1)
		kind = token.DecimalLiteral
	case hasDecimal || hasExponent:
		kind = token.SingleLiteral
	default:
		kind = token.IntegerLiteral
	}

	return string(s.Contents()[start:s.Offset()]), kind, true
}

// --- identifier ------------------------------------------------------------

// takeIdentifier matches an ASCII letter followed by letters, digits, or
// underscores (spec §4.B step 10).
func takeIdentifier(s *source.Stream) (string, bool) {
	p, ok := s.Peek(1)
	if !ok {
		return "", false
	}
	c := p[0]
	if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return "", false
	}
	return s.TakeASCIIUnderscoreAlphanumerics()
}

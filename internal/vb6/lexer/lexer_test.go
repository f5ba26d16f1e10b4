package lexer

import (
	"testing"

	"github.com/scriptandcompile/vb6parse/internal/vb6/source"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	s := source.New("test.bas", []byte(src))
	toks, diags := Tokenize(s)
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return toks
}

func TestTokenizeDimStatement(t *testing.T) {
	toks := tokenize(t, "Dim x As Integer")

	require.Len(t, toks, 7)
	assert.Equal(t, token.Token{Text: "Dim", Kind: token.DimKeyword, Offset: 0}, toks[0])
	assert.Equal(t, token.Whitespace, toks[1].Kind)
	assert.Equal(t, "x", toks[2].Text)
	assert.Equal(t, token.Identifier, toks[2].Kind)
	assert.Equal(t, token.AsKeyword, toks[4].Kind)
	assert.Equal(t, token.IntegerKeyword, toks[6].Kind)
}

func TestTokenizeDoubledQuoteAtStringStart(t *testing.T) {
	toks := tokenize(t, `r = """ " 'Also a comment`)

	require.True(t, len(toks) >= 7)
	assert.Equal(t, "r", toks[0].Text)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, token.EqualityOperator, toks[2].Kind)
	assert.Equal(t, `""" "`, toks[4].Text)
	assert.Equal(t, token.StringLiteral, toks[4].Kind)
	assert.Equal(t, "'Also a comment", toks[6].Text)
	assert.Equal(t, token.EndOfLineComment, toks[6].Kind)
}

func TestTokenizeDoubledQuoteMidString(t *testing.T) {
	toks := tokenize(t, `r = " "" " 'Also a comment`)

	require.True(t, len(toks) >= 7)
	assert.Equal(t, `" "" "`, toks[4].Text)
	assert.Equal(t, token.StringLiteral, toks[4].Kind)
	assert.Equal(t, token.EndOfLineComment, toks[6].Kind)
}

func TestTokenizeKeywordIdentifierDisambiguation(t *testing.T) {
	toks := tokenize(t, "Time")
	require.Len(t, toks, 1)
	assert.Equal(t, token.TimeKeyword, toks[0].Kind)

	toks = tokenize(t, "Timer")
	require.Len(t, toks, 1)
	assert.Equal(t, token.Identifier, toks[0].Kind)
	assert.Equal(t, "Timer", toks[0].Text)
}

func TestTokenizeMidDollarAssignment(t *testing.T) {
	toks := tokenize(t, `Mid$ s, 1, 2 = "x"`)

	assert.Equal(t, token.MidKeyword, toks[0].Kind)
	assert.Equal(t, token.DollarSign, toks[1].Kind)
}

func TestTokenizeMidStatement(t *testing.T) {
	toks := tokenize(t, `Mid s, 1, 2`)

	assert.Equal(t, token.MidKeyword, toks[0].Kind)
	assert.Equal(t, token.Whitespace, toks[1].Kind)
	assert.Equal(t, token.Identifier, toks[2].Kind)
}

func TestTokenizeNumericLiteralSuffixes(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntegerLiteral},
		{"42%", token.IntegerLiteral},
		{"42&", token.LongLiteral},
		{"3.14", token.SingleLiteral},
		{"3.14!", token.SingleLiteral},
		{"3.14#", token.DoubleLiteral},
		{"12.5@", token.DecimalLiteral},
		{"1E10", token.SingleLiteral},
	}
	for _, c := range cases {
		toks := tokenize(t, c.src)
		require.Len(t, toks, 1, "input %q", c.src)
		assert.Equal(t, c.kind, toks[0].Kind, "input %q", c.src)
	}
}

func TestTokenizeDateTimeLiteral(t *testing.T) {
	toks := tokenize(t, "#1/1/2000#")
	require.Len(t, toks, 1)
	assert.Equal(t, token.DateLiteral, toks[0].Kind)
	assert.Equal(t, "#1/1/2000#", toks[0].Text)

	toks = tokenize(t, "#12/31/1999 11:59:59 PM#")
	require.Len(t, toks, 1)
	assert.Equal(t, token.DateLiteral, toks[0].Kind)
}

func TestTokenizeTimeOnlyLiteral(t *testing.T) {
	toks := tokenize(t, "#12:30:00 PM#")
	require.Len(t, toks, 1)
	assert.Equal(t, token.DateLiteral, toks[0].Kind)
}

func TestTokenizeRoundTrip(t *testing.T) {
	src := "Dim x As Integer ' comment\r\nx = 1 + 2.5\r\n"
	s := source.New("test.bas", []byte(src))
	toks, diags := Tokenize(s)
	require.Empty(t, diags)

	var rebuilt string
	for _, tk := range toks {
		rebuilt += tk.Text
	}
	assert.Equal(t, src, rebuilt)
}

func TestTokenizeUnknownByteProducesDiagnostic(t *testing.T) {
	s := source.New("test.bas", []byte("x = 1 ` y"))
	toks, diags := Tokenize(s)
	require.NotEmpty(t, diags)
	assert.Equal(t, "test.bas", diags[0].File)

	var rebuilt string
	for _, tk := range toks {
		rebuilt += tk.Text
	}
	assert.Equal(t, "x = 1 ` y", rebuilt)
}

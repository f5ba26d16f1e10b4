// Package parser builds a lossless CST from a VB6 token stream: a
// recursive, table-dispatched recursive-descent parser that disambiguates
// ambiguous constructs with bounded, non-consuming lookahead instead of
// backtracking.
package parser

import (
	"fmt"
	"sort"

	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/lexer"
	"github.com/scriptandcompile/vb6parse/internal/vb6/source"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// maxLookahead bounds how many raw tokens the parser's disambiguation
// helpers will scan forward before giving up — the parser never
// backtracks, but it is allowed a bounded peek (spec §2).
const maxLookahead = 20

// Parser holds everything one parse needs: the token vector, a cursor, an
// incremental tree builder, and the parsing_header flag that toggles
// header-only keyword classification off after the first non-header
// construct (spec §4.D).
type Parser struct {
	fileName string
	src      []byte
	toks     *token.Stream
	b        *cst.Builder
	diags    []diag.Diagnostic

	parsingHeader bool
}

// Parse lexes and parses a complete file, returning the root green node and
// every diagnostic collected along the way (lexer and parser alike). A nil
// root is never returned for non-empty input: structural errors are
// recorded and the tree is closed at EOF instead (spec §7).
func Parse(fileName string, src []byte) (*cst.GreenNode, []diag.Diagnostic) {
	s := source.New(fileName, src)
	toks, lexDiags := lexer.Tokenize(s)
	return ParseTokens(fileName, src, toks, lexDiags)
}

// ParseTokens parses an already-lexed token vector. Used directly by the
// form-header extractor, which hands the generic parser the tokens
// remaining after the header it consumed itself (spec §4.G).
func ParseTokens(fileName string, src []byte, toks []token.Token, seedDiags []diag.Diagnostic) (*cst.GreenNode, []diag.Diagnostic) {
	p := &Parser{
		fileName:      fileName,
		src:           src,
		toks:          token.NewStream(toks),
		b:             cst.NewBuilder(),
		diags:         append([]diag.Diagnostic{}, seedDiags...),
		parsingHeader: true,
	}
	root := p.parseRoot()
	sort.SliceStable(p.diags, func(i, j int) bool { return p.diags[i].Offset < p.diags[j].Offset })
	return root, p.diags
}

func (p *Parser) parseRoot() *cst.GreenNode {
	p.b.StartNode(cst.Root)
	for !p.atEnd() {
		p.parseTopLevelStatement()
	}
	return p.b.FinishNode()
}

// --- cursor primitives ----------------------------------------------------

func (p *Parser) atEnd() bool { return p.toks.IsAtEnd() }

func (p *Parser) current() token.Token { return p.toks.Current() }

func (p *Parser) currentKind() token.Kind {
	if p.atEnd() {
		return token.Unknown
	}
	return p.current().Kind
}

// consumeToken copies the current token into the tree verbatim and
// advances. Panics if called at end of stream — callers must check atEnd.
func (p *Parser) consumeToken() token.Token {
	t := p.toks.Advance()
	p.b.ConsumeToken(t)
	return t
}

// consumeTokenAsUnknown copies the current token into the tree tagged
// token.Unknown, for error-recovery leaves (spec §7).
func (p *Parser) consumeTokenAsUnknown() token.Token {
	t := p.toks.Advance()
	p.b.ConsumeTokenAsUnknown(t)
	return t
}

// consumeTrivia consumes exactly one leading trivia token (whitespace,
// newline, or comment) if present, and reports whether it did.
func (p *Parser) consumeTrivia() bool {
	if p.atEnd() || !p.currentKind().IsTrivia() {
		return false
	}
	p.consumeToken()
	return true
}

// consumeAllTrivia consumes a run of leading trivia tokens.
func (p *Parser) consumeAllTrivia() {
	for p.consumeTrivia() {
	}
}

// is reports whether the current token (without skipping trivia) has kind k.
func (p *Parser) is(k token.Kind) bool {
	return !p.atEnd() && p.currentKind() == k
}

// errorf records a diagnostic anchored at the current position (or end of
// input if exhausted).
func (p *Parser) errorf(kind diag.Kind, format string, args ...any) {
	offset := p.toks.LastOffset()
	if !p.atEnd() {
		offset = p.current().Offset
	}
	p.diags = append(p.diags, diag.New(kind, p.fileName, p.src, offset, fmt.Sprintf(format, args...)))
}

// expect consumes the current token if it has kind k; otherwise it records
// an UnexpectedToken diagnostic and leaves the cursor where it is (the
// caller decides how to recover — usually by consuming one token as
// Unknown, or simply continuing).
func (p *Parser) expect(k token.Kind) (token.Token, bool) {
	if p.is(k) {
		return p.consumeToken(), true
	}
	got := "end of input"
	if !p.atEnd() {
		got = p.currentKind().String()
	}
	p.errorf(diag.UnexpectedToken, "expected %s, found %s", k, got)
	return token.Token{}, false
}

// --- bounded lookahead -----------------------------------------------------

// peekSignificant returns the ahead'th non-trivia token starting from the
// cursor (ahead=0 is the first non-trivia token at or after the cursor),
// scanning at most maxLookahead raw tokens.
func (p *Parser) peekSignificant(ahead int) (token.Token, bool) {
	seen := 0
	for i := 0; i < maxLookahead; i++ {
		t, ok := p.toks.Peek(i)
		if !ok {
			return token.Token{}, false
		}
		if t.Kind.IsTrivia() {
			continue
		}
		if seen == ahead {
			return t, true
		}
		seen++
	}
	return token.Token{}, false
}

// peekNextKeyword returns the first non-trivia token's kind at or after the
// cursor (spec §4.D, "peek_next_keyword").
func (p *Parser) peekNextKeyword() (token.Kind, bool) {
	t, ok := p.peekSignificant(0)
	if !ok {
		return token.Unknown, false
	}
	return t.Kind, true
}

// peekNextCountKeywords returns the kinds of the next n non-trivia tokens.
func (p *Parser) peekNextCountKeywords(n int) []token.Kind {
	out := make([]token.Kind, 0, n)
	for i := 0; i < n; i++ {
		t, ok := p.peekSignificant(i)
		if !ok {
			break
		}
		out = append(out, t.Kind)
	}
	return out
}

// scanForBeforeNewline reports whether kind k appears among the next
// maxLookahead raw tokens before a Newline (or end of input) is reached,
// without consuming anything. Used by assignment detection.
func (p *Parser) scanForBeforeNewline(k token.Kind) bool {
	for i := 0; i < maxLookahead; i++ {
		t, ok := p.toks.Peek(i)
		if !ok {
			return false
		}
		if t.Kind == token.Newline {
			return false
		}
		if t.Kind == k {
			return true
		}
	}
	return false
}

// --- statement list --------------------------------------------------------

// stopFunc reports whether the statement list parser should stop before
// consuming the current token.
type stopFunc func(p *Parser) bool

// parseStatementList opens a StatementList node and consumes statements
// (via parseTopLevelStatement's non-top-level sibling, parseStatement)
// until stop fires or input is exhausted, closing the node either way
// (spec §4.D, "Statement-list parsing").
func (p *Parser) parseStatementList(stop stopFunc) {
	p.b.StartNode(cst.StatementList)
	for !p.atEnd() && !stop(p) {
		p.parseStatement()
	}
	p.b.FinishNode()
}

// parseStatementsUntil consumes statements directly into whatever node is
// currently open, with no intervening StatementList wrapper — used for a
// single-line If's inline body, where the statement(s) are direct children
// of IfStatement/ElseClause rather than a nested list (spec §8 scenario 2).
func (p *Parser) parseStatementsUntil(stop stopFunc) {
	for !p.atEnd() && !stop(p) {
		p.parseStatement()
	}
}

func atEOF(p *Parser) bool { return p.atEnd() }

// atEndOfBlock builds a stop predicate that fires when the cursor is at an
// EndKeyword immediately followed (among significant tokens) by next.
func atEndOfBlock(next token.Kind) stopFunc {
	return func(p *Parser) bool {
		if !p.is(token.EndKeyword) {
			return false
		}
		k, ok := p.peekSignificant(1)
		return ok && k.Kind == next
	}
}

// atKeyword builds a stop predicate that fires at any of the given kinds.
func atKeyword(kinds ...token.Kind) stopFunc {
	return func(p *Parser) bool {
		if p.atEnd() {
			return false
		}
		ck := p.currentKind()
		for _, k := range kinds {
			if ck == k {
				return true
			}
		}
		return false
	}
}

package parser

import (
	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// parseClassHeader parses the `.cls` top-of-file shape: a leading VERSION
// line followed by an optional flat BEGIN...END property block (spec §6
// ".cls"; spec §8 scenario 4). Unlike the `.frm`/`.ctl` Begin/End control
// tree, which bypasses the CST entirely via the form-header extractor
// (package formheader), a `.cls` header has no type/name and no nested
// groups, so it is built directly into the CST here as sibling nodes
// rather than through a typed extractor pass. Grounded on
// formheader.parseVersionDirect's VERSION-line handling, rebuilt as
// CST-producing code.
func (p *Parser) parseClassHeader() {
	p.parseVersionStatement()
	p.consumeAllTrivia()
	if p.is(token.BeginKeyword) {
		p.parsePropertiesBlock()
	}
}

// parseVersionStatement parses `VERSION n.m [CLASS]` to end of line. A
// fractional version number lexes as one numeric-literal token, so no
// separate integer-dot-integer grammar is needed (mirrors
// formheader.parseVersionDirect).
func (p *Parser) parseVersionStatement() {
	p.b.StartNode(cst.VersionStatement)
	p.consumeToken() // VERSION
	p.consumeAllTrivia()

	if p.currentKind().IsNumericLiteral() {
		p.consumeToken()
	} else {
		p.errorf(diag.MalformedPropertyLine, "expected a version number after VERSION")
	}
	p.consumeAllTrivia()

	if p.is(token.ClassKeyword) {
		p.consumeToken()
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parsePropertiesBlock parses a flat `BEGIN ... END` property block: zero
// or more `Key = Value` lines, each a Property node (spec §8 scenario 4).
func (p *Parser) parsePropertiesBlock() {
	p.b.StartNode(cst.PropertiesBlock)
	p.consumeToken() // BEGIN
	p.consumeThroughNewline()

	for !p.atEnd() && !p.is(token.EndKeyword) {
		if p.consumeTrivia() {
			continue
		}
		if p.is(token.Identifier) {
			p.parseProperty()
			continue
		}
		// Unrecognized line in the property block: consume it plainly
		// rather than abandoning the block (same recovery policy as
		// parseStatement's last resort).
		p.consumeToken()
	}

	if p.is(token.EndKeyword) {
		p.consumeToken()
		p.consumeThroughNewline()
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed class properties block: missing END")
	}
	p.b.FinishNode()
}

// parseProperty parses one `Key = Value` line into a Property node holding
// a PropertyKey and a PropertyValue; any trailing whitespace and comment
// remain direct children of Property rather than folded into PropertyValue,
// keeping the value's text exactly the token(s) that carry it (spec §8
// scenario 4: "a Property with key MultiUse and value -1").
func (p *Parser) parseProperty() {
	p.b.StartNode(cst.Property)

	p.b.StartNode(cst.PropertyKey)
	p.consumeToken() // name
	p.b.FinishNode()

	p.consumeAllTrivia()
	if p.is(token.EqualityOperator) {
		p.consumeToken()
	}
	p.consumeAllTrivia()

	p.b.StartNode(cst.PropertyValue)
	for !p.atEnd() && !p.currentKind().IsTrivia() {
		p.consumeToken()
	}
	p.b.FinishNode()

	p.consumeThroughNewline()
	p.b.FinishNode()
}

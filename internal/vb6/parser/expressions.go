package parser

import (
	"strings"

	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// binaryPrecedence is the Pratt parser's left-binding-power table, low to
// high (spec §4.F "Expressions"). Member access/call/index aren't listed
// here: they bind tighter than anything below and are handled directly in
// parsePostfix rather than through this table.
var binaryPrecedence = map[token.Kind]int{
	token.ImpKeyword: 1,
	token.EqvKeyword: 2,
	token.XorKeyword: 3,
	token.OrKeyword:  4,
	token.AndKeyword: 5,

	token.EqualityOperator:           7,
	token.InequalityOperator:         7,
	token.LessThanOperator:           7,
	token.GreaterThanOperator:        7,
	token.LessThanOrEqualOperator:    7,
	token.GreaterThanOrEqualOperator: 7,
	token.LikeKeyword:                7,
	token.IsKeyword:                  7,

	token.Ampersand: 8,

	token.AdditionOperator:    9,
	token.SubtractionOperator: 9,

	token.ModKeyword: 10,

	token.BackwardSlashOperator: 11,

	token.MultiplicationOperator: 12,
	token.DivisionOperator:       12,

	token.ExponentiationOperator: 14,
}

const (
	unaryNotBp         = 6
	unaryMinusBp       = 13
	unaryAddressOfBp   = 15
	lowestBindingPower = 0
)

// parseExpressionUntil parses one expression and stops once the cursor
// reaches stop (or a Newline, or end of input) without consuming it. It is
// the entry point statement parsers use for conditions, l-values, and
// r-values, all of which are delimited by a fixed following token rather
// than by the expression grammar itself (spec §4.F callers: If condition
// before Then, assignment sides around `=`, Do/While conditions).
func (p *Parser) parseExpressionUntil(stop token.Kind) {
	if p.atExpressionBoundary(stop) {
		return
	}
	p.parseExpressionBp(lowestBindingPower, stop)
}

func (p *Parser) atExpressionBoundary(stop token.Kind) bool {
	if p.atEnd() {
		return true
	}
	k := p.currentKind()
	if k == stop || k == token.Newline {
		return true
	}
	return false
}

// consumeExpressionTrivia skips trivia between an operand and the next
// operator, the same way consumeAllTrivia does, except when stop is Newline:
// then a Newline is left unconsumed so atExpressionBoundary can see it and
// stop the expression there. The caller bounding the expression on Newline
// (an assignment's r-value, a Do/While condition) still needs that token to
// close out its own node; swallowing it here would strand whatever follows
// on the same line for the statement parser to never see.
func (p *Parser) consumeExpressionTrivia(stop token.Kind) {
	for !p.atEnd() {
		k := p.currentKind()
		if !k.IsTrivia() {
			return
		}
		if k == token.Newline && stop == token.Newline {
			return
		}
		p.consumeToken()
	}
}

// parseExpressionBp implements the Pratt loop: parse one prefix/primary
// expression, then repeatedly fold in infix operators whose binding power
// exceeds minBp, using the builder's checkpoint/start_node_at mechanism to
// wrap the already-emitted left operand retroactively (spec §4.D "the
// parser never rewinds after committing to a node" — the checkpoint lets it
// commit to BinaryExpression only once it discovers an operator, without
// ever un-committing the left operand already in the tree).
func (p *Parser) parseExpressionBp(minBp int, stop token.Kind) {
	cp := p.b.Checkpoint()
	p.parsePrefix(stop)

	for {
		p.consumeExpressionTrivia(stop)
		if p.atExpressionBoundary(stop) {
			return
		}
		opKind := p.currentKind()
		bp, ok := binaryPrecedence[opKind]
		if !ok || bp <= minBp {
			return
		}

		p.b.StartNodeAt(cp, cst.BinaryExpression)
		p.consumeToken() // operator
		p.consumeAllTrivia()
		p.parseExpressionBp(bp, stop)
		p.b.FinishNode()
	}
}

// parsePrefix handles unary Not/-/+/AddressOf before falling through to a
// postfix-wrapped primary.
func (p *Parser) parsePrefix(stop token.Kind) {
	k := p.currentKind()
	switch k {
	case token.NotKeyword:
		cp := p.b.Checkpoint()
		p.consumeToken()
		p.consumeAllTrivia()
		p.parseExpressionBp(unaryNotBp, stop)
		p.b.StartNodeAt(cp, cst.UnaryExpression)
		p.b.FinishNode()
	case token.SubtractionOperator, token.AdditionOperator:
		cp := p.b.Checkpoint()
		p.consumeToken()
		p.consumeAllTrivia()
		p.parseExpressionBp(unaryMinusBp, stop)
		p.b.StartNodeAt(cp, cst.UnaryExpression)
		p.b.FinishNode()
	case token.AddressOfKeyword:
		cp := p.b.Checkpoint()
		p.consumeToken()
		p.consumeAllTrivia()
		p.parseExpressionBp(unaryAddressOfBp, stop)
		p.b.StartNodeAt(cp, cst.AddressOfExpression)
		p.b.FinishNode()
	default:
		p.parsePostfix(stop)
	}
}

// parsePostfix parses one primary expression, then folds in any trailing
// member-access (`.name`), call (`(args)`), or index (`(args)`) suffixes —
// the tightest-binding, left-associative group the spec calls out
// separately from the main precedence table (spec §4.F).
func (p *Parser) parsePostfix(stop token.Kind) {
	cp := p.b.Checkpoint()
	p.parsePrimary(stop)

	for {
		switch p.currentKind() {
		case token.PeriodOperator:
			p.b.StartNodeAt(cp, cst.MemberAccessExpression)
			p.consumeToken() // .
			if p.is(token.Identifier) {
				p.consumeToken()
			} else if !p.atEnd() {
				p.errorf(diag.UnexpectedToken, "expected member name, found %s", p.currentKind())
				p.consumeTokenAsUnknown()
			}
			p.b.FinishNode()
		case token.LeftParenthesis:
			p.b.StartNodeAt(cp, cst.CallExpression)
			p.parseArgumentList()
			p.b.FinishNode()
		default:
			return
		}
	}
}

// parseArgumentList parses a parenthesized, comma-separated argument list.
func (p *Parser) parseArgumentList() {
	p.b.StartNode(cst.ArgumentList)
	p.consumeToken() // (
	for {
		p.consumeAllTrivia()
		if p.is(token.RightParenthesis) || p.atEnd() || p.is(token.Newline) {
			break
		}
		p.parseArgument()
		p.consumeAllTrivia()
		if p.is(token.Comma) {
			p.consumeToken()
			continue
		}
		break
	}
	if p.is(token.RightParenthesis) {
		p.consumeToken()
	}
	p.b.FinishNode()
}

func (p *Parser) parseArgument() {
	p.b.StartNode(cst.Argument)
	p.parseExpressionBp(lowestBindingPower, token.Comma)
	p.b.FinishNode()
}

// parsePrimary parses a literal, identifier, parenthesized expression,
// TypeOf, or New expression leaf — the base case of the Pratt recursion.
func (p *Parser) parsePrimary(stop token.Kind) {
	if p.atEnd() {
		return
	}

	k := p.currentKind()
	switch {
	case k.IsNumericLiteral():
		p.b.StartNode(cst.NumericLiteralExpression)
		p.consumeToken()
		p.b.FinishNode()
	case k == token.StringLiteral:
		p.b.StartNode(cst.StringLiteralExpression)
		p.consumeToken()
		p.b.FinishNode()
	case k == token.DateLiteral:
		p.b.StartNode(cst.LiteralExpression)
		p.consumeToken()
		p.b.FinishNode()
	case k == token.TrueKeyword, k == token.FalseKeyword:
		p.b.StartNode(cst.BooleanLiteralExpression)
		p.consumeToken()
		p.b.FinishNode()
	case k == token.NothingKeyword, k == token.NullKeyword, k == token.EmptyKeyword, k == token.MeKeyword:
		p.b.StartNode(cst.LiteralExpression)
		p.consumeToken()
		p.b.FinishNode()
	case k == token.LeftParenthesis:
		p.b.StartNode(cst.ParenthesizedExpression)
		p.consumeToken()
		p.consumeAllTrivia()
		p.parseExpressionBp(lowestBindingPower, token.RightParenthesis)
		p.consumeAllTrivia()
		if p.is(token.RightParenthesis) {
			p.consumeToken()
		}
		p.b.FinishNode()
	case k == token.Identifier && isIdentTextFold(p.current(), "TypeOf"):
		p.parseTypeOfExpression()
	case k == token.NewKeyword:
		p.b.StartNode(cst.NewExpression)
		p.consumeToken()
		p.consumeAllTrivia()
		if p.is(token.Identifier) {
			p.consumeToken()
		}
		p.b.FinishNode()
	case k == token.Identifier || isExpressionLeafKeyword(k):
		p.b.StartNode(cst.IdentifierExpression)
		p.consumeToken()
		if p.is(token.DollarSign) {
			p.consumeToken()
		}
		p.b.FinishNode()
	default:
		p.errorf(diag.UnexpectedToken, "expected expression, found %s", k)
		if !p.atEnd() {
			p.consumeTokenAsUnknown()
		}
	}
}

// isIdentTextFold reports whether t is an Identifier whose text matches
// want case-insensitively. TypeOf has no reserved token of its own (the
// lexer has no TypeOfKeyword), so it is recognized by text the same way
// formheader recognizes BeginProperty/EndProperty.
func isIdentTextFold(t token.Token, want string) bool {
	return t.Kind == token.Identifier && strings.EqualFold(t.Text, want)
}

// parseTypeOfExpression parses `TypeOf expr Is typeName`, the object-type
// test VB6 allows wherever a Boolean expression is expected (most commonly
// an If condition guarding on a control's runtime type).
func (p *Parser) parseTypeOfExpression() {
	p.b.StartNode(cst.TypeOfExpression)
	p.consumeToken() // TypeOf
	p.consumeAllTrivia()

	p.parseExpressionUntil(token.IsKeyword)
	p.consumeAllTrivia()

	if p.is(token.IsKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		for !p.atEnd() && (p.is(token.Identifier) || p.is(token.PeriodOperator)) {
			p.consumeToken()
		}
	}
	p.b.FinishNode()
}

// isExpressionLeafKeyword reports whether k is a keyword VB6 allows to
// stand in for an identifier expression leaf (Date/Time as pseudo-variables,
// and the library-statement keywords when used as function calls instead —
// e.g. Mid$(...) as an expression rather than the Mid statement).
func isExpressionLeafKeyword(k token.Kind) bool {
	switch k {
	case token.DateKeyword, token.TimeKeyword, token.MidKeyword, token.MidBKeyword,
		token.LenKeyword, token.ErrorKeyword, token.InputKeyword:
		return true
	default:
		return false
	}
}

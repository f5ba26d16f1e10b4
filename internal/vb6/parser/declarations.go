package parser

import (
	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// defTypeKeywords are the DefBool..DefVar family, each introducing a
// DefType statement (spec §4.D top-level dispatch).
var defTypeKeywords = map[token.Kind]bool{
	token.DefBoolKeyword: true, token.DefByteKeyword: true, token.DefIntKeyword: true,
	token.DefLngKeyword: true, token.DefCurKeyword: true, token.DefSngKeyword: true,
	token.DefDblKeyword: true, token.DefDecKeyword: true, token.DefDateKeyword: true,
	token.DefStrKeyword: true, token.DefObjKeyword: true, token.DefVarKeyword: true,
}

// parseTopLevelStatement dispatches module-level constructs: declarations,
// procedures, and anything parseStatement also understands (spec §4.D,
// "Top-level loop").
func (p *Parser) parseTopLevelStatement() {
	if p.consumeTrivia() {
		return
	}

	k := p.currentKind()

	if p.parsingHeader {
		p.parsingHeader = false
		if k == token.VersionKeyword {
			p.parseClassHeader()
			return
		}
	}

	switch {
	case k == token.AttributeKeyword:
		p.parseAttributeStatement()
		return
	case k == token.OptionKeyword:
		p.parseOptionStatement()
		return
	case defTypeKeywords[k]:
		p.parseDefTypeStatement()
		return
	case k == token.DeclareKeyword:
		p.parseDeclareStatement("")
		return
	case k == token.EventKeyword:
		p.parseEventStatement("")
		return
	case k == token.ImplementsKeyword:
		p.parseImplementsStatement()
		return
	case k == token.EnumKeyword:
		p.parseEnumStatement("")
		return
	case k == token.SubKeyword:
		p.parseProcedure("", false)
		return
	case k == token.FunctionKeyword:
		p.parseProcedure("", false)
		return
	case k == token.PropertyKeyword:
		p.parseProcedure("", false)
		return
	case k == token.PublicKeyword || k == token.PrivateKeyword || k == token.FriendKeyword || k == token.StaticKeyword:
		p.parseVisibilityPrefixed()
		return
	}

	p.parseStatement()
}

// parseVisibilityPrefixed handles the dispatch ambiguity the spec calls out
// explicitly: a leading Public/Private/Friend/Static could introduce a
// procedure, a Declare, an Enum, an Event, Implements, or a plain
// declaration-to-end-of-line. It peeks the next two significant keywords to
// decide (spec §4.D, "peek the next two non-trivia keywords").
func (p *Parser) parseVisibilityPrefixed() {
	visibility := p.currentKind()
	lookahead := p.peekNextCountKeywords(3)
	// lookahead[0] is this same visibility keyword; inspect what follows.
	var next token.Kind
	if len(lookahead) > 1 {
		next = lookahead[1]
	}

	switch {
	case next == token.StaticKeyword:
		// "Public Static Sub/Function/Property"
		p.parseProcedureWithVisibility(visibility, true)
	case next == token.SubKeyword || next == token.FunctionKeyword || next == token.PropertyKeyword:
		p.parseProcedureWithVisibility(visibility, false)
	case next == token.DeclareKeyword:
		p.parseDeclareStatement(visibility.String())
	case next == token.EnumKeyword:
		p.parseEnumStatement(visibility.String())
	case next == token.EventKeyword:
		p.parseEventStatement(visibility.String())
	case next == token.ImplementsKeyword:
		p.parseImplementsStatement()
	case next == token.ConstKeyword || next == token.TypeKeyword:
		p.parseDeclarationToNewline(declKindFor(next))
	default:
		// Public/Private/Friend/Static x As T, or a bare Static statement
		// inside a procedure body.
		p.parseDeclarationToNewline(cst.DimStatement)
	}
}

func declKindFor(k token.Kind) cst.Kind {
	switch k {
	case token.ConstKeyword:
		return cst.ConstStatement
	case token.TypeKeyword:
		return cst.TypeStatement
	case token.ReDimKeyword:
		return cst.ReDimStatement
	case token.EraseKeyword:
		return cst.EraseStatement
	default:
		return cst.DimStatement
	}
}

// parseProcedureWithVisibility consumes the visibility (and optional
// Static) keyword(s), then retroactively wraps them into the procedure
// node via a checkpoint — taken before either token is consumed, so the
// visibility/Static modifiers end up inside the SubStatement/
// FunctionStatement/PropertyStatement node rather than as siblings of it.
func (p *Parser) parseProcedureWithVisibility(visibility token.Kind, static bool) {
	cp := p.b.Checkpoint()
	p.consumeToken()
	p.consumeAllTrivia()
	if static {
		p.consumeToken() // Static
		p.consumeAllTrivia()
	}
	p.parseProcedureAt(&cp)
}

// parseProcedure parses Sub/Function/Property Get|Let|Set, all sharing the
// skeleton: keyword, identifier, parameter list, optional `As Type`,
// newline, body statement list, `End <kind>` (spec §4.E).
func (p *Parser) parseProcedure(_ string, _ bool) {
	p.parseProcedureAt(nil)
}

// parseProcedureAt is parseProcedure's shared implementation. When cp is
// non-nil, the procedure node is opened with StartNodeAt so it adopts
// whatever (visibility/Static) tokens were consumed since that checkpoint;
// otherwise it opens a fresh node at the cursor.
func (p *Parser) parseProcedureAt(cp *cst.Checkpoint) {
	var nodeKind cst.Kind
	var endNext token.Kind

	switch p.currentKind() {
	case token.SubKeyword:
		nodeKind, endNext = cst.SubStatement, token.SubKeyword
	case token.FunctionKeyword:
		nodeKind, endNext = cst.FunctionStatement, token.FunctionKeyword
	case token.PropertyKeyword:
		nodeKind, endNext = cst.PropertyStatement, token.PropertyKeyword
	default:
		nodeKind, endNext = cst.SubStatement, token.SubKeyword
	}

	if cp != nil {
		p.b.StartNodeAt(*cp, nodeKind)
	} else {
		p.b.StartNode(nodeKind)
	}
	p.consumeToken() // Sub/Function/Property
	p.consumeAllTrivia()

	if nodeKind == cst.PropertyStatement {
		// Get|Let|Set accessor kind.
		if p.is(token.GetKeyword) || p.is(token.LetKeyword) || p.is(token.SetKeyword) {
			p.consumeToken()
			p.consumeAllTrivia()
		}
	}

	if p.is(token.Identifier) {
		p.consumeToken()
	}
	p.consumeAllTriviaExceptNewline()

	p.parseParameterList()
	p.consumeAllTriviaExceptNewline()

	if p.is(token.AsKeyword) {
		p.consumeToken()
		p.consumeRestOfLinePrefix()
	}

	p.consumeThroughNewline()

	p.parseStatementList(atEndOfBlock(endNext))

	if p.is(token.EndKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		if !p.atEnd() {
			p.consumeToken() // Sub/Function/Property
		}
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed %s: missing matching End", nodeKind)
	}
	p.consumeThroughNewline()

	p.b.FinishNode()
}

// parseParameterList parses `(name list)`: comma-separated parameters each
// of `[Optional] [ByVal|ByRef|ParamArray] name [()] [As type] [= default]`
// (spec §4.E).
func (p *Parser) parseParameterList() {
	p.b.StartNode(cst.ParameterList)
	if p.is(token.LeftParenthesis) {
		p.consumeToken()
		for {
			p.consumeAllTrivia()
			if p.is(token.RightParenthesis) || p.atEnd() {
				break
			}
			p.parseParameter()
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
	}
	p.b.FinishNode()
}

func (p *Parser) parseParameter() {
	p.b.StartNode(cst.Parameter)
	for !p.atEnd() && !p.is(token.Comma) && !p.is(token.RightParenthesis) && !p.is(token.Newline) {
		p.consumeToken()
	}
	p.b.FinishNode()
}

// parseAttributeStatement parses `Attribute name = value` to end of line.
// Attribute statements are the mechanism by which VB_Name overrides a
// form's Begin-line name (spec §8, "Attribute-name precedence").
func (p *Parser) parseAttributeStatement() {
	p.b.StartNode(cst.AttributeStatement)
	p.consumeToken() // Attribute
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseOptionStatement dispatches Option Base / Option Compare / a generic
// Option statement by peeking the next keyword (spec §4.D).
func (p *Parser) parseOptionStatement() {
	p.b.StartNode(cst.OptionStatement)
	p.consumeToken() // Option
	p.consumeThroughNewline()
	p.b.FinishNode()
}

func (p *Parser) parseDefTypeStatement() {
	p.b.StartNode(cst.DefTypeStatement)
	p.consumeToken()
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseDeclareStatement parses `[visibility] Declare Sub|Function name Lib
// "..." [Alias "..."] (params) [As type]`, with no body (spec §4.E). The
// cursor may be at the leading visibility keyword or at Declare itself;
// either way everything through the newline belongs to this node.
func (p *Parser) parseDeclareStatement(_ string) {
	p.b.StartNode(cst.DeclareStatement)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseEventStatement parses `[visibility] Event name (params)`, with no
// body (spec §4.E).
func (p *Parser) parseEventStatement(_ string) {
	p.b.StartNode(cst.EventStatement)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

func (p *Parser) parseImplementsStatement() {
	p.b.StartNode(cst.ImplementsStatement)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseEnumStatement parses `[visibility] Enum name` then lenient member
// lines until `End Enum` (spec §4.E: members accept identifier, `=`,
// numeric literal, sign, `&`-hex, parens, arithmetic operators, commas,
// whitespace, comments, and newlines).
func (p *Parser) parseEnumStatement(_ string) {
	p.b.StartNode(cst.EnumStatement)
	p.consumeThroughNewline() // [visibility] Enum name

	for !p.atEnd() && !atEndOfBlock(token.EnumKeyword)(p) {
		p.consumeThroughNewline()
	}

	if p.is(token.EndKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		if p.is(token.EnumKeyword) {
			p.consumeToken()
		}
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed Enum: missing End Enum")
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseDeclarationToNewline handles Dim/Const/ReDim/Erase/Type/Private/
// Public/Static declarations that aren't followed by a procedure keyword:
// the body is everything up to and including the next newline, preserved
// as flat tokens rather than sub-noded further (spec §4.E, intentional).
func (p *Parser) parseDeclarationToNewline(kind cst.Kind) {
	p.b.StartNode(kind)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// consumeThroughNewline streams tokens into the current node until and
// including the next Newline, or end of input.
func (p *Parser) consumeThroughNewline() {
	for !p.atEnd() {
		t := p.current()
		p.consumeToken()
		if t.Kind == token.Newline {
			return
		}
	}
}

// consumeRestOfLinePrefix streams trivia and a single identifier/type token
// run (used after `As` to capture the type name without a newline).
func (p *Parser) consumeRestOfLinePrefix() {
	p.consumeAllTrivia()
	for !p.atEnd() && !p.is(token.Newline) && !p.is(token.Comma) {
		if p.is(token.EqualityOperator) {
			break
		}
		p.consumeToken()
	}
}

package parser

import (
	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// libraryStatementKeywords is the closed set of ~40 built-in statement
// keywords, each parsed as "keyword + tokens-to-newline" (spec §4.F).
var libraryStatementKeywords = map[token.Kind]cst.Kind{
	token.AppActivateKeyword:   cst.AppActivateStatement,
	token.BeepKeyword:          cst.BeepStatement,
	token.ChDirKeyword:         cst.ChDirStatement,
	token.ChDriveKeyword:       cst.ChDriveStatement,
	token.CloseKeyword:         cst.CloseStatement,
	token.DateKeyword:          cst.DateStatement,
	token.DeleteSettingKeyword: cst.DeleteSettingStatement,
	token.ErrorKeyword:         cst.ErrorStatement,
	token.FileCopyKeyword:      cst.FileCopyStatement,
	token.GetKeyword:           cst.GetStatement,
	token.PutKeyword:           cst.PutStatement,
	token.InputKeyword:         cst.InputStatement,
	token.KillKeyword:          cst.KillStatement,
	token.LineKeyword:          cst.LineInputStatement,
	token.LoadKeyword:          cst.LoadStatement,
	token.UnloadKeyword:        cst.UnloadStatement,
	token.LockKeyword:          cst.LockStatement,
	token.UnlockKeyword:        cst.UnlockStatement,
	token.LSetKeyword:          cst.LSetStatement,
	token.RSetKeyword:          cst.RSetStatement,
	token.MidKeyword:           cst.MidStatement,
	token.MidBKeyword:          cst.MidBStatement,
	token.MkDirKeyword:         cst.MkDirStatement,
	token.NameKeyword:          cst.NameStatement,
	token.OpenKeyword:          cst.OpenStatement,
	token.PrintKeyword:         cst.PrintStatement,
	token.RandomizeKeyword:     cst.RandomizeStatement,
	token.ResetKeyword:         cst.ResetStatement,
	token.RmDirKeyword:         cst.RmDirStatement,
	token.SavePictureKeyword:   cst.SavePictureStatement,
	token.SaveSettingKeyword:   cst.SaveSettingStatement,
	token.SeekKeyword:          cst.SeekStatement,
	token.SendKeysKeyword:      cst.SendKeysStatement,
	token.SetAttrKeyword:       cst.SetAttrStatement,
	token.StopKeyword:          cst.StopStatement,
	token.TimeKeyword:          cst.TimeStatement,
	token.WidthKeyword:         cst.WidthStatement,
	token.WriteKeyword:         cst.WriteStatement,
}

// parseStatement is the statement-list-level dispatcher: it handles
// everything parseTopLevelStatement also delegates to once module-level
// declarations are ruled out (spec §4.D "Else" branch, §4.F).
func (p *Parser) parseStatement() {
	if p.consumeTrivia() {
		return
	}

	k := p.currentKind()

	// A keyword immediately followed by `$` is the function form, not the
	// statement form (spec §4.F "Ambiguity rule") — Mid$(...) = "x" must
	// parse as an assignment, not a MidStatement.
	if isLibraryStatementKeyword(p, k) {
		p.parseLibraryStatement(libraryStatementKeywords[k])
		return
	}

	switch k {
	case token.DimKeyword, token.ConstKeyword, token.ReDimKeyword, token.EraseKeyword,
		token.TypeKeyword, token.StaticKeyword:
		p.parseDeclarationToNewline(declKindFor(k))
		return
	case token.CallKeyword:
		p.parseObjectStatement(cst.CallStatement, token.Unknown)
		return
	case token.SetKeyword:
		p.parseObjectStatement(cst.SetStatement, token.Unknown)
		return
	case token.WithKeyword:
		p.parseObjectStatement(cst.WithStatement, token.WithKeyword)
		return
	case token.RaiseEventKeyword:
		p.parseObjectStatement(cst.RaiseEventStatement, token.Unknown)
		return
	case token.IfKeyword:
		p.parseIfStatement()
		return
	case token.DoKeyword:
		p.parseDoStatement()
		return
	case token.ForKeyword:
		p.parseForStatement()
		return
	case token.WhileKeyword:
		p.parseWhileStatement()
		return
	case token.SelectKeyword:
		p.parseSelectCaseStatement()
		return
	case token.OnKeyword:
		p.parseOnStatement()
		return
	case token.GotoKeyword:
		p.parseSimpleToNewline(cst.GotoStatement)
		return
	case token.GoSubKeyword:
		p.parseSimpleToNewline(cst.GoSubStatement)
		return
	case token.ReturnKeyword:
		p.parseSimpleToNewline(cst.ReturnStatement)
		return
	case token.ResumeKeyword:
		p.parseSimpleToNewline(cst.ResumeStatement)
		return
	case token.ExitKeyword:
		p.parseSimpleToNewline(cst.ExitStatement)
		return
	case token.AttributeKeyword:
		p.parseAttributeStatement()
		return
	}

	if p.atLabel() {
		p.parseLabelStatement()
		return
	}

	if p.atAssignment() {
		p.parseAssignmentStatement()
		return
	}

	if k == token.Identifier || isObjectCapableKeyword(k) {
		p.parseObjectStatement(cst.ObjectStatement, token.Unknown)
		return
	}

	// Last resort: no statement form recognized this token. A keyword or
	// identifier is still legitimate VB6 text (e.g. a bare header keyword
	// like VERSION/CLASS/BEGIN showing up outside its recognized
	// construct); consume it plainly with no diagnostic. Only genuinely
	// unexpected punctuation gets tagged Unknown (spec §7 recovery policy).
	if k == token.Identifier || k.IsKeyword() {
		p.consumeToken()
		return
	}
	p.errorf(diag.UnexpectedToken, "unexpected token %s", k)
	p.consumeTokenAsUnknown()
}

// isLibraryStatementKeyword reports whether k introduces a library
// statement at the current position — false if the keyword is immediately
// followed by `$`, which makes it a function reference instead (spec §4.F
// "Ambiguity rule").
func isLibraryStatementKeyword(p *Parser, k token.Kind) bool {
	if _, ok := libraryStatementKeywords[k]; !ok {
		return false
	}
	next, ok := p.toks.Peek(1)
	if ok && next.Kind == token.DollarSign {
		return false
	}
	return true
}

// isObjectCapableKeyword reports whether k is one of the handful of
// keywords VB6 permits as an l-value/statement head outside their literal
// meaning (Date, Time, Mid — spec §4.F "Assignment").
func isObjectCapableKeyword(k token.Kind) bool {
	switch k {
	case token.DateKeyword, token.TimeKeyword, token.MidKeyword, token.MidBKeyword:
		return true
	default:
		return false
	}
}

// parseLibraryStatement parses "keyword + tokens-to-newline" inside a
// kind-specific node (spec §4.F).
func (p *Parser) parseLibraryStatement(kind cst.Kind) {
	p.b.StartNode(kind)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

func (p *Parser) parseSimpleToNewline(kind cst.Kind) {
	p.b.StartNode(kind)
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseObjectStatement parses Call/Set/RaiseEvent/a bare object-call
// statement by streaming to newline; With additionally opens a nested
// statement list terminated by End With (spec §4.F "Object statements").
func (p *Parser) parseObjectStatement(kind cst.Kind, blockNext token.Kind) {
	p.b.StartNode(kind)
	p.consumeToken() // keyword, or the leading identifier for a bare call
	if blockNext == token.WithKeyword {
		p.consumeThroughNewlineNoConsume()
		p.parseStatementList(atEndOfBlock(token.WithKeyword))
		if p.is(token.EndKeyword) {
			p.consumeToken()
			p.consumeAllTrivia()
			if p.is(token.WithKeyword) {
				p.consumeToken()
			}
		} else {
			p.errorf(diag.UnclosedBlockAtEOF, "unclosed With: missing End With")
		}
		p.consumeThroughNewline()
	} else {
		p.consumeThroughNewline()
	}
	p.b.FinishNode()
}

// consumeThroughNewlineNoConsume streams trivia/tokens up to (but not
// including) the next Newline, which the caller consumes separately once
// it decides what follows.
func (p *Parser) consumeThroughNewlineNoConsume() {
	for !p.atEnd() && !p.is(token.Newline) {
		p.consumeToken()
	}
	if p.is(token.Newline) {
		p.consumeToken()
	}
}

// --- control flow -----------------------------------------------------

// parseIfStatement distinguishes multi-line from single-line If by peeking
// past `If <cond> Then` for a newline (spec §4.F "Control flow").
func (p *Parser) parseIfStatement() {
	p.b.StartNode(cst.IfStatement)
	p.consumeToken() // If
	p.consumeAllTrivia()

	p.parseExpressionUntil(token.ThenKeyword)
	p.consumeAllTrivia()
	if p.is(token.ThenKeyword) {
		p.consumeToken()
	}
	p.consumeAllTriviaExceptNewline()

	if p.is(token.Newline) {
		p.consumeToken()
		p.parseStatementList(atKeyword(token.ElseKeyword, token.ElseIfKeyword).or(atEndOfBlock(token.IfKeyword)))

		for p.is(token.ElseIfKeyword) {
			p.parseElseIfClause()
		}
		if p.is(token.ElseKeyword) {
			p.parseElseClause()
		}
		if p.is(token.EndKeyword) {
			p.consumeToken()
			p.consumeAllTrivia()
			if p.is(token.IfKeyword) {
				p.consumeToken()
			}
		} else {
			p.errorf(diag.UnclosedBlockAtEOF, "unclosed If: missing End If")
		}
		p.consumeThroughNewline()
	} else {
		// Single-line If: one or more statements on the same line, with an
		// optional Else tail also on the same line. Unlike the block form, the
		// inline body is not wrapped in a StatementList: the statement(s)
		// become direct children of IfStatement/ElseClause (spec §8 scenario 2).
		p.parseStatementsUntil(atKeyword(token.ElseKeyword).or(atEOF).or(atNewline))
		if p.is(token.ElseKeyword) {
			p.b.StartNode(cst.ElseClause)
			p.consumeToken()
			p.consumeAllTrivia()
			p.parseStatementsUntil(atKeyword(token.ElseKeyword).or(atEOF).or(atNewline))
			p.b.FinishNode()
		}
		if p.is(token.Newline) {
			p.consumeToken()
		}
	}

	p.b.FinishNode()
}

func atNewline(p *Parser) bool { return p.is(token.Newline) }

func (f stopFunc) or(g stopFunc) stopFunc {
	return func(p *Parser) bool { return f(p) || g(p) }
}

func (p *Parser) parseElseIfClause() {
	p.b.StartNode(cst.ElseIfClause)
	p.consumeToken() // ElseIf
	p.consumeAllTrivia()
	p.parseExpressionUntil(token.ThenKeyword)
	p.consumeAllTrivia()
	if p.is(token.ThenKeyword) {
		p.consumeToken()
	}
	p.consumeThroughNewline()
	p.parseStatementList(atKeyword(token.ElseKeyword, token.ElseIfKeyword).or(atEndOfBlock(token.IfKeyword)))
	p.b.FinishNode()
}

func (p *Parser) parseElseClause() {
	p.b.StartNode(cst.ElseClause)
	p.consumeToken() // Else
	p.consumeThroughNewline()
	p.parseStatementList(atEndOfBlock(token.IfKeyword))
	p.b.FinishNode()
}

// parseDoStatement handles all four Do/Loop forms (spec §4.F).
func (p *Parser) parseDoStatement() {
	p.b.StartNode(cst.DoStatement)
	p.consumeToken() // Do
	p.consumeAllTrivia()

	if p.is(token.WhileKeyword) || p.is(token.UntilKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		p.parseExpressionUntil(token.Newline)
	}
	p.consumeNewlineIfPresent()

	p.parseStatementList(atKeyword(token.LoopKeyword))

	if p.is(token.LoopKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		if p.is(token.WhileKeyword) || p.is(token.UntilKeyword) {
			p.consumeToken()
			p.consumeAllTrivia()
			p.parseExpressionUntil(token.Newline)
		}
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed Do: missing Loop")
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseForStatement distinguishes For Each from classic For by peeking the
// next significant keyword after For (spec §4.F).
func (p *Parser) parseForStatement() {
	next, _ := p.peekSignificant(1)
	if next.Kind == token.EachKeyword {
		p.b.StartNode(cst.ForEachStatement)
	} else {
		p.b.StartNode(cst.ForStatement)
	}
	p.consumeToken() // For
	p.consumeAllTrivia()

	if p.is(token.EachKeyword) {
		p.consumeToken()
	}
	p.consumeThroughNewline()

	p.parseStatementList(atKeyword(token.NextKeyword))

	if p.is(token.NextKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		if p.is(token.Identifier) {
			p.consumeToken()
		}
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed For: missing Next")
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseWhileStatement handles the legacy While/Wend loop form.
func (p *Parser) parseWhileStatement() {
	p.b.StartNode(cst.WhileStatement)
	p.consumeToken() // While
	p.consumeThroughNewline()

	p.parseStatementList(atKeyword(token.WendKeyword))

	if p.is(token.WendKeyword) {
		p.consumeToken()
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed While: missing Wend")
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// parseSelectCaseStatement parses Select Case, its CaseClauses, optional
// CaseElseClause, and End Select (spec §4.F).
func (p *Parser) parseSelectCaseStatement() {
	p.b.StartNode(cst.SelectCaseStatement)
	p.consumeToken() // Select
	p.consumeAllTrivia()
	if p.is(token.CaseKeyword) {
		p.consumeToken()
	}
	p.consumeThroughNewline()

	for p.is(token.CaseKeyword) {
		p.parseCaseClause()
	}

	if p.is(token.EndKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
		if p.is(token.SelectKeyword) {
			p.consumeToken()
		}
	} else {
		p.errorf(diag.UnclosedBlockAtEOF, "unclosed Select Case: missing End Select")
	}
	p.consumeThroughNewline()
	p.b.FinishNode()
}

func (p *Parser) parseCaseClause() {
	next, _ := p.peekSignificant(1)
	if next.Kind == token.ElseKeyword {
		p.b.StartNode(cst.CaseElseClause)
		p.consumeToken() // Case
		p.consumeAllTrivia()
		p.consumeToken() // Else
		p.consumeThroughNewline()
		p.parseStatementList(atKeyword(token.CaseKeyword).or(atEndOfBlock(token.SelectKeyword)))
		p.b.FinishNode()
		return
	}

	p.b.StartNode(cst.CaseClause)
	p.consumeToken() // Case
	p.consumeThroughNewline()
	p.parseStatementList(atKeyword(token.CaseKeyword).or(atEndOfBlock(token.SelectKeyword)))
	p.b.FinishNode()
}

// parseOnStatement peeks forward to distinguish On Error from On ... GoTo
// / On ... GoSub (spec §4.F).
func (p *Parser) parseOnStatement() {
	lookahead := p.peekNextCountKeywords(2)
	if len(lookahead) > 1 && lookahead[1] == token.ErrorKeyword {
		p.b.StartNode(cst.OnErrorStatement)
	} else if p.scanForBeforeNewline(token.GoSubKeyword) {
		p.b.StartNode(cst.OnGoSubStatement)
	} else {
		p.b.StartNode(cst.OnGoToStatement)
	}
	p.consumeToken() // On
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// --- labels and assignment ----------------------------------------------

// atLabel detects "identifier-or-number immediately followed by a colon at
// statement position" (spec §4.F "Labels"). Header blocks never reach this
// dispatcher (they're handled by the form-header extractor), so the
// `Begin:`-collision caveat in the spec doesn't arise here.
func (p *Parser) atLabel() bool {
	k := p.currentKind()
	if k != token.Identifier && !k.IsNumericLiteral() {
		return false
	}
	next, ok := p.toks.Peek(1)
	return ok && next.Kind == token.ColonOperator
}

func (p *Parser) parseLabelStatement() {
	p.b.StartNode(cst.LabelStatement)
	p.consumeToken() // name
	p.consumeToken() // colon
	p.consumeThroughNewline()
	p.b.FinishNode()
}

// atAssignment reports whether the statement at the cursor is an
// assignment: an optional Let, then an l-value, then `=` before the next
// newline (spec §4.F "Assignment").
func (p *Parser) atAssignment() bool {
	k := p.currentKind()
	if k == token.LetKeyword {
		return true
	}
	if k != token.Identifier && !isObjectCapableKeyword(k) {
		return false
	}
	return p.scanForBeforeNewline(token.EqualityOperator)
}

func (p *Parser) parseAssignmentStatement() {
	p.b.StartNode(cst.AssignmentStatement)
	if p.is(token.LetKeyword) {
		p.consumeToken()
		p.consumeAllTrivia()
	}
	p.parseExpressionUntil(token.EqualityOperator)
	p.consumeAllTrivia()
	if p.is(token.EqualityOperator) {
		p.consumeToken()
	}
	p.consumeAllTrivia()
	p.parseExpressionUntil(token.Newline)
	p.consumeNewlineIfPresent()
	p.b.FinishNode()
}

// consumeNewlineIfPresent consumes a single pending Newline token, if the
// cursor is sitting at one. Used after an expression bounded by
// token.Newline: the expression stops at the newline without consuming it
// (consumeExpressionTrivia), but when something else ends the expression
// first — e.g. an inline Else on a single-line If — there is no newline
// here yet, and consuming blindly (consumeThroughNewline) would swallow
// whatever follows on the same line.
func (p *Parser) consumeNewlineIfPresent() {
	if p.is(token.Newline) {
		p.consumeToken()
	}
}

// consumeAllTriviaExceptNewline consumes whitespace/comments but stops
// before a Newline, letting callers decide whether one terminates the
// current construct (used between `Then` and the multi-/single-line If
// decision).
func (p *Parser) consumeAllTriviaExceptNewline() {
	for !p.atEnd() && p.currentKind().IsTrivia() && p.currentKind() != token.Newline {
		p.consumeToken()
	}
}

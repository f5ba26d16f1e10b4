package cst

import "github.com/scriptandcompile/vb6parse/internal/vb6/token"

// Builder incrementally assembles a green tree as the parser recognizes
// productions, using an explicit stack of open frames instead of recursion
// so the parser's own recursive-descent call stack stays decoupled from
// tree shape (spec §4.D: "Holds ... an incremental tree builder").
type Builder struct {
	frames []frame
}

type frame struct {
	kind     Kind
	children []Element
}

// NewBuilder returns an empty Builder with no open frames.
func NewBuilder() *Builder {
	return &Builder{}
}

// StartNode opens a new frame of the given kind. Children pushed by
// ConsumeToken or completed by FinishNode accumulate into this frame until
// it is closed by a matching FinishNode.
func (b *Builder) StartNode(kind Kind) {
	b.frames = append(b.frames, frame{kind: kind})
}

// FinishNode closes the innermost open frame, builds it into a GreenNode,
// and appends that node as a child of the new innermost frame (or returns
// it directly if this was the outermost frame, i.e. Root). Panics if called
// with no open frame — a parser bug, since every StartNode must be paired.
func (b *Builder) FinishNode() *GreenNode {
	if len(b.frames) == 0 {
		panic("cst: FinishNode with no open frame")
	}
	top := b.frames[len(b.frames)-1]
	b.frames = b.frames[:len(b.frames)-1]
	node := newGreenNode(top.kind, top.children)

	if len(b.frames) > 0 {
		parent := &b.frames[len(b.frames)-1]
		parent.children = append(parent.children, node)
	}
	return node
}

// ConsumeToken appends tok to the innermost open frame verbatim, preserving
// its lexical kind.
func (b *Builder) ConsumeToken(tok token.Token) {
	b.push(&GreenToken{TokenKind: tok.Kind, TokenText: tok.Text})
}

// ConsumeTokenAs appends tok's text to the innermost open frame but
// overrides the recorded lexical kind — used where the grammar reclassifies
// a token contextually (e.g. an Identifier used where a contextual keyword
// like "Preserve" is expected in a position the lexer didn't special-case).
func (b *Builder) ConsumeTokenAs(tok token.Token, kind token.Kind) {
	b.push(&GreenToken{TokenKind: kind, TokenText: tok.Text})
}

// ConsumeTokenAsUnknown appends tok's text to the innermost open frame
// tagged as token.Unknown, used for error-recovery leaves: a token the
// current production didn't expect, kept in the tree so the round-trip
// invariant still holds (spec §7, "the offending byte/token becomes an
// Unknown leaf and parsing continues").
func (b *Builder) ConsumeTokenAsUnknown(tok token.Token) {
	b.push(&GreenToken{TokenKind: token.Unknown, TokenText: tok.Text})
}

func (b *Builder) push(e Element) {
	if len(b.frames) == 0 {
		panic("cst: token consumed with no open frame")
	}
	top := &b.frames[len(b.frames)-1]
	top.children = append(top.children, e)
}

// Depth reports how many frames are currently open; used by the parser to
// assert it closes everything it opens.
func (b *Builder) Depth() int { return len(b.frames) }

// Checkpoint marks the current end of the innermost open frame's children.
// Combined with StartNodeAt, this lets the expression parser build a
// BinaryExpression around an already-parsed left operand it didn't know in
// advance it would need to wrap — the same technique rowan calls
// start_node_at, used because Pratt parsing only discovers "this needs a
// parent node" after the left-hand child has already been emitted.
type Checkpoint int

func (b *Builder) Checkpoint() Checkpoint {
	if len(b.frames) == 0 {
		panic("cst: Checkpoint with no open frame")
	}
	top := &b.frames[len(b.frames)-1]
	return Checkpoint(len(top.children))
}

// StartNodeAt opens a new frame of the given kind, retroactively adopting
// every child the innermost open frame accumulated since cp as that new
// frame's initial children.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if len(b.frames) == 0 {
		panic("cst: StartNodeAt with no open frame")
	}
	top := &b.frames[len(b.frames)-1]
	if int(cp) > len(top.children) {
		panic("cst: StartNodeAt with checkpoint past current children")
	}
	adopted := append([]Element{}, top.children[cp:]...)
	top.children = top.children[:cp]
	b.frames = append(b.frames, frame{kind: kind, children: adopted})
}

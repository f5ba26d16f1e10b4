package cst

import "github.com/scriptandcompile/vb6parse/internal/vb6/token"

// Element is anything a GreenNode can hold as a child: another GreenNode or
// a GreenToken leaf.
type Element interface {
	Len() int
	Text() string
	isElement()
}

// GreenNode is an immutable interior node: a Kind plus an ordered list of
// children. Once built by Builder.FinishNode, a GreenNode is never mutated
// (spec §3, "Lifecycle: built once by the parser; thereafter immutable").
type GreenNode struct {
	NodeKind Kind
	Children []Element

	text string
	init bool
}

func newGreenNode(kind Kind, children []Element) *GreenNode {
	return &GreenNode{NodeKind: kind, Children: children}
}

func (n *GreenNode) isElement() {}

// Text concatenates every descendant leaf's text in order; this is cached
// after first computation since the tree is immutable (spec's Contiguity
// invariant: "concatenating child texts equals the node's text").
func (n *GreenNode) Text() string {
	if n.init {
		return n.text
	}
	var b []byte
	for _, c := range n.Children {
		b = append(b, c.Text()...)
	}
	n.text = string(b)
	n.init = true
	return n.text
}

func (n *GreenNode) Len() int { return len(n.Text()) }

// GreenToken is a leaf: a lexical Kind and its exact source text.
type GreenToken struct {
	TokenKind token.Kind
	TokenText string
}

func (t *GreenToken) isElement()     {}
func (t *GreenToken) Text() string   { return t.TokenText }
func (t *GreenToken) Len() int       { return len(t.TokenText) }
func (t *GreenToken) Kind() token.Kind { return t.TokenKind }

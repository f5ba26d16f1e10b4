package cst

import (
	"fmt"
	"strconv"
	"strings"
)

// RootKind returns the kind of the tree's root node — always Root for a
// tree built by the parser (spec §3, "The root kind is always Root").
func RootKind(root *GreenNode) Kind { return root.NodeKind }

// ChildCount returns the number of direct children (nodes and tokens) of n.
func ChildCount(n *GreenNode) int { return len(n.Children) }

// ChildAt returns the i'th direct child element, or nil if out of range.
func ChildAt(n *GreenNode, i int) Element {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Children returns every direct child element of n, in order.
func Children(n *GreenNode) []Element { return n.Children }

// FirstChild returns n's first direct child, or nil if n has none.
func FirstChild(n *GreenNode) Element {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns n's last direct child, or nil if n has none.
func LastChild(n *GreenNode) Element {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// ContainsKind reports whether any direct child node of n has kind k.
func ContainsKind(n *GreenNode, k Kind) bool {
	for _, c := range n.Children {
		if gn, ok := c.(*GreenNode); ok && gn.NodeKind == k {
			return true
		}
	}
	return false
}

// ChildrenByKind returns every direct child node of n with kind k, in order.
func ChildrenByKind(n *GreenNode, k Kind) []*GreenNode {
	var out []*GreenNode
	for _, c := range n.Children {
		if gn, ok := c.(*GreenNode); ok && gn.NodeKind == k {
			out = append(out, gn)
		}
	}
	return out
}

// FindFirst performs a depth-first search for the first descendant node
// (including n itself) with kind k.
func FindFirst(n *GreenNode, k Kind) *GreenNode {
	if n.NodeKind == k {
		return n
	}
	for _, c := range n.Children {
		if gn, ok := c.(*GreenNode); ok {
			if found := FindFirst(gn, k); found != nil {
				return found
			}
		}
	}
	return nil
}

// Text returns n's full source text (concatenation of every leaf beneath
// it), satisfying the round-trip invariant when n is the tree root.
func Text(n *GreenNode) string { return n.Text() }

// Value is a serializable value-tree view of one CST element, produced by
// ToSerializable for snapshot-style testing without exposing the tree's
// internal pointer structure.
type Value struct {
	Kind     string
	Text     string
	IsToken  bool
	Children []Value
}

// ToSerializable recursively converts an Element into a plain Value tree.
func ToSerializable(e Element) Value {
	switch v := e.(type) {
	case *GreenNode:
		children := make([]Value, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, ToSerializable(c))
		}
		return Value{Kind: v.NodeKind.String(), Text: v.Text(), IsToken: false, Children: children}
	case *GreenToken:
		return Value{Kind: v.TokenKind.String(), Text: v.TokenText, IsToken: true}
	default:
		return Value{Kind: "Unknown", Text: e.Text(), IsToken: true}
	}
}

// DebugTree renders n as a multi-line indented string with byte spans,
// useful for eyeballing a parse in tests or a REPL dump command.
func DebugTree(n *GreenNode) string {
	var b strings.Builder
	debugTree(&b, n, 0, 0)
	return b.String()
}

func debugTree(b *strings.Builder, e Element, depth, offset int) {
	indent := strings.Repeat("  ", depth)
	switch v := e.(type) {
	case *GreenNode:
		fmt.Fprintf(b, "%s%s@%d..%d\n", indent, v.NodeKind, offset, offset+v.Len())
		childOffset := offset
		for _, c := range v.Children {
			debugTree(b, c, depth+1, childOffset)
			childOffset += c.Len()
		}
	case *GreenToken:
		fmt.Fprintf(b, "%s%s@%d..%d %s\n", indent, v.TokenKind, offset, offset+v.Len(), strconv.Quote(v.TokenText))
	}
}

package cst

// Red is a lazily materialized view over a GreenNode that adds what the
// immutable green layer deliberately omits: a parent pointer and an
// absolute byte offset (rowan's "red tree", named for the back-pointers
// painted over the otherwise-parentless green tree). Reds are created on
// demand by navigation and are cheap to discard; nothing downstream should
// hold onto the green tree's identity through anything but a Red.
type Red struct {
	green  *GreenNode
	parent *Red
	offset int
}

// NewRoot wraps a just-built root GreenNode in a Red positioned at offset 0.
func NewRoot(green *GreenNode) *Red {
	return &Red{green: green, offset: 0}
}

// Green returns the underlying immutable node.
func (r *Red) Green() *GreenNode { return r.green }

// Parent returns the enclosing Red, or nil at the root.
func (r *Red) Parent() *Red { return r.parent }

// Offset returns this node's absolute byte offset in the source buffer.
func (r *Red) Offset() int { return r.offset }

// End returns the offset one past this node's text.
func (r *Red) End() int { return r.offset + r.green.Len() }

// Kind returns the node's syntax kind.
func (r *Red) Kind() Kind { return r.green.NodeKind }

// Text returns the node's full source text.
func (r *Red) Text() string { return r.green.Text() }

// ChildCount returns the number of direct children (nodes and tokens).
func (r *Red) ChildCount() int { return len(r.green.Children) }

// ChildNodeAt returns the i'th child as a Red if it is a node, or nil if
// that child is a token leaf or i is out of range.
func (r *Red) ChildNodeAt(i int) *Red {
	if i < 0 || i >= len(r.green.Children) {
		return nil
	}
	gn, ok := r.green.Children[i].(*GreenNode)
	if !ok {
		return nil
	}
	return r.childRed(gn, i)
}

func (r *Red) childRed(gn *GreenNode, i int) *Red {
	off := r.offset
	for j := 0; j < i; j++ {
		off += r.green.Children[j].Len()
	}
	return &Red{green: gn, parent: r, offset: off}
}

// ChildNodes returns every direct child that is a node, as Reds, in order.
func (r *Red) ChildNodes() []*Red {
	var out []*Red
	off := r.offset
	for _, c := range r.green.Children {
		if gn, ok := c.(*GreenNode); ok {
			out = append(out, &Red{green: gn, parent: r, offset: off})
		}
		off += c.Len()
	}
	return out
}

// FirstChildNode returns the first child node, or nil if there is none.
func (r *Red) FirstChildNode() *Red {
	nodes := r.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// LastChildNode returns the last child node, or nil if there is none.
func (r *Red) LastChildNode() *Red {
	nodes := r.ChildNodes()
	if len(nodes) == 0 {
		return nil
	}
	return nodes[len(nodes)-1]
}

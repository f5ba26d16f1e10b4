package cst

import (
	"testing"

	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSample() *GreenNode {
	b := NewBuilder()
	b.StartNode(Root)
	b.StartNode(DimStatement)
	b.ConsumeToken(token.Token{Text: "Dim", Kind: token.DimKeyword})
	b.ConsumeToken(token.Token{Text: " ", Kind: token.Whitespace})
	b.ConsumeToken(token.Token{Text: "x", Kind: token.Identifier})
	b.FinishNode()
	b.ConsumeToken(token.Token{Text: "\r\n", Kind: token.Newline})
	return b.FinishNode()
}

func TestBuilderRoundTrip(t *testing.T) {
	root := buildSample()
	assert.Equal(t, "Dim x\r\n", root.Text())
}

func TestBuilderContiguity(t *testing.T) {
	root := buildSample()
	dim := ChildrenByKind(root, DimStatement)
	require.Len(t, dim, 1)

	var concatenated string
	for _, c := range dim[0].Children {
		concatenated += c.Text()
	}
	assert.Equal(t, dim[0].Text(), concatenated)
}

func TestNavigationHelpers(t *testing.T) {
	root := buildSample()

	assert.Equal(t, 2, ChildCount(root))
	assert.True(t, ContainsKind(root, DimStatement))
	assert.False(t, ContainsKind(root, IfStatement))

	found := FindFirst(root, DimStatement)
	require.NotNil(t, found)
	assert.Equal(t, "Dim x", found.Text())
}

func TestRedOffsets(t *testing.T) {
	root := buildSample()
	red := NewRoot(root)

	dimRed := red.FirstChildNode()
	require.NotNil(t, dimRed)
	assert.Equal(t, 0, dimRed.Offset())
	assert.Equal(t, len("Dim x"), dimRed.End())
}

func TestToSerializable(t *testing.T) {
	root := buildSample()
	value := ToSerializable(root)

	assert.Equal(t, "Root", value.Kind)
	assert.False(t, value.IsToken)
	require.Len(t, value.Children, 2)
	assert.Equal(t, "DimStatement", value.Children[0].Kind)
}

func TestDebugTreeIncludesSpans(t *testing.T) {
	root := buildSample()
	out := DebugTree(root)
	assert.Contains(t, out, "Root@0..7")
	assert.Contains(t, out, "DimStatement@0..5")
}

func TestBuilderPanicsOnUnbalancedFinish(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, func() { b.FinishNode() })
}

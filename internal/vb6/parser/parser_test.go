package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
)

func parseClean(t *testing.T, src string) *cst.GreenNode {
	t.Helper()
	root, diags := Parse("test.bas", []byte(src))
	require.Empty(t, diags, "unexpected diagnostics: %v", diags)
	return root
}

// TestParseRoundTripsSourceExactly covers spec §8's round-trip property: the
// concatenated text of every token in the tree must reproduce the original
// bytes exactly, whitespace/comments/line endings included.
func TestParseRoundTripsSourceExactly(t *testing.T) {
	sources := []string{
		"Dim x As Integer\r\n",
		"x = 1 + 2 'sum\r\n",
		"If x > 0 Then\r\n    y = 1\r\nElse\r\n    y = 2\r\nEnd If\r\n",
		"For i = 1 To 10\r\n    Print i\r\nNext i\r\n",
		"Do While x < 10\r\n    x = x + 1\r\nLoop\r\n",
		"Sub Foo()\r\n    Dim a As String\r\nEnd Sub\r\n",
		"' just a comment\r\n",
		"",
	}

	for _, src := range sources {
		root, diags := Parse("test.bas", []byte(src))
		require.Empty(t, diags, "source %q produced diagnostics: %v", src, diags)
		assert.Equal(t, src, root.Text(), "round-trip mismatch for %q", src)
	}
}

func TestParseRootKindIsAlwaysRoot(t *testing.T) {
	root := parseClean(t, "Dim x As Integer\r\n")
	assert.Equal(t, cst.Root, cst.RootKind(root))
}

func TestParseDimStatement(t *testing.T) {
	root := parseClean(t, "Dim x As Integer\r\n")
	decl := cst.FindFirst(root, cst.DimStatement)
	require.NotNil(t, decl)
	assert.Equal(t, "Dim x As Integer\r\n", decl.Text())
}

func TestParseAssignmentStatement(t *testing.T) {
	root := parseClean(t, "x = 1 + 2\r\n")
	assign := cst.FindFirst(root, cst.AssignmentStatement)
	require.NotNil(t, assign)
	assert.Equal(t, "x = 1 + 2\r\n", assign.Text())
}

func TestParseIfElseStructure(t *testing.T) {
	src := "If x > 0 Then\r\n    y = 1\r\nElse\r\n    y = 2\r\nEnd If\r\n"
	root := parseClean(t, src)

	ifStmt := cst.FindFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	assert.True(t, cst.ContainsKind(ifStmt, cst.ElseClause))
	assert.Equal(t, src, ifStmt.Text())
}

func TestParseSingleLineIf(t *testing.T) {
	root := parseClean(t, "If x > 0 Then y = 1 Else y = 2\r\n")
	ifStmt := cst.FindFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	assert.True(t, cst.ContainsKind(ifStmt, cst.ElseClause))
}

func TestParseForNextStatement(t *testing.T) {
	root := parseClean(t, "For i = 1 To 10\r\n    Print i\r\nNext i\r\n")
	forStmt := cst.FindFirst(root, cst.ForStatement)
	require.NotNil(t, forStmt)
}

func TestParseForEachDistinguishedFromFor(t *testing.T) {
	root := parseClean(t, "For Each elem In coll\r\n    Print elem\r\nNext\r\n")
	assert.NotNil(t, cst.FindFirst(root, cst.ForEachStatement))
	assert.Nil(t, cst.FindFirst(root, cst.ForStatement))
}

func TestParseSubStatement(t *testing.T) {
	root := parseClean(t, "Sub Foo()\r\n    Dim a As String\r\nEnd Sub\r\n")
	sub := cst.FindFirst(root, cst.SubStatement)
	require.NotNil(t, sub)
	assert.True(t, cst.ContainsKind(sub, cst.ParameterList) || cst.FindFirst(sub, cst.ParameterList) != nil)
}

func TestParseLibraryStatementDispatch(t *testing.T) {
	root := parseClean(t, "Beep\r\n")
	assert.NotNil(t, cst.FindFirst(root, cst.BeepStatement))
}

func TestParseMidFunctionNotStatement(t *testing.T) {
	// Mid$(...) followed by "=" is the pseudo-array-element assignment form,
	// not the Mid statement, per spec §4.F's ambiguity rule (a library
	// keyword immediately followed by "$" is always the function form).
	root := parseClean(t, `Mid$(s, 1, 1) = "x"` + "\r\n")
	assert.Nil(t, cst.FindFirst(root, cst.MidStatement))
	assert.NotNil(t, cst.FindFirst(root, cst.AssignmentStatement))
}

func TestParseUnclosedIfProducesDiagnostic(t *testing.T) {
	_, diags := Parse("test.bas", []byte("If x > 0 Then\r\n    y = 1\r\n"))
	require.NotEmpty(t, diags)
}

func TestParseUnclosedForProducesDiagnostic(t *testing.T) {
	_, diags := Parse("test.bas", []byte("For i = 1 To 10\r\n    Print i\r\n"))
	require.NotEmpty(t, diags)
}

// TestParseSingleLineIfHasNoStatementListWrapper covers spec §8 scenario 2:
// the inline body of a single-line If is a direct child, not wrapped in a
// StatementList the way a block If's body is.
func TestParseSingleLineIfHasNoStatementListWrapper(t *testing.T) {
	root := parseClean(t, "If a Then b = 1\r\n")
	ifStmt := cst.FindFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	assert.NotNil(t, cst.FindFirst(ifStmt, cst.AssignmentStatement))
	assert.False(t, cst.ContainsKind(ifStmt, cst.StatementList))
}

// TestParseSingleLineIfElseHasNoStatementListWrapper covers the inline Else
// tail: it also parses its body directly into ElseClause, with no nested
// StatementList.
func TestParseSingleLineIfElseHasNoStatementListWrapper(t *testing.T) {
	root := parseClean(t, "If x > 0 Then y = 1 Else y = 2\r\n")
	ifStmt := cst.FindFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	elseClause := cst.FindFirst(ifStmt, cst.ElseClause)
	require.NotNil(t, elseClause)
	assert.NotNil(t, cst.FindFirst(elseClause, cst.AssignmentStatement))
	assert.False(t, cst.ContainsKind(ifStmt, cst.StatementList))
	assert.False(t, cst.ContainsKind(elseClause, cst.StatementList))
}

// TestParseBlockIfKeepsStatementListWrapper covers spec §8 scenario 3's
// companion case for If: the multi-line (block) form still wraps its body
// in a StatementList, unlike the single-line form above.
func TestParseBlockIfKeepsStatementListWrapper(t *testing.T) {
	src := "If x > 0 Then\r\n    y = 1\r\nEnd If\r\n"
	root := parseClean(t, src)
	ifStmt := cst.FindFirst(root, cst.IfStatement)
	require.NotNil(t, ifStmt)
	assert.True(t, cst.ContainsKind(ifStmt, cst.StatementList))
}

// TestParseBareHeaderKeywordProducesNoDiagnostic covers the last-resort
// dispatch fix: a legitimate keyword that the statement dispatcher doesn't
// specifically recognize (e.g. a bare CLASS token outside a VERSION line)
// is consumed as ordinary text, not flagged as an unexpected token.
func TestParseBareHeaderKeywordProducesNoDiagnostic(t *testing.T) {
	root, diags := Parse("test.bas", []byte("Class\r\n"))
	require.Empty(t, diags)
	assert.Equal(t, "Class\r\n", root.Text())
	assert.Nil(t, cst.FindFirst(root, cst.Unknown))
}

// TestParseClassHeader covers spec §8 scenario 4: a .cls file's leading
// VERSION line and flat BEGIN...END property block.
func TestParseClassHeader(t *testing.T) {
	src := "VERSION 1.0 CLASS\r\nBEGIN\r\n  MultiUse = -1  'True\r\nEND\r\nAttribute VB_Name = \"Foo\"\r\n"
	root := parseClean(t, src)

	version := cst.FindFirst(root, cst.VersionStatement)
	require.NotNil(t, version)

	block := cst.FindFirst(root, cst.PropertiesBlock)
	require.NotNil(t, block)

	prop := cst.FindFirst(block, cst.Property)
	require.NotNil(t, prop)
	key := cst.FindFirst(prop, cst.PropertyKey)
	require.NotNil(t, key)
	assert.Equal(t, "MultiUse", key.Text())
	value := cst.FindFirst(prop, cst.PropertyValue)
	require.NotNil(t, value)
	assert.Equal(t, "-1", value.Text())

	assert.NotNil(t, cst.FindFirst(root, cst.AttributeStatement))
}

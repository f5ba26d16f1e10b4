// Package formheader implements the direct `.frm`/`.ctl` prologue
// extractor: a second parsing mode that reads VERSION, Object, and
// Begin/End control-tree constructs straight into typed domain values
// without building a CST for them, then hands whatever tokens remain to
// the generic parser for the code section (spec §4.G, "Form-Header Direct
// Extractor").
package formheader

import (
	"sort"

	"github.com/scriptandcompile/vb6parse/domain"
	"github.com/scriptandcompile/vb6parse/internal/vb6/cst"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/lexer"
	"github.com/scriptandcompile/vb6parse/internal/vb6/parser"
	"github.com/scriptandcompile/vb6parse/internal/vb6/source"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// FormFile is the result of extracting a `.frm`/`.ctl` file's header: the
// reconstructed form/control tree, its object references and version, its
// module attributes, and the CST for everything after the header (spec §3,
// "FormRoot"; spec §4.G).
type FormFile struct {
	Form       domain.FormRoot
	Objects    []domain.ObjectReference
	Version    domain.FileFormatVersion
	Attributes domain.FileAttributes
	CST        *cst.GreenNode
}

// Parse lexes and extracts a complete `.frm`/`.ctl` file.
func Parse(fileName string, src []byte) (*FormFile, []diag.Diagnostic) {
	s := source.New(fileName, src)
	toks, lexDiags := lexer.Tokenize(s)
	return ParseTokens(fileName, src, toks, lexDiags)
}

// ParseTokens extracts a `.frm`/`.ctl` header from an already-lexed token
// vector, following the original's `new_direct_extraction` sequence:
// VERSION, then Object lines, then the Begin/End form-or-control tree, then
// trailing Attribute lines (whose `VB_Name` overrides the form name), and
// finally the remaining tokens are parsed as ordinary code.
func ParseTokens(fileName string, src []byte, toks []token.Token, seedDiags []diag.Diagnostic) (*FormFile, []diag.Diagnostic) {
	x := newExtractor(fileName, src, toks, seedDiags)

	version := x.parseVersionDirect()
	objects := x.parseObjectsDirect()
	form := x.parsePropertiesBlockToFormRoot()
	attrs := x.parseAttributesDirect()

	if attrs.Name != "" {
		form.Name = attrs.Name
	}

	remaining := x.remainingTokens()
	green, codeDiags := parser.ParseTokens(fileName, src, remaining, nil)

	diags := append(x.diags, codeDiags...)
	sort.SliceStable(diags, func(i, j int) bool { return diags[i].Offset < diags[j].Offset })

	return &FormFile{
		Form:       form,
		Objects:    objects,
		Version:    version,
		Attributes: attrs,
		CST:        green,
	}, diags
}

package formheader

import (
	"strconv"

	"github.com/scriptandcompile/vb6parse/domain"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// parseAttributesDirect reads the `Attribute VB_XxxYyy = Value` lines VB6
// emits after a module's Begin block (or at the very top of a `.bas`/`.cls`
// module with no Begin block at all). `Attribute` is a real reserved
// keyword, unlike BeginProperty/EndProperty, so it's matched on
// token.Kind rather than text.
func (x *extractor) parseAttributesDirect() domain.FileAttributes {
	attrs := domain.NewFileAttributes()

	for {
		x.skipBlank()
		if !x.is(token.AttributeKeyword) {
			return attrs
		}
		x.advance()
		x.skipInline()

		name := x.readName()
		x.skipInline()

		if !x.is(token.EqualityOperator) {
			x.errorf(diag.MalformedPropertyLine, "expected '=' after Attribute %s", name)
			x.recoverToNextLine()
			continue
		}
		x.advance()
		x.skipInline()

		value := x.readInlineValue()
		x.consumeThroughNewline()

		x.applyAttribute(&attrs, name, value)
	}
}

// applyAttribute narrows the small set of well-known VB_* attributes into
// FileAttributes' typed fields, and preserves everything else verbatim in
// Extra.
func (x *extractor) applyAttribute(attrs *domain.FileAttributes, name, value string) {
	switch name {
	case "VB_Name":
		attrs.Name = value
	case "VB_GlobalNameSpace":
		attrs.GlobalNameSpace = parseAttrBool(value)
	case "VB_Creatable":
		attrs.Creatable = parseAttrBool(value)
	case "VB_PredeclaredId":
		attrs.PredeclaredId = parseAttrBool(value)
	case "VB_Exposed":
		attrs.Exposed = parseAttrBool(value)
	case "VB_TemplateDerived":
		attrs.TemplateDerived = parseAttrBool(value)
	case "VB_Customizable":
		attrs.Customizable = parseAttrBool(value)
	default:
		attrs.Extra[name] = value
	}
}

func parseAttrBool(value string) bool {
	if value == "-1" || value == "True" || value == "true" {
		return true
	}
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n != 0
	}
	return false
}

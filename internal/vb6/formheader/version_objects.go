package formheader

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/scriptandcompile/vb6parse/domain"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// parseVersionDirect reads a leading `VERSION 5.00` or `VERSION 1.0 CLASS`
// line. A fractional version number lexes as one numeric-literal token
// (`5.00`), so splitting its text on "." recovers major/minor directly — no
// separate integer-dot-integer grammar is needed. A missing VERSION line
// (a `.bas` module, or a `.cls`/`.frm` predating the statement) is not an
// error: the zero FileFormatVersion is returned.
func (x *extractor) parseVersionDirect() domain.FileFormatVersion {
	x.skipBlank()
	if !x.is(token.VersionKeyword) {
		return domain.FileFormatVersion{}
	}
	x.advance()
	x.skipInline()

	if x.atEnd() || !x.currentKind().IsNumericLiteral() {
		x.errorf(diag.MalformedPropertyLine, "expected a version number after VERSION")
		x.recoverToNextLine()
		return domain.FileFormatVersion{}
	}
	numTok := x.advance()
	major, minor, ok := splitVersionNumber(numTok.Text)
	if !ok {
		x.errorf(diag.MalformedPropertyLine, "malformed version number %q", numTok.Text)
	}

	x.skipInline()
	isClass := false
	if x.is(token.ClassKeyword) {
		isClass = true
		x.advance()
	}
	x.consumeThroughNewline()

	return domain.FileFormatVersion{Major: major, Minor: minor, Class: isClass}
}

// splitVersionNumber splits a lexed `M.N` numeric-literal token's text into
// its major and minor components.
func splitVersionNumber(text string) (major, minor int32, ok bool) {
	parts := strings.SplitN(text, ".", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	maj, errMaj := strconv.ParseInt(parts[0], 10, 32)
	min, errMin := strconv.ParseInt(parts[1], 10, 32)
	if errMaj != nil || errMin != nil {
		return 0, 0, false
	}
	return int32(maj), int32(min), true
}

// parseObjectsDirect reads the zero or more `Object = "{guid}#major.minor#
// flag"; "FileName.ocx"` lines that follow VERSION, each registering an
// external type library reference.
func (x *extractor) parseObjectsDirect() []domain.ObjectReference {
	var objs []domain.ObjectReference
	for {
		x.skipBlank()
		if !x.is(token.ObjectKeyword) {
			return objs
		}
		x.advance()
		x.skipInline()

		if !x.is(token.EqualityOperator) {
			x.errorf(diag.MalformedPropertyLine, "expected '=' after Object")
			x.recoverToNextLine()
			continue
		}
		x.advance()
		x.skipInline()

		if !x.is(token.StringLiteral) {
			x.errorf(diag.MalformedPropertyLine, "expected a quoted reference string after Object =")
			x.recoverToNextLine()
			continue
		}
		ref := unquoteVB6String(x.advance().Text)
		x.skipInline()

		fileName := ""
		if x.is(token.Semicolon) {
			x.advance()
			x.skipInline()
			if x.is(token.StringLiteral) {
				fileName = unquoteVB6String(x.advance().Text)
			}
		}
		x.consumeThroughNewline()

		obj, ok := parseObjectReference(ref, fileName)
		if !ok {
			x.errorf(diag.MalformedPropertyLine, "malformed Object reference %q", ref)
			continue
		}
		objs = append(objs, obj)
	}
}

// parseObjectReference splits a `{guid}#major.minor#flag` reference string
// (already unquoted) into its typed parts.
func parseObjectReference(ref, fileName string) (domain.ObjectReference, bool) {
	parts := strings.Split(ref, "#")
	if len(parts) == 0 || parts[0] == "" {
		return domain.ObjectReference{}, false
	}

	guidPart := strings.Trim(parts[0], "{}")
	id, err := uuid.Parse(guidPart)
	if err != nil {
		return domain.ObjectReference{}, false
	}

	var major, minor, flag int32
	if len(parts) > 1 {
		if maj, min, ok := splitVersionNumber(parts[1]); ok {
			major, minor = maj, min
		}
	}
	if len(parts) > 2 {
		if n, err := strconv.ParseInt(parts[2], 10, 32); err == nil {
			flag = int32(n)
		}
	}

	return domain.ObjectReference{
		UUID:         id,
		VersionMajor: major,
		VersionMinor: minor,
		UnusedFlag:   flag,
		FileName:     fileName,
	}, true
}

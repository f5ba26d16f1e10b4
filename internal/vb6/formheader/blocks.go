package formheader

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/scriptandcompile/vb6parse/domain"
	"github.com/scriptandcompile/vb6parse/internal/vb6/diag"
	"github.com/scriptandcompile/vb6parse/internal/vb6/token"
)

// beginHeader is the parsed `Begin TypeName Name[(Index)]` line shared by
// forms, controls, and menus alike.
type beginHeader struct {
	typeName string
	name     string
	index    int32
}

// parseBeginHeader reads one Begin line. Reports false without consuming
// anything if the cursor isn't on a BeginKeyword.
func (x *extractor) parseBeginHeader() (beginHeader, bool) {
	if !x.is(token.BeginKeyword) {
		return beginHeader{}, false
	}
	x.advance()
	x.skipInline()

	typeName := x.readDottedTypeName()
	x.skipInline()
	name := x.readName()
	x.skipInline()

	var index int32
	if x.is(token.LeftParenthesis) {
		x.advance()
		x.skipInline()
		if !x.atEnd() && x.currentKind().IsNumericLiteral() {
			if n, err := strconv.ParseInt(x.current().Text, 10, 32); err == nil {
				index = int32(n)
			}
			x.advance()
		}
		x.skipInline()
		if x.is(token.RightParenthesis) {
			x.advance()
		}
	}
	x.consumeThroughNewline()

	return beginHeader{typeName: typeName, name: name, index: index}, true
}

// parsePropertyGroup reads a `BeginProperty Name [{guid}] ... EndProperty`
// block, recursing for nested property groups. BeginProperty/EndProperty
// are plain Identifier tokens (VB6 reserves no dedicated keyword for
// them), so they're matched by text via isIdentWithText.
func (x *extractor) parsePropertyGroup() *domain.PropertyGroup {
	x.advance() // BeginProperty
	x.skipInline()
	name := x.readName()
	x.skipInline()

	var guid *uuid.UUID
	if x.is(token.LeftCurlyBrace) {
		x.advance()
		var sb strings.Builder
		for !x.atEnd() && !x.is(token.RightCurlyBrace) {
			if x.currentKind() != token.Whitespace {
				sb.WriteString(x.current().Text)
			}
			x.advance()
		}
		if x.is(token.RightCurlyBrace) {
			x.advance()
		}
		if id, err := uuid.Parse(sb.String()); err == nil {
			guid = &id
		} else {
			x.errorf(diag.MalformedPropertyLine, "malformed PropertyGroup GUID %q", sb.String())
		}
		x.skipInline()
	}
	x.consumeThroughNewline()

	group := domain.NewPropertyGroup(name)
	group.GUID = guid

	for {
		x.skipBlank()
		if x.atEnd() || x.isIdentWithText("EndProperty") {
			break
		}
		if x.isIdentWithText("BeginProperty") {
			nested := x.parsePropertyGroup()
			group.Properties[nested.Name] = domain.GroupValue(nested)
			continue
		}
		key, value, ok := x.parsePropertyLine()
		if !ok {
			x.errorf(diag.MalformedPropertyLine, "unrecognized line in property group %q", name)
			x.recoverToNextLine()
			continue
		}
		group.Properties[key] = domain.ScalarValue(value)
	}

	if x.isIdentWithText("EndProperty") {
		x.advance()
		x.consumeThroughNewline()
	} else {
		x.errorf(diag.MissingBlockEnd, "unclosed BeginProperty %s: missing EndProperty", name)
	}
	return group
}

// parsePropertyLine reads one `Key = Value` line. Reports false without
// consuming anything if the cursor isn't on a name.
func (x *extractor) parsePropertyLine() (string, string, bool) {
	if x.atEnd() {
		return "", "", false
	}
	switch k := x.currentKind(); {
	case k == token.Identifier, k == token.Underscore, k.IsKeyword():
	default:
		return "", "", false
	}

	name := x.readName()
	x.skipInline()
	if !x.is(token.EqualityOperator) {
		return "", "", false
	}
	x.advance()
	x.skipInline()

	value := x.readInlineValue()
	x.consumeThroughNewline()
	return name, value, true
}

// blockContents is everything a Begin block's body can hold: a flat
// property bag, nested BeginProperty groups, nested controls, and nested
// menu entries. Every level (form, control, menu) shares this same parse,
// then narrows it per spec §3's typed shapes.
type blockContents struct {
	properties *domain.Properties
	groups     []*domain.PropertyGroup
	children   []domain.Control
	menus      []domain.MenuControl
}

func (x *extractor) parseBlockBody() blockContents {
	props := domain.NewProperties()
	var groups []*domain.PropertyGroup
	var children []domain.Control
	var menus []domain.MenuControl

	for {
		x.skipBlank()
		if x.atEnd() || x.is(token.EndKeyword) {
			break
		}

		switch {
		case x.isIdentWithText("BeginProperty"):
			groups = append(groups, x.parsePropertyGroup())

		case x.is(token.BeginKeyword):
			hdr, body, ok := x.parseBeginBlock()
			if !ok {
				continue
			}
			if strings.EqualFold(hdr.typeName, "VB.Menu") {
				menus = append(menus, buildMenuControl(hdr, body))
			} else {
				children = append(children, buildControl(hdr, body))
			}

		default:
			name, value, ok := x.parsePropertyLine()
			if !ok {
				x.errorf(diag.MalformedPropertyLine, "unrecognized line in Begin block")
				x.recoverToNextLine()
				continue
			}
			props.Insert(name, value)
		}
	}

	return blockContents{properties: props, groups: groups, children: children, menus: menus}
}

// parseBeginBlock reads a full `Begin ... End` construct: the header, its
// body, and the closing End.
func (x *extractor) parseBeginBlock() (beginHeader, blockContents, bool) {
	hdr, ok := x.parseBeginHeader()
	if !ok {
		return beginHeader{}, blockContents{}, false
	}
	body := x.parseBlockBody()
	if x.is(token.EndKeyword) {
		x.advance()
		x.consumeThroughNewline()
	} else {
		x.errorf(diag.MissingBlockEnd, "unclosed Begin %s %s: missing End", hdr.typeName, hdr.name)
	}
	return hdr, body, true
}

func buildControl(hdr beginHeader, body blockContents) domain.Control {
	tag, _ := body.properties.Get("Tag")
	return domain.Control{
		Name:  hdr.name,
		Tag:   tag,
		Index: hdr.index,
		Kind: domain.ControlKind{
			Tag:            domain.ControlKindForTypeName(hdr.typeName),
			ProgID:         hdr.typeName,
			Properties:     body.properties,
			PropertyGroups: body.groups,
		},
		Children: body.children,
	}
}

func buildMenuControl(hdr beginHeader, body blockContents) domain.MenuControl {
	p := body.properties
	tag, _ := p.Get("Tag")
	caption, _ := p.Get("Caption")
	shortcut, _ := p.Get("Shortcut")

	props := domain.MenuProperties{
		Caption:           caption,
		Enabled:           p.GetBool("Enabled", true),
		Visible:           p.GetBool("Visible", true),
		Checked:           p.GetBool("Checked", false),
		WindowList:        p.GetBool("WindowList", false),
		Shortcut:          shortcut,
		HelpContextID:     p.GetInt32("HelpContextID", 0),
		NegotiatePosition: p.GetInt32("NegotiatePosition", 0),
	}
	return domain.NewMenuControl(hdr.name, tag, hdr.index, props, body.menus)
}

// parsePropertiesBlockToFormRoot reads the single top-level
// `Begin VB.Form|VB.MDIForm|VB.UserControl ... End` construct into a
// FormRoot. A `VB.UserControl` header (a `.ctl` file's root) is treated as
// a Form for the purposes of FormKind, which spec §3 names as a closed
// {Form, MDIForm} sum type with no third variant.
func (x *extractor) parsePropertiesBlockToFormRoot() domain.FormRoot {
	x.skipBlank()
	hdr, ok := x.parseBeginHeader()
	if !ok {
		x.errorf(diag.MissingBlockEnd, "expected a Begin VB.Form or Begin VB.MDIForm block")
		return domain.NewFormRoot(domain.FormKindForm, "")
	}

	kind := domain.FormKindForm
	if strings.EqualFold(hdr.typeName, "VB.MDIForm") {
		kind = domain.FormKindMDIForm
	}

	body := x.parseBlockBody()
	if x.is(token.EndKeyword) {
		x.advance()
		x.consumeThroughNewline()
	} else {
		x.errorf(diag.MissingBlockEnd, "unclosed Begin %s %s: missing End", hdr.typeName, hdr.name)
	}

	tag, _ := body.properties.Get("Tag")

	return domain.FormRoot{
		Kind:       kind,
		Name:       hdr.name,
		Tag:        tag,
		Index:      hdr.index,
		Properties: x.formPropertiesFromBag(body.properties, body.groups),
		Controls:   body.children,
		Menus:      body.menus,
	}
}

// formPropertiesFromBag narrows a form's raw property bag into
// FormProperties' typed fields, converting the nested `Font` property
// group (if present) via domain.FontFromPropertyGroup.
func (x *extractor) formPropertiesFromBag(p *domain.Properties, groups []*domain.PropertyGroup) domain.FormProperties {
	fp := domain.DefaultFormProperties()

	if caption, ok := p.Get("Caption"); ok {
		fp.Caption = caption
	}
	fp.BackColor = p.GetColor("BackColor", fp.BackColor)
	fp.ClientHeight = p.GetInt32("ClientHeight", fp.ClientHeight)
	fp.ClientWidth = p.GetInt32("ClientWidth", fp.ClientWidth)
	fp.ClientTop = p.GetInt32("ClientTop", fp.ClientTop)
	fp.ClientLeft = p.GetInt32("ClientLeft", fp.ClientLeft)
	fp.BorderStyle = p.GetInt32("BorderStyle", fp.BorderStyle)
	fp.ScaleHeight = p.GetInt32("ScaleHeight", fp.ScaleHeight)
	fp.ScaleWidth = p.GetInt32("ScaleWidth", fp.ScaleWidth)
	fp.ScaleMode = p.GetInt32("ScaleMode", fp.ScaleMode)
	if linkTopic, ok := p.Get("LinkTopic"); ok {
		fp.LinkTopic = linkTopic
	}
	fp.MaxButton = p.GetBool("MaxButton", fp.MaxButton)
	fp.MinButton = p.GetBool("MinButton", fp.MinButton)
	fp.StartUpPosition = p.GetStartUpPosition("StartUpPosition", fp.StartUpPosition)

	for _, g := range groups {
		if !strings.EqualFold(g.Name, "Font") {
			continue
		}
		font, err := domain.FontFromPropertyGroup(g)
		if err != nil {
			x.errorf(diag.ConversionFailed, "invalid Font property group: %s", err)
			break
		}
		fp.Font = &font
		break
	}

	return fp
}

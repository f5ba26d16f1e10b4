package domain

// ControlKindTag identifies which of VB6's built-in control types a Control
// is, or Custom for anything the extractor doesn't special-case by name
// (spec §3, "Control": "one variant per recognized built-in VB6 control...
// plus a Custom variant").
//
// Unlike the original, every tag here — built-in or Custom — carries the
// same Properties/PropertyGroups payload rather than a per-kind typed
// struct: the direct extractor reads `Key = Value` lines and nested
// BeginProperty blocks identically regardless of control type, and a
// hand-typed field set per built-in control (Command Button alone has
// dozens of recognized properties) would duplicate the same string-keyed
// bag this package already provides through Properties. Recorded as an
// Open Question resolution in DESIGN.md.
type ControlKindTag int

const (
	ControlCustom ControlKindTag = iota
	ControlCommandButton
	ControlTextBox
	ControlLabel
	ControlCheckBox
	ControlOptionButton
	ControlComboBox
	ControlListBox
	ControlFrame
	ControlPictureBox
	ControlImage
	ControlTimer
	ControlHScrollBar
	ControlVScrollBar
	ControlLine
	ControlShape
	ControlData
	ControlOLE
	ControlDirListBox
	ControlFileListBox
	ControlDriveListBox
)

// builtinControlKinds maps the `VB.XxxYyy` type name on a control's Begin
// line to its tag; anything absent from this table (most often a
// third-party ActiveX ProgID like `MSComctlLib.ImageList`) is Custom.
var builtinControlKinds = map[string]ControlKindTag{
	"VB.CommandButton": ControlCommandButton,
	"VB.TextBox":       ControlTextBox,
	"VB.Label":         ControlLabel,
	"VB.CheckBox":      ControlCheckBox,
	"VB.OptionButton":  ControlOptionButton,
	"VB.ComboBox":      ControlComboBox,
	"VB.ListBox":       ControlListBox,
	"VB.Frame":         ControlFrame,
	"VB.PictureBox":    ControlPictureBox,
	"VB.Image":         ControlImage,
	"VB.Timer":         ControlTimer,
	"VB.HScrollBar":    ControlHScrollBar,
	"VB.VScrollBar":    ControlVScrollBar,
	"VB.Line":          ControlLine,
	"VB.Shape":         ControlShape,
	"VB.Data":          ControlData,
	"VB.OLE":           ControlOLE,
	"VB.DirListBox":    ControlDirListBox,
	"VB.FileListBox":   ControlFileListBox,
	"VB.DriveListBox":  ControlDriveListBox,
}

// ControlKindForTypeName resolves a Begin-line type name to its tag,
// reporting ControlCustom for anything not in the recognized built-in set.
func ControlKindForTypeName(typeName string) ControlKindTag {
	if tag, ok := builtinControlKinds[typeName]; ok {
		return tag
	}
	return ControlCustom
}

// ControlKind is the per-control payload: which built-in type (or Custom)
// plus the flat properties and nested BeginProperty groups the extractor
// read off this control's block.
type ControlKind struct {
	Tag            ControlKindTag
	ProgID         string
	Properties     *Properties
	PropertyGroups []*PropertyGroup
}

// Control is one `Begin TypeName Name [Index] ... End` block (spec §3,
// "Control"). Containers nest their children directly in Children; Custom
// controls additionally carry their own nested menus only if VB6 ever
// permitted it (it does not — Menus is always empty on non-Form/MDIForm
// controls, but the field is kept on FormRoot rather than here).
type Control struct {
	Name     string
	Tag      string
	Index    int32
	Kind     ControlKind
	Children []Control
}

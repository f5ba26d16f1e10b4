package domain

// FormProperties is the typed subset of a Form/MDIForm's scalar properties
// that downstream consumers are expected to read most often; everything
// else read off the Begin block but not named here still survives in the
// raw Properties bag the extractor builds before narrowing it into this
// struct (spec §4.G; spec §6's StartUpPosition/Font conversions both apply
// to fields of this struct).
type FormProperties struct {
	Caption         string
	BackColor       Color
	ClientHeight    int32
	ClientWidth     int32
	ClientTop       int32
	ClientLeft      int32
	BorderStyle     int32
	ScaleHeight     int32
	ScaleWidth      int32
	ScaleMode       int32
	LinkTopic       string
	MaxButton       bool
	MinButton       bool
	StartUpPosition StartUpPosition
	Font            *Font
}

// DefaultFormProperties returns the property values VB6 assumes when a
// form's Begin block omits them.
func DefaultFormProperties() FormProperties {
	return FormProperties{
		BackColor:       VB_WINDOW_BACKGROUND,
		MaxButton:       true,
		MinButton:       true,
		StartUpPosition: StartUpWindowsDefault,
	}
}

// FormKind distinguishes the two FormRoot shapes VB6 recognizes on a
// `Begin` line: `VB.Form` and `VB.MDIForm` (spec §3, "FormRoot": "Sum type
// {Form, MDIForm}").
type FormKind int

const (
	FormKindForm FormKind = iota
	FormKindMDIForm
)

// FormRoot is a form or MDI form's top-level tree: its own properties plus
// the ordered controls and menus nested inside it (spec §3, "FormRoot").
type FormRoot struct {
	Kind       FormKind
	Name       string
	Tag        string
	Index      int32
	Properties FormProperties
	Controls   []Control
	Menus      []MenuControl
}

// NewFormRoot returns a FormRoot of the given kind with default properties
// and empty control/menu lists, ready for the extractor to fill in.
func NewFormRoot(kind FormKind, name string) FormRoot {
	return FormRoot{
		Kind:       kind,
		Name:       name,
		Properties: DefaultFormProperties(),
	}
}

// IsForm reports whether this root is a `VB.Form` rather than a
// `VB.MDIForm`.
func (f FormRoot) IsForm() bool { return f.Kind == FormKindForm }

// IsMDIForm reports whether this root is a `VB.MDIForm`.
func (f FormRoot) IsMDIForm() bool { return f.Kind == FormKindMDIForm }

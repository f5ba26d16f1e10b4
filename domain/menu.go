package domain

// MenuProperties is the fixed property set a `Begin VB.Menu` block carries
// (spec §3 describes menus via FormRoot's "ordered list of MenuControl
// values"; the property set itself mirrors the Control/PropertyGroup
// scalar shape but is small and closed enough in practice to model as
// typed fields, the way Font is).
type MenuProperties struct {
	Caption    string
	Enabled    bool
	Visible    bool
	Checked    bool
	WindowList bool
	Shortcut   string
	HelpContextID int32
	NegotiatePosition int32
}

// DefaultMenuProperties returns the property values VB6 assumes when a
// property line is absent from a Menu block: Enabled and Visible true,
// everything else its zero value.
func DefaultMenuProperties() MenuProperties {
	return MenuProperties{Enabled: true, Visible: true}
}

// MenuControl is one node of a form's menu tree (spec §3, "FormRoot":
// "ordered list of MenuControl values"). Submenus nest under Children in
// source order.
type MenuControl struct {
	Name       string
	Tag        string
	Index      int32
	Properties MenuProperties
	Children   []MenuControl
}

// NewMenuControl builds a MenuControl, mirroring the original's
// `MenuControl::new` constructor shape.
func NewMenuControl(name, tag string, index int32, properties MenuProperties, children []MenuControl) MenuControl {
	return MenuControl{
		Name:       name,
		Tag:        tag,
		Index:      index,
		Properties: properties,
		Children:   children,
	}
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Font is a PropertyGroup with a fixed schema — every `BeginProperty Font`
// group a control or form carries (spec §3, "Font"; spec §6, "Property-group ↔ Font
// conversion").
type Font struct {
	Name          string
	Size          float32
	Charset       int32
	Weight        int32
	Underline     bool
	Italic        bool
	Strikethrough bool
}

// FontFromPropertyGroup performs the fallible conversion spec §6 defines:
// group.Name must equal "Font" (case-insensitive), and the seven scalar
// properties must all be present and parse as their respective types.
func FontFromPropertyGroup(group *PropertyGroup) (Font, error) {
	if !strings.EqualFold(group.Name, "Font") {
		return Font{}, fmt.Errorf("expected PropertyGroup name 'Font', found %q", group.Name)
	}

	name, err := scalarField(group, "Name")
	if err != nil {
		return Font{}, err
	}
	sizeStr, err := scalarField(group, "Size")
	if err != nil {
		return Font{}, err
	}
	size, err := strconv.ParseFloat(sizeStr, 32)
	if err != nil {
		return Font{}, fmt.Errorf("invalid 'Size' property value %q", sizeStr)
	}
	charsetStr, err := scalarField(group, "Charset")
	if err != nil {
		return Font{}, err
	}
	charset, err := strconv.ParseInt(charsetStr, 10, 32)
	if err != nil {
		return Font{}, fmt.Errorf("invalid 'Charset' property value %q", charsetStr)
	}
	weightStr, err := scalarField(group, "Weight")
	if err != nil {
		return Font{}, err
	}
	weight, err := strconv.ParseInt(weightStr, 10, 32)
	if err != nil {
		return Font{}, fmt.Errorf("invalid 'Weight' property value %q", weightStr)
	}
	underline, err := scalarField(group, "Underline")
	if err != nil {
		return Font{}, err
	}
	italic, err := scalarField(group, "Italic")
	if err != nil {
		return Font{}, err
	}
	strikethrough, err := scalarField(group, "Strikethrough")
	if err != nil {
		return Font{}, err
	}

	return Font{
		Name:          name,
		Size:          float32(size),
		Charset:       int32(charset),
		Weight:        int32(weight),
		Underline:     parseVB6Bool(underline),
		Italic:        parseVB6Bool(italic),
		Strikethrough: parseVB6Bool(strikethrough),
	}, nil
}

// PropertyGroup performs the infallible reverse conversion (spec §6): every
// field is emitted as a scalar property, booleans rendered as "-1" or "0".
func (f Font) PropertyGroup() *PropertyGroup {
	g := NewPropertyGroup("Font")
	g.Properties["Name"] = ScalarValue(f.Name)
	g.Properties["Size"] = ScalarValue(strconv.FormatFloat(float64(f.Size), 'f', -1, 32))
	g.Properties["Charset"] = ScalarValue(strconv.Itoa(int(f.Charset)))
	g.Properties["Weight"] = ScalarValue(strconv.Itoa(int(f.Weight)))
	g.Properties["Underline"] = ScalarValue(vb6Bool(f.Underline))
	g.Properties["Italic"] = ScalarValue(vb6Bool(f.Italic))
	g.Properties["Strikethrough"] = ScalarValue(vb6Bool(f.Strikethrough))
	return g
}

func scalarField(group *PropertyGroup, key string) (string, error) {
	v, ok := group.Properties[key]
	if !ok {
		return "", fmt.Errorf("missing %q property", key)
	}
	s, ok := v.Scalar()
	if !ok {
		return "", fmt.Errorf("%q property is a nested group, expected scalar text", key)
	}
	return s, nil
}

func parseVB6Bool(s string) bool {
	return s == "-1" || s == "True" || s == "true"
}

func vb6Bool(b bool) string {
	if b {
		return "-1"
	}
	return "0"
}

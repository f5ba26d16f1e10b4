package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// PropertyValue is the value half of a PropertyGroup entry: either scalar
// text or a nested PropertyGroup (spec §3, "PropertyGroup"). VB6's
// BeginProperty/EndProperty blocks model COM-style sub-objects this way, so
// a single map can hold both plain `Key = Value` lines and nested groups.
type PropertyValue struct {
	scalar string
	group  *PropertyGroup
	isNode bool
}

// ScalarValue wraps a plain string property value.
func ScalarValue(s string) PropertyValue { return PropertyValue{scalar: s} }

// GroupValue wraps a nested property group.
func GroupValue(g *PropertyGroup) PropertyValue { return PropertyValue{group: g, isNode: true} }

// IsGroup reports whether this value is a nested PropertyGroup rather than
// scalar text.
func (v PropertyValue) IsGroup() bool { return v.isNode }

// Scalar returns the scalar text and true, or "" and false if this value is
// a nested group.
func (v PropertyValue) Scalar() (string, bool) {
	if v.isNode {
		return "", false
	}
	return v.scalar, true
}

// Group returns the nested group and true, or nil and false if this value is
// scalar text.
func (v PropertyValue) Group() (*PropertyGroup, bool) {
	if !v.isNode {
		return nil, false
	}
	return v.group, true
}

// PropertyGroup is a `BeginProperty name [guid]` block: a named bag of
// scalar or nested properties, optionally tagged with a COM GUID (spec §3,
// "PropertyGroup"; spec §4.G grammar).
type PropertyGroup struct {
	Name       string
	GUID       *uuid.UUID
	Properties map[string]PropertyValue
}

// NewPropertyGroup returns an empty, named PropertyGroup ready for
// insertion.
func NewPropertyGroup(name string) *PropertyGroup {
	return &PropertyGroup{Name: name, Properties: make(map[string]PropertyValue)}
}

// Get returns the raw property value for key, or false if key is absent.
func (g *PropertyGroup) Get(key string) (PropertyValue, bool) {
	v, ok := g.Properties[key]
	return v, ok
}

// Properties is a flat string-keyed property bag — the shape a `.frm`
// control's top-level `Key = Value` lines collect into before any nested
// BeginProperty block is reached (spec §4.G). Its typed accessors (GetBool,
// GetColor, GetInt32, GetStartUpPosition, GetOption) mirror the convenience
// methods VB6 project files lean on constantly, parsing VB6's stringly-typed
// property values on demand rather than up front.
type Properties struct {
	values map[string]string
}

// NewProperties returns an empty Properties collection.
func NewProperties() *Properties {
	return &Properties{values: make(map[string]string)}
}

// Insert sets key to value, overwriting any existing value.
func (p *Properties) Insert(key, value string) {
	p.values[key] = value
}

// Len returns the number of stored key-value pairs.
func (p *Properties) Len() int { return len(p.values) }

// ContainsKey reports whether key is present.
func (p *Properties) ContainsKey(key string) bool {
	_, ok := p.values[key]
	return ok
}

// Get returns the raw string value for key, or "" and false if absent.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Remove deletes key, returning its value if present.
func (p *Properties) Remove(key string) (string, bool) {
	v, ok := p.values[key]
	delete(p.values, key)
	return v, ok
}

// GetBool interprets the property at key as a VB6 boolean: "0" is false,
// "1" or "-1" is true, anything else (including a missing key) falls back
// to def.
func (p *Properties) GetBool(key string, def bool) bool {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	switch v {
	case "0":
		return false
	case "1", "-1":
		return true
	default:
		return def
	}
}

// GetColor parses the property at key as a `&H...&` color literal, falling
// back to def if the key is missing or unparseable.
func (p *Properties) GetColor(key string, def Color) Color {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	c, ok := ParseColor(v)
	if !ok {
		return def
	}
	return c
}

// GetInt32 parses the property at key as a base-10 integer, falling back to
// def if the key is missing or unparseable.
func (p *Properties) GetInt32(key string, def int32) int32 {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

// GetStartUpPosition interprets the property at key the way VB6's
// `StartUpPosition` form property is interpreted: 0 decomposes into the
// Manual variant reading ClientHeight/Width/Top/Left (with VB6's own
// defaults for those four, 3000/3000/200/100), 1 is CenterOwner, 2 is
// CenterScreen. A missing key returns def, but any other value (unparseable
// or out of range) resolves to WindowsDefault rather than def, matching the
// original's documented inconsistency between its two default paths.
func (p *Properties) GetStartUpPosition(key string, def StartUpPosition) StartUpPosition {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return StartUpWindowsDefault
	}
	switch n {
	case 0:
		return NewManualStartUpPosition(
			p.GetInt32("ClientHeight", 3000),
			p.GetInt32("ClientWidth", 3000),
			p.GetInt32("ClientTop", 200),
			p.GetInt32("ClientLeft", 100),
		)
	case 1:
		return StartUpCenterOwner
	case 2:
		return StartUpCenterScreen
	default:
		return StartUpWindowsDefault
	}
}

// GetProperty parses the property at key as an int32 and converts it with
// fromInt32, falling back to def if the key is missing, unparseable, or
// fromInt32 reports an error. This is the Go analogue of the original's
// generic `TryFromPrimitive` enum accessor (spec §6, used for Appearance/
// BorderStyle/ScaleMode-style small integer enums).
func GetProperty[T any](p *Properties, key string, fromInt32 func(int32) (T, error), def T) T {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return def
	}
	t, err := fromInt32(int32(n))
	if err != nil {
		return def
	}
	return t
}

// GetOption parses the property at key with parse, falling back to def if
// the key is missing or parse reports an error. This is the Go analogue of
// the original's generic `TryFrom<&str>` accessor — callers supply the
// conversion instead of it being resolved by static type.
func GetOption[T any](p *Properties, key string, parse func(string) (T, error), def T) T {
	v, ok := p.values[key]
	if !ok {
		return def
	}
	t, err := parse(v)
	if err != nil {
		return def
	}
	return t
}

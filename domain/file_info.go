package domain

import "github.com/google/uuid"

// FileFormatVersion is the `VERSION n.m [CLASS]` line every `.frm`/`.cls`/
// `.ctl` file opens with (spec §4.G grammar, "Version"). `.bas` files carry
// an optional, class-less version of the same shape.
type FileFormatVersion struct {
	Major int32
	Minor int32
	Class bool
}

// ObjectReference is one `Object = "{guid}#major.minor#0"; "file.ocx"` line
// (spec §3, "ObjectReference"): a reference to a registered ActiveX control
// library the form depends on.
type ObjectReference struct {
	UUID         uuid.UUID
	VersionMajor int32
	VersionMinor int32
	UnusedFlag   int32
	FileName     string
}

// FileAttributes collects the `Attribute VB_... = ...` lines a module, class,
// or form carries, most significantly `VB_Name`, which overrides the name a
// form or class otherwise takes from its `Begin`/`VERSION...CLASS` line
// (spec §4.G, "Special contract").
type FileAttributes struct {
	Name              string
	GlobalNameSpace   bool
	Creatable         bool
	PredeclaredId     bool
	Exposed           bool
	TemplateDerived   bool
	Customizable      bool
	Extra             map[string]string
}

// NewFileAttributes returns an empty FileAttributes with its Extra map
// initialized.
func NewFileAttributes() FileAttributes {
	return FileAttributes{Extra: make(map[string]string)}
}

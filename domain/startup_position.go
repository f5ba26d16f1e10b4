package domain

// StartUpPosition mirrors a form's `StartUpPosition` property (spec §6). The
// raw property value is an enum index 0-2 plus an implicit default for
// anything else; index 0 additionally carries four other properties
// describing the manual placement, which is why Manual is a struct field
// rather than a bare constant.
type startUpKind int

const (
	windowsDefaultKind startUpKind = iota
	centerOwnerKind
	centerScreenKind
	manualKind
)

type StartUpPosition struct {
	kind   startUpKind
	Manual ManualPosition
}

// ManualPosition carries the four properties VB6 stores alongside
// `StartUpPosition = 0` (spec §6, the ClientHeight/Width/Top/Left quartet).
type ManualPosition struct {
	ClientHeight int32
	ClientWidth  int32
	ClientTop    int32
	ClientLeft   int32
}

// NewManualStartUpPosition builds the Manual variant.
func NewManualStartUpPosition(height, width, top, left int32) StartUpPosition {
	return StartUpPosition{
		kind: manualKind,
		Manual: ManualPosition{
			ClientHeight: height,
			ClientWidth:  width,
			ClientTop:    top,
			ClientLeft:   left,
		},
	}
}

var (
	StartUpWindowsDefault = StartUpPosition{kind: windowsDefaultKind}
	StartUpCenterOwner    = StartUpPosition{kind: centerOwnerKind}
	StartUpCenterScreen   = StartUpPosition{kind: centerScreenKind}
)

// IsManual reports whether p carries explicit client bounds rather than one
// of the three bare placements.
func (p StartUpPosition) IsManual() bool { return p.kind == manualKind }

// Equal compares two StartUpPosition values, including Manual's fields when
// both are the Manual variant.
func (p StartUpPosition) Equal(o StartUpPosition) bool {
	if p.kind != o.kind {
		return false
	}
	if p.kind == manualKind {
		return p.Manual == o.Manual
	}
	return true
}

func (p StartUpPosition) String() string {
	switch p.kind {
	case windowsDefaultKind:
		return "WindowsDefault"
	case centerOwnerKind:
		return "CenterOwner"
	case centerScreenKind:
		return "CenterScreen"
	case manualKind:
		return "Manual"
	default:
		return "WindowsDefault"
	}
}

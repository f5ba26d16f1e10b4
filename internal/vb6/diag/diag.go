// Package diag defines the non-fatal diagnostic type shared by every
// fallible vb6 component (lexer, parser, form-header extractor, domain
// conversions). Nothing in this module ever panics or aborts a parse on
// malformed input; instead it records a Diagnostic and continues (spec §7).
package diag

import (
	"fmt"

	"github.com/scriptandcompile/vb6parse/internal/vb6/source"
)

// Kind classifies a Diagnostic by the subsystem and failure family that
// produced it (spec §7's four-family taxonomy).
type Kind int

const (
	// UnknownToken: a byte the lexer could not classify under any rule.
	UnknownToken Kind = iota
	// UnterminatedString: a string literal's closing quote was never found.
	UnterminatedString
	// UnterminatedDateLiteral: a `#...#` literal was opened but malformed or unclosed.
	UnterminatedDateLiteral
	// MalformedNumericLiteral: a numeric literal's suffix or exponent was invalid.
	MalformedNumericLiteral

	// UnexpectedToken: the parser needed one token kind and found another.
	UnexpectedToken
	// UnmatchedBlockTerminator: an End/Next/Loop/Wend with no open block to close.
	UnmatchedBlockTerminator
	// UnclosedBlockAtEOF: input ended with a block still open; it was closed implicitly.
	UnclosedBlockAtEOF

	// MalformedPropertyLine: a form-header property line didn't parse as `Key = Value`.
	MalformedPropertyLine
	// MissingBlockEnd: a Begin/BeginProperty group had no matching End/EndProperty.
	MissingBlockEnd
	// NestedGroupUnderScalar: a BeginProperty block appeared under a key already holding a scalar.
	NestedGroupUnderScalar

	// ConversionFailed: a form's Font property group could not be converted to domain.Font.
	// The typed Properties accessors (GetBool, GetColor, ...) fall back to their defaults without reporting.
	ConversionFailed
)

func (k Kind) String() string {
	switch k {
	case UnknownToken:
		return "UnknownToken"
	case UnterminatedString:
		return "UnterminatedString"
	case UnterminatedDateLiteral:
		return "UnterminatedDateLiteral"
	case MalformedNumericLiteral:
		return "MalformedNumericLiteral"
	case UnexpectedToken:
		return "UnexpectedToken"
	case UnmatchedBlockTerminator:
		return "UnmatchedBlockTerminator"
	case UnclosedBlockAtEOF:
		return "UnclosedBlockAtEOF"
	case MalformedPropertyLine:
		return "MalformedPropertyLine"
	case MissingBlockEnd:
		return "MissingBlockEnd"
	case NestedGroupUnderScalar:
		return "NestedGroupUnderScalar"
	case ConversionFailed:
		return "ConversionFailed"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single non-fatal issue discovered while lexing, parsing,
// extracting, or converting. It never carries enough information to stop a
// parse; callers collect these alongside a best-effort result.
type Diagnostic struct {
	Kind    Kind
	File    string
	Offset  int
	Line    int
	Column  int
	Message string
}

// New builds a Diagnostic by resolving offset against contents for line/column.
func New(kind Kind, file string, contents []byte, offset int, message string) Diagnostic {
	pos := source.PositionAt(contents, offset)
	return Diagnostic{
		Kind:    kind,
		File:    file,
		Offset:  offset,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: message,
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Kind, d.Message)
}

// Sorted reports whether diagnostics are monotonically non-decreasing by
// Offset (spec §8 "Ordering"). Exposed for tests, not relied on at runtime —
// parser.ParseTokens and formheader.ParseTokens sort the diagnostics they
// return by Offset.
func Sorted(diags []Diagnostic) bool {
	for i := 1; i < len(diags); i++ {
		if diags[i].Offset < diags[i-1].Offset {
			return false
		}
	}
	return true
}

// Package token holds the minimal source-location value the semantic core
// attaches to every symbol and diagnostic. The lexer/parser that produces
// real positions lives outside this module; this type is the shape it is
// expected to emit.
package token

import "fmt"

// Location is a single point in a source file. The zero value is the
// synthetic location used for symbols that have no textual origin (built-in
// types, implicit generate-loop parameters).
type Location struct {
	File   string
	Line   int
	Column int
	// Offset is a flattened byte offset, used to compare two locations in
	// the same file without re-deriving line/column order.
	Offset int
}

// IsSynthetic reports whether this location was never backed by source text.
func (l Location) IsSynthetic() bool {
	return l.File == "" && l.Offset == 0 && l.Line == 0
}

// Before reports whether l is lexically strictly before other, within the
// same file. Locations from different files are considered incomparable and
// Before returns false for both directions.
func (l Location) Before(other Location) bool {
	if l.File != other.File {
		return false
	}
	return l.Offset < other.Offset
}

// AtOrBefore reports whether l is lexically at or before other.
func (l Location) AtOrBefore(other Location) bool {
	if l.File != other.File {
		return false
	}
	return l.Offset <= other.Offset
}

func (l Location) String() string {
	if l.IsSynthetic() {
		return "<synthetic>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

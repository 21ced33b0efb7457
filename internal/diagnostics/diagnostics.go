// Package diagnostics is the sink the semantic core reports into. The core
// never aborts on error (spec.md §7): every failure is a Diagnostic handed
// to a Sink, and the caller decides what to do with the accumulated list.
package diagnostics

import "github.com/funvibe/funxy/internal/token"

// Code is the closed set of diagnostic identifiers the core can raise,
// per spec.md §6. Exact wording and severity are owned by the embedder;
// this package only fixes the identifier and its String() name.
type Code int

const (
	UndeclaredIdentifier Code = iota
	DuplicateDefinition
	MissingPackage
	MissingImportedMember
	CyclicDependency
	ParamOverrideOfLocal
	MissingRequiredParameter
	GenerateLoopNonTerminating
	GenerateLoopTooManyIterations
	KindMismatch
)

func (c Code) String() string {
	switch c {
	case UndeclaredIdentifier:
		return "UndeclaredIdentifier"
	case DuplicateDefinition:
		return "DuplicateDefinition"
	case MissingPackage:
		return "MissingPackage"
	case MissingImportedMember:
		return "MissingImportedMember"
	case CyclicDependency:
		return "CyclicDependency"
	case ParamOverrideOfLocal:
		return "ParamOverrideOfLocal"
	case MissingRequiredParameter:
		return "MissingRequiredParameter"
	case GenerateLoopNonTerminating:
		return "GenerateLoopNonTerminating"
	case GenerateLoopTooManyIterations:
		return "GenerateLoopTooManyIterations"
	case KindMismatch:
		return "KindMismatch"
	default:
		return "Unknown"
	}
}

// Diagnostic is a single reported problem, tagged to the symbol/location
// that caused it.
type Diagnostic struct {
	Code     Code
	Location token.Location
	Message  string
}

func (d Diagnostic) Error() string {
	return d.Location.String() + ": " + d.Code.String() + ": " + d.Message
}

// Sink receives diagnostics as the core finds them. Symbol.addError and
// every core component that can fail hold a Sink, not an error return,
// because resolution failures are recovered locally (spec.md §7).
type Sink interface {
	Report(d Diagnostic)
}

// Collector is the in-memory Sink used by tests and by the example driver:
// it simply accumulates every diagnostic in report order.
type Collector struct {
	Diagnostics []Diagnostic
}

func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasCode reports whether any collected diagnostic carries the given code.
func (c *Collector) HasCode(code Code) bool {
	for _, d := range c.Diagnostics {
		if d.Code == code {
			return true
		}
	}
	return false
}

// CountCode counts collected diagnostics carrying the given code, used by
// the "diagnosed once" tests in spec.md §8.
func (c *Collector) CountCode(code Code) int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Code == code {
			n++
		}
	}
	return n
}

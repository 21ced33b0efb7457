package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// Symbol is the common header embedded by every concrete symbol kind
// (spec.md §3): a discriminator, an interned name, a source location, and
// a back-reference to the owning scope. It is immutable after creation
// except for the internal lazy caches the concrete kinds carry.
type Symbol struct {
	kind     Kind
	name     string
	location token.Location
	parent   *Scope
	factory  *Factory

	// self lets the checked downcast As[T] recover the concrete type that
	// embeds this Symbol, without unsafe pointer arithmetic: every
	// constructor registers the concrete pointer here right after
	// allocation (factory.register).
	self any
}

func newSymbol(f *Factory, kind Kind, name string, loc token.Location, parent *Scope) Symbol {
	if name != "" {
		name = f.intern(name)
	}
	return Symbol{kind: kind, name: name, location: loc, parent: parent, factory: f}
}

// Kind returns this symbol's discriminator.
func (s *Symbol) Kind() Kind { return s.kind }

// Name returns the interned name, empty for anonymous symbols.
func (s *Symbol) Name() string { return s.name }

// Location returns the source location, zero (synthetic) for built-ins and
// other compiler-generated symbols.
func (s *Symbol) Location() token.Location { return s.location }

// Factory returns the arena that owns this symbol.
func (s *Symbol) Factory() *Factory { return s.factory }

// Parent returns the enclosing scope. The root symbol is its own parent;
// every other symbol's parent is non-nil.
func (s *Symbol) Parent() *Scope { return s.parent }

// FindAncestor walks parent pointers until a symbol of the given kind is
// found or the root is reached. Returns the root if kind == KindRoot and
// no closer match exists; otherwise returns nil if the root is reached
// without a match.
func (s *Symbol) FindAncestor(kind Kind) *Scope {
	for cur := s.parent; cur != nil; cur = cur.parent {
		if cur.kind == kind {
			return cur
		}
		if cur.kind == KindRoot {
			return nil
		}
	}
	return nil
}

// Root returns the compilation root scope. The root symbol's own parent
// field is wired back to itself at construction time (spec.md §3: "root is
// its own parent"), so this is just a parent read for the root case.
func (s *Symbol) Root() *Scope {
	if s.kind == KindRoot {
		return s.parent
	}
	return s.FindAncestor(KindRoot)
}

// As performs the checked downcast spec.md §4.2 calls `as<Kind>`: it traps
// (panics) on a kind mismatch, because by the time a caller reaches for
// As[T] it has already established the symbol's kind via Kind() or a
// lookup admission predicate. This is a programmer-facing trap, not a user
// diagnostic (spec.md §7).
func As[T any](s *Symbol) *T {
	if s == nil {
		panic("symbols.As: nil symbol")
	}
	v, ok := s.self.(*T)
	if !ok {
		panic(fmt.Sprintf("symbols.As: symbol %q (kind %s) is not a %T", s.name, s.kind, *new(T)))
	}
	return v
}

// addError reports a diagnostic tagged to this symbol's compilation sink,
// through the factory's MaxErrors-capped choke point.
func (s *Symbol) addError(code diagnostics.Code, loc token.Location, msg string) {
	if s.factory == nil {
		return
	}
	s.factory.addError(code, loc, msg)
}

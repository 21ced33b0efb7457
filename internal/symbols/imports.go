package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/token"
)

// ExplicitImportSymbol is `import pkg::name;` (spec.md §4.6). Both the
// package and the imported member are resolved on first use and memoised;
// a missing package or member is diagnosed exactly once.
type ExplicitImportSymbol struct {
	Symbol

	pkgName, importName string

	pkgResolved bool
	pkg         *Symbol
	pkgMissing  bool

	symResolved bool
	sym         *Symbol
	symMissing  bool
}

func newExplicitImport(f *Factory, name string, loc token.Location, parent *Scope, pkgName, importName string) *ExplicitImportSymbol {
	s := &ExplicitImportSymbol{
		Symbol:     newSymbol(f, KindExplicitImport, name, loc, parent),
		pkgName:    pkgName,
		importName: importName,
	}
	return register(&s.Symbol, s)
}

func (e *ExplicitImportSymbol) Package() *Symbol {
	if e.pkgResolved {
		return e.pkg
	}
	e.pkgResolved = true
	e.pkg = lookupPackageAtRoot(e.Root(), e.pkgName)
	if e.pkg == nil {
		e.pkgMissing = true
		e.addError(diagnostics.MissingPackage, e.location,
			fmt.Sprintf("unknown package %q", e.pkgName))
	}
	return e.pkg
}

func (e *ExplicitImportSymbol) ImportedSymbol() *Symbol {
	if e.symResolved {
		return e.sym
	}
	e.symResolved = true
	pkg := e.Package()
	if pkg == nil {
		e.symMissing = true
		return nil
	}
	pkgScope := &As[PackageSymbol](pkg).Scope
	e.sym = Lookup(pkgScope, e.importName, e.location, Direct)
	if e.sym == nil {
		e.symMissing = true
		e.addError(diagnostics.MissingImportedMember, e.location,
			fmt.Sprintf("package %q has no member %q", e.pkgName, e.importName))
	}
	return e.sym
}

// WildcardImportSymbol is `import pkg::*;` (spec.md §4.6). resolve(name, L)
// is invoked by the owning scope's Local lookup; results are memoised per
// (wildcard, name) pair, so a name that resolves once is never re-looked-up
// in the package even if asked for again from a different location.
type WildcardImportSymbol struct {
	Symbol

	pkgName string

	pkgResolved bool
	pkg         *Symbol

	resolved map[string]*ImplicitImportSymbol
}

func newWildcardImport(f *Factory, loc token.Location, parent *Scope, pkgName string) *WildcardImportSymbol {
	s := &WildcardImportSymbol{
		Symbol:   newSymbol(f, KindWildcardImport, "", loc, parent),
		pkgName:  pkgName,
		resolved: make(map[string]*ImplicitImportSymbol),
	}
	return register(&s.Symbol, s)
}

func (w *WildcardImportSymbol) Package() *Symbol {
	if w.pkgResolved {
		return w.pkg
	}
	w.pkgResolved = true
	w.pkg = lookupPackageAtRoot(w.Root(), w.pkgName)
	if w.pkg == nil {
		w.addError(diagnostics.MissingPackage, w.location,
			fmt.Sprintf("unknown package %q", w.pkgName))
	}
	return w.pkg
}

func (w *WildcardImportSymbol) resolve(name string, loc token.Location) *ImplicitImportSymbol {
	if cached, ok := w.resolved[name]; ok {
		return cached
	}
	pkg := w.Package()
	if pkg == nil {
		w.resolved[name] = nil
		return nil
	}
	target := Lookup(&As[PackageSymbol](pkg).Scope, name, loc, Direct)
	if target == nil {
		w.resolved[name] = nil
		return nil
	}
	implicit := newImplicitImport(w.factory, target.location, w.parent, target, w)
	w.resolved[name] = implicit
	return implicit
}

// ImplicitImportSymbol wraps a symbol reached through wildcard resolution
// (spec.md §3): "created on demand when a lookup falls through to
// wildcard resolution and succeeds."
type ImplicitImportSymbol struct {
	Symbol

	target   *Symbol
	wildcard *WildcardImportSymbol
}

func newImplicitImport(f *Factory, loc token.Location, parent *Scope, target *Symbol, wildcard *WildcardImportSymbol) *ImplicitImportSymbol {
	s := &ImplicitImportSymbol{
		Symbol:   newSymbol(f, KindImplicitImport, target.name, loc, parent),
		target:   target,
		wildcard: wildcard,
	}
	return register(&s.Symbol, s)
}

func (i *ImplicitImportSymbol) Target() *Symbol                  { return i.target }
func (i *ImplicitImportSymbol) Wildcard() *WildcardImportSymbol { return i.wildcard }

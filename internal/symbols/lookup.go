package symbols

import "github.com/funvibe/funxy/internal/token"

// LookupMode selects one of the five resolution algorithms of spec.md §4.4.
type LookupMode int

const (
	Direct LookupMode = iota
	Local
	Scoped
	Callable
	Definition
)

func (m LookupMode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Local:
		return "Local"
	case Scoped:
		return "Scoped"
	case Callable:
		return "Callable"
	case Definition:
		return "Definition"
	default:
		return "Unknown"
	}
}

// Lookup resolves name starting from scope S on behalf of lookup location
// L, under the given mode (spec.md §4.4). A failed lookup returns nil; the
// caller decides whether that is diagnosable.
func Lookup(s *Scope, name string, loc token.Location, mode LookupMode) *Symbol {
	switch mode {
	case Direct:
		s.ensureInit()
		return unwrapImport(s.memberMap[name])
	case Local:
		return lookupAdmitting(s, name, loc, admitAny)
	case Scoped:
		if sym := lookupAdmitting(s, name, loc, admitAny); sym != nil {
			return sym
		}
		return lookupPackageAtRoot(s.Root(), name)
	case Callable:
		return lookupAdmitting(s, name, loc, admitCallable)
	case Definition:
		return lookupDefinitionAtRoot(s.Root(), name)
	default:
		return nil
	}
}

// TypedLookup traps on absence or kind mismatch; it is for call sites that
// have already established a name's presence and kind (spec.md §4.4's
// `lookup<T>`).
func TypedLookup[T any](s *Scope, name string, loc token.Location, mode LookupMode) *T {
	sym := Lookup(s, name, loc, mode)
	if sym == nil {
		panic("symbols.TypedLookup: " + name + " not found")
	}
	return As[T](sym)
}

func admitAny(*Symbol) bool { return true }

func admitCallable(sym *Symbol) bool {
	return sym.kind == KindSubroutine
}

// unwrapImport returns the imported target for an Explicit/ImplicitImport
// symbol, or sym unchanged otherwise (spec.md §4.4: "the returned symbol is
// the imported target, never the import wrapper itself").
func unwrapImport(sym *Symbol) *Symbol {
	if sym == nil {
		return nil
	}
	switch sym.kind {
	case KindExplicitImport:
		return As[ExplicitImportSymbol](sym).ImportedSymbol()
	case KindImplicitImport:
		return As[ImplicitImportSymbol](sym).Target()
	default:
		return sym
	}
}

// lookupAdmitting implements Local plus the Callable admission filter in
// one recursive walk: a same-scope direct match that fails admit is
// treated as absent and the search still falls through to this scope's
// wildcard imports and then its parent, exactly as if no match existed.
func lookupAdmitting(s *Scope, name string, loc token.Location, admit func(*Symbol) bool) *Symbol {
	s.ensureInit()

	if raw, ok := s.memberMap[name]; ok {
		if candidate := unwrapImport(raw); candidate != nil && visible(candidate, loc) && admit(candidate) {
			return candidate
		}
	}

	for _, w := range s.wildcards {
		implicit := w.resolve(name, loc)
		if implicit == nil {
			continue
		}
		s.memberMap[name] = &implicit.Symbol
		s.memberList = append(s.memberList, &implicit.Symbol)
		target := implicit.Target()
		if target != nil && visible(target, loc) && admit(target) {
			return target
		}
	}

	if s.kind != KindRoot && s.parent != nil && s.parent != s {
		return lookupAdmitting(s.parent, name, loc, admit)
	}
	return nil
}

// lookupDefinitionAtRoot and lookupPackageAtRoot implement the
// "Definition-style lookup at the compilation root" spec.md §4.4/§4.6
// refers to: the compilation's definitions and packages are declared
// somewhere under a CompilationUnit child of root but are visible
// globally, so both the root's own member map and every compilation unit's
// member map are searched.
func lookupDefinitionAtRoot(root *Scope, name string) *Symbol {
	return lookupAtRootAdmitting(root, name, isDefinitionKind)
}

func lookupPackageAtRoot(root *Scope, name string) *Symbol {
	return lookupAtRootAdmitting(root, name, func(k Kind) bool { return k == KindPackage })
}

func lookupAtRootAdmitting(root *Scope, name string, admitKind func(Kind) bool) *Symbol {
	if root == nil {
		return nil
	}
	root.ensureInit()
	if sym, ok := root.memberMap[name]; ok && admitKind(sym.kind) {
		return sym
	}
	for _, member := range root.memberList {
		if member.kind != KindCompilationUnit {
			continue
		}
		unit := As[CompilationUnitSymbol](member)
		if unit.Scope.isInitializing() {
			// This unit is the one presently building its own member list
			// further up the call stack (a same-unit instantiation resolving
			// a sibling definition). Its own members are resolved directly
			// against the in-progress builder by the caller, not through
			// this root-wide walk; re-entering its ensureInit here would
			// trip the structural-cycle guard over a lookup that isn't
			// actually cyclic.
			continue
		}
		unit.ensureInit()
		if sym, ok := unit.memberMap[name]; ok && admitKind(sym.kind) {
			return sym
		}
	}
	return nil
}

package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

type scopeState int

const (
	scopeUninitialized scopeState = iota
	scopeInitializing
	scopeInitialized
)

// Scope is a Symbol with the scope capability (spec.md §3/§4.3): it owns a
// lazily built member map, an ordered member list, and a sideband list of
// wildcard imports. Every scope-shaped symbol kind (Root, CompilationUnit,
// Package, the two instance kinds, the generate kinds, DynamicScope)
// embeds Scope.
type Scope struct {
	Symbol

	fill      func(b *MemberBuilder)
	isDynamic bool

	state      scopeState
	memberMap  map[string]*Symbol
	memberList []*Symbol
	wildcards  []*WildcardImportSymbol
}

func newScope(f *Factory, kind Kind, name string, loc token.Location, parent *Scope, fill func(*MemberBuilder)) Scope {
	return Scope{Symbol: newSymbol(f, kind, name, loc, parent), fill: fill}
}

// ensureInit is cheap once initialised; otherwise it runs doInit. Re-entering
// ensureInit while already initialising indicates a structural cycle in
// elaboration (spec.md §4.9) and is reported once, leaving the scope with
// an empty member list rather than recursing forever.
func (sc *Scope) ensureInit() {
	switch sc.state {
	case scopeInitialized:
		return
	case scopeInitializing:
		sc.addError(diagnostics.CyclicDependency, sc.location,
			fmt.Sprintf("structural cycle while elaborating scope %q", sc.name))
		sc.memberMap = map[string]*Symbol{}
		sc.memberList = nil
		sc.wildcards = nil
		sc.state = scopeInitialized
		return
	default:
		sc.doInit()
	}
}

func (sc *Scope) doInit() {
	sc.state = scopeInitializing
	b := newMemberBuilder(sc)
	if sc.fill != nil {
		sc.fill(b)
	}
	if sc.state != scopeInitializing {
		// A re-entrant ensureInit during fill already reported the
		// structural cycle and left this scope empty.
		return
	}
	sc.memberMap = b.memberMap
	sc.memberList = b.memberList
	sc.wildcards = b.wildcards
	sc.state = scopeInitialized
}

// isInitializing reports whether this scope's own fill is currently
// running further up the call stack — i.e. this call arrived re-entrantly
// while the scope was building itself, as opposed to a genuine structural
// cycle elsewhere. Callers that can legitimately see a scope mid-build
// (root-wide definition lookup walking every compilation unit, including
// the one presently filling itself) use this to skip it rather than
// tripping ensureInit's cycle guard.
func (sc *Scope) isInitializing() bool { return sc.state == scopeInitializing }

// MarkDirty clears the initialised flag so the next access rebuilds the
// member list. Per the Open Question resolution in DESIGN.md, a
// DynamicScope with no fill_members override (one built only via SetMember/
// SetMembers) treats MarkDirty as a no-op: there is nothing to rebuild from.
func (sc *Scope) MarkDirty() {
	if sc.isDynamic && sc.fill == nil {
		return
	}
	sc.state = scopeUninitialized
	sc.memberMap = nil
	sc.memberList = nil
	sc.wildcards = nil
}

// Members returns the ordered member list, triggering ensureInit.
func (sc *Scope) Members() []*Symbol {
	sc.ensureInit()
	return sc.memberList
}

// Member returns the i'th member in declaration order.
func (sc *Scope) Member(i int) *Symbol {
	return sc.Members()[i]
}

// SetMembers overrides the member list wholesale; intended for
// DynamicScope and tests (spec.md §4.3). The override is discarded on the
// next dirty-rebuild unless this scope is a DynamicScope with no
// fill_members override, per MarkDirty above.
func (sc *Scope) SetMembers(list []*Symbol) {
	sc.memberList = append([]*Symbol(nil), list...)
	sc.memberMap = make(map[string]*Symbol, len(list))
	for _, m := range list {
		if m.name != "" {
			sc.memberMap[m.name] = m
		}
	}
	sc.wildcards = nil
	sc.state = scopeInitialized
}

// SetMember appends a single symbol to an already-initialised scope.
func (sc *Scope) SetMember(sym *Symbol) {
	sc.ensureInit()
	sc.memberList = append(sc.memberList, sym)
	if sym.name != "" {
		sc.memberMap[sym.name] = sym
	}
}

// EvaluateConstant binds then reduces a constant expression, per spec.md
// §4.3. On conversion failure (EvaluateConstantAndConvert) the value comes
// back tagged bad; no exception is raised.
func (sc *Scope) EvaluateConstant(exprSyntax syntax.Expr) ConstantValue {
	v, err := sc.factory.evaluateConstant(sc, exprSyntax)
	if err != nil {
		return BadConstant()
	}
	return v
}

func (sc *Scope) EvaluateConstantAndConvert(exprSyntax syntax.Expr, target *Symbol, errLoc token.Location) ConstantValue {
	v := sc.EvaluateConstant(exprSyntax)
	if v.Bad {
		return v
	}
	converted, err := sc.factory.checker.ConvertConstant(v, target, errLoc)
	if err != nil {
		return BadConstant()
	}
	return converted
}

// visible implements spec.md §4.4's visibility rule: a candidate is
// rejected if its location is lexically after loc within the same file.
// Synthetic locations (built-ins, implicit parameters) and candidates from
// a different file than loc are always visible — there is no ordering to
// compare them against.
func visible(candidate *Symbol, loc token.Location) bool {
	if loc.IsSynthetic() || candidate.location.IsSynthetic() {
		return true
	}
	if candidate.location.File != loc.File {
		return true
	}
	return candidate.location.AtOrBefore(loc)
}

// MemberBuilder is the scratch object fill_members populates (spec.md
// §4.3). Add enrols one already-constructed child symbol; a name
// collision is diagnosed once. By default the first declaration wins in
// memberMap and both remain in memberList so diagnostics can reference
// either; with cfg.FatalDuplicateDefinitions set, a collision instead
// aborts further member-list construction for this scope, and the
// colliding symbol itself is dropped rather than kept alongside the
// first.
type MemberBuilder struct {
	scope      *Scope
	memberMap  map[string]*Symbol
	memberList []*Symbol
	wildcards  []*WildcardImportSymbol
	aborted    bool
}

func newMemberBuilder(scope *Scope) *MemberBuilder {
	return &MemberBuilder{scope: scope, memberMap: make(map[string]*Symbol)}
}

func (b *MemberBuilder) Add(sym *Symbol) {
	if b.aborted {
		return
	}
	if sym.name != "" {
		if existing, dup := b.memberMap[sym.name]; dup {
			b.scope.addError(diagnostics.DuplicateDefinition, sym.location,
				fmt.Sprintf("%q redeclared (first declared at %s)", sym.name, existing.location))
			if b.scope.factory.cfg.FatalDuplicateDefinitions {
				b.aborted = true
				return
			}
			b.memberList = append(b.memberList, sym)
			return
		}
		b.memberMap[sym.name] = sym
	}
	b.memberList = append(b.memberList, sym)
}

func (b *MemberBuilder) AddWildcard(w *WildcardImportSymbol) {
	b.wildcards = append(b.wildcards, w)
}

package symbols

import (
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

func toNodes(members []syntax.CompilationUnitMember) []syntax.Node {
	nodes := make([]syntax.Node, len(members))
	for i, m := range members {
		nodes[i] = m
	}
	return nodes
}

// RootSymbol is the single compilation root (spec.md §3/§6): its own
// parent, populated with one CompilationUnitSymbol child per parsed file
// plus the built-in type table. Definitions and packages declared in any
// unit are visible compilation-wide (spec.md §4.4's Definition/Scoped
// lookup search the root, not a single unit), which is why lookup walks
// every unit's member map rather than treating units as ordinary nested
// scopes.
type RootSymbol struct {
	Scope
	units []*syntax.CompilationUnitSyntax
}

// NewRoot constructs an empty root scope bound to factory f. Compilation
// units are attached afterward via AddCompilationUnit.
func NewRoot(f *Factory) *RootSymbol {
	s := &RootSymbol{}
	s.Scope = newScope(f, KindRoot, "$root", token.Location{}, nil, nil)
	s.Scope.parent = &s.Scope
	s.Scope.fill = s.fillMembers
	return register(&s.Symbol, s)
}

// AddCompilationUnit registers a parsed file's syntax for elaboration and
// marks the root dirty so the next access rebuilds its member list to
// include it.
func (s *RootSymbol) AddCompilationUnit(cu *syntax.CompilationUnitSyntax) {
	s.units = append(s.units, cu)
	s.MarkDirty()
}

func (s *RootSymbol) fillMembers(b *MemberBuilder) {
	addBuiltins(s.factory, b)
	for _, cu := range s.units {
		b.Add(&newCompilationUnitSymbol(s.factory, cu, &s.Scope).Symbol)
	}
}

// CompilationUnitSymbol is the scope produced from one parsed file: its
// fill_members walks the file's top-level syntax to produce definition
// symbols, package symbols, and imports (spec.md §2's data-flow summary).
type CompilationUnitSymbol struct {
	Scope
	unit *syntax.CompilationUnitSyntax
}

func newCompilationUnitSymbol(f *Factory, cu *syntax.CompilationUnitSyntax, parent *Scope) *CompilationUnitSymbol {
	s := &CompilationUnitSymbol{unit: cu}
	loc := token.Location{File: cu.FileName}
	s.Scope = newScope(f, KindCompilationUnit, cu.FileName, loc, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

func (s *CompilationUnitSymbol) fillMembers(b *MemberBuilder) {
	elaborateMembers(s.factory, toNodes(s.unit.Members), &s.Scope, b, false)
}

// PackageSymbol is a `package ... endpackage` declaration: a scope whose
// members (including any plain, non-overridable parameters) are visible
// to explicit and wildcard imports (spec.md §4.6).
type PackageSymbol struct {
	Scope
	syn *syntax.PackageSyntax
}

func newPackageSymbol(f *Factory, parent *Scope, syn *syntax.PackageSyntax) *PackageSymbol {
	s := &PackageSymbol{syn: syn}
	s.Scope = newScope(f, KindPackage, syn.Name, syn.Location, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

func (s *PackageSymbol) fillMembers(b *MemberBuilder) {
	elaborateMembers(s.factory, s.syn.Body, &s.Scope, b, false)
}

// DynamicScopeSymbol is the tool/test variant exposed by spec.md §6:
// "a DynamicScope variant allowing post-hoc add_symbol for tools and
// tests; its members are held in an explicit list and are preserved
// across dirty/rebuild only by re-adding." A DynamicScope built without a
// fill_members override (the normal case — it only ever exists via
// AddSymbol/SetMembers) has no filler to rebuild from, so MarkDirty on it
// is a no-op (see Scope.MarkDirty): there would be nothing left after the
// rebuild.
type DynamicScopeSymbol struct {
	Scope
}

func newDynamicScope(f *Factory, parent *Scope) *DynamicScopeSymbol {
	s := &DynamicScopeSymbol{}
	s.Scope = newScope(f, KindDynamicScope, "", token.Location{}, parent, nil)
	s.Scope.isDynamic = true
	return register(&s.Symbol, s)
}

// NewDynamicScope constructs an empty dynamic scope under parent, for
// tools and tests to populate via AddSymbol.
func NewDynamicScope(f *Factory, parent *Scope) *DynamicScopeSymbol {
	s := newDynamicScope(f, parent)
	s.SetMembers(nil)
	return s
}

// AddSymbol appends sym to this scope's explicit member list.
func (s *DynamicScopeSymbol) AddSymbol(sym *Symbol) {
	s.SetMember(sym)
}

// newDynamicScopeWithMembers is the internal counterpart used by generate
// elaboration to hold a single per-iteration genvar binding (spec.md
// §4.8): a throwaway scope, refreshed via SetMembers every iteration
// rather than through the dirty/rebuild protocol.
func newDynamicScopeWithMembers(f *Factory, parent *Scope, members []*Symbol) *DynamicScopeSymbol {
	s := newDynamicScope(f, parent)
	s.SetMembers(members)
	return s
}

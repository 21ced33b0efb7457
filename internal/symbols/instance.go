package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// InstanceSymbol is a scope referencing a DefinitionSymbol plus a mapping
// from parameter name to assigning expression syntax (spec.md §3/§4.7).
// Its member list is the definition's body with parameter symbols rebound
// to assigned (or default) values, all resolving against this scope.
type InstanceSymbol struct {
	Scope
	def         *DefinitionSymbol
	assignments map[string]syntax.Expr
}

func instanceKindFor(dk syntax.DefinitionKind) Kind {
	switch dk {
	case syntax.DefinitionInterface:
		return KindInterfaceInstance
	case syntax.DefinitionProgram:
		return KindInstance
	default:
		return KindModuleInstance
	}
}

func newInstanceSymbol(f *Factory, name string, loc token.Location, parent *Scope, def *DefinitionSymbol, assignments map[string]syntax.Expr) *InstanceSymbol {
	s := &InstanceSymbol{def: def, assignments: assignments}
	s.Scope = newScope(f, instanceKindFor(def.declKind), name, loc, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

// Definition returns the definition this instance was built from.
func (inst *InstanceSymbol) Definition() *DefinitionSymbol { return inst.def }

// fillMembers implements spec.md §4.7's instantiation algorithm: every
// parameter in the definition's cached info list becomes a fresh
// ParameterSymbol resolving against this instance, seeded from the
// assignment map or the default initializer; then every non-parameter
// body member is cloned as a child of this instance via the shared
// elaborateMembers walk, with skipParams=true since parameters were
// already handled above.
func (inst *InstanceSymbol) fillMembers(b *MemberBuilder) {
	f := inst.factory
	for _, info := range inst.def.ParameterInfo() {
		assigned, hasAssignment := inst.assignments[info.Name]

		if hasAssignment && info.IsLocalParam {
			inst.addError(diagnostics.ParamOverrideOfLocal, info.Location,
				fmt.Sprintf("cannot override local parameter %q", info.Name))
			hasAssignment = false
		}

		var valueSyntax syntax.Expr
		switch {
		case hasAssignment:
			valueSyntax = assigned
		case info.Default != nil:
			valueSyntax = info.Default
		default:
			if !info.IsLocalParam {
				inst.addError(diagnostics.MissingRequiredParameter, info.Location,
					fmt.Sprintf("parameter %q has no default and was not assigned", info.Name))
			}
		}

		param := newParameterSymbol(f, info.Name, info.Location, &inst.Scope, &inst.Scope,
			info.IsLocalParam, info.IsPortParam, info.Type, valueSyntax)
		b.Add(&param.Symbol)
	}

	elaborateMembers(f, inst.def.decl.Body, &inst.Scope, b, true)
}

// elaborateInstantiation produces one InstanceSymbol per instantiation
// entry of a HierarchyInstantiationSyntax, one per array element for
// array-valued entries, named per spec.md §4.7 ("array instantiations
// produce one symbol per element, named per the element syntax"). The
// definition name is resolved first against this scope's own in-progress
// member builder (b), which by elaborateMembers' two-pass order already
// holds every definition/package this scope declares regardless of
// textual position — a same-unit instantiation must not resolve its
// definition through Lookup's root-wide walk, since that would re-enter
// this very scope's still-running fill and trip the structural-cycle
// guard (spec.md §4.9). Only once a name isn't found locally does it fall
// through to Lookup for a definition declared in a different unit.
func elaborateInstantiation(f *Factory, h *syntax.HierarchyInstantiationSyntax, scope *Scope, b *MemberBuilder) []*InstanceSymbol {
	sym := localDefinitionLookup(b, h.DefinitionName)
	if sym == nil {
		sym = Lookup(scope, h.DefinitionName, h.Location, Definition)
	}
	if sym == nil {
		scope.addError(diagnostics.UndeclaredIdentifier, h.Location,
			fmt.Sprintf("unknown module/interface/program %q", h.DefinitionName))
		return nil
	}
	def := As[DefinitionSymbol](sym)

	var instances []*InstanceSymbol
	for _, entry := range h.Entries {
		if entry.ArraySize <= 0 {
			instances = append(instances, newInstanceSymbol(f, entry.Name, entry.Location, scope, def, entry.ParamAssignments))
			continue
		}
		for i := 0; i < entry.ArraySize; i++ {
			name := fmt.Sprintf("%s[%d]", entry.Name, i)
			instances = append(instances, newInstanceSymbol(f, name, entry.Location, scope, def, entry.ParamAssignments))
		}
	}
	return instances
}

// localDefinitionLookup checks a scope's own in-progress member builder for
// an already-elaborated definition or package, without touching Lookup's
// root-wide walk. Used by elaborateInstantiation to resolve a same-scope
// definition regardless of whether this scope is mid-fill.
func localDefinitionLookup(b *MemberBuilder, name string) *Symbol {
	sym, ok := b.memberMap[name]
	if !ok || !isDefinitionKind(sym.kind) {
		return nil
	}
	return sym
}

// elaborateMembers is the shared body-walk used by InstanceSymbol (with
// skipParams=true, since parameters are handled by the caller from the
// definition's cached ParameterInfo) and by every other scope whose
// fill_members just expands a flat list of syntax nodes — Package, Root's
// per-unit body, and GenerateBlock (skipParams=false: ordinary `parameter`
// declarations inside these are plain, non-overridable parameters, not
// subject to instantiation's assignment map).
//
// Definitions and packages are elaborated in a first pass, before anything
// else in this scope's body, so that an instantiation anywhere in this
// scope — textually before or after the definition it names — can resolve
// that definition from b's member map without depending on declaration
// order (spec.md §4.7's instantiation algorithm assumes definitions are
// already available to name).
func elaborateMembers(f *Factory, items []syntax.Node, scope *Scope, b *MemberBuilder, skipParams bool) {
	for _, item := range items {
		switch n := item.(type) {
		case *syntax.DefinitionSyntax:
			b.Add(&newDefinitionSymbol(f, scope, n).Symbol)
		case *syntax.PackageSyntax:
			b.Add(&newPackageSymbol(f, scope, n).Symbol)
		}
	}

	for _, item := range items {
		switch n := item.(type) {
		case *syntax.DefinitionSyntax, *syntax.PackageSyntax:
			continue
		case *syntax.ParameterDeclSyntax:
			if skipParams {
				continue
			}
			b.Add(&newPlainParameter(f, n, scope).Symbol)
		case *syntax.DataDeclSyntax:
			b.Add(&newVariableSymbol(f, n, scope).Symbol)
		case *syntax.FunctionDeclSyntax:
			b.Add(&newSubroutine(f, n, scope).Symbol)
		case *syntax.IfGenerateSyntax:
			b.Add(&newIfGenerateSymbol(f, n, scope).Symbol)
		case *syntax.LoopGenerateSyntax:
			b.Add(&newLoopGenerateSymbol(f, n, scope).Symbol)
		case *syntax.HierarchyInstantiationSyntax:
			for _, inst := range elaborateInstantiation(f, n, scope, b) {
				b.Add(&inst.Symbol)
			}
		case *syntax.ExplicitImportSyntax:
			b.Add(&newExplicitImport(f, n.ImportName, n.Location, scope, n.PackageName, n.ImportName).Symbol)
		case *syntax.WildcardImportSyntax:
			b.AddWildcard(newWildcardImport(f, n.Location, scope, n.PackageName))
		case *syntax.GenvarDeclSyntax:
			b.Add(&newGenvar(f, n.Name, n.Location, scope).Symbol)
		case *syntax.ModportDeclSyntax:
			b.Add(&newModport(f, n.Name, n.Location, scope).Symbol)
		case *syntax.AttributeSyntax:
			b.Add(&newAttribute(f, n.Name, n.Location, scope, n.Value).Symbol)
		case *syntax.ProceduralBlockSyntax:
			b.Add(&newProceduralBlock(f, n.Location, scope, n.Body).Symbol)
		case *syntax.SequentialBlockSyntax:
			b.Add(&newSequentialBlock(f, n.Name, n.Location, scope, n.Body).Symbol)
		case *syntax.TypeAliasDeclSyntax:
			alias := newTypeAlias(f, n.Name, n.Location, scope)
			alias.target.SetSyntax(n.Target)
			b.Add(&alias.Symbol)
		case *syntax.EnumTypeDeclSyntax:
			b.Add(&newEnumType(f, n, scope).Symbol)
		}
	}
}

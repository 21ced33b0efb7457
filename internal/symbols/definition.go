package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// ParameterInfo is one entry of a DefinitionSymbol's cached parameter list
// (spec.md §3/§4.7): name, location, default initializer, and the
// local/port flags instance elaboration needs to decide whether an
// assignment is legal and whether a missing value is an error.
type ParameterInfo struct {
	Name        string
	Location    token.Location
	Type        syntax.TypeRef
	Default     syntax.Expr
	IsLocalParam bool
	IsPortParam  bool
}

// DefinitionSymbol is a module/interface/program declaration (spec.md
// §4.7). It is deliberately not a Scope: its raw body is elaborated fresh
// into each InstanceSymbol rather than shared, since parameter overrides
// change what every member type/expression resolves to. What it does
// cache, once, is the parameter-info extraction — the declaration syntax
// never changes, so re-walking it per instantiation would be pure waste.
type DefinitionSymbol struct {
	Symbol

	declKind syntax.DefinitionKind
	decl     *syntax.DefinitionSyntax

	paramInfoBuilt bool
	paramInfo      []ParameterInfo
}

func definitionKindToKind(k syntax.DefinitionKind) Kind {
	switch k {
	case syntax.DefinitionInterface:
		return KindInterface
	case syntax.DefinitionProgram:
		return KindProgram
	default:
		return KindModule
	}
}

func newDefinitionSymbol(f *Factory, parent *Scope, decl *syntax.DefinitionSyntax) *DefinitionSymbol {
	s := &DefinitionSymbol{
		Symbol:   newSymbol(f, definitionKindToKind(decl.Kind), decl.Name, decl.Location, parent),
		declKind: decl.Kind,
		decl:     decl,
	}
	return register(&s.Symbol, s)
}

// Declaration returns the raw syntax this definition was built from.
func (d *DefinitionSymbol) Declaration() *syntax.DefinitionSyntax { return d.decl }

// ParameterInfo returns the cached, order-preserving parameter list,
// building it on first use.
func (d *DefinitionSymbol) ParameterInfo() []ParameterInfo {
	if !d.paramInfoBuilt {
		d.paramInfo = d.buildParameterInfo()
		d.paramInfoBuilt = true
	}
	return d.paramInfo
}

// buildParameterInfo implements the "last local" rule (spec.md §4.7):
// within the port-parameter list only, once a parameter is declared
// local, every subsequent port parameter inherits locality until one
// explicitly overrides it with `parameter` again. Body parameters
// (declared inside the module body rather than the port list) do not
// participate in or inherit this propagation — each is local exactly
// when it says `localparam` (see DESIGN.md's Open Question resolution).
// Duplicate names, port or body, are diagnosed against the first
// occurrence and the duplicate entry dropped.
func (d *DefinitionSymbol) buildParameterInfo() []ParameterInfo {
	var infos []ParameterInfo
	seen := make(map[string]token.Location)

	lastLocal := false
	for _, p := range d.decl.PortParams {
		isLocal := p.Local || lastLocal
		lastLocal = p.Local
		if first, dup := seen[p.Name]; dup {
			d.addError(diagnostics.DuplicateDefinition, p.Location,
				fmt.Sprintf("parameter %q redeclared (first declared at %s)", p.Name, first))
			continue
		}
		seen[p.Name] = p.Location
		infos = append(infos, ParameterInfo{
			Name: p.Name, Location: p.Location, Type: p.Type, Default: p.Default,
			IsLocalParam: isLocal, IsPortParam: true,
		})
	}

	for _, node := range d.decl.Body {
		p, ok := node.(*syntax.ParameterDeclSyntax)
		if !ok {
			continue
		}
		if first, dup := seen[p.Name]; dup {
			d.addError(diagnostics.DuplicateDefinition, p.Location,
				fmt.Sprintf("parameter %q redeclared (first declared at %s)", p.Name, first))
			continue
		}
		seen[p.Name] = p.Location
		infos = append(infos, ParameterInfo{
			Name: p.Name, Location: p.Location, Type: p.Type, Default: p.Default,
			IsLocalParam: p.Local, IsPortParam: false,
		})
	}
	return infos
}

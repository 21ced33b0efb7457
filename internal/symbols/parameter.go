package symbols

import (
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// ParameterSymbol may be constructed with a fixed type and value (implicit
// loop-generate indices) or from syntax references resolved
// lazily against the instance scope it belongs to (spec.md §3). resolveIn
// records that scope: the type and value cells must evaluate there, never
// against the definition scope, so overridden values and types see the
// instance's own parameter siblings.
type ParameterSymbol struct {
	Symbol

	isLocalParam bool
	isPortParam  bool

	resolveIn *Scope
	typ       *LazyType
	value     *LazyConstant
}

// newParameterSymbol builds a syntax-backed parameter: typeSyntax may be
// nil, in which case Type() returns nil (no type is inferred from the
// value); valueSyntax is the assigned expression or, failing that, the
// default, and is nil when neither exists; resolveIn is the instance scope
// evaluation happens against.
func newParameterSymbol(f *Factory, name string, loc token.Location, parent *Scope, resolveIn *Scope, isLocal, isPort bool, typeSyntax syntax.TypeRef, valueSyntax syntax.Expr) *ParameterSymbol {
	s := &ParameterSymbol{
		Symbol:       newSymbol(f, KindParameter, name, loc, parent),
		isLocalParam: isLocal,
		isPortParam:  isPort,
		resolveIn:    resolveIn,
		typ:          newLazyType(f),
		value:        newLazyConstant(f),
	}
	if typeSyntax != nil {
		s.typ.SetSyntax(typeSyntax)
	}
	if valueSyntax != nil {
		s.value.SetSyntax(valueSyntax)
	}
	return register(&s.Symbol, s)
}

// newFixedParameterSymbol builds a parameter whose type and value are
// already known (the implicit loop-generate index, spec.md §4.8).
func newFixedParameterSymbol(f *Factory, name string, loc token.Location, parent *Scope, typ *Symbol, value ConstantValue) *ParameterSymbol {
	s := &ParameterSymbol{
		Symbol:       newSymbol(f, KindParameter, name, loc, parent),
		isLocalParam: true,
		resolveIn:    parent,
		typ:          newLazyType(f),
		value:        newLazyConstant(f),
	}
	s.typ.SetResolved(typ)
	s.value.SetResolved(value)
	return register(&s.Symbol, s)
}

// newPlainParameter builds a non-overridable parameter declared directly
// in a non-definition scope (a package, the root, or a generate block) —
// spec.md's §8 scenario 3 `package p; parameter int K = 10; endpackage`.
// These never go through instance elaboration's assignment map.
func newPlainParameter(f *Factory, decl *syntax.ParameterDeclSyntax, parent *Scope) *ParameterSymbol {
	return newParameterSymbol(f, decl.Name, decl.Location, parent, parent, true, false, decl.Type, decl.Default)
}

func (p *ParameterSymbol) IsLocalParam() bool { return p.isLocalParam }
func (p *ParameterSymbol) IsPortParam() bool  { return p.isPortParam }

func (p *ParameterSymbol) Type() *Symbol {
	return p.typ.Get(p.resolveIn, p.factory.sink, p.location)
}

func (p *ParameterSymbol) Value() ConstantValue {
	return p.value.Get(p.resolveIn, p.factory.sink, p.location)
}

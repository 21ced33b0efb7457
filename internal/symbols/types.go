package symbols

import (
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// IntegralTypeSymbol, RealTypeSymbol, StringTypeSymbol, CHandleTypeSymbol,
// VoidTypeSymbol and EventTypeSymbol are the built-in type kinds (spec.md
// §3). They carry no further state beyond the Symbol header; bit width (for
// integral types) lives on the Width field since the built-in table needs
// more than one instance of KindIntegralType.
type IntegralTypeSymbol struct {
	Symbol
	Width  int
	Signed bool
}

func newIntegralType(f *Factory, name string, width int, signed bool) *IntegralTypeSymbol {
	s := &IntegralTypeSymbol{
		Symbol: newSymbol(f, KindIntegralType, name, token.Location{}, nil),
		Width:  width,
		Signed: signed,
	}
	return register(&s.Symbol, s)
}

type RealTypeSymbol struct{ Symbol }

func newRealType(f *Factory, name string) *RealTypeSymbol {
	s := &RealTypeSymbol{Symbol: newSymbol(f, KindRealType, name, token.Location{}, nil)}
	return register(&s.Symbol, s)
}

type StringTypeSymbol struct{ Symbol }

func newStringType(f *Factory) *StringTypeSymbol {
	s := &StringTypeSymbol{Symbol: newSymbol(f, KindStringType, "string", token.Location{}, nil)}
	return register(&s.Symbol, s)
}

type CHandleTypeSymbol struct{ Symbol }

func newCHandleType(f *Factory) *CHandleTypeSymbol {
	s := &CHandleTypeSymbol{Symbol: newSymbol(f, KindCHandleType, "chandle", token.Location{}, nil)}
	return register(&s.Symbol, s)
}

type VoidTypeSymbol struct{ Symbol }

func newVoidType(f *Factory) *VoidTypeSymbol {
	s := &VoidTypeSymbol{Symbol: newSymbol(f, KindVoidType, "void", token.Location{}, nil)}
	return register(&s.Symbol, s)
}

type EventTypeSymbol struct{ Symbol }

func newEventType(f *Factory) *EventTypeSymbol {
	s := &EventTypeSymbol{Symbol: newSymbol(f, KindEventType, "event", token.Location{}, nil)}
	return register(&s.Symbol, s)
}

// TypeAliasSymbol is a `typedef` binding a name to another type, resolved
// lazily since the aliased type syntax may itself reference not-yet-bound
// parameters.
type TypeAliasSymbol struct {
	Symbol
	target *LazyType
}

func newTypeAlias(f *Factory, name string, loc token.Location, parent *Scope) *TypeAliasSymbol {
	s := &TypeAliasSymbol{
		Symbol: newSymbol(f, KindTypeAlias, name, loc, parent),
		target: newLazyType(f),
	}
	return register(&s.Symbol, s)
}

func (t *TypeAliasSymbol) Target(scope *Scope) *Symbol {
	return t.target.Get(scope, t.factory.sink, t.location)
}

// EnumTypeSymbol is a scope: its members are the EnumValueSymbol constants
// declared within it, in source order.
type EnumTypeSymbol struct {
	Scope
	base *LazyType
	decl *syntax.EnumTypeDeclSyntax
}

func newEnumType(f *Factory, decl *syntax.EnumTypeDeclSyntax, parent *Scope) *EnumTypeSymbol {
	s := &EnumTypeSymbol{base: newLazyType(f), decl: decl}
	s.Scope = newScope(f, KindEnumType, decl.Name, decl.Location, parent, s.fillMembers)
	if decl.Base != nil {
		s.base.SetSyntax(decl.Base)
	}
	return register(&s.Symbol, s)
}

func (e *EnumTypeSymbol) fillMembers(b *MemberBuilder) {
	for _, v := range e.decl.Values {
		ev := newEnumValue(e.factory, v.Name, v.Location, &e.Scope, e)
		ev.value.SetSyntax(v.Value)
		b.Add(&ev.Symbol)
	}
}

func (e *EnumTypeSymbol) BaseType() *Symbol {
	return e.base.Get(&e.Scope, e.factory.sink, e.location)
}

// EnumValueSymbol is one named constant of an EnumTypeSymbol.
type EnumValueSymbol struct {
	Symbol
	owner *EnumTypeSymbol
	value *LazyConstant
}

func newEnumValue(f *Factory, name string, loc token.Location, parent *Scope, owner *EnumTypeSymbol) *EnumValueSymbol {
	s := &EnumValueSymbol{
		Symbol: newSymbol(f, KindEnumValue, name, loc, parent),
		owner:  owner,
		value:  newLazyConstant(f),
	}
	return register(&s.Symbol, s)
}

func (v *EnumValueSymbol) Value(scope *Scope) ConstantValue {
	return v.value.Get(scope, v.factory.sink, v.location)
}

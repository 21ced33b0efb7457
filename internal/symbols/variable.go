package symbols

import (
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// VariableSymbol is a data/net declaration (spec.md §6's DataDeclSyntax):
// type and initializer both resolve lazily against the owning scope.
type VariableSymbol struct {
	Symbol
	constant bool
	typ      *LazyType
	init     *LazyInitializer
}

func newVariableSymbol(f *Factory, decl *syntax.DataDeclSyntax, parent *Scope) *VariableSymbol {
	s := &VariableSymbol{
		Symbol:   newSymbol(f, KindVariable, decl.Name, decl.Location, parent),
		constant: decl.Constant,
	}
	s.typ = newLazyType(f)
	s.init = newLazyInitializer(f)
	if decl.Type != nil {
		s.typ.SetSyntax(decl.Type)
	}
	if decl.Initializer != nil {
		s.init.SetSyntax(decl.Initializer)
	}
	return register(&s.Symbol, s)
}

func (v *VariableSymbol) IsConstant() bool { return v.constant }
func (v *VariableSymbol) Type(scope *Scope) *Symbol {
	return v.typ.Get(scope, v.factory.sink, v.location)
}
func (v *VariableSymbol) Initializer(scope *Scope) BoundExpr {
	value, ok := v.init.GetOpt(scope, v.factory.sink, v.location)
	if !ok {
		return nil
	}
	return value
}

// FormalArgumentSymbol is one subroutine parameter.
type FormalArgumentSymbol struct {
	Symbol
	typ *LazyType
}

func newFormalArgument(f *Factory, arg *syntax.FormalArgSyntax, parent *Scope) *FormalArgumentSymbol {
	s := &FormalArgumentSymbol{Symbol: newSymbol(f, KindFormalArgument, arg.Name, arg.Location, parent)}
	s.typ = newLazyType(f)
	if arg.Type != nil {
		s.typ.SetSyntax(arg.Type)
	}
	return register(&s.Symbol, s)
}

func (a *FormalArgumentSymbol) Type(scope *Scope) *Symbol {
	return a.typ.Get(scope, a.factory.sink, a.location)
}

// SubroutineSymbol is a function/task declaration: a scope (its formal
// arguments and locals are members) whose body is a lazily bound statement
// list, and whose return type (nil for a task) is a lazy type.
type SubroutineSymbol struct {
	Scope
	returnType *LazyType
	body       *LazyStatementList
	isTask     bool
}

func newSubroutine(f *Factory, decl *syntax.FunctionDeclSyntax, parent *Scope) *SubroutineSymbol {
	s := &SubroutineSymbol{isTask: decl.ReturnType == nil}
	s.Scope = newScope(f, KindSubroutine, decl.Name, decl.Location, parent, func(b *MemberBuilder) {
		for _, arg := range decl.Args {
			b.Add(&newFormalArgument(f, arg, &s.Scope).Symbol)
		}
	})
	s.returnType = newLazyType(f)
	if decl.ReturnType != nil {
		s.returnType.SetSyntax(decl.ReturnType)
	}
	s.body = newLazyStatementList(f)
	stmts := make([]syntax.Stmt, len(decl.Body))
	copy(stmts, decl.Body)
	s.body.SetSyntax(stmts)
	return register(&s.Symbol, s)
}

func (s *SubroutineSymbol) IsTask() bool { return s.isTask }
func (s *SubroutineSymbol) ReturnType() *Symbol {
	if s.isTask {
		return nil
	}
	return s.returnType.Get(&s.Scope, s.factory.sink, s.location)
}
func (s *SubroutineSymbol) Body() BoundStmtList {
	return s.body.Get(&s.Scope, s.factory.sink, s.location)
}

// GenvarSymbol marks a loop-generate control variable declaration
// (`genvar i;`) before elaboration binds it to successive values; the
// per-iteration value itself lives on a ParameterSymbol (spec.md §4.8),
// not here.
type GenvarSymbol struct{ Symbol }

func newGenvar(f *Factory, name string, loc token.Location, parent *Scope) *GenvarSymbol {
	s := &GenvarSymbol{Symbol: newSymbol(f, KindGenvar, name, loc, parent)}
	return register(&s.Symbol, s)
}

// ModportSymbol names one of an interface's port-direction views. Its
// member list (the directional port names it exposes) is out of scope for
// elaboration here; it is retained as a named, locatable symbol so
// lookup and member iteration over an interface definition stay uniform
// across all its declared members.
type ModportSymbol struct{ Symbol }

func newModport(f *Factory, name string, loc token.Location, parent *Scope) *ModportSymbol {
	s := &ModportSymbol{Symbol: newSymbol(f, KindModport, name, loc, parent)}
	return register(&s.Symbol, s)
}

// AttributeSymbol is a `(* name = value *)` attribute attached to the
// member that follows it in source order.
type AttributeSymbol struct {
	Symbol
	value *LazyConstant
}

func newAttribute(f *Factory, name string, loc token.Location, parent *Scope, valueSyntax syntax.Expr) *AttributeSymbol {
	s := &AttributeSymbol{Symbol: newSymbol(f, KindAttribute, name, loc, parent), value: newLazyConstant(f)}
	if valueSyntax != nil {
		s.value.SetSyntax(valueSyntax)
	}
	return register(&s.Symbol, s)
}

func (a *AttributeSymbol) Value(scope *Scope) (ConstantValue, bool) {
	return a.value.GetOpt(scope, a.factory.sink, a.location)
}

// ProceduralBlockSymbol is an `initial`/`always`-family block: a scope
// whose single member list is its bound statement body.
type ProceduralBlockSymbol struct {
	Scope
	body *LazyStatementList
}

func newProceduralBlock(f *Factory, loc token.Location, parent *Scope, stmts []syntax.Stmt) *ProceduralBlockSymbol {
	s := &ProceduralBlockSymbol{}
	s.Scope = newScope(f, KindProceduralBlock, "", loc, parent, nil)
	s.body = newLazyStatementList(f)
	cp := make([]syntax.Stmt, len(stmts))
	copy(cp, stmts)
	s.body.SetSyntax(cp)
	return register(&s.Symbol, s)
}

func (p *ProceduralBlockSymbol) Body() BoundStmtList {
	return p.body.Get(&p.Scope, p.factory.sink, p.location)
}

// SequentialBlockSymbol is a `begin ... end` statement block acting as a
// scope for the locals it declares.
type SequentialBlockSymbol struct {
	Scope
	body *LazyStatementList
}

func newSequentialBlock(f *Factory, name string, loc token.Location, parent *Scope, stmts []syntax.Stmt) *SequentialBlockSymbol {
	s := &SequentialBlockSymbol{}
	s.Scope = newScope(f, KindSequentialBlock, name, loc, parent, nil)
	s.body = newLazyStatementList(f)
	cp := make([]syntax.Stmt, len(stmts))
	copy(cp, stmts)
	s.body.SetSyntax(cp)
	return register(&s.Symbol, s)
}

func (b *SequentialBlockSymbol) Body() BoundStmtList {
	return b.body.Get(&b.Scope, b.factory.sink, b.location)
}

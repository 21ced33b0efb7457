// Package evalcheck is a minimal Checker (symbols.Checker) grounded on the
// teacher's tree-walking evaluator idiom: bind first (resolve every name
// against its scope, producing a tree of already-resolved references),
// then reduce. It understands exactly the expression and type grammar
// internal/syntax declares (IntLitExpr, IdentExpr, BinaryExpr,
// TypeNameRef) — enough to drive parameter defaults, generate conditions
// and loop steps, not a full SystemVerilog expression language.
package evalcheck

import (
	"fmt"

	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/symbols"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// Checker implements symbols.Checker.
type Checker struct{}

func New() *Checker { return &Checker{} }

// boundBad is the well-formed failure sentinel spec.md §6 requires: bind
// failures produce this (plus an error) instead of aborting. Only an
// undeclared identifier is also reported to the scope's sink; the other
// bind failures raise no diagnostic of their own.
type boundBad struct{ reason string }

type boundInt struct{ value int64 }

type boundParamRef struct {
	param *symbols.ParameterSymbol
}

type boundBinary struct {
	op          syntax.BinaryOp
	left, right symbols.BoundExpr
}

func (c *Checker) BindExpression(scope *symbols.Scope, n syntax.Expr) (symbols.BoundExpr, error) {
	switch e := n.(type) {
	case *syntax.IntLitExpr:
		return &boundInt{value: e.Value}, nil
	case *syntax.IdentExpr:
		sym := symbols.Lookup(scope, e.Name, e.Loc(), symbols.Local)
		if sym == nil {
			scope.Factory().Report(diagnostics.UndeclaredIdentifier, e.Loc(), fmt.Sprintf("undeclared identifier %q", e.Name))
			return &boundBad{reason: "undeclared identifier " + e.Name}, fmt.Errorf("undeclared identifier %q", e.Name)
		}
		if sym.Kind() != symbols.KindParameter {
			return &boundBad{reason: "not a constant"}, fmt.Errorf("%q does not name a parameter", e.Name)
		}
		return &boundParamRef{param: symbols.As[symbols.ParameterSymbol](sym)}, nil
	case *syntax.BinaryExpr:
		left, lerr := c.BindExpression(scope, e.Left)
		right, rerr := c.BindExpression(scope, e.Right)
		if lerr != nil || rerr != nil {
			return &boundBad{reason: "bad operand"}, fmt.Errorf("bad operand in binary expression")
		}
		return &boundBinary{op: e.Op, left: left, right: right}, nil
	default:
		return &boundBad{reason: "unsupported expression"}, fmt.Errorf("unsupported expression node %T", n)
	}
}

func (c *Checker) BindType(scope *symbols.Scope, n syntax.TypeRef) (*symbols.Symbol, error) {
	t, ok := n.(*syntax.TypeNameRef)
	if !ok {
		return nil, fmt.Errorf("unsupported type syntax node %T", n)
	}
	sym := symbols.Lookup(scope, t.Name, t.Loc(), symbols.Local)
	if sym == nil {
		return nil, fmt.Errorf("unknown type %q", t.Name)
	}
	return sym, nil
}

func (c *Checker) BindStatement(scope *symbols.Scope, n syntax.Stmt) (symbols.BoundStmt, error) {
	return n, nil
}

func (c *Checker) BindStatementList(scope *symbols.Scope, n []syntax.Stmt) (symbols.BoundStmtList, error) {
	return n, nil
}

func (c *Checker) EvaluateConstant(expr symbols.BoundExpr) (symbols.ConstantValue, error) {
	switch e := expr.(type) {
	case *boundInt:
		return symbols.ConstantValue{Raw: e.value}, nil
	case *boundParamRef:
		v := e.param.Value()
		if v.Bad {
			return symbols.BadConstant(), fmt.Errorf("parameter %q has no value", e.param.Name())
		}
		return v, nil
	case *boundBinary:
		l, lerr := c.EvaluateConstant(e.left)
		r, rerr := c.EvaluateConstant(e.right)
		if lerr != nil || rerr != nil || l.Bad || r.Bad {
			return symbols.BadConstant(), fmt.Errorf("bad operand")
		}
		li, lok := l.Int()
		ri, rok := r.Int()
		if !lok || !rok {
			return symbols.BadConstant(), fmt.Errorf("non-integral operand")
		}
		switch e.op {
		case syntax.OpAdd:
			return symbols.ConstantValue{Raw: li + ri}, nil
		case syntax.OpSub:
			return symbols.ConstantValue{Raw: li - ri}, nil
		case syntax.OpMul:
			return symbols.ConstantValue{Raw: li * ri}, nil
		case syntax.OpLess:
			return symbols.ConstantValue{Raw: li < ri}, nil
		case syntax.OpLessEq:
			return symbols.ConstantValue{Raw: li <= ri}, nil
		case syntax.OpEq:
			return symbols.ConstantValue{Raw: li == ri}, nil
		default:
			return symbols.BadConstant(), fmt.Errorf("unsupported operator")
		}
	case *boundBad:
		return symbols.BadConstant(), fmt.Errorf("bad expression: %s", e.reason)
	default:
		return symbols.BadConstant(), fmt.Errorf("unsupported bound expression %T", expr)
	}
}

// ConvertConstant is the identity conversion: this minimal checker does
// not model bit widths or signedness, so a value either converts as-is or
// (if already bad) stays bad.
func (c *Checker) ConvertConstant(v symbols.ConstantValue, target *symbols.Symbol, loc token.Location) (symbols.ConstantValue, error) {
	if v.Bad {
		return v, fmt.Errorf("cannot convert a bad constant")
	}
	return v, nil
}

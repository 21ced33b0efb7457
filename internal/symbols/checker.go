package symbols

import (
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// BoundExpr, BoundStmt and BoundStmtList are the semantic values the
// external checker produces from syntax. The core never inspects their
// structure (spec.md §1): it only threads them through lazy cells.
type (
	BoundExpr     any
	BoundStmt     any
	BoundStmtList any
)

// ConstantValue is the result of constant evaluation. Raw's concrete shape
// is owned by the constant-evaluator collaborator; the core only asks
// whether the value is bad and, for its own bookkeeping (generate
// conditions, loop bounds), whether it can be read as an int or a bool.
type ConstantValue struct {
	Bad bool
	Raw any
}

// BadConstant is the sentinel a cyclic or failed evaluation resolves to.
func BadConstant() ConstantValue { return ConstantValue{Bad: true} }

func (v ConstantValue) Int() (int64, bool) {
	if v.Bad {
		return 0, false
	}
	i, ok := v.Raw.(int64)
	return i, ok
}

func (v ConstantValue) Bool() (bool, bool) {
	if v.Bad {
		return false, false
	}
	switch raw := v.Raw.(type) {
	case bool:
		return raw, true
	case int64:
		return raw != 0, true
	default:
		return false, false
	}
}

// Checker is the external expression/statement checker and constant
// evaluator (spec.md §6). It must return a well-formed bad sentinel on
// failure rather than abort, and is responsible for reporting its own
// diagnostics (the "Delegated" error kind of spec.md §7).
type Checker interface {
	BindStatement(scope *Scope, n syntax.Stmt) (BoundStmt, error)
	BindStatementList(scope *Scope, n []syntax.Stmt) (BoundStmtList, error)
	BindExpression(scope *Scope, n syntax.Expr) (BoundExpr, error)
	BindType(scope *Scope, n syntax.TypeRef) (*Symbol, error)
	EvaluateConstant(expr BoundExpr) (ConstantValue, error)
	ConvertConstant(v ConstantValue, target *Symbol, loc token.Location) (ConstantValue, error)
}

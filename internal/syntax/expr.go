package syntax

import "github.com/funvibe/funxy/internal/token"

// IntLitExpr, IdentExpr and BinaryExpr are a minimal concrete expression
// grammar sufficient to drive constant folding (parameter defaults,
// generate conditions, loop bounds). The lexer/parser that would produce
// a full SystemVerilog expression grammar is an external collaborator
// (spec.md §1); these are the leaves a checker built against this core
// needs to exist at all.
type IntLitExpr struct {
	Location token.Location
	Value    int64
}

func (e *IntLitExpr) Loc() token.Location { return e.Location }

type IdentExpr struct {
	Location token.Location
	Name     string
}

func (e *IdentExpr) Loc() token.Location { return e.Location }

type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpLess
	OpLessEq
	OpEq
)

type BinaryExpr struct {
	Location token.Location
	Op       BinaryOp
	Left     Expr
	Right    Expr
}

func (e *BinaryExpr) Loc() token.Location { return e.Location }

// TypeNameRef is a bare type-name reference (`int`, `logic`, a typedef
// name) — the common case data declarations and parameter types use.
type TypeNameRef struct {
	Location token.Location
	Name     string
}

func (t *TypeNameRef) Loc() token.Location { return t.Location }

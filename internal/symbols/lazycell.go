package symbols

import (
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

type cellState int

const (
	cellUnresolved cellState = iota
	cellResolving
	cellResolved
)

// LazyCell is the single mechanism behind spec.md §4.5's five named cell
// types (LazyStatement, LazyStatementList, LazyConstant, LazyInitializer,
// LazyType): it holds either a syntax reference or the semantic reference
// it resolves to, transitioning at most once. Re-entrant evaluation (cell
// X's binding transitively reads cell X) is caught by the cellResolving
// marker and reported as a cyclic dependency; the cell then holds a bad
// sentinel so the cycle is never re-reported.
type LazyCell[S any, R any] struct {
	state cellState

	syntax    S
	hasSyntax bool

	result    R
	hasResult bool

	bind func(scope *Scope, syntax S) (R, error)
	bad  R
}

func newLazyCell[S any, R any](bind func(*Scope, S) (R, error)) *LazyCell[S, R] {
	return &LazyCell[S, R]{bind: bind}
}

// newLazyCellWithBad is newLazyCell, but with an explicit sentinel to store
// on a cyclic or failed resolution instead of R's bare zero value. Needed
// for ConstantValue, whose zero value (Bad: false) would otherwise read as
// a perfectly good constant.
func newLazyCellWithBad[S any, R any](bind func(*Scope, S) (R, error), bad R) *LazyCell[S, R] {
	return &LazyCell[S, R]{bind: bind, bad: bad}
}

// SetSyntax seeds the cell with an unresolved syntax reference, discarding
// any prior resolution. This is the normal construction path: declare now,
// bind later.
func (c *LazyCell[S, R]) SetSyntax(s S) {
	c.syntax = s
	c.hasSyntax = true
	c.state = cellUnresolved
	var zero R
	c.result = zero
	c.hasResult = false
}

// SetResolved seeds the cell with an already-known semantic value (spec.md
// §3's "constructed with a fixed type and value" path for Parameter, and
// the per-iteration genvar binding in generate elaboration).
func (c *LazyCell[S, R]) SetResolved(r R) {
	c.result = r
	c.hasResult = true
	c.state = cellResolved
}

// Get returns the resolved reference, binding against scope on first
// access. Idempotent: repeated calls against the same (or a different,
// post-dirty) scope return the same cached reference once resolved.
func (c *LazyCell[S, R]) Get(scope *Scope, sink diagnostics.Sink, loc token.Location) R {
	switch c.state {
	case cellResolved:
		return c.result
	case cellResolving:
		if sink != nil {
			sink.Report(diagnostics.Diagnostic{
				Code:     diagnostics.CyclicDependency,
				Location: loc,
				Message:  "cyclic dependency while resolving",
			})
		}
		c.state = cellResolved
		c.result = c.bad
		c.hasResult = true
		return c.result
	default:
		if !c.hasSyntax {
			var zero R
			return zero
		}
		c.state = cellResolving
		r, err := c.bind(scope, c.syntax)
		if err != nil {
			// The checker is responsible for reporting its own diagnostics
			// (spec.md §7, "Delegated"); the cell just remembers the
			// bad result and stops re-entering.
			r = c.bad
		}
		c.result = r
		c.hasResult = true
		c.state = cellResolved
		return c.result
	}
}

// GetOpt returns (value, false) without binding if the cell was seeded
// empty (no SetSyntax/SetResolved call was ever made) — e.g. a parameter
// with neither a default nor an assignment.
func (c *LazyCell[S, R]) GetOpt(scope *Scope, sink diagnostics.Sink, loc token.Location) (R, bool) {
	if c.state != cellResolved && !c.hasSyntax {
		var zero R
		return zero, false
	}
	return c.Get(scope, sink, loc), true
}

// IsResolved reports whether Get has already produced (or been given) a
// result, without triggering binding.
func (c *LazyCell[S, R]) IsResolved() bool { return c.state == cellResolved }

type (
	LazyType          = LazyCell[syntax.TypeRef, *Symbol]
	LazyConstant      = LazyCell[syntax.Expr, ConstantValue]
	LazyInitializer   = LazyCell[syntax.Expr, BoundExpr]
	LazyStatement     = LazyCell[syntax.Stmt, BoundStmt]
	LazyStatementList = LazyCell[[]syntax.Stmt, BoundStmtList]
)

func newLazyType(f *Factory) *LazyType { return newLazyCell[syntax.TypeRef, *Symbol](f.bindType) }
func newLazyConstant(f *Factory) *LazyConstant {
	return newLazyCellWithBad[syntax.Expr, ConstantValue](f.evaluateConstant, BadConstant())
}
func newLazyInitializer(f *Factory) *LazyInitializer {
	return newLazyCell[syntax.Expr, BoundExpr](f.bindInitializer)
}
func newLazyStatement(f *Factory) *LazyStatement {
	return newLazyCell[syntax.Stmt, BoundStmt](f.bindStatement)
}
func newLazyStatementList(f *Factory) *LazyStatementList {
	return newLazyCell[[]syntax.Stmt, BoundStmtList](f.bindStatementList)
}

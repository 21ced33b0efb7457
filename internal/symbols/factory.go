package symbols

import (
	"github.com/google/uuid"

	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

// Factory is the arena (spec.md §4.1): it owns every symbol, constant
// value and bound expression created for one compilation, hands out
// stable references that live as long as the compilation, and interns
// name strings. A compilation owns exactly one Factory; if an embedder
// needs to elaborate two independent designs in parallel, each design
// gets its own Factory (spec.md §5).
type Factory struct {
	sink    diagnostics.Sink
	checker Checker
	cfg     config.Elaboration

	// id identifies this compilation to an embedder (via ID()); the core
	// itself keys no cache or diagnostic by it.
	id uuid.UUID

	names map[string]string

	// reportedCount tracks diagnostics actually forwarded to sink, so
	// addError can enforce cfg.MaxErrors the way the pack's
	// DiagnosticManager.AddDiagnostic caps errorCount against maxErrors.
	reportedCount int
}

// NewFactory creates an arena reporting into sink, delegating binding and
// constant evaluation to checker, under the given elaboration options.
func NewFactory(sink diagnostics.Sink, checker Checker, cfg config.Elaboration) *Factory {
	return &Factory{
		sink:    sink,
		checker: checker,
		cfg:     cfg,
		id:      uuid.New(),
		names:   make(map[string]string),
	}
}

// ID identifies this compilation.
func (f *Factory) ID() uuid.UUID { return f.id }

// Config returns the elaboration options this factory was built with.
func (f *Factory) Config() config.Elaboration { return f.cfg }

func (f *Factory) intern(s string) string {
	if v, ok := f.names[s]; ok {
		return v
	}
	f.names[s] = s
	return s
}

// register publishes the concrete pointer behind a just-constructed
// Symbol so the checked downcast As[T] can recover it later.
func register[T any](sym *Symbol, self *T) *T {
	sym.self = self
	return self
}

func (f *Factory) bindType(scope *Scope, n syntax.TypeRef) (*Symbol, error) {
	return f.checker.BindType(scope, n)
}

func (f *Factory) bindInitializer(scope *Scope, n syntax.Expr) (BoundExpr, error) {
	return f.checker.BindExpression(scope, n)
}

func (f *Factory) bindStatement(scope *Scope, n syntax.Stmt) (BoundStmt, error) {
	return f.checker.BindStatement(scope, n)
}

func (f *Factory) bindStatementList(scope *Scope, n []syntax.Stmt) (BoundStmtList, error) {
	return f.checker.BindStatementList(scope, n)
}

// evaluateConstant binds an expression then reduces it to a constant
// value, the pairing LazyConstant cells use (spec.md §4.5/§4.3).
func (f *Factory) evaluateConstant(scope *Scope, n syntax.Expr) (ConstantValue, error) {
	bound, err := f.checker.BindExpression(scope, n)
	if err != nil {
		return BadConstant(), err
	}
	return f.checker.EvaluateConstant(bound)
}

func (f *Factory) addError(code diagnostics.Code, loc token.Location, msg string) {
	if f.sink == nil {
		return
	}
	if f.cfg.MaxErrors > 0 && f.reportedCount >= f.cfg.MaxErrors {
		return
	}
	f.reportedCount++
	f.sink.Report(diagnostics.Diagnostic{Code: code, Location: loc, Message: msg})
}

// Report lets an external Checker raise its own diagnostics during
// binding or constant evaluation (spec.md §7's "Delegated" error kind)
// through the same sink the core itself reports into.
func (f *Factory) Report(code diagnostics.Code, loc token.Location, msg string) {
	f.addError(code, loc, msg)
}

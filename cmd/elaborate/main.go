// Command elaborate is a small driver wiring the semantic core's arena,
// root scope and a minimal checker together end to end. It has no real
// SystemVerilog lexer or parser behind it (that collaborator lives outside
// this module), so it elaborates one fixed, hand-built syntax tree — a
// module with a default parameter, instantiated with an override — and
// prints whatever the scope graph resolves plus any diagnostics raised.
package main

import (
	"fmt"
	"os"

	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/evalcheck"
	"github.com/funvibe/funxy/internal/symbols"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

func sampleUnit() *syntax.CompilationUnitSyntax {
	def := &syntax.DefinitionSyntax{
		Name: "counter",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "WIDTH", Type: &syntax.TypeNameRef{Name: "int"}, Default: &syntax.IntLitExpr{Value: 8}},
		},
	}
	inst := &syntax.HierarchyInstantiationSyntax{
		DefinitionName: "counter",
		Entries: []*syntax.InstantiationEntry{
			{Name: "u_counter", ParamAssignments: map[string]syntax.Expr{"WIDTH": &syntax.IntLitExpr{Value: 16}}},
		},
	}
	return &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members:  []syntax.CompilationUnitMember{def, inst},
	}
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "elaborate: loading config: %v\n", err)
		os.Exit(1)
	}

	sink := diagnostics.NewCollector()
	factory := symbols.NewFactory(sink, evalcheck.New(), cfg)
	root := symbols.NewRoot(factory)
	root.AddCompilationUnit(sampleUnit())

	unit := symbols.As[symbols.CompilationUnitSymbol](root.Member(len(root.Members()) - 1))
	instSym := symbols.Lookup(&unit.Scope, "u_counter", token.Location{}, symbols.Direct)
	if instSym == nil {
		fmt.Fprintln(os.Stderr, "elaborate: u_counter was not elaborated")
		os.Exit(1)
	}
	inst := symbols.As[symbols.InstanceSymbol](instSym)

	width := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&inst.Scope, "WIDTH", token.Location{}, symbols.Direct))
	value, ok := width.Value().Int()
	if !ok {
		fmt.Fprintln(os.Stderr, "elaborate: WIDTH did not resolve to an integer")
	} else {
		fmt.Printf("u_counter.WIDTH = %d\n", value)
	}

	printer := diagnostics.NewPrinter(os.Stderr)
	printer.Print(sink)
	if len(sink.Diagnostics) > 0 {
		os.Exit(1)
	}
}

func configPath() string {
	if len(os.Args) > 1 {
		return os.Args[1]
	}
	return "elaborate.yaml"
}

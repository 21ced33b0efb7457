// Package syntax declares the read-only syntax-tree shapes the semantic
// core consumes. The lexer and parser that actually produce these nodes are
// an external collaborator (spec.md §1); this package is only the contract.
package syntax

import "github.com/funvibe/funxy/internal/token"

// Node is the minimal capability every syntax node offers: a location for
// diagnostics and visibility checks.
type Node interface {
	Loc() token.Location
}

// Expr, Stmt and TypeRef are opaque leaves from the core's point of view —
// it never inspects their structure, only threads them through to the
// external Checker (spec.md §1, §6). Any node implementing Node may also
// implement one or more of these marker interfaces.
type (
	Expr    interface{ Node }
	Stmt    interface{ Node }
	TypeRef interface{ Node }
)

// CompilationUnitSyntax is everything parsed from a single source file:
// SystemVerilog compiles each file into its own compilation-unit scope,
// with definitions and packages visible process-wide regardless of which
// unit declared them (spec.md §3's CompilationUnit kind).
type CompilationUnitSyntax struct {
	FileName string
	Members  []CompilationUnitMember
}

func (c *CompilationUnitSyntax) Loc() token.Location { return token.Location{File: c.FileName} }

// DefinitionKind distinguishes the three kinds of elaborable definitions.
type DefinitionKind int

const (
	DefinitionModule DefinitionKind = iota
	DefinitionInterface
	DefinitionProgram
)

// CompilationUnitMember is any top-level declaration a parsed file may
// contain: a definition, a package, or an import statement.
type CompilationUnitMember interface{ Node }

// DefinitionSyntax is a module/interface/program declaration: a name, an
// ordered parameter port list, and a body of further members (data
// declarations, function declarations, generate constructs, nested
// instantiations, parameter declarations appearing in the body instead of
// the port list).
type DefinitionSyntax struct {
	Location   token.Location
	Kind       DefinitionKind
	Name       string
	PortParams []*ParameterDeclSyntax
	Body       []Node
}

func (d *DefinitionSyntax) Loc() token.Location { return d.Location }

// ParameterDeclSyntax is one `parameter`/`localparam` declarator, either in
// a definition's port list or in its body.
type ParameterDeclSyntax struct {
	Location   token.Location
	Name       string
	Type       TypeRef // may be nil: the parameter then has no resolved type
	Default    Expr    // may be nil: no default initializer
	Local      bool    // explicit `localparam` or inherited per the "last local" rule
	BodyParam  bool    // declared in the body rather than the port list
}

func (p *ParameterDeclSyntax) Loc() token.Location { return p.Location }

// DataDeclSyntax is a variable/net declaration.
type DataDeclSyntax struct {
	Location    token.Location
	Name        string
	Type        TypeRef
	Initializer Expr // may be nil
	Constant    bool
}

func (d *DataDeclSyntax) Loc() token.Location { return d.Location }

// FormalArgSyntax is one subroutine formal argument.
type FormalArgSyntax struct {
	Location token.Location
	Name     string
	Type     TypeRef
}

func (a *FormalArgSyntax) Loc() token.Location { return a.Location }

// FunctionDeclSyntax is a function/task declaration.
type FunctionDeclSyntax struct {
	Location   token.Location
	Name       string
	ReturnType TypeRef // nil for a task
	Args       []*FormalArgSyntax
	Body       []Stmt
}

func (f *FunctionDeclSyntax) Loc() token.Location { return f.Location }

// IfGenerateSyntax is a compile-time conditional generate construct.
type IfGenerateSyntax struct {
	Location  token.Location
	Label     string
	Condition Expr
	Then      GenerateBodySyntax
	Else      GenerateBodySyntax // zero value (nil Items, empty label) if absent
	HasElse   bool
}

func (g *IfGenerateSyntax) Loc() token.Location { return g.Location }

// GenerateBodySyntax is either a single item or a `begin : label ... end`
// block; Label is empty for a single bare item.
type GenerateBodySyntax struct {
	Label string
	Items []Node
}

// LoopGenerateSyntax is a compile-time for-loop generate construct.
type LoopGenerateSyntax struct {
	Location  token.Location
	Label     string
	Genvar    string
	Init      Expr // initial value assigned to the genvar
	Condition Expr // loop test, re-evaluated each iteration
	Step      Expr // step expression, evaluated in terms of the genvar
	Body      GenerateBodySyntax
}

func (g *LoopGenerateSyntax) Loc() token.Location { return g.Location }

// InstantiationEntry is one named instance within a HierarchyInstantiationSyntax,
// optionally array-valued.
type InstantiationEntry struct {
	Location        token.Location
	Name            string
	ParamAssignments map[string]Expr
	ArraySize       int // 0 means a scalar instance
}

// HierarchyInstantiationSyntax instantiates a module/interface/program
// definition one or more times.
type HierarchyInstantiationSyntax struct {
	Location       token.Location
	DefinitionName string
	Entries        []*InstantiationEntry
}

func (h *HierarchyInstantiationSyntax) Loc() token.Location { return h.Location }

// PackageSyntax is a `package ... endpackage` declaration.
type PackageSyntax struct {
	Location token.Location
	Name     string
	Body     []Node
}

func (p *PackageSyntax) Loc() token.Location { return p.Location }

// GenvarDeclSyntax is a `genvar i;` declaration, distinct from the
// per-iteration binding a loop-generate construct produces for the same
// name.
type GenvarDeclSyntax struct {
	Location token.Location
	Name     string
}

func (g *GenvarDeclSyntax) Loc() token.Location { return g.Location }

// ModportDeclSyntax is one `modport name (...)` view inside an interface
// body.
type ModportDeclSyntax struct {
	Location token.Location
	Name     string
}

func (m *ModportDeclSyntax) Loc() token.Location { return m.Location }

// AttributeSyntax is a `(* name = value *)` attribute; Value is nil for a
// bare, valueless attribute.
type AttributeSyntax struct {
	Location token.Location
	Name     string
	Value    Expr
}

func (a *AttributeSyntax) Loc() token.Location { return a.Location }

// ProceduralBlockSyntax is an `initial`/`always`-family block: anonymous,
// holding only its statement body.
type ProceduralBlockSyntax struct {
	Location token.Location
	Body     []Stmt
}

func (p *ProceduralBlockSyntax) Loc() token.Location { return p.Location }

// SequentialBlockSyntax is a `begin : label ... end` statement block. Name
// is empty for an unlabeled block.
type SequentialBlockSyntax struct {
	Location token.Location
	Name     string
	Body     []Stmt
}

func (s *SequentialBlockSyntax) Loc() token.Location { return s.Location }

// TypeAliasDeclSyntax is a `typedef <target> name;` declaration.
type TypeAliasDeclSyntax struct {
	Location token.Location
	Name     string
	Target   TypeRef
}

func (t *TypeAliasDeclSyntax) Loc() token.Location { return t.Location }

// EnumValueDeclSyntax is one named constant of an EnumTypeDeclSyntax.
type EnumValueDeclSyntax struct {
	Location token.Location
	Name     string
	Value    Expr // explicit value; this core does not model SystemVerilog's implicit-increment default
}

func (e *EnumValueDeclSyntax) Loc() token.Location { return e.Location }

// EnumTypeDeclSyntax is a `typedef enum <base> {values...} name;`
// declaration.
type EnumTypeDeclSyntax struct {
	Location token.Location
	Name     string
	Base     TypeRef // may be nil: base type defaults per the checker
	Values   []*EnumValueDeclSyntax
}

func (e *EnumTypeDeclSyntax) Loc() token.Location { return e.Location }

// ExplicitImportSyntax is `import pkg::name;`.
type ExplicitImportSyntax struct {
	Location    token.Location
	PackageName string
	ImportName  string
}

func (i *ExplicitImportSyntax) Loc() token.Location { return i.Location }

// WildcardImportSyntax is `import pkg::*;`.
type WildcardImportSyntax struct {
	Location    token.Location
	PackageName string
}

func (i *WildcardImportSyntax) Loc() token.Location { return i.Location }

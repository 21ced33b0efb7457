package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/evalcheck"
	"github.com/funvibe/funxy/internal/symbols"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

func intType(loc token.Location) *syntax.TypeNameRef {
	return &syntax.TypeNameRef{Location: loc, Name: "int"}
}

func newTestRoot(t *testing.T) (*symbols.RootSymbol, *diagnostics.Collector) {
	t.Helper()
	sink := diagnostics.NewCollector()
	f := symbols.NewFactory(sink, evalcheck.New(), config.Default())
	return symbols.NewRoot(f), sink
}

func newTestRootWithConfig(t *testing.T, cfg config.Elaboration) (*symbols.RootSymbol, *diagnostics.Collector) {
	t.Helper()
	sink := diagnostics.NewCollector()
	f := symbols.NewFactory(sink, evalcheck.New(), cfg)
	return symbols.NewRoot(f), sink
}

// lastUnit returns the CompilationUnitSymbol for the most recently added
// unit — every scenario here adds exactly one. Top-level declarations
// (definitions, instances, packages, imports) are direct members of this
// scope, not of the root scope itself, so lookups for them must start here.
func lastUnit(t *testing.T, root *symbols.RootSymbol) *symbols.CompilationUnitSymbol {
	t.Helper()
	members := root.Members()
	return symbols.As[symbols.CompilationUnitSymbol](members[len(members)-1])
}

// Scenario 1: simple module with default parameter.
func TestSimpleModuleDefaultParameter(t *testing.T) {
	root, diags := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "P", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 3}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{
				DefinitionName: "m",
				Entries:        []*syntax.InstantiationEntry{{Name: "u"}},
			},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct)
	require.NotNil(t, u)
	assert.Equal(t, symbols.KindModuleInstance, u.Kind())

	inst := symbols.As[symbols.InstanceSymbol](u)
	p := symbols.Lookup(&inst.Scope, "P", token.Location{}, symbols.Direct)
	require.NotNil(t, p)
	param := symbols.As[symbols.ParameterSymbol](p)
	v, ok := param.Value().Int()
	require.True(t, ok)
	assert.Equal(t, int64(3), v)
	assert.Equal(t, symbols.KindIntegralType, param.Type().Kind())
	assert.False(t, diags.HasCode(diagnostics.MissingRequiredParameter))
}

// Scenario 2: parameter override.
func TestParameterOverride(t *testing.T) {
	root, diags := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "P", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 3}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{
				DefinitionName: "m",
				Entries: []*syntax.InstantiationEntry{{
					Name:             "u",
					ParamAssignments: map[string]syntax.Expr{"P": &syntax.IntLitExpr{Value: 7}},
				}},
			},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct)
	require.NotNil(t, u)
	inst := symbols.As[symbols.InstanceSymbol](u)
	param := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&inst.Scope, "P", token.Location{}, symbols.Direct))
	v, ok := param.Value().Int()
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
	assert.False(t, diags.HasCode(diagnostics.MissingRequiredParameter))
}

// Scenario 3: wildcard import.
func TestWildcardImport(t *testing.T) {
	root, _ := newTestRoot(t)

	pkg := &syntax.PackageSyntax{
		Name: "p",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "K", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 10}},
		},
	}
	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "Q", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "K"}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			pkg,
			&syntax.WildcardImportSyntax{PackageName: "p"},
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	cu := lastUnit(t, root)

	// Before anything forces wildcard resolution, `K` is not yet a Direct
	// member of the importing compilation unit's own member map.
	assert.Nil(t, symbols.Lookup(&cu.Scope, "K", token.Location{}, symbols.Direct))

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&cu.Scope, "u", token.Location{}, symbols.Direct))
	q := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&u.Scope, "Q", token.Location{}, symbols.Direct))
	v, ok := q.Value().Int()
	require.True(t, ok)
	assert.Equal(t, int64(10), v)
}

// Scenario 4: explicit import shadow.
func TestExplicitImportShadow(t *testing.T) {
	root, _ := newTestRoot(t)

	pkg := &syntax.PackageSyntax{
		Name: "p",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "K", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 10}},
		},
	}
	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "Q", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "K"}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			pkg,
			&syntax.ExplicitImportSyntax{PackageName: "p", ImportName: "K"},
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	q := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&u.Scope, "Q", token.Location{}, symbols.Direct))
	v, ok := q.Value().Int()
	require.True(t, ok)
	assert.Equal(t, int64(10), v)
}

// Scenario 5: if-generate.
func TestIfGenerate(t *testing.T) {
	root, _ := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.IfGenerateSyntax{
				Condition: &syntax.IntLitExpr{Value: 1},
				Then: syntax.GenerateBodySyntax{Label: "g", Items: []syntax.Node{
					&syntax.ParameterDeclSyntax{Name: "R", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 1}},
				}},
				Else: syntax.GenerateBodySyntax{Label: "g", Items: []syntax.Node{
					&syntax.ParameterDeclSyntax{Name: "R", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 2}},
				}},
				HasElse: true,
			},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	instMembers := u.Members()
	require.Len(t, instMembers, 1)
	require.Equal(t, symbols.KindIfGenerate, instMembers[0].Kind())

	ifGen := symbols.As[symbols.IfGenerateSymbol](instMembers[0])
	members := ifGen.Members()
	require.Len(t, members, 1)
	assert.Equal(t, symbols.KindGenerateBlock, members[0].Kind())
	assert.Equal(t, "g", members[0].Name())

	block := symbols.As[symbols.GenerateBlockSymbol](members[0])
	r := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&block.Scope, "R", token.Location{}, symbols.Direct))
	v, ok := r.Value().Int()
	require.True(t, ok)
	assert.Equal(t, int64(1), v)
}

// Scenario 6: loop-generate.
func TestLoopGenerate(t *testing.T) {
	root, _ := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.LoopGenerateSyntax{
				Genvar:    "i",
				Init:      &syntax.IntLitExpr{Value: 0},
				Condition: &syntax.BinaryExpr{Op: syntax.OpLess, Left: &syntax.IdentExpr{Name: "i"}, Right: &syntax.IntLitExpr{Value: 3}},
				Step:      &syntax.BinaryExpr{Op: syntax.OpAdd, Left: &syntax.IdentExpr{Name: "i"}, Right: &syntax.IntLitExpr{Value: 1}},
				Body: syntax.GenerateBodySyntax{Label: "b", Items: []syntax.Node{
					&syntax.ParameterDeclSyntax{Name: "X", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "i"}},
				}},
			},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	instMembers := u.Members()
	require.Len(t, instMembers, 1)
	require.Equal(t, symbols.KindLoopGenerate, instMembers[0].Kind())

	loopGen := symbols.As[symbols.LoopGenerateSymbol](instMembers[0])
	members := loopGen.Members()
	require.Len(t, members, 3)

	for i, m := range members {
		assert.Equal(t, symbols.KindGenerateBlock, m.Kind())
		assert.Equal(t, "b["+string(rune('0'+i))+"]", m.Name())

		block := symbols.As[symbols.GenerateBlockSymbol](m)
		implicit := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&block.Scope, "i", token.Location{}, symbols.Direct))
		iv, ok := implicit.Value().Int()
		require.True(t, ok)
		assert.Equal(t, int64(i), iv)

		x := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&block.Scope, "X", token.Location{}, symbols.Direct))
		xv, ok := x.Value().Int()
		require.True(t, ok)
		assert.Equal(t, int64(i), xv)
	}
}

// A parameter with no default and no assignment emits
// MissingRequiredParameter exactly once per instance.
func TestMissingRequiredParameter(t *testing.T) {
	root, diags := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "P", Type: intType(token.Location{})},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct)
	assert.Equal(t, 1, diags.CountCode(diagnostics.MissingRequiredParameter))
}

// Direct lookup never returns an ImplicitImport, and Local lookup memoises
// a wildcard-resolved name so a second lookup does not re-resolve it.
func TestDirectNeverReturnsImplicitImport(t *testing.T) {
	root, _ := newTestRoot(t)

	pkg := &syntax.PackageSyntax{
		Name: "p",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "K", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 10}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			pkg,
			&syntax.WildcardImportSyntax{PackageName: "p"},
		},
	}
	root.AddCompilationUnit(unit)

	cu := symbols.As[symbols.CompilationUnitSymbol](root.Members()[len(root.Members())-1])

	// Before anything has triggered wildcard resolution, K is not yet a
	// member of the importing scope's own member map.
	beforeDirect := symbols.Lookup(&cu.Scope, "K", token.Location{}, symbols.Direct)
	assert.Nil(t, beforeDirect, "K is not a Direct member of the importing scope before a lookup induces it")

	first := symbols.Lookup(&cu.Scope, "K", token.Location{}, symbols.Local)
	require.NotNil(t, first)
	assert.Equal(t, symbols.KindParameter, first.Kind())

	// The Local lookup memoised the induced ImplicitImport straight into
	// the member map, so a Direct lookup now finds it too — unwrapped, per
	// spec.md §4.4: the returned symbol is always the imported target,
	// never the import wrapper itself.
	afterDirect := symbols.Lookup(&cu.Scope, "K", token.Location{}, symbols.Direct)
	assert.Same(t, first, afterDirect)

	// A second Local lookup reuses the same memoised target.
	second := symbols.Lookup(&cu.Scope, "K", token.Location{}, symbols.Local)
	assert.Same(t, first, second)
}

// mark_dirty then members() reproduces an equal-by-multiset member list
// when the underlying syntax has not changed.
func TestDirtyRebuildIsIdempotent(t *testing.T) {
	root, _ := newTestRoot(t)
	def := &syntax.DefinitionSyntax{
		Name: "m",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "P", Type: intType(token.Location{}), Default: &syntax.IntLitExpr{Value: 3}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{FileName: "top.sv", Members: []syntax.CompilationUnitMember{def}}
	root.AddCompilationUnit(unit)

	before := root.Members()
	namesBefore := memberNames(before)

	root.MarkDirty()
	after := root.Members()
	namesAfter := memberNames(after)

	assert.ElementsMatch(t, namesBefore, namesAfter)
}

func memberNames(members []*symbols.Symbol) []string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name()
	}
	return names
}

// A lookup with a lookup_location strictly earlier than a matching
// symbol's declaration in Local mode returns empty even though the name
// exists in member_map.
func TestVisibilityBeforeDeclaration(t *testing.T) {
	root, _ := newTestRoot(t)
	declLoc := token.Location{File: "top.sv", Line: 10, Offset: 100}
	earlyLoc := token.Location{File: "top.sv", Line: 1, Offset: 1}

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "P", BodyParam: true, Location: declLoc, Type: intType(declLoc), Default: &syntax.IntLitExpr{Value: 1}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	assert.Nil(t, symbols.Lookup(&u.Scope, "P", earlyLoc, symbols.Local))
	assert.NotNil(t, symbols.Lookup(&u.Scope, "P", declLoc, symbols.Local))
}

// A module body mixing a genvar, a modport, an attribute, a procedural
// block, a labeled sequential block, a typedef and an enum type all
// elaborate into their own member kinds, each reachable by name.
func TestMiscMemberKinds(t *testing.T) {
	root, _ := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.GenvarDeclSyntax{Name: "gi"},
			&syntax.ModportDeclSyntax{Name: "mp"},
			&syntax.AttributeSyntax{Name: "full_case", Value: &syntax.IntLitExpr{Value: 1}},
			&syntax.ProceduralBlockSyntax{},
			&syntax.SequentialBlockSyntax{Name: "blk"},
			&syntax.TypeAliasDeclSyntax{Name: "byte_t", Target: intType(token.Location{})},
			&syntax.EnumTypeDeclSyntax{
				Name: "color_t",
				Base: intType(token.Location{}),
				Values: []*syntax.EnumValueDeclSyntax{
					{Name: "RED", Value: &syntax.IntLitExpr{Value: 0}},
					{Name: "GREEN", Value: &syntax.IntLitExpr{Value: 1}},
				},
			},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))

	gv := symbols.Lookup(&u.Scope, "gi", token.Location{}, symbols.Direct)
	require.NotNil(t, gv)
	assert.Equal(t, symbols.KindGenvar, gv.Kind())

	mp := symbols.Lookup(&u.Scope, "mp", token.Location{}, symbols.Direct)
	require.NotNil(t, mp)
	assert.Equal(t, symbols.KindModport, mp.Kind())

	attr := symbols.As[symbols.AttributeSymbol](symbols.Lookup(&u.Scope, "full_case", token.Location{}, symbols.Direct))
	require.NotNil(t, attr)
	av, ok := attr.Value(&u.Scope)
	require.True(t, ok)
	iv, ok := av.Int()
	require.True(t, ok)
	assert.Equal(t, int64(1), iv)

	blk := symbols.Lookup(&u.Scope, "blk", token.Location{}, symbols.Direct)
	require.NotNil(t, blk)
	assert.Equal(t, symbols.KindSequentialBlock, blk.Kind())
	seq := symbols.As[symbols.SequentialBlockSymbol](blk)
	assert.Empty(t, seq.Body())

	alias := symbols.As[symbols.TypeAliasSymbol](symbols.Lookup(&u.Scope, "byte_t", token.Location{}, symbols.Direct))
	require.NotNil(t, alias)
	target := alias.Target(&u.Scope)
	require.NotNil(t, target)
	assert.Equal(t, symbols.KindIntegralType, target.Kind())

	colorSym := symbols.Lookup(&u.Scope, "color_t", token.Location{}, symbols.Direct)
	require.NotNil(t, colorSym)
	assert.Equal(t, symbols.KindEnumType, colorSym.Kind())
	enumType := symbols.As[symbols.EnumTypeSymbol](colorSym)
	base := enumType.BaseType()
	require.NotNil(t, base)
	assert.Equal(t, symbols.KindIntegralType, base.Kind())

	members := enumType.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "RED", members[0].Name())
	assert.Equal(t, symbols.KindEnumValue, members[0].Kind())
	red := symbols.As[symbols.EnumValueSymbol](members[0])
	rv, ok := red.Value(&enumType.Scope).Int()
	require.True(t, ok)
	assert.Equal(t, int64(0), rv)
}

// Two procedural blocks in the same instance are both anonymous (empty
// name) and both stay in the member list without a name collision.
func TestProceduralBlockIsAnonymous(t *testing.T) {
	root, _ := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.ProceduralBlockSyntax{},
			&syntax.ProceduralBlockSyntax{},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	members := u.Members()
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, symbols.KindProceduralBlock, m.Kind())
		assert.Equal(t, "", m.Name())
	}
}

// With FatalDuplicateDefinitions set, a name collision drops the
// colliding symbol and aborts further member-list construction for that
// scope, rather than keeping both declarations in member_list.
func TestFatalDuplicateDefinitionsAbortsScope(t *testing.T) {
	cfg := config.Default()
	cfg.FatalDuplicateDefinitions = true
	root, diags := newTestRootWithConfig(t, cfg)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.DataDeclSyntax{Name: "x", Type: intType(token.Location{})},
			&syntax.DataDeclSyntax{Name: "x", Type: intType(token.Location{})},
			&syntax.DataDeclSyntax{Name: "y", Type: intType(token.Location{})},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	members := u.Members()
	require.Len(t, members, 1)
	assert.Equal(t, "x", members[0].Name())
	assert.Equal(t, 1, diags.CountCode(diagnostics.DuplicateDefinition))
}

// MaxErrors stops further diagnostic collection once reached, even though
// two independent instances each have a missing required parameter.
func TestMaxErrorsCapsDiagnostics(t *testing.T) {
	cfg := config.Default()
	cfg.MaxErrors = 1
	root, diags := newTestRootWithConfig(t, cfg)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		PortParams: []*syntax.ParameterDeclSyntax{
			{Name: "P", Type: intType(token.Location{})},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{
				DefinitionName: "m",
				Entries:        []*syntax.InstantiationEntry{{Name: "u1"}, {Name: "u2"}},
			},
		},
	}
	root.AddCompilationUnit(unit)

	cu := &lastUnit(t, root).Scope
	u1 := symbols.As[symbols.InstanceSymbol](symbols.Lookup(cu, "u1", token.Location{}, symbols.Direct))
	u2 := symbols.As[symbols.InstanceSymbol](symbols.Lookup(cu, "u2", token.Location{}, symbols.Direct))
	u1.Members()
	u2.Members()
	assert.Equal(t, 1, diags.CountCode(diagnostics.MissingRequiredParameter))
	assert.Len(t, diags.Diagnostics, 1)
}

// A cycle among three parameters emits CyclicDependency exactly once and
// leaves each cell with a bad sentinel rather than recursing forever.
func TestParameterCycle(t *testing.T) {
	root, diags := newTestRoot(t)

	def := &syntax.DefinitionSyntax{
		Name: "m",
		Body: []syntax.Node{
			&syntax.ParameterDeclSyntax{Name: "A", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "B"}},
			&syntax.ParameterDeclSyntax{Name: "B", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "C"}},
			&syntax.ParameterDeclSyntax{Name: "C", BodyParam: true, Type: intType(token.Location{}), Default: &syntax.IdentExpr{Name: "A"}},
		},
	}
	unit := &syntax.CompilationUnitSyntax{
		FileName: "top.sv",
		Members: []syntax.CompilationUnitMember{
			def,
			&syntax.HierarchyInstantiationSyntax{DefinitionName: "m", Entries: []*syntax.InstantiationEntry{{Name: "u"}}},
		},
	}
	root.AddCompilationUnit(unit)

	u := symbols.As[symbols.InstanceSymbol](symbols.Lookup(&lastUnit(t, root).Scope, "u", token.Location{}, symbols.Direct))
	a := symbols.As[symbols.ParameterSymbol](symbols.Lookup(&u.Scope, "A", token.Location{}, symbols.Direct))

	v := a.Value()
	assert.True(t, v.Bad)
	assert.Equal(t, 1, diags.CountCode(diagnostics.CyclicDependency))
}

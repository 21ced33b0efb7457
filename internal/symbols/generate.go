package symbols

import (
	"fmt"

	"github.com/funvibe/funxy/internal/config"
	"github.com/funvibe/funxy/internal/diagnostics"
	"github.com/funvibe/funxy/internal/syntax"
	"github.com/funvibe/funxy/internal/token"
)

func lookupBuiltinInt(scope *Scope) *Symbol {
	root := scope.Root()
	if root == nil {
		return nil
	}
	return Lookup(root, "int", token.Location{}, Direct)
}

// IfGenerateSymbol is a compile-time conditional generate construct
// (spec.md §4.8). Its fill_members evaluates the condition against the
// parent scope (generate conditions never see their own scope — it does
// not exist until the condition picks a branch) and installs a single
// GenerateBlock child for whichever branch was chosen, if any.
type IfGenerateSymbol struct {
	Scope
	syn *syntax.IfGenerateSyntax
}

func newIfGenerateSymbol(f *Factory, syn *syntax.IfGenerateSyntax, parent *Scope) *IfGenerateSymbol {
	s := &IfGenerateSymbol{syn: syn}
	s.Scope = newScope(f, KindIfGenerate, syn.Label, syn.Location, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

func (g *IfGenerateSymbol) fillMembers(b *MemberBuilder) {
	cond := g.parent.EvaluateConstant(g.syn.Condition)
	truth, ok := cond.Bool()
	if !ok {
		return
	}
	if truth {
		b.Add(&newGenerateBlockSymbol(g.factory, g.syn.Then.Label, g.syn.Then, &g.Scope, nil).Symbol)
		return
	}
	if g.syn.HasElse {
		b.Add(&newGenerateBlockSymbol(g.factory, g.syn.Else.Label, g.syn.Else, &g.Scope, nil).Symbol)
	}
}

// LoopGenerateSymbol is a compile-time for-loop generate construct
// (spec.md §4.8). fill_members evaluates init once against the parent
// scope, then evaluates condition and step once per iteration in a scratch
// scope that binds the genvar over the parent scope, and produces one
// GenerateBlock per iteration carrying the genvar's value as an implicit
// fixed parameter. Two independent safety nets stop a runaway loop: a
// "same genvar value seen twice" check (a step that brings the genvar back
// to an earlier value repeats the same iterations forever) and the
// configured hard iteration-count bound. A condition that never turns
// false while the genvar keeps taking new values is caught only by the
// bound; the condition expression itself is not analysed.
type LoopGenerateSymbol struct {
	Scope
	syn *syntax.LoopGenerateSyntax
}

func newLoopGenerateSymbol(f *Factory, syn *syntax.LoopGenerateSyntax, parent *Scope) *LoopGenerateSymbol {
	s := &LoopGenerateSymbol{syn: syn}
	s.Scope = newScope(f, KindLoopGenerate, syn.Label, syn.Location, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

func (g *LoopGenerateSymbol) fillMembers(b *MemberBuilder) {
	f := g.factory
	bound := f.cfg.LoopGenerateBound
	if bound <= 0 {
		bound = config.DefaultLoopGenerateBound
	}
	intType := lookupBuiltinInt(g.parent)

	initVal := g.parent.EvaluateConstant(g.syn.Init)
	cur, ok := initVal.Int()
	if !ok {
		return
	}

	seen := make(map[int64]bool)
	scratch := newDynamicScopeWithMembers(f, g.parent, nil)

	for index := 0; ; index++ {
		if index >= bound {
			g.addError(diagnostics.GenerateLoopTooManyIterations, g.syn.Location,
				diagnostics.TooManyIterationsMessage(bound))
			return
		}
		if seen[cur] {
			g.addError(diagnostics.GenerateLoopNonTerminating, g.syn.Location,
				"loop-generate iteration variable repeated an earlier value; the loop does not terminate")
			return
		}
		seen[cur] = true

		genvar := newFixedParameterSymbol(f, g.syn.Genvar, g.syn.Location, &g.Scope, intType, ConstantValue{Raw: cur})
		scratch.SetMembers([]*Symbol{&genvar.Symbol})

		truth, ok := scratch.EvaluateConstant(g.syn.Condition).Bool()
		if !ok || !truth {
			return
		}

		name := ""
		if g.syn.Body.Label != "" {
			name = fmt.Sprintf("%s[%d]", g.syn.Body.Label, index)
		}
		b.Add(&newGenerateBlockSymbol(f, name, g.syn.Body, &g.Scope, genvar).Symbol)

		next, ok := scratch.EvaluateConstant(g.syn.Step).Int()
		if !ok {
			return
		}
		cur = next
	}
}

// GenerateBlockSymbol expands a single body node — either a block of
// items (`begin : label ... end`) or a bare single item — and, for
// loop-generate iterations, carries the implicit loop-index parameter
// (spec.md §4.8). Its name is the block label, suffixed with `[index]`
// when it was produced by a loop iteration and the label is non-empty.
type GenerateBlockSymbol struct {
	Scope
	body     syntax.GenerateBodySyntax
	implicit *ParameterSymbol
}

func newGenerateBlockSymbol(f *Factory, name string, body syntax.GenerateBodySyntax, parent *Scope, implicit *ParameterSymbol) *GenerateBlockSymbol {
	s := &GenerateBlockSymbol{body: body, implicit: implicit}
	loc := token.Location{}
	if len(body.Items) > 0 {
		loc = body.Items[0].Loc()
	}
	s.Scope = newScope(f, KindGenerateBlock, name, loc, parent, s.fillMembers)
	return register(&s.Symbol, s)
}

func (g *GenerateBlockSymbol) fillMembers(b *MemberBuilder) {
	if g.implicit != nil {
		b.Add(&g.implicit.Symbol)
	}
	elaborateMembers(g.factory, g.body.Items, &g.Scope, b, false)
}

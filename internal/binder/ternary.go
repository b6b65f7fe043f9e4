package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/types"
)

// bindTernary implements spec.md §4.B, "Ternary": "c ? t : f — the
// predicate is self-determined; both branches are self-determined and
// merged via result_type_of_binary(then, else, force_four_state = true),
// since a runtime-ambiguous predicate can force an X result even when both
// branches are two-state."
func (b *Binder) bindTernary(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.TernaryData)
	cond := b.BindSelfDetermined(data.Cond)
	then := b.BindSelfDetermined(data.Then)
	els := b.BindSelfDetermined(data.Else)
	if cond.Bad() || then.Bad() || els.Bad() {
		return boundtree.Invalid(syntax)
	}
	tt, et := b.comp.TypeOf(then.Type), b.comp.TypeOf(els.Type)
	numeric := func(t types.Descriptor) bool { return t.IsIntegral() || t.IsReal() || t.IsLogic() }
	if !numeric(tt) || !numeric(et) {
		b.report(diag.SemaBadBinaryExpression, node.Span,
			"invalid branch types %s, %s for conditional expression", tt, et)
		return boundtree.Invalid(syntax)
	}
	resultType := types.ResultTypeOfBinary(b.comp.Types, tt, et, true)
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprTernary,
		Type:   resultType,
		Syntax: syntax,
		Data:   boundtree.TernaryData{Cond: cond, Then: then, Else: els},
	})
}

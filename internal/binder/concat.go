package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/constant"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/types"
)

// bindConcatenation implements spec.md §4.B, "Concatenation": "{a, b, ...}
// — every element is self-determined and must be integral; the result is
// unsigned, width = sum of element widths, four-state iff any element is
// four-state."
func (b *Binder) bindConcatenation(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.ConcatenationData)
	elems := make([]*boundtree.Expr, len(data.Elements))
	var width uint32
	fourState := false
	for i, e := range data.Elements {
		bound := b.BindSelfDetermined(e)
		elems[i] = bound
		if bound.Bad() {
			return boundtree.Invalid(syntax)
		}
		t := b.comp.TypeOf(bound.Type)
		if !t.IsIntegral() && !t.IsLogic() {
			b.report(diag.SemaBadConcatenation, node.Span,
				"invalid operand type %s in concatenation", t)
			return boundtree.Invalid(syntax)
		}
		width += t.BitWidth()
		fourState = fourState || t.IsFourState()
	}
	resultType := b.comp.GetType(types.MakeIntegral(width, false, fourState))
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprConcatenation,
		Type:   resultType,
		Syntax: syntax,
		Data:   boundtree.ConcatenationData{Elements: elems},
	})
}

// bindReplication implements spec.md §4.B, "Replication": "{n{x}} — n must
// be constant-evaluable and is folded eagerly at bind time (then truncated
// to 16 bits, spec.md §9 decision #6); x is self-determined; result is
// unsigned, width = n * width(x), four-state iff x is four-state."
func (b *Binder) bindReplication(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.ReplicationData)
	element := b.BindSelfDetermined(data.Element)
	if element.Bad() {
		return boundtree.Invalid(syntax)
	}
	et := b.comp.TypeOf(element.Type)
	if !et.IsIntegral() && !et.IsLogic() {
		b.report(diag.SemaBadConcatenation, node.Span,
			"invalid operand type %s in replication", et)
		return boundtree.Invalid(syntax)
	}

	countExpr := b.BindConstant(data.Count)
	folded := constant.Eval(countExpr)
	if countExpr.Bad() || folded.Kind != constant.ValueInt || folded.Unknown {
		b.report(diag.SemaNonConstantExpression, node.Span,
			"replication count must be a constant integer expression")
		return boundtree.Invalid(syntax)
	}
	count := types.TruncateReplicationCount(folded.Int)
	resultType := b.comp.GetType(types.MakeIntegral(count*et.BitWidth(), false, et.IsFourState()))
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprReplication,
		Type:   resultType,
		Syntax: syntax,
		Data: boundtree.ReplicationData{
			Count:     folded.Int,
			CountSpan: data.Count,
			Element:   element,
		},
	})
}

package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/types"
)

func arithAdmitsReal(op ast.BinaryArithOp) bool {
	switch op {
	case ast.BinaryAdd, ast.BinarySub, ast.BinaryMul, ast.BinaryDiv:
		return true
	default: // Mod and the bitwise family are integral-only (spec.md §4.B)
		return false
	}
}

// bindBinaryArith implements spec.md §4.B, "Binary arithmetic": "(+ - * /
// % & | ^ ~^): both operands integral or real (for + - * / **), integral
// only for bitwise/modulo/shift. Result type = result_type_of_binary(lhs,
// rhs, force_four_state = (op == division))."
func (b *Binder) bindBinaryArith(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.BinaryArithData)
	left := b.BindSelfDetermined(data.Left)
	right := b.BindSelfDetermined(data.Right)
	if left.Bad() || right.Bad() {
		return boundtree.Invalid(syntax)
	}
	lt, rt := b.comp.TypeOf(left.Type), b.comp.TypeOf(right.Type)

	admitsReal := arithAdmitsReal(data.Op)
	ok := func(t types.Descriptor) bool {
		if admitsReal {
			return t.IsIntegral() || t.IsReal() || t.IsLogic()
		}
		return t.IsIntegral() || t.IsLogic()
	}
	if !ok(lt) || !ok(rt) {
		b.report(diag.SemaBadBinaryExpression, node.Span,
			"invalid operand types %s, %s for binary operator", lt, rt)
		return boundtree.Invalid(syntax)
	}
	resultType := types.ResultTypeOfBinary(b.comp.Types, lt, rt, data.Op == ast.BinaryDiv)
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprBinaryArith,
		Type:   resultType,
		Syntax: syntax,
		Data:   boundtree.BinaryArithData{Op: data.Op, Left: left, Right: right},
	})
}

// bindComparison implements spec.md §4.B, "Comparison": "(== != === !==
// < > <= >= ==? !=?): both operands integral or real (numeric
// comparisons) or integral (wildcard/case equality). Result is logic."
func (b *Binder) bindComparison(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.ComparisonData)
	left := b.BindSelfDetermined(data.Left)
	right := b.BindSelfDetermined(data.Right)
	if left.Bad() || right.Bad() {
		return boundtree.Invalid(syntax)
	}
	lt, rt := b.comp.TypeOf(left.Type), b.comp.TypeOf(right.Type)

	var admissible bool
	if data.Op.IsNumeric() {
		admissible = (lt.IsIntegral() || lt.IsReal() || lt.IsLogic()) && (rt.IsIntegral() || rt.IsReal() || rt.IsLogic())
	} else {
		admissible = (lt.IsIntegral() || lt.IsLogic()) && (rt.IsIntegral() || rt.IsLogic())
	}
	if !admissible {
		b.report(diag.SemaBadBinaryExpression, node.Span,
			"invalid operand types %s, %s for comparison operator", lt, rt)
		return boundtree.Invalid(syntax)
	}
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprComparison,
		Type:   b.comp.GetLogicType(),
		Syntax: syntax,
		Data:   boundtree.ComparisonData{Op: data.Op, Left: left, Right: right},
	})
}

// bindRelationalLogical implements spec.md §4.B, "Relational/logical":
// "(&& || -> <->): integral-only; result is logic. Additionally each
// operand is widened to the other operand's width via a reciprocal
// propagate_assignment_like (no reduction happens on either side alone)."
func (b *Binder) bindRelationalLogical(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.RelationalLogicalData)
	left := b.BindSelfDetermined(data.Left)
	right := b.BindSelfDetermined(data.Right)
	if left.Bad() || right.Bad() {
		return boundtree.Invalid(syntax)
	}
	lt, rt := b.comp.TypeOf(left.Type), b.comp.TypeOf(right.Type)
	if !lt.IsIntegral() && !lt.IsLogic() || !rt.IsIntegral() && !rt.IsLogic() {
		b.report(diag.SemaBadBinaryExpression, node.Span,
			"invalid operand types %s, %s for logical operator", lt, rt)
		return boundtree.Invalid(syntax)
	}
	// Reciprocal widening: each side is widened toward the other's width;
	// since propagateAssignmentLike is a no-op when already wide enough,
	// applying it in both directions converges both operands to
	// max(width(left), width(right)) without reducing either on its own.
	b.propagateAssignmentLike(left, right.Type)
	b.propagateAssignmentLike(right, left.Type)
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprRelationalLogical,
		Type:   b.comp.GetLogicType(),
		Syntax: syntax,
		Data:   boundtree.RelationalLogicalData{Op: data.Op, Left: left, Right: right},
	})
}

// bindShiftPower implements spec.md §4.B, "Shift & power": "(<< >> <<<
// >>> **): integral-only for lhs (and shifts); RHS is self-determined and
// does not influence the LHS width. Result type = result_type_of_binary
// (lhs, rhs, force_four_state = (op == power))."
//
// Power additionally admits a real lhs, mirroring the arithmetic
// operators' real handling; the shift operators proper are integral-only
// on both sides per spec.md's parenthetical "(and shifts)".
func (b *Binder) bindShiftPower(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.ShiftPowerData)
	left := b.BindSelfDetermined(data.Left)
	right := b.BindSelfDetermined(data.Right) // self-determined: never propagated into
	if left.Bad() || right.Bad() {
		return boundtree.Invalid(syntax)
	}
	lt, rt := b.comp.TypeOf(left.Type), b.comp.TypeOf(right.Type)

	lhsOK := lt.IsIntegral() || lt.IsLogic() || (data.Op == ast.Power && lt.IsReal())
	rhsOK := rt.IsIntegral() || rt.IsLogic() || (data.Op == ast.Power && rt.IsReal())
	if !lhsOK || !rhsOK {
		b.report(diag.SemaBadBinaryExpression, node.Span,
			"invalid operand types %s, %s for shift/power operator", lt, rt)
		return boundtree.Invalid(syntax)
	}
	resultType := types.ResultTypeOfBinary(b.comp.Types, lt, rt, data.Op == ast.Power)
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprShiftPower,
		Type:   resultType,
		Syntax: syntax,
		Data:   boundtree.ShiftPowerData{Op: data.Op, Left: left, Right: right},
	})
}

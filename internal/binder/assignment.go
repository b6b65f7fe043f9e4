package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/types"
)

// compoundApplicable checks a compound assignment's underlying operator
// against one operand type (bindAssignment calls it for the lhs type and
// again for the bound rhs type) using the same admissibility families as the
// corresponding standalone binary/shift operator (spec.md §4.B,
// "Assignments": "a compound form is well-typed iff its underlying
// operator would be well-typed applied to (lhs, rhs)").
func compoundApplicable(data ast.AssignmentData, lt types.Descriptor) bool {
	switch data.Op {
	case ast.AssignCompoundArith:
		if arithAdmitsReal(data.UnderlyingArith) {
			return lt.IsIntegral() || lt.IsReal() || lt.IsLogic()
		}
		return lt.IsIntegral() || lt.IsLogic()
	case ast.AssignCompoundShiftPower:
		return lt.IsIntegral() || lt.IsLogic() || (data.UnderlyingShiftPow == ast.Power && lt.IsReal())
	default:
		return true
	}
}

// bindAssignment implements spec.md §4.B, "Assignments": the lhs must be
// an lvalue (SPEC_FULL.md decision #7); a compound form additionally
// requires its underlying operator to be applicable to the lhs type and to
// the bound rhs type; the
// rhs is bound assignment-like against the lhs's own type, so it inherits
// whatever widening BindAssignmentLike and propagate_assignment_like give
// it. The assignment expression's own type is the lhs's type.
func (b *Binder) bindAssignment(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.AssignmentData)
	lhs := b.BindSelfDetermined(data.Left)
	if lhs.Bad() {
		return boundtree.Invalid(syntax)
	}
	if !lhs.IsAssignable() {
		b.report(diag.SemaBadAssignment, node.Span, "left-hand side of assignment is not an lvalue")
		return boundtree.Invalid(syntax)
	}
	lt := b.comp.TypeOf(lhs.Type)
	if data.Op != ast.AssignPlain && !compoundApplicable(data, lt) {
		b.report(diag.SemaBadAssignment, node.Span,
			"compound assignment operator is not applicable to %s", lt)
		return boundtree.Invalid(syntax)
	}
	rhs := b.BindAssignmentLike(data.Right, node.Span, lhs.Type)
	if rhs.Bad() {
		return boundtree.Invalid(syntax)
	}
	if rt := b.comp.TypeOf(rhs.Type); data.Op != ast.AssignPlain && !compoundApplicable(data, rt) {
		b.report(diag.SemaBadAssignment, node.Span,
			"compound assignment operator is not applicable to %s", rt)
		return boundtree.Invalid(syntax)
	}
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprAssignment,
		Type:   lhs.Type,
		Syntax: syntax,
		Data:   boundtree.AssignmentData{Op: data.Op, Left: lhs, Right: rhs},
	})
}

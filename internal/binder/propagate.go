package binder

import (
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/types"
)

// propagateType implements spec.md §4.C, component C: revisiting a bound
// node with the type its surrounding context demands. Most bound kinds are
// self-determined and ignore contextType entirely; the kinds that forward
// context into their own operands are arithmetic (both operands), shift/
// power (LHS only — the RHS is self-determined per spec.md §4.B), unary
// arithmetic (its one operand), and ternary (both branches, after the
// predicate's own logic type is left alone).
func (b *Binder) propagateType(expr *boundtree.Expr, contextType types.TypeID) {
	if expr == nil || expr.Bad() {
		return
	}
	switch expr.Kind {
	case boundtree.ExprUnaryArith:
		b.propagateAssignmentLike(expr, contextType)
		data := expr.Data.(boundtree.UnaryArithData)
		b.propagateType(data.Operand, expr.Type)
	case boundtree.ExprBinaryArith:
		b.propagateAssignmentLike(expr, contextType)
		data := expr.Data.(boundtree.BinaryArithData)
		b.propagateType(data.Left, expr.Type)
		b.propagateType(data.Right, expr.Type)
	case boundtree.ExprShiftPower:
		b.propagateAssignmentLike(expr, contextType)
		data := expr.Data.(boundtree.ShiftPowerData)
		b.propagateType(data.Left, expr.Type) // RHS untouched, self-determined
	case boundtree.ExprTernary:
		b.propagateAssignmentLike(expr, contextType)
		data := expr.Data.(boundtree.TernaryData)
		b.propagateType(data.Then, expr.Type)
		b.propagateType(data.Else, expr.Type)
	case boundtree.ExprComparison, boundtree.ExprRelationalLogical, boundtree.ExprUnaryReduction,
		boundtree.ExprConcatenation, boundtree.ExprReplication, boundtree.ExprElementSelect, boundtree.ExprRangeSelect:
		// These always produce a fixed result (1-bit logic for the first
		// three; their own width law for concatenation/replication/selects)
		// and never take a wider context (spec.md §4.C) — left untouched
		// even when reached as an operand of a wider-context operator.
	default:
		// VarRef/ParamRef/literals and Call are the genuinely
		// context-growable kinds: a bare literal or name reference widens to
		// whatever width its surrounding operator demands.
		b.propagateAssignmentLike(expr, contextType)
	}
}

// propagateAssignmentLike implements spec.md §4.C's widening rule: "if
// lhs_type.width > rhs.type.width: widen rhs to (lhs.width, rhs.signedness,
// rhs.four_state) for non-real operands, or to real/shortreal (chosen by
// lhs.width) for real operands; then recursively propagate that new type
// into rhs's own operands. Otherwise, no-op." The RHS's own signedness and
// four-state-ness are preserved deliberately — only its width follows the
// LHS (spec.md §4.C, "Key design decision"); this also makes the operation
// idempotent (spec.md §8, testable property #5), since a no-op widening
// leaves rhs.Type exactly as it was on a second call.
func (b *Binder) propagateAssignmentLike(rhs *boundtree.Expr, lhsType types.TypeID) bool {
	if rhs == nil || rhs.Bad() {
		return false
	}
	lhs := b.comp.TypeOf(lhsType)
	src := b.comp.TypeOf(rhs.Type)
	if lhs.BitWidth() <= src.BitWidth() {
		return false
	}

	var widened types.TypeID
	if lhs.IsReal() || src.IsReal() {
		if lhs.BitWidth() > 32 {
			widened = b.comp.GetRealType()
		} else {
			widened = b.comp.GetShortRealType()
		}
	} else {
		widened = b.comp.GetType(types.MakeIntegral(lhs.BitWidth(), src.IsSigned(), src.IsFourState()))
	}
	if widened == rhs.Type {
		return false
	}
	rhs.Type = widened
	b.propagateType(rhs, rhs.Type)
	return true
}

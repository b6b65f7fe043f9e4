package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
)

// bind is the total dispatch over ast.ExprKind (spec.md §4.B, "Dispatch by
// syntax kind"). It never propagates context into its result — that is
// always the caller's job via propagateType, per the bind-then-propagate
// split (spec.md §2).
func (b *Binder) bind(syntax ast.ExprID) *boundtree.Expr {
	node := b.ast.Expr(syntax)
	if node == nil {
		return boundtree.Invalid(syntax)
	}
	switch node.Kind {
	case ast.ExprIntegerLiteral:
		return b.bindIntegerLiteral(syntax, node)
	case ast.ExprRealLiteral:
		return b.bindRealLiteral(syntax, node)
	case ast.ExprUnbasedUnsizedLiteral:
		return b.bindUnbasedUnsizedLiteral(syntax, node)
	case ast.ExprParenthesized:
		return b.bindParenthesized(syntax, node)
	case ast.ExprSimpleName:
		return b.bindSimpleName(syntax, node)
	case ast.ExprIdentifierSelectName:
		return b.bindIdentifierSelectName(syntax, node)
	case ast.ExprScopedName:
		return b.bindScopedName(syntax, node)
	case ast.ExprUnaryArith:
		return b.bindUnaryArith(syntax, node)
	case ast.ExprUnaryReduction:
		return b.bindUnaryReduction(syntax, node)
	case ast.ExprBinaryArith:
		return b.bindBinaryArith(syntax, node)
	case ast.ExprComparison:
		return b.bindComparison(syntax, node)
	case ast.ExprRelationalLogical:
		return b.bindRelationalLogical(syntax, node)
	case ast.ExprShiftPower:
		return b.bindShiftPower(syntax, node)
	case ast.ExprAssignment:
		return b.bindAssignment(syntax, node)
	case ast.ExprTernary:
		return b.bindTernary(syntax, node)
	case ast.ExprConcatenation:
		return b.bindConcatenation(syntax, node)
	case ast.ExprReplication:
		return b.bindReplication(syntax, node)
	case ast.ExprElementSelect:
		return b.bindElementSelect(syntax, node)
	case ast.ExprRangeSelect:
		return b.bindRangeSelect(syntax, node)
	case ast.ExprCall:
		return b.bindCall(syntax, node)
	default:
		unreachable("bind", node.Kind)
		return boundtree.Invalid(syntax) // unreached; unreachable panics
	}
}

package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/types"
)

// bindIntegerLiteral implements spec.md §4.B, "Literals": "Integer literal
// -> integral type from the lexed value's (width, sign, four-state)."
// "Vector literal missing a value -> Invalid of type Error."
func (b *Binder) bindIntegerLiteral(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	lit := node.Data.(ast.IntegerLiteralData)
	if lit.Missing {
		return boundtree.Invalid(syntax)
	}
	width := lit.Width
	if width == 0 {
		width = 32
	}
	mask := widthMask(width)
	typeID := b.comp.GetType(types.MakeIntegral(width, lit.Signed, lit.FourState))
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprIntegerLiteral,
		Type:   typeID,
		Syntax: syntax,
		Data: boundtree.IntegerLiteralData{
			Bits:        lit.Bits & mask,
			UnknownMask: lit.UnknownMask & mask,
		},
	})
}

// bindRealLiteral implements spec.md §4.B: "Real literal -> real."
func (b *Binder) bindRealLiteral(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	lit := node.Data.(ast.RealLiteralData)
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprRealLiteral,
		Type:   b.comp.GetRealType(),
		Syntax: syntax,
		Data:   boundtree.RealLiteralData{Value: lit.Value},
	})
}

// bindUnbasedUnsizedLiteral implements spec.md §4.B: "Unbased-unsized
// literal ('0, '1, 'x, 'z) -> width-1 integral, four-state iff the bit is
// unknown; may grow under context propagation" (the growth happens in
// propagateType).
func (b *Binder) bindUnbasedUnsizedLiteral(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	lit := node.Data.(ast.UnbasedUnsizedLiteralData)
	fourState := lit.Bit == ast.UnbasedUnsizedX || lit.Bit == ast.UnbasedUnsizedZ
	typeID := b.comp.GetType(types.MakeIntegral(1, false, fourState))
	return b.comp.EmplaceExpr(boundtree.Expr{
		Kind:   boundtree.ExprUnbasedUnsizedLiteral,
		Type:   typeID,
		Syntax: syntax,
		Data:   boundtree.UnbasedUnsizedLiteralData{Bit: lit.Bit},
	})
}

// bindParenthesized implements spec.md §4.B: "Parenthesized. Unwrap; bind
// the inner expression." The parentheses themselves produce no bound node.
func (b *Binder) bindParenthesized(_ ast.ExprID, node *ast.Expr) *boundtree.Expr {
	inner := node.Data.(ast.ParenthesizedData).Inner
	return b.bind(inner)
}

func widthMask(width uint32) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

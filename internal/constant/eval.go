package constant

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
)

// Eval folds a bound expression to a compile-time Value. It only needs to
// handle what the binder itself can produce ahead of a replication count or
// a select bound: integer/real literals and the unary/binary arithmetic
// operators closed over them. Anything else — a name, a call, a select —
// returns an invalid Value, the same as an X/Z operand would.
func Eval(expr *boundtree.Expr) Value {
	if expr == nil || expr.Bad() {
		return Value{}
	}
	switch expr.Kind {
	case boundtree.ExprIntegerLiteral:
		data := expr.Data.(boundtree.IntegerLiteralData)
		if data.UnknownMask != 0 {
			return Value{Kind: ValueInt, Unknown: true}
		}
		return Value{Kind: ValueInt, Int: int64(data.Bits)}
	case boundtree.ExprRealLiteral:
		data := expr.Data.(boundtree.RealLiteralData)
		return Value{Kind: ValueReal, Real: data.Value}
	case boundtree.ExprUnaryArith:
		return evalUnaryArith(expr.Data.(boundtree.UnaryArithData))
	case boundtree.ExprBinaryArith:
		return evalBinaryArith(expr.Data.(boundtree.BinaryArithData))
	default:
		return Value{}
	}
}

func evalUnaryArith(data boundtree.UnaryArithData) Value {
	v := Eval(data.Operand)
	if !v.IsValid() || v.Unknown {
		return Value{}
	}
	switch data.Op {
	case ast.UnaryPlus:
		return v
	case ast.UnaryMinus:
		if v.Kind == ValueReal {
			return Value{Kind: ValueReal, Real: -v.Real}
		}
		return Value{Kind: ValueInt, Int: -v.Int}
	case ast.UnaryBitwiseNot:
		if v.Kind != ValueInt {
			return Value{}
		}
		return Value{Kind: ValueInt, Int: ^v.Int}
	default:
		return Value{}
	}
}

func evalBinaryArith(data boundtree.BinaryArithData) Value {
	l := Eval(data.Left)
	r := Eval(data.Right)
	if !l.IsValid() || !r.IsValid() || l.Unknown || r.Unknown {
		return Value{}
	}
	if l.Kind == ValueReal || r.Kind == ValueReal {
		lf, rf := asFloat(l), asFloat(r)
		switch data.Op {
		case ast.BinaryAdd:
			return Value{Kind: ValueReal, Real: lf + rf}
		case ast.BinarySub:
			return Value{Kind: ValueReal, Real: lf - rf}
		case ast.BinaryMul:
			return Value{Kind: ValueReal, Real: lf * rf}
		case ast.BinaryDiv:
			if rf == 0 {
				return Value{}
			}
			return Value{Kind: ValueReal, Real: lf / rf}
		default:
			return Value{} // bitwise/modulo ops are integral-only
		}
	}
	switch data.Op {
	case ast.BinaryAdd:
		return Value{Kind: ValueInt, Int: l.Int + r.Int}
	case ast.BinarySub:
		return Value{Kind: ValueInt, Int: l.Int - r.Int}
	case ast.BinaryMul:
		return Value{Kind: ValueInt, Int: l.Int * r.Int}
	case ast.BinaryDiv:
		if r.Int == 0 {
			return Value{}
		}
		return Value{Kind: ValueInt, Int: l.Int / r.Int}
	case ast.BinaryMod:
		if r.Int == 0 {
			return Value{}
		}
		return Value{Kind: ValueInt, Int: l.Int % r.Int}
	case ast.BinaryBitwiseAnd:
		return Value{Kind: ValueInt, Int: l.Int & r.Int}
	case ast.BinaryBitwiseOr:
		return Value{Kind: ValueInt, Int: l.Int | r.Int}
	case ast.BinaryBitwiseXor:
		return Value{Kind: ValueInt, Int: l.Int ^ r.Int}
	case ast.BinaryBitwiseXnor:
		return Value{Kind: ValueInt, Int: ^(l.Int ^ r.Int)}
	default:
		return Value{}
	}
}

func asFloat(v Value) float64 {
	if v.Kind == ValueReal {
		return v.Real
	}
	return float64(v.Int)
}

// Package boundtree is the binder's produced tree (spec.md §3, §6: "Bound
// expression", "Bound-tree interface (produced)"). Every node is allocated
// from the compilation arena and lives for the arena's lifetime; nodes are
// referenced by pointer and never copied (spec.md §3 invariants). Children
// are owned the same way.
package boundtree

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/symbols"
	"github.com/winging/slang/internal/types"
)

// ExprKind is the bound-node discriminant (spec.md §3).
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntegerLiteral
	ExprRealLiteral
	ExprUnbasedUnsizedLiteral
	ExprVarRef
	ExprParamRef
	ExprUnaryArith
	ExprUnaryReduction
	ExprBinaryArith
	ExprComparison
	ExprRelationalLogical
	ExprShiftPower
	ExprAssignment
	ExprTernary
	ExprConcatenation
	ExprReplication
	ExprElementSelect
	ExprRangeSelect
	ExprCall
)

func (k ExprKind) String() string {
	names := [...]string{
		"Invalid", "IntegerLiteral", "RealLiteral", "UnbasedUnsizedLiteral",
		"VarRef", "ParamRef", "UnaryArith", "UnaryReduction", "BinaryArith",
		"Comparison", "RelationalLogical", "ShiftPower", "Assignment",
		"Ternary", "Concatenation", "Replication", "ElementSelect",
		"RangeSelect", "Call",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Expr is a bound expression node (spec.md §3). Type is mutable only while
// the propagator (component C) is revisiting the tree; after
// propagateType has returned for a root expression, the tree is immutable
// (spec.md §3, "Lifecycle").
type Expr struct {
	Kind   ExprKind
	Type   types.TypeID
	Syntax ast.ExprID // back-reference for diagnostics, spec.md §3
	Data   ExprData
}

// Bad reports whether this node is the Invalid sentinel (spec.md §6,
// "bad() <=> type.is_error()").
func (e *Expr) Bad() bool { return e.Type == types.ErrorTypeID }

// IsAssignable reports whether this node may appear as an assignment's
// left-hand side (SPEC_FULL.md open-question decision #7): variable
// references, and selects over an assignable base. Parameter references
// are not assignable.
func (e *Expr) IsAssignable() bool {
	switch e.Kind {
	case ExprVarRef:
		return true
	case ExprParamRef:
		// Parameters are not l-values; kept distinct from VarRef deliberately.
		return false
	case ExprElementSelect:
		return e.Data.(ElementSelectData).Base.IsAssignable()
	case ExprRangeSelect:
		return e.Data.(RangeSelectData).Base.IsAssignable()
	default:
		return false
	}
}

// ExprData is the marker interface for kind-specific bound payloads.
type ExprData interface{ exprData() }

type IntegerLiteralData struct {
	Bits        uint64
	UnknownMask uint64
}

func (IntegerLiteralData) exprData() {}

type RealLiteralData struct{ Value float64 }

func (RealLiteralData) exprData() {}

type UnbasedUnsizedLiteralData struct{ Bit ast.UnbasedUnsizedBit }

func (UnbasedUnsizedLiteralData) exprData() {}

type VarRefData struct{ Symbol symbols.SymbolID }

func (VarRefData) exprData() {}

type ParamRefData struct{ Symbol symbols.SymbolID }

func (ParamRefData) exprData() {}

type UnaryArithData struct {
	Op      ast.UnaryArithOp
	Operand *Expr
}

func (UnaryArithData) exprData() {}

type UnaryReductionData struct {
	Op      ast.UnaryReductionOp
	Operand *Expr
}

func (UnaryReductionData) exprData() {}

type BinaryArithData struct {
	Op    ast.BinaryArithOp
	Left  *Expr
	Right *Expr
}

func (BinaryArithData) exprData() {}

type ComparisonData struct {
	Op    ast.ComparisonOp
	Left  *Expr
	Right *Expr
}

func (ComparisonData) exprData() {}

type RelationalLogicalData struct {
	Op    ast.RelationalLogicalOp
	Left  *Expr
	Right *Expr
}

func (RelationalLogicalData) exprData() {}

type ShiftPowerData struct {
	Op    ast.ShiftPowerOp
	Left  *Expr
	Right *Expr // self-determined, never propagated into (spec.md §4.C)
}

func (ShiftPowerData) exprData() {}

type AssignmentData struct {
	Op    ast.AssignOp
	Left  *Expr
	Right *Expr
}

func (AssignmentData) exprData() {}

type TernaryData struct {
	Cond *Expr
	Then *Expr
	Else *Expr
}

func (TernaryData) exprData() {}

type ConcatenationData struct{ Elements []*Expr }

func (ConcatenationData) exprData() {}

type ReplicationData struct {
	Count     int64 // folded eagerly at bind time (spec.md §4.B)
	CountSpan ast.ExprID
	Element   *Expr
}

func (ReplicationData) exprData() {}

// SelectorKind mirrors ast.SelectorKind at the bound-tree level.
type SelectorKind = ast.SelectorKind

type ElementSelectData struct {
	Base  *Expr
	Index *Expr
}

func (ElementSelectData) exprData() {}

type RangeSelectData struct {
	Base *Expr
	Kind SelectorKind
	// Folded bound values, meaningful per Kind:
	//   SimpleRange: MSB, LSB
	//   Ascending/DescendingRange: BaseOffset, Width
	MSB, LSB   int64
	Width      uint32
	BaseOffset *Expr // the `base` operand of +:/-: selects (not constant)
}

func (RangeSelectData) exprData() {}

type CallData struct {
	Subroutine symbols.SymbolID
	Args       []*Expr
}

func (CallData) exprData() {}

// Invalid returns the Invalid sentinel wrapping syntax, per spec.md §7:
// "Always return a well-typed node (Invalid of type Error) rather than a
// null".
func Invalid(syntax ast.ExprID) *Expr {
	return &Expr{Kind: ExprInvalid, Type: types.ErrorTypeID, Syntax: syntax}
}

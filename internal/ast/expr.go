package ast

import "github.com/winging/slang/internal/source"

// ExprKind is the syntax-kind discriminant the binder dispatches on
// (spec.md §4.B, "Dispatch by syntax kind").
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	ExprIntegerLiteral
	ExprRealLiteral
	ExprUnbasedUnsizedLiteral
	ExprParenthesized
	ExprSimpleName
	ExprIdentifierSelectName // id[selector], re-synthesized at bind time
	ExprScopedName           // pkg::id
	ExprUnaryArith           // + - ~
	ExprUnaryReduction       // & | ^ ~& ~| ~^ !
	ExprBinaryArith          // + - * / % & | ^ ~^
	ExprComparison           // == != === !== < > <= >= ==? !=?
	ExprRelationalLogical    // && || -> <->
	ExprShiftPower           // << >> <<< >>> **
	ExprAssignment           // = and compound forms
	ExprTernary              // c ? t : f
	ExprConcatenation        // { a, b, ... }
	ExprReplication          // { n{x} }
	ExprElementSelect        // base[index]
	ExprRangeSelect          // base[msb:lsb] / base[base +: w] / base[base -: w]
	ExprCall                 // f(args...)
)

func (k ExprKind) String() string {
	names := [...]string{
		"Invalid", "IntegerLiteral", "RealLiteral", "UnbasedUnsizedLiteral",
		"Parenthesized", "SimpleName", "IdentifierSelectName", "ScopedName",
		"UnaryArith", "UnaryReduction", "BinaryArith", "Comparison",
		"RelationalLogical", "ShiftPower", "Assignment", "Ternary",
		"Concatenation", "Replication", "ElementSelect", "RangeSelect", "Call",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Expr is one syntax node. Data holds kind-specific operands; the binder
// downcasts Data using the Kind tag.
type Expr struct {
	Kind ExprKind
	Span source.Span
	Data ExprData
}

// ExprData is the marker interface for kind-specific syntax payloads.
type ExprData interface{ exprData() }

// --- literals ---------------------------------------------------------

type IntegerLiteralData struct {
	Width     uint32
	Signed    bool
	FourState bool
	// Bits holds the known (0/1) bit pattern; UnknownMask marks bit
	// positions that are X or Z (don't-care for Bits at those positions).
	Bits        uint64
	UnknownMask uint64
	// Missing marks a vector literal with no digits at all (spec.md §4.B:
	// "Vector literal missing a value -> Invalid of type Error").
	Missing bool
}

func (IntegerLiteralData) exprData() {}

type RealLiteralData struct {
	Value float64
}

func (RealLiteralData) exprData() {}

// UnbasedUnsizedBit enumerates '0, '1, 'x, 'z.
type UnbasedUnsizedBit uint8

const (
	UnbasedUnsizedZero UnbasedUnsizedBit = iota
	UnbasedUnsizedOne
	UnbasedUnsizedX
	UnbasedUnsizedZ
)

type UnbasedUnsizedLiteralData struct {
	Bit UnbasedUnsizedBit
}

func (UnbasedUnsizedLiteralData) exprData() {}

// --- parenthesized / names ----------------------------------------------

type ParenthesizedData struct {
	Inner ExprID
}

func (ParenthesizedData) exprData() {}

type SimpleNameData struct {
	Name source.StringID
}

func (SimpleNameData) exprData() {}

type IdentifierSelectNameData struct {
	Name     source.StringID
	Selector Selector
}

func (IdentifierSelectNameData) exprData() {}

type ScopedNameData struct {
	PackageName source.StringID
	Member      source.StringID
}

func (ScopedNameData) exprData() {}

// --- operators ------------------------------------------------------------

type UnaryArithOp uint8

const (
	UnaryPlus UnaryArithOp = iota
	UnaryMinus
	UnaryBitwiseNot
)

type UnaryArithData struct {
	Op      UnaryArithOp
	Operand ExprID
}

func (UnaryArithData) exprData() {}

type UnaryReductionOp uint8

const (
	ReduceAnd UnaryReductionOp = iota
	ReduceOr
	ReduceXor
	ReduceNand
	ReduceNor
	ReduceXnor
	LogicalNot // '!' — see spec.md §9 open question
)

type UnaryReductionData struct {
	Op      UnaryReductionOp
	Operand ExprID
}

func (UnaryReductionData) exprData() {}

type BinaryArithOp uint8

const (
	BinaryAdd BinaryArithOp = iota
	BinarySub
	BinaryMul
	BinaryDiv
	BinaryMod
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryBitwiseXnor
)

type BinaryArithData struct {
	Op    BinaryArithOp
	Left  ExprID
	Right ExprID
}

func (BinaryArithData) exprData() {}

type ComparisonOp uint8

const (
	CompareEq ComparisonOp = iota
	CompareNeq
	CompareCaseEq
	CompareCaseNeq
	CompareLt
	CompareGt
	CompareLe
	CompareGe
	CompareWildcardEq
	CompareWildcardNeq
)

// IsNumeric reports whether this comparison admits integral-or-real
// operands (spec.md §4.B); the wildcard/case forms are integral-only.
func (op ComparisonOp) IsNumeric() bool {
	switch op {
	case CompareEq, CompareNeq, CompareLt, CompareGt, CompareLe, CompareGe:
		return true
	default:
		return false
	}
}

type ComparisonData struct {
	Op    ComparisonOp
	Left  ExprID
	Right ExprID
}

func (ComparisonData) exprData() {}

type RelationalLogicalOp uint8

const (
	LogicalAnd RelationalLogicalOp = iota
	LogicalOr
	LogicalImplies
	LogicalIff
)

type RelationalLogicalData struct {
	Op    RelationalLogicalOp
	Left  ExprID
	Right ExprID
}

func (RelationalLogicalData) exprData() {}

type ShiftPowerOp uint8

const (
	ShiftLogicalLeft ShiftPowerOp = iota
	ShiftLogicalRight
	ShiftArithLeft
	ShiftArithRight
	Power
)

type ShiftPowerData struct {
	Op    ShiftPowerOp
	Left  ExprID
	Right ExprID // self-determined, per spec.md §4.B
}

func (ShiftPowerData) exprData() {}

// AssignOp is plain '=' or a compound form; Underlying names the binary
// operator whose applicability rule governs the compound form (spec.md
// §4.B, "Assignments").
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignCompoundArith
	AssignCompoundShiftPower
)

type AssignmentData struct {
	Op                 AssignOp
	Left               ExprID
	Right              ExprID
	UnderlyingArith    BinaryArithOp // valid iff Op == AssignCompoundArith
	UnderlyingShiftPow ShiftPowerOp  // valid iff Op == AssignCompoundShiftPower
}

func (AssignmentData) exprData() {}

type TernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

func (TernaryData) exprData() {}

type ConcatenationData struct {
	Elements []ExprID
}

func (ConcatenationData) exprData() {}

type ReplicationData struct {
	Count   ExprID // must be constant-evaluable (spec.md §4.B)
	Element ExprID
}

func (ReplicationData) exprData() {}

// SelectorKind distinguishes the four selector syntaxes (spec.md §4.B.1).
type SelectorKind uint8

const (
	SelectorBit SelectorKind = iota
	SelectorSimpleRange
	SelectorAscendingRange
	SelectorDescendingRange
	SelectorNone // null selector, spec.md §9 open question
)

// Selector is the syntactic index/range expression(s) attached to a base.
type Selector struct {
	Kind SelectorKind
	// Bit: Left only. SimpleRange: Left=msb, Right=lsb.
	// Ascending/DescendingRange: Left=base, Right=width.
	Left  ExprID
	Right ExprID
}

type ElementSelectData struct {
	Base     ExprID
	Selector Selector // Kind == SelectorBit
}

func (ElementSelectData) exprData() {}

type RangeSelectData struct {
	Base     ExprID
	Selector Selector // Kind != SelectorBit
}

func (RangeSelectData) exprData() {}

type CallData struct {
	Callee source.StringID
	Args   []ExprID
}

func (CallData) exprData() {}

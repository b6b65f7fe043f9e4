package ast

import "github.com/winging/slang/internal/source"

// Builder owns the expression and statement arenas for one file. Test
// fixtures and the (external, out of scope) parser both populate a Builder
// the same way; the binder reads from one via Get and allocates into one
// only through Synthesize.
type Builder struct {
	Exprs Arena[Expr]
	Stmts Arena[Stmt]
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Expr returns the node for id, or nil if id is invalid.
func (b *Builder) Expr(id ExprID) *Expr {
	if !id.IsValid() {
		return nil
	}
	return b.Exprs.Get(uint32(id))
}

// Stmt returns the node for id, or nil if id is invalid.
func (b *Builder) Stmt(id StmtID) *Stmt {
	if !id.IsValid() {
		return nil
	}
	return b.Stmts.Get(uint32(id))
}

func (b *Builder) addExpr(kind ExprKind, span source.Span, data ExprData) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: kind, Span: span, Data: data}))
}

func (b *Builder) addStmt(kind StmtKind, span source.Span, data StmtData) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: kind, Span: span, Data: data}))
}

// --- expression constructors ------------------------------------------

func (b *Builder) IntegerLiteral(span source.Span, d IntegerLiteralData) ExprID {
	return b.addExpr(ExprIntegerLiteral, span, d)
}

func (b *Builder) RealLiteral(span source.Span, value float64) ExprID {
	return b.addExpr(ExprRealLiteral, span, RealLiteralData{Value: value})
}

func (b *Builder) UnbasedUnsizedLiteral(span source.Span, bit UnbasedUnsizedBit) ExprID {
	return b.addExpr(ExprUnbasedUnsizedLiteral, span, UnbasedUnsizedLiteralData{Bit: bit})
}

func (b *Builder) Parenthesized(span source.Span, inner ExprID) ExprID {
	return b.addExpr(ExprParenthesized, span, ParenthesizedData{Inner: inner})
}

func (b *Builder) SimpleName(span source.Span, name source.StringID) ExprID {
	return b.addExpr(ExprSimpleName, span, SimpleNameData{Name: name})
}

func (b *Builder) IdentifierSelectName(span source.Span, name source.StringID, sel Selector) ExprID {
	return b.addExpr(ExprIdentifierSelectName, span, IdentifierSelectNameData{Name: name, Selector: sel})
}

func (b *Builder) ScopedName(span source.Span, pkg, member source.StringID) ExprID {
	return b.addExpr(ExprScopedName, span, ScopedNameData{PackageName: pkg, Member: member})
}

func (b *Builder) UnaryArith(span source.Span, op UnaryArithOp, operand ExprID) ExprID {
	return b.addExpr(ExprUnaryArith, span, UnaryArithData{Op: op, Operand: operand})
}

func (b *Builder) UnaryReduction(span source.Span, op UnaryReductionOp, operand ExprID) ExprID {
	return b.addExpr(ExprUnaryReduction, span, UnaryReductionData{Op: op, Operand: operand})
}

func (b *Builder) BinaryArith(span source.Span, op BinaryArithOp, left, right ExprID) ExprID {
	return b.addExpr(ExprBinaryArith, span, BinaryArithData{Op: op, Left: left, Right: right})
}

func (b *Builder) Comparison(span source.Span, op ComparisonOp, left, right ExprID) ExprID {
	return b.addExpr(ExprComparison, span, ComparisonData{Op: op, Left: left, Right: right})
}

func (b *Builder) RelationalLogical(span source.Span, op RelationalLogicalOp, left, right ExprID) ExprID {
	return b.addExpr(ExprRelationalLogical, span, RelationalLogicalData{Op: op, Left: left, Right: right})
}

func (b *Builder) ShiftPower(span source.Span, op ShiftPowerOp, left, right ExprID) ExprID {
	return b.addExpr(ExprShiftPower, span, ShiftPowerData{Op: op, Left: left, Right: right})
}

func (b *Builder) Assignment(span source.Span, d AssignmentData) ExprID {
	return b.addExpr(ExprAssignment, span, d)
}

func (b *Builder) Ternary(span source.Span, cond, then, els ExprID) ExprID {
	return b.addExpr(ExprTernary, span, TernaryData{Cond: cond, Then: then, Else: els})
}

func (b *Builder) Concatenation(span source.Span, elements []ExprID) ExprID {
	return b.addExpr(ExprConcatenation, span, ConcatenationData{Elements: elements})
}

func (b *Builder) Replication(span source.Span, count, element ExprID) ExprID {
	return b.addExpr(ExprReplication, span, ReplicationData{Count: count, Element: element})
}

func (b *Builder) ElementSelect(span source.Span, base, index ExprID) ExprID {
	return b.addExpr(ExprElementSelect, span, ElementSelectData{
		Base:     base,
		Selector: Selector{Kind: SelectorBit, Left: index},
	})
}

func (b *Builder) RangeSelect(span source.Span, base ExprID, sel Selector) ExprID {
	return b.addExpr(ExprRangeSelect, span, RangeSelectData{Base: base, Selector: sel})
}

func (b *Builder) Call(span source.Span, callee source.StringID, args []ExprID) ExprID {
	return b.addExpr(ExprCall, span, CallData{Callee: callee, Args: args})
}

// Synthesize rewrites an IdentifierSelectNameData into the desugared
// `name` + element/range-select pair described in spec.md §4.B ("Names")
// and §6 ("the binder never constructs syntax nodes except one synthetic
// case"). It is the only place in the binder that allocates new syntax
// nodes.
func (b *Builder) Synthesize(span source.Span, name source.StringID, sel Selector) ExprID {
	base := b.SimpleName(span, name)
	switch sel.Kind {
	case SelectorBit:
		return b.ElementSelect(span, base, sel.Left)
	case SelectorNone:
		// A null selector selects nothing: the implementer's choice taken
		// here (spec.md §9) is that `id[]`-with-no-selector binds exactly
		// like the bare name `id`.
		return base
	default:
		return b.RangeSelect(span, base, sel)
	}
}

// --- statement constructors --------------------------------------------

func (b *Builder) Return(span source.Span, value ExprID) StmtID {
	return b.addStmt(StmtReturn, span, ReturnData{Value: value})
}

func (b *Builder) Conditional(span source.Span, cond ExprID, then, els []StmtID) StmtID {
	return b.addStmt(StmtConditional, span, ConditionalData{Cond: cond, Then: then, Else: els})
}

func (b *Builder) For(span source.Span, d ForData) StmtID {
	return b.addStmt(StmtFor, span, d)
}

func (b *Builder) ExpressionStmt(span source.Span, expr ExprID) StmtID {
	return b.addStmt(StmtExpression, span, ExpressionStmtData{Expr: expr})
}

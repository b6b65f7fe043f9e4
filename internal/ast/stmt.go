package ast

import "github.com/winging/slang/internal/source"

// StmtKind is the syntax-kind discriminant for statements (spec.md §4.D).
type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtReturn
	StmtConditional
	StmtFor
	StmtExpression
)

func (k StmtKind) String() string {
	switch k {
	case StmtReturn:
		return "Return"
	case StmtConditional:
		return "Conditional"
	case StmtFor:
		return "For"
	case StmtExpression:
		return "Expression"
	default:
		return "Invalid"
	}
}

// Stmt is one syntax statement node.
type Stmt struct {
	Kind StmtKind
	Span source.Span
	Data StmtData
}

// StmtData is the marker interface for kind-specific statement payloads.
type StmtData interface{ stmtData() }

type ReturnData struct {
	Value ExprID // NoExprID for a bare return
}

func (ReturnData) stmtData() {}

type ConditionalData struct {
	Cond ExprID
	Then []StmtID
	Else []StmtID // nil if no else clause
}

func (ConditionalData) stmtData() {}

// ForData carries the loop header syntax; spec.md §9 directs the binder to
// synthesize an implicit sequential block from it (see binder.bindFor).
type ForData struct {
	LoopVarName source.StringID
	LoopVarType TypeSyntax
	Init        ExprID // initializer for the loop variable, may be NoExprID
	Cond        ExprID
	Post        ExprID
	Body        []StmtID
}

func (ForData) stmtData() {}

type ExpressionStmtData struct {
	Expr ExprID
}

func (ExpressionStmtData) stmtData() {}

// TypeSyntax is the minimal syntactic type spelling the binder needs to
// resolve a declared type for an implicit loop-variable declaration: an
// integral vector width plus signedness/four-state flags. A richer parser
// would hand the binder a full type-syntax tree; this is the slice of it
// this binder's scope actually consumes.
type TypeSyntax struct {
	Width     uint32
	Signed    bool
	FourState bool
}

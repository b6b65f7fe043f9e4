// Package compilation is the binder's view of the external Compilation
// interface (spec.md §6): bound-node allocation, type constructors, and
// diagnostic emission, all threaded through a single context for the
// lifetime of one binding session (spec.md §5).
package compilation

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/types"
)

// Compilation owns the type interner and diagnostic sink for one binding
// session. A Go pointer already gives bound nodes arena-like, GC-managed,
// non-moving addresses, so "arena allocation" here is just bookkeeping:
// Emplace* methods exist to keep every allocation site uniform and
// greppable, the way the teacher's `emplace<NodeKind>(...)` call sites are.
type Compilation struct {
	Types *types.Interner
	Diags *diag.Bag
}

// New returns a fresh Compilation with an interner seeded with builtins
// and a diagnostic bag capped at maxDiagnostics (0 for unbounded).
func New(maxDiagnostics int) *Compilation {
	return NewWithTypes(types.NewInterner(), maxDiagnostics)
}

// NewWithTypes returns a Compilation sharing an already-populated type
// interner with a fresh diagnostic bag. A multi-unit build interns types
// once for the whole program (symbol declarations across units need to
// compare equal TypeIDs against each other) while still giving every unit
// its own diagnostic bag, so binding units concurrently never contends on
// one Bag's append (internal/driver relies on this).
func NewWithTypes(interner *types.Interner, maxDiagnostics int) *Compilation {
	return &Compilation{
		Types: interner,
		Diags: diag.NewBag(maxDiagnostics),
	}
}

// EmplaceExpr allocates a bound expression node (spec.md §6,
// "emplace<NodeKind>(...)").
func (c *Compilation) EmplaceExpr(e boundtree.Expr) *boundtree.Expr {
	node := new(boundtree.Expr)
	*node = e
	return node
}

// EmplaceStmt allocates a bound statement node.
func (c *Compilation) EmplaceStmt(s boundtree.Stmt) *boundtree.Stmt {
	node := new(boundtree.Stmt)
	*node = s
	return node
}

// GetType interns an arbitrary descriptor (spec.md §6, "get_type(width,
// signed, four_state)" generalized to the full Descriptor shape).
func (c *Compilation) GetType(d types.Descriptor) types.TypeID {
	return c.Types.Intern(d)
}

// GetIntType returns the canonical 32-bit signed two-state `int` type
// (spec.md §6, "get_int_type()").
func (c *Compilation) GetIntType() types.TypeID { return c.Types.Builtins().Int }

// GetRealType returns the canonical 64-bit `real` type.
func (c *Compilation) GetRealType() types.TypeID { return c.Types.Builtins().Real }

// GetShortRealType returns the canonical 32-bit `shortreal` type.
func (c *Compilation) GetShortRealType() types.TypeID { return c.Types.Builtins().ShortReal }

// GetLogicType returns the canonical single-bit four-state `logic` type.
func (c *Compilation) GetLogicType() types.TypeID { return c.Types.Builtins().Logic }

// GetErrorType returns the Error sentinel type.
func (c *Compilation) GetErrorType() types.TypeID { return types.ErrorTypeID }

// AddError emits an error diagnostic (spec.md §6, "add_error(code,
// location)"). The diagnostic is recorded in the bag before it is
// returned; the returned value is a copy, so a note added to it with
// WithNote does not reach the bag (AddErrorWithNote records one).
func (c *Compilation) AddError(code diag.Code, span source.Span, msg string) diag.Diagnostic {
	d := diag.NewError(code, span, msg)
	c.Diags.Add(d)
	return d
}

// AddErrorWithNote emits an error diagnostic carrying one secondary note in
// a single call, for the Compilation-interface call sites that need a note
// attached without holding on to the builder across two statements.
func (c *Compilation) AddErrorWithNote(code diag.Code, span source.Span, msg string, noteSpan source.Span, noteMsg string) {
	d := diag.NewError(code, span, msg).WithNote(noteSpan, noteMsg)
	c.Diags.Add(d)
}

// TypeOf is a convenience wrapper over the interner the binder uses
// constantly to go from TypeID back to the Descriptor it needs to inspect.
func (c *Compilation) TypeOf(id types.TypeID) types.Descriptor {
	return c.Types.MustLookup(id)
}

// ASTBuilder narrows the external syntax-tree interface down to exactly
// the read operations the binder performs plus the one synthetic
// construction case (spec.md §6). Kept as an interface (rather than a
// concrete *ast.Builder field) so the binder's dependency on the syntax
// tree is explicit and swappable, matching spec.md's framing of the
// syntax-tree as an external collaborator.
type ASTBuilder interface {
	Expr(id ast.ExprID) *ast.Expr
	Stmt(id ast.StmtID) *ast.Stmt
	Synthesize(span source.Span, name source.StringID, sel ast.Selector) ast.ExprID
}

// Package binder implements the semantic binding core (spec.md components
// B, C, D): the expression binder, the type propagator, and the statement
// binder. It is the only package in this module that ties types, ast,
// symbols, boundtree, and diag together into the bind-then-propagate
// algorithm spec.md §2 describes.
package binder

import (
	"fmt"

	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/compilation"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/symbols"
	"github.com/winging/slang/internal/types"
)

// Binder binds syntax rooted at a single lexical Scope. It is re-entrant
// across different scopes (spec.md §5): binding a scoped name `pkg::id`
// constructs a fresh Binder rooted at the target package scope rather than
// mutating this one.
type Binder struct {
	comp    *compilation.Compilation
	ast     compilation.ASTBuilder
	scope   symbols.Scope
	strings *source.Interner
}

// New returns a Binder rooted at scope, sharing comp's arena/type
// interner/diagnostic sink, ast's syntax tree, and strings' identifier
// text (the lexer/parser's string interner, an external collaborator per
// spec.md §1 consumed read-only here exactly like the scope graph).
func New(comp *compilation.Compilation, tree compilation.ASTBuilder, strings *source.Interner, scope symbols.Scope) *Binder {
	return &Binder{comp: comp, ast: tree, strings: strings, scope: scope}
}

// withScope returns a Binder identical to b but rooted at a different
// scope, used for scoped-name resolution (spec.md §5, "Reentrancy").
func (b *Binder) withScope(scope symbols.Scope) *Binder {
	return &Binder{comp: b.comp, ast: b.ast, strings: b.strings, scope: scope}
}

// stringOf resolves an identifier handle to text.
func (b *Binder) stringOf(id source.StringID) (string, bool) {
	return b.strings.Lookup(id)
}

// unreachable panics on an internal invariant violation: an unsupported or
// impossible syntax/bound-node kind reached a dispatch arm that should be
// exhaustive. Per spec.md §7 this is never a user-visible diagnostic.
func unreachable(where string, kind fmt.Stringer) {
	panic(fmt.Sprintf("binder: unreachable dispatch in %s for kind %s", where, kind))
}

// report emits an error diagnostic through the Compilation façade
// (spec.md §4.E, §6).
func (b *Binder) report(code diag.Code, span source.Span, format string, args ...any) {
	b.comp.AddError(code, span, fmt.Sprintf(format, args...))
}

// --- the three context-typed entry points (spec.md §4.B) -----------------

// BindConstant binds syntax where the caller asserts the result must be
// constant-evaluable. The binder itself does not enforce constant-ness
// here (that is the external constant-evaluation engine's job once the
// bound tree is handed off); this entry point exists so call sites are
// explicit about the context they bind in, matching spec.md's three-entry
// design.
func (b *Binder) BindConstant(syntax ast.ExprID) *boundtree.Expr {
	return b.bindAndPropagateSelfDetermined(syntax)
}

// BindSelfDetermined binds syntax whose type is fully determined by its
// own subexpressions (spec.md §4.B).
func (b *Binder) BindSelfDetermined(syntax ast.ExprID) *boundtree.Expr {
	return b.bindAndPropagateSelfDetermined(syntax)
}

// bindAndPropagateSelfDetermined implements the shared kernel
// `bind_and_propagate = propagate_type(bind(syntax), bind(syntax).type)`
// (spec.md §4.B) for the self-determined case: propagating a node's own
// type back into itself is a no-op for every propagation rule in component
// C except literal growth, which never grows past its own type when the
// context IS its own type — so this is exactly self-determination.
func (b *Binder) bindAndPropagateSelfDetermined(syntax ast.ExprID) *boundtree.Expr {
	bound := b.bind(syntax)
	b.propagateType(bound, bound.Type)
	return bound
}

// BindAssignmentLike binds syntax being assigned into a value of dstType
// at location (the span used for assignment-compatibility diagnostics),
// widening the result to dstType when compatible (spec.md §4.B).
func (b *Binder) BindAssignmentLike(syntax ast.ExprID, location source.Span, dstType types.TypeID) *boundtree.Expr {
	rhs := b.bind(syntax)
	b.propagateType(rhs, rhs.Type)

	dst := b.comp.TypeOf(dstType)
	src := b.comp.TypeOf(rhs.Type)
	if rhs.Bad() {
		return rhs
	}
	if !types.AssignmentCompatible(dst, src) {
		if types.CastCompatible(dst, src) {
			b.report(diag.SemaNoImplicitConversion, location,
				"no implicit conversion from %s to %s", src, dst)
		} else {
			b.report(diag.SemaBadAssignment, location,
				"cannot assign %s to %s", src, dst)
		}
		return boundtree.Invalid(syntax)
	}
	b.propagateAssignmentLike(rhs, dstType)
	return rhs
}

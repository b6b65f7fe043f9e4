package binder

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/symbols"
)

// bindSimpleName implements spec.md §4.B, "Names": "Simple identifier: look
// up in the current scope with kind Value; result must be Variable,
// FormalArgument, or Parameter; any other kind is an internal error."
func (b *Binder) bindSimpleName(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	name := node.Data.(ast.SimpleNameData).Name
	text, _ := b.stringOf(name)
	return b.bindNameIn(b.scope, syntax, node.Span, text)
}

func (b *Binder) bindNameIn(scope symbols.Scope, syntax ast.ExprID, span source.Span, text string) *boundtree.Expr {
	result := scope.Lookup(text, symbols.LookupDefault)
	if result.Status != symbols.LookupFound {
		b.report(diag.SemaUndeclaredIdentifier, span, "undeclared identifier '%s'", text)
		return boundtree.Invalid(syntax)
	}
	sym := scope.Resolve(result.Symbol)
	if sym == nil {
		panic("binder: scope.Lookup returned a SymbolID that Resolve could not find")
	}
	switch sym.Kind {
	case symbols.KindVariable, symbols.KindFormalArgument:
		return b.comp.EmplaceExpr(boundtree.Expr{
			Kind:   boundtree.ExprVarRef,
			Type:   sym.Type,
			Syntax: syntax,
			Data:   boundtree.VarRefData{Symbol: result.Symbol},
		})
	case symbols.KindParameter:
		return b.comp.EmplaceExpr(boundtree.Expr{
			Kind:   boundtree.ExprParamRef,
			Type:   sym.Type,
			Syntax: syntax,
			Data:   boundtree.ParamRefData{Symbol: result.Symbol},
		})
	default:
		// Any other kind reaching a value-name lookup is an internal
		// error, per spec.md §4.B: the external name-resolution pass
		// should never hand back a non-value symbol for LookupDefault.
		unreachable("bindNameIn", sym.Kind)
		return boundtree.Invalid(syntax)
	}
}

// bindIdentifierSelectName implements spec.md §4.B, "Names": "An
// identifier-select name (id[select]) is re-synthesized as an
// element-select on a simple name" and §6's one synthetic-construction
// exception.
func (b *Binder) bindIdentifierSelectName(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.IdentifierSelectNameData)
	synthesized := b.ast.Synthesize(node.Span, data.Name, data.Selector)
	return b.bind(synthesized)
}

// bindScopedName implements spec.md §4.B: "A scoped name (pkg::id) is
// supported only when the left-hand side is a simple package name; the
// RHS is then re-bound inside that package's scope" (spec.md §9 decision
// #3 narrows this further: hierarchical identifiers remain unsupported).
func (b *Binder) bindScopedName(syntax ast.ExprID, node *ast.Expr) *boundtree.Expr {
	data := node.Data.(ast.ScopedNameData)
	pkgText, _ := b.stringOf(data.PackageName)
	pkgScope, ok := b.scope.FindPackage(pkgText)
	if !ok {
		b.report(diag.SemaUndeclaredIdentifier, node.Span, "undeclared package '%s'", pkgText)
		return boundtree.Invalid(syntax)
	}
	memberText, _ := b.stringOf(data.Member)
	// Re-entrant: a fresh Binder rooted at the package scope (spec.md §5).
	return b.withScope(pkgScope).bindNameIn(pkgScope, syntax, node.Span, memberText)
}

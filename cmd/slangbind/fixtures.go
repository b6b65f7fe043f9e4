package main

import (
	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/driver"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/symbols"
	"github.com/winging/slang/internal/types"
)

// selfCheckUnits builds a small, hand-constructed program exercising the
// binder end to end, standing in for the external parser/lexer spec.md §1
// places out of scope. A real deployment of this module links it into a
// front end that owns tokenizing and parsing and hands the binder an
// already-populated *ast.Builder and symbols.Scope the way these fixtures
// do by hand; `slangbind bind` always binds this fixture set (it reads no
// input files) so the CLI has something concrete to bind and render
// without requiring that front end to exist yet.
func selfCheckUnits(sharedTypes *types.Interner) []driver.Unit {
	return []driver.Unit{
		widensAssignmentUnit(sharedTypes),
		tooManyArgsUnit(sharedTypes),
	}
}

// widensAssignmentUnit declares `logic [7:0] a;` and binds `a = 3 + 4;`,
// exercising component B's integer-literal, addition and assignment
// binding and component C's assignment-like propagation, which leaves the
// 32-bit literal sum unwidened because a is only 8 bits wide.
func widensAssignmentUnit(sharedTypes *types.Interner) driver.Unit {
	strings := source.NewInterner()
	b := ast.NewBuilder()
	scope := symbols.NewRootScope()

	logicVecType := sharedTypes.Intern(types.MakeIntegral(8, false, true))
	idA := strings.Intern("a")
	scope.Declare("a", symbols.Symbol{Kind: symbols.KindVariable, Type: logicVecType})

	span := source.Span{}
	three := b.IntegerLiteral(span, ast.IntegerLiteralData{Width: 32, Signed: true, Bits: 3})
	four := b.IntegerLiteral(span, ast.IntegerLiteralData{Width: 32, Signed: true, Bits: 4})
	sum := b.BinaryArith(span, ast.BinaryAdd, three, four)
	lhs := b.SimpleName(span, idA)
	assign := b.Assignment(span, ast.AssignmentData{Op: ast.AssignPlain, Left: lhs, Right: sum})
	stmt := b.ExpressionStmt(span, assign)

	return driver.Unit{
		Name:    "self-check/widen",
		AST:     b,
		Strings: strings,
		Scope:   scope,
		Body:    []ast.StmtID{stmt},
	}
}

// tooManyArgsUnit declares `function int f(int p);` and binds `f(1, 2);`,
// deliberately producing SemaTooManyArguments — a diagnostic exercising
// component B's call binding and the diagnostic surface's rendering path.
func tooManyArgsUnit(sharedTypes *types.Interner) driver.Unit {
	strings := source.NewInterner()
	b := ast.NewBuilder()
	scope := symbols.NewRootScope()

	intType := sharedTypes.Intern(types.MakeIntegral(32, true, false))
	formal := scope.Declare("p", symbols.Symbol{Kind: symbols.KindFormalArgument, Type: intType})
	scope.Declare("f", symbols.Symbol{
		Kind:       symbols.KindSubroutine,
		Formals:    []symbols.SymbolID{formal},
		ReturnType: intType,
	})
	idF := strings.Intern("f")

	span := source.Span{}
	one := b.IntegerLiteral(span, ast.IntegerLiteralData{Width: 32, Signed: true, Bits: 1})
	two := b.IntegerLiteral(span, ast.IntegerLiteralData{Width: 32, Signed: true, Bits: 2})
	call := b.Call(span, idF, []ast.ExprID{one, two})
	stmt := b.ExpressionStmt(span, call)

	return driver.Unit{
		Name:    "self-check/too-many-args",
		AST:     b,
		Strings: strings,
		Scope:   scope,
		Body:    []ast.StmtID{stmt},
	}
}

package binder

import (
	"testing"

	"github.com/winging/slang/internal/ast"
	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/compilation"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/symbols"
	"github.com/winging/slang/internal/types"
)

// fixture bundles everything a binder test needs to construct syntax and
// bind it against a hand-built scope, mirroring the teacher's own
// test-only scope/builder stand-ins (see internal/symbols.PlainScope's
// doc comment).
type fixture struct {
	t       *testing.T
	comp    *compilation.Compilation
	builder *ast.Builder
	strings *source.Interner
	scope   *symbols.PlainScope
	b       *Binder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		t:       t,
		comp:    compilation.New(0),
		builder: ast.NewBuilder(),
		strings: source.NewInterner(),
		scope:   symbols.NewRootScope(),
	}
	f.b = New(f.comp, f.builder, f.strings, f.scope)
	return f
}

func (f *fixture) name(text string) source.StringID { return f.strings.Intern(text) }

func (f *fixture) declareVar(name string, d types.Descriptor) ast.ExprID {
	ty := f.comp.GetType(d)
	f.scope.Declare(name, symbols.Symbol{Kind: symbols.KindVariable, Type: ty})
	return f.builder.SimpleName(source.NoSpan, f.name(name))
}

func (f *fixture) declareParam(name string, d types.Descriptor) {
	ty := f.comp.GetType(d)
	f.scope.Declare(name, symbols.Symbol{Kind: symbols.KindParameter, Type: ty})
}

// declareSub declares a subroutine taking formalTypes (as FormalArgument
// symbols) and returning returnType, reachable via Callable lookup.
func (f *fixture) declareSub(name string, formalTypes []types.Descriptor, returnType types.Descriptor) {
	formals := make([]symbols.SymbolID, len(formalTypes))
	for i, ft := range formalTypes {
		formals[i] = f.scope.Table().Declare(symbols.Symbol{
			Kind: symbols.KindFormalArgument,
			Type: f.comp.GetType(ft),
		})
	}
	f.scope.Declare(name, symbols.Symbol{
		Kind:       symbols.KindSubroutine,
		Formals:    formals,
		ReturnType: f.comp.GetType(returnType),
	})
}

func (f *fixture) intLit(width uint32, signed, fourState bool, bits uint64) ast.ExprID {
	return f.builder.IntegerLiteral(source.NoSpan, ast.IntegerLiteralData{
		Width: width, Signed: signed, FourState: fourState, Bits: bits,
	})
}

func (f *fixture) descOf(id types.TypeID) types.Descriptor { return f.comp.TypeOf(id) }

func (f *fixture) diagCodes() []diag.Code {
	var codes []diag.Code
	for _, d := range f.comp.Diags.Items() {
		codes = append(codes, d.Code)
	}
	return codes
}

// --- spec.md §8 scenarios ------------------------------------------------

func TestScenarioS1_BinaryArithWidensToWiderOperand(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, false, true))
	bb := f.declareVar("b", types.MakeIntegral(4, false, true))
	expr := f.builder.BinaryArith(source.NoSpan, ast.BinaryAdd, a, bb)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed result, got Invalid")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 8 || got.IsSigned() || !got.IsFourState() {
		t.Fatalf("a+b = %+v, want width=8 unsigned four-state", got)
	}
	if f.comp.Diags.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %v", f.diagCodes())
	}
}

func TestScenarioS2_IntPlusRealYieldsShortreal(t *testing.T) {
	f := newFixture(t)
	x := f.declareVar("x", types.MakeIntegral(32, true, false)) // int
	y := f.declareVar("y", types.MakeReal(types.RealKindFull))  // real
	expr := f.builder.BinaryArith(source.NoSpan, ast.BinaryAdd, x, y)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed result, got Invalid")
	}
	got := f.descOf(bound.Type)
	if !got.IsReal() || got.RealKind != types.RealKindShort {
		t.Fatalf("x+y = %+v, want shortreal", got)
	}
}

func TestScenarioS3_DivisionForcesFourState(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, false, false)) // two-state
	lit := f.intLit(3, false, false, 2)
	expr := f.builder.BinaryArith(source.NoSpan, ast.BinaryDiv, a, lit)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed result, got Invalid")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 8 || got.IsSigned() || !got.IsFourState() {
		t.Fatalf("a/3'd2 = %+v, want width=8 unsigned four-state", got)
	}
}

func TestScenarioS4_UndeclaredIdentifierYieldsOneDiagnostic(t *testing.T) {
	f := newFixture(t)
	z := f.builder.SimpleName(source.NoSpan, f.name("z"))
	one := f.intLit(32, true, false, 1)
	expr := f.builder.BinaryArith(source.NoSpan, ast.BinaryAdd, z, one)

	bound := f.b.BindSelfDetermined(expr)
	if !bound.Bad() {
		t.Fatalf("expected Invalid for undeclared identifier operand")
	}
	codes := f.diagCodes()
	if len(codes) != 1 || codes[0] != diag.SemaUndeclaredIdentifier {
		t.Fatalf("diagnostics = %v, want exactly [SemaUndeclaredIdentifier]", codes)
	}
}

func TestScenarioS5_TooManyArguments(t *testing.T) {
	f := newFixture(t)
	f.declareSub("f", []types.Descriptor{
		types.MakeIntegral(32, true, false),
		types.MakeIntegral(32, true, false),
	}, types.MakeIntegral(32, true, false))

	args := []ast.ExprID{
		f.intLit(32, true, false, 1),
		f.intLit(32, true, false, 2),
		f.intLit(32, true, false, 3),
	}
	call := f.builder.Call(source.NoSpan, f.name("f"), args)

	bound := f.b.BindSelfDetermined(call)
	if !bound.Bad() {
		t.Fatalf("expected Invalid for too-many-arguments call")
	}
	codes := f.diagCodes()
	if len(codes) != 1 || codes[0] != diag.SemaTooManyArguments {
		t.Fatalf("diagnostics = %v, want exactly [SemaTooManyArguments]", codes)
	}
}

func TestScenarioS6_SimpleRangeSelectWidth(t *testing.T) {
	f := newFixture(t)
	v := f.declareVar("v", types.MakeIntegral(16, false, true))
	msb := f.intLit(32, true, false, 7)
	lsb := f.intLit(32, true, false, 0)
	sel := f.builder.RangeSelect(source.NoSpan, v, ast.Selector{
		Kind: ast.SelectorSimpleRange, Left: msb, Right: lsb,
	})

	bound := f.b.BindSelfDetermined(sel)
	if bound.Bad() {
		t.Fatalf("expected well-typed range select")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 8 {
		t.Fatalf("v[7:0] width = %d, want 8", got.BitWidth())
	}
	if got.IsSigned() {
		t.Errorf("v[7:0] should inherit unsigned from base")
	}
	if !got.IsFourState() {
		t.Errorf("v[7:0] should inherit four-state from base")
	}
}

// --- additional property coverage (spec.md §8) ----------------------------

func TestTotality_NeverReturnsNilOrPanicsOnWellFormedSyntax(t *testing.T) {
	f := newFixture(t)
	exprs := []ast.ExprID{
		f.intLit(8, false, true, 0),
		f.builder.RealLiteral(source.NoSpan, 1.5),
		f.builder.UnbasedUnsizedLiteral(source.NoSpan, ast.UnbasedUnsizedX),
		f.builder.SimpleName(source.NoSpan, f.name("undeclared")),
	}
	for _, e := range exprs {
		bound := f.b.BindSelfDetermined(e)
		if bound == nil {
			t.Fatalf("bind returned nil for expr %v", e)
		}
		if bound.Type == types.ErrorTypeID && !bound.Bad() {
			t.Fatalf("Bad() inconsistent with Error type for expr %v", e)
		}
	}
}

func TestQuarantine_InvalidChildSuppressesParentDiagnostics(t *testing.T) {
	f := newFixture(t)
	undeclared := f.builder.SimpleName(source.NoSpan, f.name("nope"))
	notOperand := f.intLit(32, true, false, 1)
	// nope + 1: nope is already Invalid; + should not emit a second
	// diagnostic about bad operand types.
	expr := f.builder.BinaryArith(source.NoSpan, ast.BinaryAdd, undeclared, notOperand)

	bound := f.b.BindSelfDetermined(expr)
	if !bound.Bad() {
		t.Fatalf("expected Invalid result")
	}
	if f.comp.Diags.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic (quarantine), got %d: %v", f.comp.Diags.Len(), f.diagCodes())
	}
}

func TestReductionAndComparisonAlwaysYieldOneBitLogic(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(32, true, false))
	bb := f.declareVar("b", types.MakeIntegral(8, false, true))

	reduction := f.builder.UnaryReduction(source.NoSpan, ast.ReduceAnd, a)
	comparison := f.builder.Comparison(source.NoSpan, ast.CompareLt, a, bb)

	for _, e := range []ast.ExprID{reduction, comparison} {
		bound := f.b.BindSelfDetermined(e)
		if bound.Bad() {
			t.Fatalf("expected well-typed result for %v", e)
		}
		got := f.descOf(bound.Type)
		if !got.IsLogic() || got.BitWidth() != 1 {
			t.Fatalf("expected 1-bit logic result, got %+v", got)
		}
	}
}

func TestConcatenationWidthLaw(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, false, false))
	bb := f.declareVar("b", types.MakeIntegral(4, false, true))
	expr := f.builder.Concatenation(source.NoSpan, []ast.ExprID{a, bb})

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed concatenation")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 12 {
		t.Fatalf("width = %d, want 12", got.BitWidth())
	}
	if got.IsSigned() {
		t.Errorf("concatenation must be unsigned")
	}
	if !got.IsFourState() {
		t.Errorf("concatenation with a four-state element must be four-state")
	}
}

func TestReplicationWidthLaw(t *testing.T) {
	f := newFixture(t)
	x := f.declareVar("x", types.MakeIntegral(4, false, false))
	count := f.intLit(32, true, false, 3)
	expr := f.builder.Replication(source.NoSpan, count, x)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed replication")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 12 {
		t.Fatalf("{3{x}} width = %d, want 12", got.BitWidth())
	}
}

func TestAssignmentWideningIdempotence(t *testing.T) {
	f := newFixture(t)
	rhs := f.intLit(4, false, true, 0xF)
	bound := f.b.bind(rhs)

	wideType := f.comp.GetType(types.MakeIntegral(16, false, false))
	changed1 := f.b.propagateAssignmentLike(bound, wideType)
	widthAfterFirst := f.descOf(bound.Type).BitWidth()
	changed2 := f.b.propagateAssignmentLike(bound, wideType)
	widthAfterSecond := f.descOf(bound.Type).BitWidth()

	if !changed1 {
		t.Fatalf("first propagateAssignmentLike should widen")
	}
	if changed2 {
		t.Fatalf("second propagateAssignmentLike should be a no-op")
	}
	if widthAfterFirst != widthAfterSecond {
		t.Fatalf("width changed on second propagation: %d != %d", widthAfterFirst, widthAfterSecond)
	}
	if widthAfterFirst != 16 {
		t.Fatalf("widened width = %d, want 16", widthAfterFirst)
	}
}

func TestAssignmentWideningPreservesRHSSignAndFourState(t *testing.T) {
	f := newFixture(t)
	// RHS is signed two-state at width 4; LHS is unsigned four-state at
	// width 16. Per spec.md §4.C the widened RHS keeps its own
	// signedness/four-state, not the LHS's.
	rhsSyntax := f.intLit(4, true, false, 0x3)
	bound := f.b.bind(rhsSyntax)
	lhsType := f.comp.GetType(types.MakeIntegral(16, false, true))

	f.b.propagateAssignmentLike(bound, lhsType)
	got := f.descOf(bound.Type)
	if got.BitWidth() != 16 {
		t.Fatalf("width = %d, want 16", got.BitWidth())
	}
	if !got.IsSigned() {
		t.Errorf("widened RHS should keep its own signedness (signed)")
	}
	if got.IsFourState() {
		t.Errorf("widened RHS should keep its own four-state-ness (two-state)")
	}
}

func TestShiftResultTakesMaxWidthAndRHSOperandIsNotWidened(t *testing.T) {
	f := newFixture(t)
	lhs := f.declareVar("lhs", types.MakeIntegral(8, false, false))
	rhs := f.declareVar("rhs", types.MakeIntegral(32, false, false))
	expr := f.builder.ShiftPower(source.NoSpan, ast.ShiftLogicalLeft, lhs, rhs)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed shift")
	}
	got := f.descOf(bound.Type)
	if got.BitWidth() != 32 {
		// result_type_of_binary still takes max(width) per spec.md §4.A,
		// but the RHS operand node itself must remain untouched (not
		// widened to the LHS).
		t.Fatalf("result width = %d, want 32 (max(lhs,rhs))", got.BitWidth())
	}
	data := bound.Data.(boundtree.ShiftPowerData)
	if f.descOf(data.Right.Type).BitWidth() != 32 {
		t.Fatalf("RHS operand width was mutated: %d", f.descOf(data.Right.Type).BitWidth())
	}
}

func TestAssignmentRequiresLvalue(t *testing.T) {
	f := newFixture(t)
	f.declareParam("p", types.MakeIntegral(8, false, false))
	paramRef := f.builder.SimpleName(source.NoSpan, f.name("p"))
	rhs := f.intLit(8, false, false, 1)
	assign := f.builder.Assignment(source.NoSpan, ast.AssignmentData{
		Op: ast.AssignPlain, Left: paramRef, Right: rhs,
	})

	bound := f.b.BindSelfDetermined(assign)
	if !bound.Bad() {
		t.Fatalf("assignment to a parameter should be rejected as not an lvalue")
	}
	codes := f.diagCodes()
	if len(codes) != 1 || codes[0] != diag.SemaBadAssignment {
		t.Fatalf("diagnostics = %v, want exactly [SemaBadAssignment]", codes)
	}
}

func TestAssignmentToVariableWidensRHS(t *testing.T) {
	f := newFixture(t)
	v := f.declareVar("v", types.MakeIntegral(16, false, true))
	rhs := f.intLit(4, false, false, 3)
	assign := f.builder.Assignment(source.NoSpan, ast.AssignmentData{
		Op: ast.AssignPlain, Left: v, Right: rhs,
	})

	bound := f.b.BindSelfDetermined(assign)
	if bound.Bad() {
		t.Fatalf("expected well-typed assignment")
	}
	if f.descOf(bound.Type).BitWidth() != 16 {
		t.Fatalf("assignment expression type width = %d, want 16", f.descOf(bound.Type).BitWidth())
	}
	data := bound.Data.(boundtree.AssignmentData)
	if f.descOf(data.Right.Type).BitWidth() != 16 {
		t.Fatalf("rhs was not widened to lhs width: %d", f.descOf(data.Right.Type).BitWidth())
	}
}

func TestTernaryForcesFourState(t *testing.T) {
	f := newFixture(t)
	cond := f.declareVar("cond", types.MakeIntegral(1, false, true))
	thenE := f.declareVar("t", types.MakeIntegral(8, false, false))
	elseE := f.declareVar("e", types.MakeIntegral(8, false, false))
	expr := f.builder.Ternary(source.NoSpan, cond, thenE, elseE)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed ternary")
	}
	got := f.descOf(bound.Type)
	if !got.IsFourState() {
		t.Errorf("ternary result must be four-state even when both branches are two-state")
	}
}

func TestElementSelectWidthIsOne(t *testing.T) {
	f := newFixture(t)
	v := f.declareVar("v", types.MakeIntegral(16, false, true))
	idx := f.intLit(32, true, false, 3)
	expr := f.builder.ElementSelect(source.NoSpan, v, idx)

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed element select")
	}
	if f.descOf(bound.Type).BitWidth() != 1 {
		t.Fatalf("bit-select width = %d, want 1", f.descOf(bound.Type).BitWidth())
	}
}

func TestAscendingRangeSelectWidthEqualsConstant(t *testing.T) {
	f := newFixture(t)
	v := f.declareVar("v", types.MakeIntegral(32, true, false))
	base := f.intLit(32, true, false, 0)
	width := f.intLit(32, true, false, 5)
	sel := f.builder.RangeSelect(source.NoSpan, v, ast.Selector{
		Kind: ast.SelectorAscendingRange, Left: base, Right: width,
	})

	bound := f.b.BindSelfDetermined(sel)
	if bound.Bad() {
		t.Fatalf("expected well-typed ascending range select")
	}
	if f.descOf(bound.Type).BitWidth() != 5 {
		t.Fatalf("v[0+:5] width = %d, want 5", f.descOf(bound.Type).BitWidth())
	}
}

func TestReturnOutsideSubroutineIsRejected(t *testing.T) {
	f := newFixture(t)
	val := f.intLit(32, true, false, 1)
	stmt := f.builder.Return(source.NoSpan, val)

	bound := f.b.BindStmt(stmt)
	if bound.Kind != boundtree.StmtInvalid {
		t.Fatalf("expected Invalid statement for return outside subroutine")
	}
	codes := f.diagCodes()
	if len(codes) != 1 || codes[0] != diag.SemaReturnNotInSubroutine {
		t.Fatalf("diagnostics = %v, want exactly [SemaReturnNotInSubroutine]", codes)
	}
}

func TestReturnInsideSubroutineBindsAgainstReturnType(t *testing.T) {
	f := newFixture(t)
	returnType := types.MakeIntegral(16, false, true)
	subSym := f.scope.Declare("f", symbols.Symbol{
		Kind:       symbols.KindSubroutine,
		ReturnType: f.comp.GetType(returnType),
	})
	subScope := f.scope.NewChild(subSym, symbols.KindSubroutine)
	b := f.b.withScope(subScope)

	val := f.intLit(4, false, false, 2)
	stmt := f.builder.Return(source.NoSpan, val)
	bound := b.BindStmt(stmt)
	if bound.Kind != boundtree.StmtReturn {
		t.Fatalf("expected a bound Return statement, got %v", bound.Kind)
	}
	data := bound.Data.(boundtree.ReturnData)
	if f.descOf(data.Value.Type).BitWidth() != 16 {
		t.Fatalf("return value width = %d, want widened to 16", f.descOf(data.Value.Type).BitWidth())
	}
}

func TestTooFewArgumentsIsRejected(t *testing.T) {
	f := newFixture(t)
	f.declareSub("f", []types.Descriptor{
		types.MakeIntegral(32, true, false),
		types.MakeIntegral(32, true, false),
	}, types.MakeIntegral(32, true, false))

	call := f.builder.Call(source.NoSpan, f.name("f"), []ast.ExprID{f.intLit(32, true, false, 1)})
	bound := f.b.BindSelfDetermined(call)
	if !bound.Bad() {
		t.Fatalf("expected Invalid for too-few-arguments call")
	}
	codes := f.diagCodes()
	if len(codes) != 1 || codes[0] != diag.SemaTooFewArguments {
		t.Fatalf("diagnostics = %v, want exactly [SemaTooFewArguments]", codes)
	}
}

func TestScopedNameResolvesInPackageScope(t *testing.T) {
	f := newFixture(t)
	pkgScope := symbols.NewRootScope()
	pkgScope.Declare("CONST", symbols.Symbol{
		Kind: symbols.KindParameter,
		Type: f.comp.GetType(types.MakeIntegral(8, false, false)),
	})
	f.scope.DeclarePackage("pkg", pkgScope)

	expr := f.builder.ScopedName(source.NoSpan, f.name("pkg"), f.name("CONST"))
	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed scoped-name reference")
	}
	if f.descOf(bound.Type).BitWidth() != 8 {
		t.Fatalf("pkg::CONST width = %d, want 8", f.descOf(bound.Type).BitWidth())
	}
}

func TestIdentifierSelectNameDesugarsToElementSelect(t *testing.T) {
	f := newFixture(t)
	v := f.declareVar("v", types.MakeIntegral(16, false, true))
	_ = v
	idx := f.intLit(32, true, false, 2)
	expr := f.builder.IdentifierSelectName(source.NoSpan, f.name("v"), ast.Selector{
		Kind: ast.SelectorBit, Left: idx,
	})

	bound := f.b.BindSelfDetermined(expr)
	if bound.Bad() {
		t.Fatalf("expected well-typed identifier-select name")
	}
	if bound.Kind != boundtree.ExprElementSelect {
		t.Fatalf("expected desugared ElementSelect, got %v", bound.Kind)
	}
}

func TestBindStatementListPrependsVariableDeclPrologue(t *testing.T) {
	f := newFixture(t)
	f.scope.Declare("x", symbols.Symbol{Kind: symbols.KindVariable, Type: f.comp.GetType(types.MakeIntegral(8, false, false))})
	exprStmt := f.builder.ExpressionStmt(source.NoSpan, f.intLit(32, true, false, 1))

	list := f.b.bindStatementList([]ast.StmtID{exprStmt})
	data := list.Data.(boundtree.StatementListData)
	if len(data.Children) != 2 {
		t.Fatalf("expected prologue + 1 statement, got %d children", len(data.Children))
	}
	if data.Children[0].Kind != boundtree.StmtVariableDecl {
		t.Fatalf("expected first child to be the implicit VariableDecl, got %v", data.Children[0].Kind)
	}
	if data.Children[1].Kind != boundtree.StmtExpression {
		t.Fatalf("expected second child to be the bound expression statement, got %v", data.Children[1].Kind)
	}
}

// --- regression: fixed-type kinds nested inside a wider context -----------

func TestComparisonNestedInBinaryArithKeepsOneBitLogicType(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, true, false))
	bb := f.declareVar("b", types.MakeIntegral(8, true, false))
	c := f.declareVar("c", types.MakeIntegral(8, false, false))

	cmp := f.builder.Comparison(source.NoSpan, ast.CompareLt, a, bb)
	sum := f.builder.BinaryArith(source.NoSpan, ast.BinaryAdd, cmp, c)

	bound := f.b.BindSelfDetermined(sum)
	if bound.Bad() {
		t.Fatalf("expected well-typed (a < b) + c")
	}
	data := bound.Data.(boundtree.BinaryArithData)
	got := f.descOf(data.Left.Type)
	if !got.IsLogic() || got.BitWidth() != 1 {
		t.Fatalf("nested comparison widened to %+v, want 1-bit logic unchanged", got)
	}
}

func TestReductionNestedInUnaryArithKeepsOneBitLogicType(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(32, true, false))

	reduction := f.builder.UnaryReduction(source.NoSpan, ast.ReduceAnd, a)
	neg := f.builder.UnaryArith(source.NoSpan, ast.UnaryMinus, reduction)

	bound := f.b.BindSelfDetermined(neg)
	if bound.Bad() {
		t.Fatalf("expected well-typed -(&a)")
	}
	data := bound.Data.(boundtree.UnaryArithData)
	got := f.descOf(data.Operand.Type)
	if !got.IsLogic() || got.BitWidth() != 1 {
		t.Fatalf("nested reduction widened to %+v, want 1-bit logic unchanged", got)
	}
}

func TestConcatenationNestedInTernaryKeepsItsOwnWidth(t *testing.T) {
	f := newFixture(t)
	cond := f.declareVar("cond", types.MakeIntegral(1, false, false))
	a := f.declareVar("a", types.MakeIntegral(4, false, false))
	bb := f.declareVar("b", types.MakeIntegral(4, false, false))
	wide := f.declareVar("wide", types.MakeIntegral(16, false, false))

	concat := f.builder.Concatenation(source.NoSpan, []ast.ExprID{a, bb})
	ternary := f.builder.Ternary(source.NoSpan, cond, concat, wide)

	bound := f.b.BindSelfDetermined(ternary)
	if bound.Bad() {
		t.Fatalf("expected well-typed ternary")
	}
	data := bound.Data.(boundtree.TernaryData)
	got := f.descOf(data.Then.Type)
	if got.BitWidth() != 8 {
		t.Fatalf("nested concatenation widened to %+v, want its own 8-bit width unchanged", got)
	}
}

func TestUnaryArithAdmitsLogicOperand(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, true, false))
	bb := f.declareVar("b", types.MakeIntegral(8, true, false))
	cmp := f.builder.Comparison(source.NoSpan, ast.CompareEq, a, bb)
	neg := f.builder.UnaryArith(source.NoSpan, ast.UnaryMinus, cmp)

	bound := f.b.BindSelfDetermined(neg)
	if bound.Bad() {
		t.Fatalf("-(a == b) should be well-typed: logic operands are admissible, same as every binary operator")
	}
}

func TestUnaryReductionAdmitsLogicOperand(t *testing.T) {
	f := newFixture(t)
	a := f.declareVar("a", types.MakeIntegral(8, true, false))
	bb := f.declareVar("b", types.MakeIntegral(8, true, false))
	cmp := f.builder.Comparison(source.NoSpan, ast.CompareEq, a, bb)
	red := f.builder.UnaryReduction(source.NoSpan, ast.ReduceAnd, cmp)

	bound := f.b.BindSelfDetermined(red)
	if bound.Bad() {
		t.Fatalf("&(a == b) should be well-typed: logic operands are admissible, same as every binary operator")
	}
}

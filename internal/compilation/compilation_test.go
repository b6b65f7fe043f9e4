package compilation

import (
	"reflect"
	"testing"

	"github.com/winging/slang/internal/boundtree"
	"github.com/winging/slang/internal/diag"
	"github.com/winging/slang/internal/source"
	"github.com/winging/slang/internal/types"
)

func TestBuiltinTypeAccessors(t *testing.T) {
	c := New(0)
	if c.GetErrorType() != types.ErrorTypeID {
		t.Errorf("GetErrorType() = %d, want ErrorTypeID", c.GetErrorType())
	}
	logic := c.TypeOf(c.GetLogicType())
	if !logic.IsLogic() {
		t.Errorf("GetLogicType() did not resolve to a Logic descriptor: %+v", logic)
	}
	intType := c.TypeOf(c.GetIntType())
	if intType.BitWidth() != 32 || !intType.IsSigned() {
		t.Errorf("GetIntType() = %+v, want 32-bit signed", intType)
	}
	real := c.TypeOf(c.GetRealType())
	if !real.IsReal() || real.RealKind != types.RealKindFull {
		t.Errorf("GetRealType() = %+v, want 64-bit real", real)
	}
	shortReal := c.TypeOf(c.GetShortRealType())
	if !shortReal.IsReal() || shortReal.RealKind != types.RealKindShort {
		t.Errorf("GetShortRealType() = %+v, want 32-bit shortreal", shortReal)
	}
}

func TestNewWithTypesSharesInterner(t *testing.T) {
	interner := types.NewInterner()
	wide := interner.Intern(types.MakeIntegral(64, true, true))

	c1 := NewWithTypes(interner, 0)
	c2 := NewWithTypes(interner, 0)

	if !reflect.DeepEqual(c1.TypeOf(wide), c2.TypeOf(wide)) {
		t.Fatalf("compilations sharing an interner should resolve the same descriptor")
	}
	// Each compilation still gets its own diagnostic bag.
	c1.AddError(diag.SemaBadAssignment, source.Span{}, "x")
	if c2.Diags.Len() != 0 {
		t.Fatalf("diagnostic bags must not be shared across compilations")
	}
}

func TestEmplaceExprAllocatesDistinctNodes(t *testing.T) {
	c := New(0)
	a := c.EmplaceExpr(boundtree.Expr{Kind: boundtree.ExprIntegerLiteral, Type: c.GetIntType()})
	b := c.EmplaceExpr(boundtree.Expr{Kind: boundtree.ExprIntegerLiteral, Type: c.GetIntType()})
	if a == b {
		t.Fatalf("two EmplaceExpr calls must return distinct node addresses")
	}
}

func TestAddErrorRecordsIntoBag(t *testing.T) {
	c := New(0)
	c.AddError(diag.SemaUndeclaredIdentifier, source.Span{File: 1}, "undeclared 'z'")
	if c.Diags.Len() != 1 {
		t.Fatalf("AddError did not record into the diagnostic bag")
	}
}

func TestAddErrorWithNoteAttachesNote(t *testing.T) {
	c := New(0)
	c.AddErrorWithNote(diag.SemaTooManyArguments, source.Span{Start: 0, End: 1}, "too many args",
		source.Span{Start: 10, End: 11}, "declared here")
	items := c.Diags.Items()
	if len(items) != 1 || len(items[0].Notes) != 1 {
		t.Fatalf("expected one diagnostic with one note, got %+v", items)
	}
}

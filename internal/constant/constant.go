// Package constant is the binder's eval() façade (spec.md §1, §6:
// "the constant-evaluation engine (invoked through an eval() façade on
// bound expressions)"). The binder needs two constant values eagerly, at
// bind time: a replication count and the bounds of a select (spec.md
// §4.B, §4.B.1). The full constant-folding engine a real front end would
// ship is out of this binder's scope; this package is a minimal stand-in
// sufficient to fold the literal/unary/binary arithmetic the binder itself
// produces, grounded on the shape (not the full breadth) of the teacher's
// internal/sema/const_eval.go.
package constant

import "fmt"

// Value is a folded compile-time value. Eval produces Int values, Real
// values (real literals and real arithmetic), and Int values with Unknown
// set for integer literals carrying X/Z bits.
type Value struct {
	Kind    ValueKind
	Int     int64
	Real    float64
	Unknown bool // true if the value contains an X/Z bit (cannot be used for sizing)
}

type ValueKind uint8

const (
	ValueInvalid ValueKind = iota
	ValueInt
	ValueReal
)

func (v Value) String() string {
	switch v.Kind {
	case ValueInt:
		return fmt.Sprintf("%d", v.Int)
	case ValueReal:
		return fmt.Sprintf("%g", v.Real)
	default:
		return "<invalid>"
	}
}

// IsValid reports whether folding succeeded.
func (v Value) IsValid() bool { return v.Kind != ValueInvalid }

// Package types implements the type algebra (spec component A): canonical
// integral/real/logic/error descriptors plus the assignability and
// cast-compatibility queries the binder consults throughout.
package types

import "fmt"

// TypeID is a stable handle into an Interner. Two descriptors with the same
// canonical shape intern to the same TypeID.
type TypeID uint32

// ErrorTypeID is both "no type" and the Error sentinel type: an Invalid
// bound expression's type is ErrorTypeID, and a zero TypeID is never a
// valid non-error descriptor. This mirrors the compilation arena's
// convention of reserving index 0 for the absent/invalid element.
const ErrorTypeID TypeID = 0

// Kind is the coarse family a Descriptor belongs to.
type Kind uint8

const (
	// KindError is the poison type: propagates silently, admits any
	// operator without emitting further diagnostics.
	KindError Kind = iota
	KindIntegral
	KindReal
	KindLogic
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "<error>"
	case KindIntegral:
		return "integral"
	case KindReal:
		return "real"
	case KindLogic:
		return "logic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// RealKind distinguishes the two interchangeable real subvariants named in
// spec.md §3. realtime is represented as RealKindFull (real), per spec.
type RealKind uint8

const (
	RealKindShort RealKind = iota // shortreal, 32-bit
	RealKindFull                  // real / realtime, 64-bit
)

func (r RealKind) Width() uint32 {
	if r == RealKindFull {
		return 64
	}
	return 32
}

// DimensionBound is one packed-array dimension's declared bound pair. MSB
// may be less than, greater than, or equal to LSB; callers determine
// ascending/descending ordering by comparing them (spec.md §4.B.1).
type DimensionBound struct {
	MSB int32
	LSB int32
}

// Descending reports whether this dimension's bits run from high index to
// low index (the conventional "down-to" ordering, e.g. [7:0]).
func (d DimensionBound) Descending() bool { return d.MSB >= d.LSB }

// Width returns the number of bits spanned by this single dimension.
func (d DimensionBound) Width() uint32 {
	if d.MSB >= d.LSB {
		return uint32(d.MSB-d.LSB) + 1
	}
	return uint32(d.LSB-d.MSB) + 1
}

// Descriptor is the canonicalized, value-comparable shape of a type. Two
// Descriptors compare structurally equal (via Interner) iff they describe
// the same type; the binder never compares Descriptors directly, only
// TypeIDs.
type Descriptor struct {
	Kind      Kind
	Width     uint32 // integral: total packed width; logic: always 1; real: unset (BitWidth derives 32/64 from RealKind)
	Signed    bool   // integral only
	FourState bool   // integral/logic only
	RealKind  RealKind
	Dims      []DimensionBound // integral only; nil means an implicit [Width-1:0]
}

// IsIntegral reports whether the descriptor is the Integral family.
func (d Descriptor) IsIntegral() bool { return d.Kind == KindIntegral }

// IsReal reports whether the descriptor is the Real family.
func (d Descriptor) IsReal() bool { return d.Kind == KindReal }

// IsLogic reports whether the descriptor is the single-bit Logic type.
func (d Descriptor) IsLogic() bool { return d.Kind == KindLogic }

// IsError reports whether the descriptor is the Error sentinel.
func (d Descriptor) IsError() bool { return d.Kind == KindError }

// IsFourState reports whether values of this type may take 'x'/'z'.
func (d Descriptor) IsFourState() bool {
	switch d.Kind {
	case KindLogic:
		return true
	case KindIntegral:
		return d.FourState
	default:
		return false
	}
}

// IsSigned reports two's-complement signedness; meaningless (false) outside
// the Integral family.
func (d Descriptor) IsSigned() bool {
	return d.Kind == KindIntegral && d.Signed
}

// BitWidth returns the descriptor's width in bits. Real types report their
// storage width (32/64); Error reports 0.
func (d Descriptor) BitWidth() uint32 {
	switch d.Kind {
	case KindIntegral:
		return d.Width
	case KindLogic:
		return 1
	case KindReal:
		return d.RealKind.Width()
	default:
		return 0
	}
}

// MakeIntegral describes a packed integral type of the given width.
func MakeIntegral(width uint32, signed, fourState bool) Descriptor {
	return Descriptor{Kind: KindIntegral, Width: width, Signed: signed, FourState: fourState}
}

// MakeIntegralDims describes an integral type with explicit packed
// dimensions; width must equal the product of each dimension's width.
func MakeIntegralDims(width uint32, signed, fourState bool, dims []DimensionBound) Descriptor {
	d := MakeIntegral(width, signed, fourState)
	d.Dims = dims
	return d
}

// MakeReal describes a real/shortreal descriptor.
func MakeReal(kind RealKind) Descriptor {
	return Descriptor{Kind: KindReal, RealKind: kind}
}

// MakeLogic returns the canonical single-bit four-state logic descriptor.
func MakeLogic() Descriptor {
	return Descriptor{Kind: KindLogic, Width: 1, FourState: true}
}

// MakeError returns the canonical Error sentinel descriptor.
func MakeError() Descriptor {
	return Descriptor{Kind: KindError}
}

// String renders a Descriptor for diagnostic argument interpolation, e.g.
// "integral[8] unsigned", "integral[32] two-state", "logic", "real", "<error>".
func (d Descriptor) String() string {
	switch d.Kind {
	case KindError:
		return "<error>"
	case KindLogic:
		return "logic"
	case KindReal:
		if d.RealKind == RealKindShort {
			return "shortreal"
		}
		return "real"
	case KindIntegral:
		sign := ""
		if !d.Signed {
			sign = " unsigned"
		}
		four := ""
		if !d.FourState {
			four = " two-state"
		}
		return fmt.Sprintf("integral[%d]%s%s", d.Width, sign, four)
	default:
		return fmt.Sprintf("Descriptor(%d)", uint8(d.Kind))
	}
}

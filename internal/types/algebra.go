package types

// ResultTypeOfBinary implements spec.md §4.A: the width/sign/four-state
// arithmetic shared by every binary numeric operator. forceFourState is set
// by the caller for operators that can produce X from well-defined inputs
// (division, modulo, power, ambiguous-predicate ternary — spec.md §4.B).
func ResultTypeOfBinary(in *Interner, lhs, rhs Descriptor, forceFourState bool) TypeID {
	if lhs.IsReal() || rhs.IsReal() {
		width := maxWidth(lhs.BitWidth(), rhs.BitWidth())
		if width >= 64 {
			return in.Intern(MakeReal(RealKindFull))
		}
		return in.Intern(MakeReal(RealKindShort))
	}
	width := maxWidth(lhs.BitWidth(), rhs.BitWidth())
	signed := lhs.IsSigned() && rhs.IsSigned()
	fourState := forceFourState || lhs.IsFourState() || rhs.IsFourState()
	return in.Intern(MakeIntegral(width, signed, fourState))
}

func maxWidth(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// AssignmentCompatible reports whether a value of type src may be assigned,
// without an explicit cast, into a location of type dst. Error is
// compatible with everything so it never cascades (spec.md §7).
func AssignmentCompatible(dst, src Descriptor) bool {
	if dst.IsError() || src.IsError() {
		return true
	}
	switch {
	case dst.IsReal():
		return src.IsReal() || src.IsIntegral() || src.IsLogic()
	case dst.IsIntegral(), dst.IsLogic():
		return src.IsIntegral() || src.IsLogic() || src.IsReal()
	default:
		return false
	}
}

// CastCompatible reports whether src may reach dst via an explicit cast.
// Every numeric family (integral/real/logic) is mutually cast-compatible in
// this binder's scope; only Error escapes the rule (trivially compatible,
// per the quarantine policy).
func CastCompatible(dst, src Descriptor) bool {
	if dst.IsError() || src.IsError() {
		return true
	}
	numeric := func(d Descriptor) bool { return d.IsIntegral() || d.IsReal() || d.IsLogic() }
	return numeric(dst) && numeric(src)
}

// TruncateReplicationCount mirrors the original binder's (possibly
// unintentional, per spec.md §9) truncation of a replication count to 16
// bits. The mask makes the narrowing visible at the call site instead of
// an implicit silent overflow.
func TruncateReplicationCount(n int64) uint32 {
	if n < 0 {
		return 0
	}
	return uint32(n & 0xFFFF)
}

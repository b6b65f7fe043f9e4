package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins caches TypeIDs for the primitives the binder constructs
// constantly (integer literals, `int`/`logic` formals, real literals) so
// callers never re-intern them.
type Builtins struct {
	Error     TypeID
	Logic     TypeID
	Int       TypeID // 32-bit signed two-state
	ShortReal TypeID
	Real      TypeID
}

// Interner hands out stable TypeIDs for structurally-equal Descriptors.
// Spec.md §3 requires this: "two integrals with identical (width, sign,
// four-state, bounds) are the same descriptor (interned by the compilation
// arena)".
type Interner struct {
	descriptors []Descriptor
	index       map[typeKey]TypeID
	builtins    Builtins
}

// NewInterner returns an interner seeded with the Error sentinel at
// ErrorTypeID and the common builtin primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.descriptors = append(in.descriptors, MakeError()) // reserves ErrorTypeID == 0
	in.builtins.Error = ErrorTypeID
	in.builtins.Logic = in.Intern(MakeLogic())
	in.builtins.Int = in.Intern(MakeIntegral(32, true, false))
	in.builtins.ShortReal = in.Intern(MakeReal(RealKindShort))
	in.builtins.Real = in.Intern(MakeReal(RealKindFull))
	return in
}

// Builtins returns the cached primitive TypeIDs.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern returns the canonical TypeID for t, allocating a new entry only if
// no structurally-equal Descriptor has been interned yet. Error descriptors
// always collapse to ErrorTypeID.
func (in *Interner) Intern(t Descriptor) TypeID {
	if t.Kind == KindError {
		return ErrorTypeID
	}
	key := makeTypeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	idx, err := safecast.Conv[uint32](len(in.descriptors))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	id := TypeID(idx)
	in.descriptors = append(in.descriptors, t)
	in.index[key] = id
	return id
}

// Lookup resolves id back to its Descriptor. A false second return means id
// came from a different interner or was never allocated.
func (in *Interner) Lookup(id TypeID) (Descriptor, bool) {
	if int(id) < 0 || int(id) >= len(in.descriptors) {
		return Descriptor{}, false
	}
	return in.descriptors[id], true
}

// MustLookup panics on an invalid id; used once the binder already proved
// the id came from this interner.
func (in *Interner) MustLookup(id TypeID) Descriptor {
	d, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return d
}

// typeKey is the hashable projection of a Descriptor used for dedup. Dims
// are folded into a string since Go maps cannot key on slices directly;
// this is purely an internal detail of the interner.
type typeKey struct {
	Kind      Kind
	Width     uint32
	Signed    bool
	FourState bool
	RealKind  RealKind
	DimsKey   string
}

func makeTypeKey(t Descriptor) typeKey {
	k := typeKey{
		Kind:      t.Kind,
		Width:     t.Width,
		Signed:    t.Signed,
		FourState: t.FourState,
		RealKind:  t.RealKind,
	}
	if len(t.Dims) > 0 {
		k.DimsKey = fmt.Sprint(t.Dims)
	}
	return k
}

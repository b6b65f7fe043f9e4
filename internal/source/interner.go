package source

// StringID is an interned identifier/text handle. Identifier text, literal
// text, and diagnostic format arguments are all funneled through the same
// interner so equality is a cheap integer compare.
type StringID uint32

// NoStringID represents the absence of interned text.
const NoStringID StringID = 0

// Interner deduplicates strings behind stable IDs. Mirrors the compilation
// arena's string table: index 0 is reserved so the zero value of StringID
// is distinguishable from a real empty string.
type Interner struct {
	byID  []string
	index map[string]StringID
}

// NewInterner returns an interner pre-seeded with the empty string at
// NoStringID.
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern returns the stable ID for s, allocating one if s is new.
func (in *Interner) Intern(s string) StringID {
	if id, ok := in.index[s]; ok {
		return id
	}
	cpy := string([]byte(s))
	id := StringID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// Lookup returns the text for id, or ("", false) if id is out of range.
func (in *Interner) Lookup(id StringID) (string, bool) {
	if int(id) < 0 || int(id) >= len(in.byID) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup panics if id is invalid; used where the caller already knows
// the ID was produced by this same interner.
func (in *Interner) MustLookup(id StringID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid StringID")
	}
	return s
}

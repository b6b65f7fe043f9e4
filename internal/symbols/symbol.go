// Package symbols models the binder's view of the external scope graph
// (spec.md §6, "Scope interface (consumed)"): symbols, lookup kinds, and a
// minimal concrete scope-graph implementation the binder can be exercised
// and tested against. In a full front end this package's concrete types
// would live in (and be owned by) the name-resolution pass; the binder
// only ever depends on the Scope interface below.
package symbols

import "github.com/winging/slang/internal/types"

// SymbolID is a stable handle into a SymbolTable.
type SymbolID uint32

// NoSymbolID marks the absence of a symbol.
const NoSymbolID SymbolID = 0

// IsValid reports whether id refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// Kind enumerates the symbol kinds the binder consumes (spec.md §3).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVariable
	KindFormalArgument
	KindParameter
	KindSubroutine
	KindPackage
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFormalArgument:
		return "formal argument"
	case KindParameter:
		return "parameter"
	case KindSubroutine:
		return "subroutine"
	case KindPackage:
		return "package"
	default:
		return "invalid"
	}
}

// IsValueCarrying reports whether symbols of this kind expose a Type
// (Variable, FormalArgument, Parameter — spec.md §3).
func (k Kind) IsValueCarrying() bool {
	switch k {
	case KindVariable, KindFormalArgument, KindParameter:
		return true
	default:
		return false
	}
}

// Symbol is the opaque handle's backing data (spec.md §3, "Symbol").
type Symbol struct {
	Name Name
	Kind Kind
	Type types.TypeID // meaningful iff Kind.IsValueCarrying()

	// Subroutine-only fields:
	Formals    []SymbolID
	ReturnType types.TypeID
}

// Name is a plain string; a full front end would intern this through
// source.Interner the way identifiers in ast do, but the scope graph is an
// external collaborator here and this binder never needs to intern scope
// names itself, only compare them.
type Name = string

// Table is the concrete symbol-arena backing the Scope graph below.
type Table struct {
	symbols []Symbol
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{symbols: make([]Symbol, 1)} // index 0 reserved for NoSymbolID
}

// Declare allocates sym and returns its stable ID.
func (t *Table) Declare(sym Symbol) SymbolID {
	id := SymbolID(len(t.symbols))
	t.symbols = append(t.symbols, sym)
	return id
}

// Get returns the symbol for id, or nil if id is invalid.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.symbols) {
		return nil
	}
	return &t.symbols[id]
}

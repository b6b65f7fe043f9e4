// Package ast is the binder's view of the external syntax-tree interface
// (spec.md §6): an opaque tagged tree the binder only ever downcasts, never
// constructs — with one exception: Synthesize, used to desugar
// `id[selector]` into a simple name plus an element- or range-select node (spec.md
// §4.B, "Names").
//
// In a full front end the lexer and parser would own this package's
// arena and populate it from source text; here it is a minimal, literal
// surface sufficient to drive and test the binder against — the real
// parser and lexer are external collaborators per spec.md §1.
package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// ExprID is a 1-based handle into a Builder's expression arena. The zero
// value, NoExprID, never denotes an allocated node.
type ExprID uint32

// NoExprID marks the absence of an expression.
const NoExprID ExprID = 0

// IsValid reports whether id refers to an allocated node.
func (id ExprID) IsValid() bool { return id != NoExprID }

// StmtID is a 1-based handle into a Builder's statement arena.
type StmtID uint32

// NoStmtID marks the absence of a statement.
const NoStmtID StmtID = 0

// IsValid reports whether id refers to an allocated node.
func (id StmtID) IsValid() bool { return id != NoStmtID }

// Arena is a compact append-only store returning 1-based handles, so the
// zero value of the handle type always means "absent".
type Arena[T any] struct {
	data []T
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	idx, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("ast: arena overflow: %w", err))
	}
	return idx
}

// Get returns a pointer to the element at the 1-based index, or nil for 0
// or an out-of-range index.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || int(index) > len(a.data) {
		return nil
	}
	return &a.data[index-1]
}

// Len reports the number of allocated elements.
func (a *Arena[T]) Len() int { return len(a.data) }

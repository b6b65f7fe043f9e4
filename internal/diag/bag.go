package diag

import (
	"sort"

	"github.com/winging/slang/internal/source"
)

// Bag is the append-only diagnostic sink the binder writes to (spec.md
// §4.E, §5: "append-only; ordering... is deterministic given the same
// input"). A capacity of 0 means unbounded.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag returns a Bag capped at max diagnostics (0 for unbounded).
func NewBag(max int) *Bag {
	return &Bag{max: max}
}

// Add appends d, returning false if the bag's capacity was already
// reached (the diagnostic is dropped, never causing the binder to fail —
// spec.md §7, "always returns a well-typed node").
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Len reports the number of stored diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any stored diagnostic is at SevError or above.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the stored diagnostics. Callers must not mutate the
// returned slice; it aliases the Bag's internal storage.
func (b *Bag) Items() []Diagnostic { return b.items }

// Sort orders diagnostics by file, start, end, severity (descending), then
// code (ascending) for deterministic, stable output.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Primary.File != dj.Primary.File {
			return di.Primary.File < dj.Primary.File
		}
		if di.Primary.Start != dj.Primary.Start {
			return di.Primary.Start < dj.Primary.Start
		}
		if di.Primary.End != dj.Primary.End {
			return di.Primary.End < dj.Primary.End
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// Dedup removes diagnostics sharing the same (Code, Primary span), keeping
// the first occurrence — the same cascade-prevention device spec.md §4.E,
// §7 describe at the binder level, applied once more as a final safety net
// over the whole bag.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		span source.Span
	}
	seen := make(map[key]bool, len(b.items))
	out := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		k := key{code: d.Code, span: d.Primary}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	b.items = out
}

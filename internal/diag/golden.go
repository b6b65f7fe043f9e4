package diag

import (
	"fmt"
	"strings"
)

// Render produces a stable, human-readable text rendering of a Bag sorted
// by position — the form used by golden-fixture tests (spec.md §8's
// scenarios S1–S6 are phrased this way: "exactly one diagnostic: Code(args)").
// Mirrors the teacher's internal/diag/golden.go snapshot shape.
func Render(b *Bag) string {
	cp := *b
	cp.items = append([]Diagnostic(nil), b.items...)
	cp.Sort()

	var sb strings.Builder
	for _, d := range cp.items {
		fmt.Fprintf(&sb, "%s: %s: %s [%s]\n", d.Severity, d.Code, d.Message, d.Primary)
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  note: %s [%s]\n", n.Msg, n.Span)
		}
	}
	return sb.String()
}

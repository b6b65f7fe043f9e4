package diag

import "github.com/winging/slang/internal/source"

// Note is a secondary annotation attached to a Diagnostic (e.g. pointing at
// a formal argument's declaration from a TooManyArguments diagnostic).
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one user-visible error/warning/info produced by the binder
// (spec.md §4.E, §7). It always carries a primary source.Span so the
// (external) diagnostic renderer can underline the offending source text.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

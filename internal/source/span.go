package source

import "fmt"

// FileID identifies a source file within a CompilationUnit's file table.
// This binder never reads file content itself (the lexer/parser are
// external collaborators); it only threads FileID through spans so
// diagnostics can be attributed.
type FileID uint32

// NoFileID marks the absence of a file, used by synthetic spans produced
// when the binder desugars syntax (see ast.Synthesize).
const NoFileID FileID = 0

// Span is a half-open byte range within a single file.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

// NoSpan is the zero value, used for synthetic nodes with no source origin.
var NoSpan = Span{}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other. Spans from
// different files cannot be covered; s is returned unchanged in that case.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

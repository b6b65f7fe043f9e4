package diag

import "fmt"

// Code numbers a diagnostic kind. The space is partitioned by compiler
// stage the way the teacher's internal/diag/codes.go partitions lexer,
// parser, and semantic codes into separate thousand-blocks; this module
// only implements the binder, so only the Sema block is populated.
type Code uint16

const (
	UnknownCode Code = 0

	SemaInfo  Code = 3000
	SemaError Code = 3001

	// Lookup failures (spec.md §7).
	SemaUndeclaredIdentifier Code = 3010

	// Type-admissibility failures.
	SemaBadUnaryExpression  Code = 3020
	SemaBadBinaryExpression Code = 3021
	SemaBadConcatenation    Code = 3022

	// A select bound or replication count that must fold to a constant
	// did not (spec.md §4.B, §4.B.1).
	SemaNonConstantExpression Code = 3025

	// Assignment failures.
	SemaBadAssignment        Code = 3030
	SemaNoImplicitConversion Code = 3031

	// Arity failures.
	SemaTooManyArguments Code = 3040
	// SemaTooFewArguments is the SPEC_FULL.md §Open-Questions addition
	// (decision #5): too-few-arguments mirrors TooManyArguments's shape.
	SemaTooFewArguments Code = 3041

	// Context failures.
	SemaReturnNotInSubroutine Code = 3050
)

func (c Code) String() string {
	switch c {
	case UnknownCode:
		return "unknown"
	case SemaInfo:
		return "sema-info"
	case SemaError:
		return "sema-error"
	case SemaUndeclaredIdentifier:
		return "undeclared-identifier"
	case SemaBadUnaryExpression:
		return "bad-unary-expression"
	case SemaBadBinaryExpression:
		return "bad-binary-expression"
	case SemaBadConcatenation:
		return "bad-concatenation"
	case SemaNonConstantExpression:
		return "non-constant-expression"
	case SemaBadAssignment:
		return "bad-assignment"
	case SemaNoImplicitConversion:
		return "no-implicit-conversion"
	case SemaTooManyArguments:
		return "too-many-arguments"
	case SemaTooFewArguments:
		return "too-few-arguments"
	case SemaReturnNotInSubroutine:
		return "return-not-in-subroutine"
	default:
		return fmt.Sprintf("Code(%d)", uint16(c))
	}
}

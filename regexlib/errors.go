package regexlib

import (
	"errors"
	"fmt"
)

// Compile errors. Every failure returned by CompileNFA, Compile and
// Determinize wraps exactly one of these.
var (
	// ErrInvalidRegex: empty pattern or a character outside the accepted set.
	ErrInvalidRegex = errors.New("invalid regular expression")

	// ErrUnbalancedParentheses: a ')' without its '(' or an unclosed '('.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")

	// ErrOperandOperatorMismatch: a reduction needed an operand that was not there.
	ErrOperandOperatorMismatch = errors.New("operand/operator mismatch")

	// ErrStateLimitExceeded: subset construction produced more DFA states
	// than the configured limit.
	ErrStateLimitExceeded = errors.New("DFA state limit exceeded")
)

// CompileError carries the pattern and byte offset of a failed compilation.
// Pos is -1 when the failure is not tied to one character.
type CompileError struct {
	Pattern string
	Pos     int
	Err     error
}

func (e *CompileError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("compile %q: %v at position %d", e.Pattern, e.Err, e.Pos)
	}
	return fmt.Sprintf("compile %q: %v", e.Pattern, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

func compileError(pattern string, pos int, err error) *CompileError {
	return &CompileError{Pattern: pattern, Pos: pos, Err: err}
}

package regexlib

// Epsilon is the pattern character for the empty string. In an NFA it labels
// silent moves; it never labels a DFA transition.
const Epsilon byte = 'E'

// IsSymbol reports whether c is an input symbol (a lowercase letter).
func IsSymbol(c byte) bool { return c >= 'a' && c <= 'z' }

// IsAlphabet reports whether c may appear as an operand in a pattern.
func IsAlphabet(c byte) bool { return IsSymbol(c) || c == Epsilon }

// IsOperator reports whether c is one of the pattern operators ( ) * |.
func IsOperator(c byte) bool {
	switch c {
	case '(', ')', '*', '|':
		return true
	}
	return false
}

// Symbols returns the DFA input alphabet in order.
func Symbols() []byte {
	out := make([]byte, 0, 'z'-'a'+1)
	for c := byte('a'); c <= 'z'; c++ {
		out = append(out, c)
	}
	return out
}

// Validate reports whether pattern can be handed to the compiler. It returns
// a *CompileError wrapping ErrInvalidRegex when pattern is empty or contains
// a character that is neither in the alphabet nor an operator.
func Validate(pattern string) error {
	_, err := tokenize(pattern)
	return err
}

func firstIllegal(pattern string) int {
	for i := 0; i < len(pattern); i++ {
		if !IsAlphabet(pattern[i]) && !IsOperator(pattern[i]) {
			return i
		}
	}
	return -1
}

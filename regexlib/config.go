package regexlib

// DefaultMaxDFAStates bounds subset construction when no limit is given.
// The powerset of a large NFA grows exponentially, and callers on a
// latency-sensitive path should keep this small.
const DefaultMaxDFAStates = 10000

// Config controls compilation.
//
// Example:
//
//	config := regexlib.DefaultConfig()
//	config.MaxDFAStates = 256
//	re, err := regexlib.CompileWithConfig("(a|b)*abb", config)
type Config struct {
	// MaxDFAStates caps the number of DFA states. Zero or less means no cap.
	// Default: DefaultMaxDFAStates
	MaxDFAStates int

	// EnablePrefilter lets FindAll skip offsets whose byte cannot start a
	// match. It has no effect on which matches are found.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns the configuration used by Compile.
func DefaultConfig() Config {
	return Config{
		MaxDFAStates:    DefaultMaxDFAStates,
		EnablePrefilter: true,
	}
}

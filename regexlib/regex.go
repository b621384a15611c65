package regexlib

import (
	"thompson/internal/prefilter"
)

// Regex is a compiled pattern: its Thompson NFA and the DFA derived from it.
// A Regex is immutable and safe for concurrent use.
type Regex struct {
	pattern string
	nfa     *NFA
	dfa     *DFA
	pf      *prefilter.Prefilter
}

// Compile validates pattern, builds its NFA and determinizes it with
// DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// CompileWithConfig is Compile with an explicit configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	n, err := CompileNFA(pattern)
	if err != nil {
		return nil, err
	}
	d, err := Determinize(n, config.MaxDFAStates)
	if err != nil {
		return nil, compileError(pattern, -1, err)
	}

	r := &Regex{pattern: pattern, nfa: n, dfa: d}
	// An accepting initial state matches the empty string everywhere, so
	// there is nothing to skip.
	if config.EnablePrefilter && !d.IsFinal(d.Initial) {
		if pf, err := prefilter.New(d.firstSymbols()); err == nil {
			r.pf = pf
		}
	}
	return r, nil
}

func (r *Regex) String() string { return r.pattern }

// NFA returns the Thompson NFA of the pattern.
func (r *Regex) NFA() *NFA { return r.nfa }

// DFA returns the determinized automaton.
func (r *Regex) DFA() *DFA { return r.dfa }

// MatchAt runs the DFA from offset start; see DFA.Run.
func (r *Regex) MatchAt(input string, start int) (int, bool) {
	return r.dfa.Run(input, start)
}

// MatchString reports whether the whole of input is in the language.
func (r *Regex) MatchString(input string) bool {
	n, ok := r.dfa.Run(input, 0)
	return ok && n == len(input)
}

// FindAll returns the non-overlapping matches in input, leftmost first.
func (r *Regex) FindAll(input string) []Match {
	return findAll(r.dfa, r.pf, input)
}

// Positions returns the start offsets of FindAll's matches.
func (r *Regex) Positions(input string) []int {
	ms := r.FindAll(input)
	out := make([]int, len(ms))
	for i, m := range ms {
		out[i] = m.Start
	}
	return out
}

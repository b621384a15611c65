package regexlib

import (
	"errors"
	"slices"
	"testing"
)

func mustNFA(t *testing.T, pattern string) *NFA {
	t.Helper()
	n, err := CompileNFA(pattern)
	if err != nil {
		t.Fatalf("compile %q: %v", pattern, err)
	}
	return n
}

// ------------------------------------------------------------------- StateSet

func TestStateSetNormalized(t *testing.T) {
	s := NewStateSet(3, 1, 3, 0)
	if !slices.Equal(s, StateSet{0, 1, 3}) {
		t.Fatalf("got %v", s)
	}
	if !s.Equals(NewStateSet(0, 1, 3)) || s.Equals(NewStateSet(0, 1)) {
		t.Fatal("Equals")
	}
	if s.Hash() != NewStateSet(1, 0, 3).Hash() {
		t.Fatal("equal sets hash differently")
	}
	if !NewStateSet(0, 1).Less(s) || s.Less(NewStateSet(0, 1)) {
		t.Fatal("Less")
	}
	if got := s.String(); got != "[0, 1, 3]" {
		t.Fatalf("String() = %q", got)
	}
	if !s.Contains(3) || s.Contains(2) {
		t.Fatal("Contains")
	}
}

// ------------------------------------------------------------------- closure

func TestEpsilonClosure(t *testing.T) {
	n := Kleene(Literal('a'))
	tests := []struct {
		in, want StateSet
	}{
		{StateSet{0}, StateSet{0, 1, 3}},
		{StateSet{2}, StateSet{1, 2, 3}},
		{StateSet{3}, StateSet{3}},
		{StateSet{}, StateSet{}},
	}
	for _, tt := range tests {
		got := EpsilonClosure(tt.in, n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("closure(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ------------------------------------------------------------------- subset construction

func TestToDFALiteral(t *testing.T) {
	d := ToDFA(mustNFA(t, "a"))
	if len(d.States) != 2 {
		t.Fatalf("states %v", d.States)
	}
	if !slices.Equal(d.InitialState(), StateSet{0}) {
		t.Fatalf("initial %v", d.InitialState())
	}
	if !slices.Equal(d.Transitions, []DFATransition{{0, 1, 'a'}}) {
		t.Fatalf("transitions %v", d.Transitions)
	}
	if !slices.Equal(d.FinalStates(), []int{1}) {
		t.Fatalf("finals %v", d.FinalStates())
	}
}

func TestToDFAUnion(t *testing.T) {
	d := ToDFA(mustNFA(t, "a|b"))
	want := []StateSet{{0, 1, 3}, {2, 5}, {4, 5}}
	if len(d.States) != len(want) {
		t.Fatalf("states %v", d.States)
	}
	for i := range want {
		if !slices.Equal(d.States[i], want[i]) {
			t.Fatalf("state %d = %v, want %v", i, d.States[i], want[i])
		}
	}
	if !slices.Equal(d.FinalStates(), []int{1, 2}) {
		t.Fatalf("finals %v", d.FinalStates())
	}
	if string(d.Alphabet()) != "ab" {
		t.Fatalf("alphabet %q", d.Alphabet())
	}
}

func TestToDFAInvariants(t *testing.T) {
	for _, p := range []string{"a", "ab", "a|b", "a*", "(a|b)*abb", "(ab|E)*c", "x(y|z)*x"} {
		n := mustNFA(t, p)
		d := ToDFA(n)
		if !slices.Equal(d.InitialState(), EpsilonClosure(StateSet{0}, n)) {
			t.Errorf("%q: initial state is not closure({0})", p)
		}
		for i, s := range d.States {
			if d.IsFinal(i) != s.Contains(n.Final) {
				t.Errorf("%q: state %v final=%v", p, s, d.IsFinal(i))
			}
			for j := i + 1; j < len(d.States); j++ {
				if slices.Equal(s, d.States[j]) {
					t.Errorf("%q: duplicate state %v", p, s)
				}
			}
		}
		seen := map[[2]int]bool{}
		for _, tr := range d.Transitions {
			if tr.Symbol == Epsilon || !IsSymbol(tr.Symbol) {
				t.Errorf("%q: transition on %q", p, tr.Symbol)
			}
			key := [2]int{tr.From, int(tr.Symbol)}
			if seen[key] {
				t.Errorf("%q: two transitions from %d on %c", p, tr.From, tr.Symbol)
			}
			seen[key] = true
		}
	}
}

func TestDeterminizeIdempotent(t *testing.T) {
	for _, p := range []string{"a", "a|b", "(a|b)*abb", "((a|E)b*)*c", "abc|abd"} {
		n := mustNFA(t, p)
		if !Isomorphic(ToDFA(n), ToDFA(n)) {
			t.Errorf("%q: two runs are not isomorphic", p)
		}
	}
	if !Isomorphic(MustCompile("a|b").DFA(), MustCompile("b|a").DFA()) {
		t.Error("a|b and b|a should give isomorphic DFAs")
	}
	if Isomorphic(MustCompile("a").DFA(), MustCompile("ab").DFA()) {
		t.Error("a and ab are not isomorphic")
	}
	if Isomorphic(MustCompile("a|b").DFA(), MustCompile("a|c").DFA()) {
		t.Error("a|b and a|c are not isomorphic")
	}
}

func TestDeterminizeStateLimit(t *testing.T) {
	n := mustNFA(t, "abc")
	if _, err := Determinize(n, 4); err != nil {
		t.Fatalf("limit 4: %v", err)
	}
	if _, err := Determinize(n, 3); !errors.Is(err, ErrStateLimitExceeded) {
		t.Fatalf("limit 3: got %v", err)
	}

	config := DefaultConfig()
	config.MaxDFAStates = 2
	_, err := CompileWithConfig("abc", config)
	var ce *CompileError
	if !errors.Is(err, ErrStateLimitExceeded) || !errors.As(err, &ce) {
		t.Fatalf("CompileWithConfig: got %v", err)
	}
}

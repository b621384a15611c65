package regexlib

import "fmt"

// State is an automaton state id.
type State int

// Transition is one labelled edge of an NFA. Symbol is a lowercase letter or
// Epsilon.
type Transition struct {
	From, To State
	Symbol   byte
}

func (t Transition) String() string {
	return fmt.Sprintf("(%d, %c, %d)", t.From, t.Symbol, t.To)
}

// NFA is a Thompson fragment. Its states are 0..Size-1, the start state is
// always 0 and the final state is always Size-1.
//
// Fragments are values: the operators below never modify their arguments,
// they build a new fragment with renumbered copies of the inputs' edges.
type NFA struct {
	Size        int
	Transitions []Transition
	Final       State
}

// States lists the state ids of n.
func (n *NFA) States() []State {
	out := make([]State, n.Size)
	for i := range out {
		out[i] = State(i)
	}
	return out
}

// Start is always 0.
func (n *NFA) Start() State { return 0 }

// Alphabet returns the distinct non-epsilon symbols used by n, sorted.
func (n *NFA) Alphabet() []byte {
	var seen [26]bool
	for _, t := range n.Transitions {
		if IsSymbol(t.Symbol) {
			seen[t.Symbol-'a'] = true
		}
	}
	var out []byte
	for i, ok := range seen {
		if ok {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

// Literal builds the two-state fragment 0 --c--> 1.
func Literal(c byte) *NFA {
	return &NFA{
		Size:        2,
		Transitions: []Transition{{From: 0, To: 1, Symbol: c}},
		Final:       1,
	}
}

// shifted appends the edges of n to dst with every id moved by off.
func shifted(dst []Transition, n *NFA, off int) []Transition {
	for _, t := range n.Transitions {
		dst = append(dst, Transition{From: t.From + State(off), To: t.To + State(off), Symbol: t.Symbol})
	}
	return dst
}

// Concat joins n and m in series. m's start state is identified with n's
// final state, so the result has n.Size+m.Size-1 states.
func Concat(n, m *NFA) *NFA {
	off := n.Size - 1
	trans := make([]Transition, 0, len(n.Transitions)+len(m.Transitions))
	trans = append(trans, n.Transitions...)
	trans = shifted(trans, m, off)
	return &NFA{
		Size:        n.Size + m.Size - 1,
		Transitions: trans,
		Final:       m.Final + State(off),
	}
}

// Union puts n and m in parallel between a new start (0) and a new final
// state. n moves up by 1 and m by n.Size+1.
func Union(n, m *NFA) *NFA {
	size := n.Size + m.Size + 2
	final := State(size - 1)
	nOff, mOff := 1, n.Size+1

	trans := make([]Transition, 0, len(n.Transitions)+len(m.Transitions)+4)
	trans = append(trans, Transition{From: 0, To: State(nOff), Symbol: Epsilon})
	trans = shifted(trans, n, nOff)
	trans = append(trans, Transition{From: n.Final + State(nOff), To: final, Symbol: Epsilon})
	trans = append(trans, Transition{From: 0, To: State(mOff), Symbol: Epsilon})
	trans = shifted(trans, m, mOff)
	trans = append(trans, Transition{From: m.Final + State(mOff), To: final, Symbol: Epsilon})

	return &NFA{Size: size, Transitions: trans, Final: final}
}

// Kleene wraps n in a new start and final state with epsilon edges for
// entering, leaving, repeating and skipping n.
func Kleene(n *NFA) *NFA {
	size := n.Size + 2
	final := State(size - 1)
	oldStart, oldFinal := State(1), n.Final+1

	trans := make([]Transition, 0, len(n.Transitions)+4)
	trans = append(trans, Transition{From: 0, To: oldStart, Symbol: Epsilon})
	trans = shifted(trans, n, 1)
	trans = append(trans,
		Transition{From: oldFinal, To: final, Symbol: Epsilon},
		Transition{From: oldFinal, To: oldStart, Symbol: Epsilon},
		Transition{From: 0, To: final, Symbol: Epsilon},
	)
	return &NFA{Size: size, Transitions: trans, Final: final}
}

package regexlib

import (
	"fmt"

	"github.com/timtadh/data-structures/hashtable"
)

// DFATransition is an edge between two DFA states, by index into DFA.States.
type DFATransition struct {
	From, To int
	Symbol   byte
}

func (t DFATransition) String() string {
	return fmt.Sprintf("(%d, %c, %d)", t.From, t.Symbol, t.To)
}

// DFA is the result of subset construction. Each state is the set of NFA
// states it stands for; States[Initial] is the epsilon closure of {0}.
// A DFA is never modified after Determinize returns it.
type DFA struct {
	States      []StateSet
	Transitions []DFATransition
	Initial     int

	accepting []bool
	next      [][26]int // -1: no transition
}

// InitialState returns the NFA state set of the initial DFA state.
func (d *DFA) InitialState() StateSet { return d.States[d.Initial] }

// IsFinal reports whether DFA state i contains the NFA's final state.
func (d *DFA) IsFinal(i int) bool { return d.accepting[i] }

// FinalStates lists the indices of the accepting DFA states.
func (d *DFA) FinalStates() []int {
	var out []int
	for i, ok := range d.accepting {
		if ok {
			out = append(out, i)
		}
	}
	return out
}

// Next returns the state reached from state on c, or -1.
func (d *DFA) Next(state int, c byte) int {
	if !IsSymbol(c) || state < 0 || state >= len(d.next) {
		return -1
	}
	return d.next[state][c-'a']
}

// Alphabet returns the symbols that label at least one transition, sorted.
func (d *DFA) Alphabet() []byte {
	var seen [26]bool
	for _, t := range d.Transitions {
		seen[t.Symbol-'a'] = true
	}
	var out []byte
	for i, ok := range seen {
		if ok {
			out = append(out, byte('a'+i))
		}
	}
	return out
}

func (d *DFA) addState(set StateSet, final State) int {
	var row [26]int
	for i := range row {
		row[i] = -1
	}
	d.States = append(d.States, set)
	d.accepting = append(d.accepting, set.Contains(final))
	d.next = append(d.next, row)
	return len(d.States) - 1
}

// nfaIndex holds the edges of an NFA grouped by source state.
type nfaIndex struct {
	eps  [][]State
	sym  [][]Transition
	size int
}

func indexNFA(n *NFA) nfaIndex {
	idx := nfaIndex{
		eps:  make([][]State, n.Size),
		sym:  make([][]Transition, n.Size),
		size: n.Size,
	}
	for _, t := range n.Transitions {
		if t.Symbol == Epsilon {
			idx.eps[t.From] = append(idx.eps[t.From], t.To)
		} else {
			idx.sym[t.From] = append(idx.sym[t.From], t)
		}
	}
	return idx
}

func (idx nfaIndex) closure(s StateSet) StateSet {
	in := make(map[State]bool, len(s))
	stack := make([]State, 0, len(s))
	for _, id := range s {
		if !in[id] {
			in[id] = true
			stack = append(stack, id)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if int(id) >= idx.size {
			continue
		}
		for _, to := range idx.eps[id] {
			if !in[to] {
				in[to] = true
				stack = append(stack, to)
			}
		}
	}
	out := make([]State, 0, len(in))
	for id := range in {
		out = append(out, id)
	}
	return NewStateSet(out...)
}

func (idx nfaIndex) move(s StateSet, c byte) StateSet {
	var out []State
	for _, id := range s {
		if int(id) >= idx.size {
			continue
		}
		for _, t := range idx.sym[id] {
			if t.Symbol == c {
				out = append(out, t.To)
			}
		}
	}
	return NewStateSet(out...)
}

// EpsilonClosure returns the smallest superset of s closed under the
// epsilon transitions of n.
func EpsilonClosure(s StateSet, n *NFA) StateSet {
	return indexNFA(n).closure(s)
}

// ToDFA determinizes n without a state limit.
func ToDFA(n *NFA) *DFA {
	d, _ := Determinize(n, 0)
	return d
}

// Determinize runs subset construction on n. States are discovered
// breadth-first and symbols are tried in alphabetical order, so the same NFA
// always yields the same numbering. With maxStates > 0 it fails with
// ErrStateLimitExceeded instead of creating state number maxStates+1.
func Determinize(n *NFA, maxStates int) (*DFA, error) {
	idx := indexNFA(n)
	seen := hashtable.NewLinearHash()
	d := &DFA{}

	start := idx.closure(NewStateSet(0))
	d.Initial = d.addState(start, n.Final)
	if err := seen.Put(start, d.Initial); err != nil {
		return nil, err
	}

	queue := []int{d.Initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, c := range Symbols() {
			moved := idx.move(d.States[cur], c)
			if len(moved) == 0 {
				continue
			}
			target := idx.closure(moved)

			var to int
			if seen.Has(target) {
				v, err := seen.Get(target)
				if err != nil {
					return nil, err
				}
				to = v.(int)
			} else {
				if maxStates > 0 && len(d.States) >= maxStates {
					return nil, fmt.Errorf("%w: more than %d states", ErrStateLimitExceeded, maxStates)
				}
				to = d.addState(target, n.Final)
				if err := seen.Put(target, to); err != nil {
					return nil, err
				}
				queue = append(queue, to)
			}
			d.Transitions = append(d.Transitions, DFATransition{From: cur, To: to, Symbol: c})
			d.next[cur][c-'a'] = to
		}
	}
	return d, nil
}

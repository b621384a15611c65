package regexlib

import (
	"fmt"
	"io"
	"strings"
)

// WriteNFA prints n as its five components, one transition per line:
//
//	K=[0, 1]
//	Sigma={a}
//	Delta:
//	(0, a, 1)
//	s=q0
//	F=[1]
func WriteNFA(w io.Writer, n *NFA) {
	fmt.Fprintf(w, "K=%v\n", NewStateSet(n.States()...))
	fmt.Fprintf(w, "Sigma=%s\n", sigma(n.Alphabet()))
	fmt.Fprintln(w, "Delta:")
	for _, t := range n.Transitions {
		fmt.Fprintln(w, t)
	}
	fmt.Fprintf(w, "s=q%d\n", n.Start())
	fmt.Fprintf(w, "F=[%d]\n", n.Final)
}

// WriteDFA prints d in the same layout as WriteNFA. States are shown as the
// NFA state sets they stand for; transitions use state indices.
func WriteDFA(w io.Writer, d *DFA) {
	fmt.Fprintf(w, "K=%s\n", joinSets(d.States, allIndices(len(d.States))))
	fmt.Fprintf(w, "Sigma=%s\n", sigma(d.Alphabet()))
	fmt.Fprintln(w, "Delta:")
	for _, t := range d.Transitions {
		fmt.Fprintln(w, t)
	}
	fmt.Fprintf(w, "s=%v\n", d.InitialState())
	fmt.Fprintf(w, "F=%s\n", joinSets(d.States, d.FinalStates()))
}

func sigma(alpha []byte) string {
	parts := make([]string, len(alpha))
	for i, c := range alpha {
		parts[i] = string(c)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func joinSets(states []StateSet, which []int) string {
	parts := make([]string, len(which))
	for i, s := range which {
		parts[i] = states[s].String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

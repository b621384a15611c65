package regexlib

import (
	"fmt"
	"io"
)

// ExportDOT prints a Graphviz rendering of an *NFA or *DFA to w.
func ExportDOT(w io.Writer, g interface{}) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *DFA:
		for i, s := range t.States {
			shape := "circle"
			if t.IsFinal(i) {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    q%d [shape=%s, tooltip=\"%v\"];\n", i, shape, s)
		}
		for _, tr := range t.Transitions {
			fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", tr.From, tr.To, tr.Symbol)
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", t.Initial)

	//------------------------------------------------------------------ NFA
	case *NFA:
		for _, s := range t.States() {
			shape := "circle"
			if s == t.Final {
				shape = "doublecircle"
			}
			fmt.Fprintf(w, "    n%d [shape=%s];\n", s, shape)
		}
		for _, tr := range t.Transitions {
			label := string(tr.Symbol)
			if tr.Symbol == Epsilon {
				label = "ε"
			}
			fmt.Fprintf(w, "    n%d -> n%d [label=\"%s\"];\n", tr.From, tr.To, label)
		}
		fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", t.Start())

	default:
		fmt.Fprintln(w, "    /* unknown graph type */")
	}

	fmt.Fprintln(w, "}")
}

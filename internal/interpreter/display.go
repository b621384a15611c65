package interpreter

import (
	"fmt"
	"strings"

	"thompson/regexlib"
)

// show prints an *regexlib.NFA or *regexlib.DFA in the configured format.
func show(ctx *Context, g interface{}) {
	if ctx.Config.Format == FormatDOT {
		regexlib.ExportDOT(ctx.Out, g)
		return
	}
	switch t := g.(type) {
	case *regexlib.NFA:
		regexlib.WriteNFA(ctx.Out, t)
	case *regexlib.DFA:
		regexlib.WriteDFA(ctx.Out, t)
	}
}

func showPositions(ctx *Context, positions []int) {
	if len(positions) == 0 {
		fmt.Fprintln(ctx.Out, "no matches found")
		return
	}
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprint(p)
	}
	fmt.Fprintf(ctx.Out, "matches start at positions: [%s]\n", strings.Join(parts, ", "))
}

package interpreter

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const banner = "Regular expression to NFA/DFA compiler. Type :HELP for commands."

// Run reads commands until :QUIT or end of input. A rejected regex is
// reported and the session goes on; only I/O failures end it with an error.
func Run(ctx *Context) error {
	if ctx.Config.Prompt != "" {
		fmt.Fprintln(ctx.Out, banner)
	}
	for {
		line, err := ctx.ReadLine(ctx.Config.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd, err := Parse(line)
		if err != nil {
			ctx.Log.Debug("unparsed input", "line", line, "err", err)
			fmt.Fprintf(ctx.Out, "expected a command such as :AFND, got %q (:HELP lists commands)\n", line)
			continue
		}
		ctx.Log.Debug("command", "name", cmd.Name, "args", cmd.Args)

		switch err := cmd.Exec(ctx); {
		case err == nil:
		case errors.Is(err, ErrQuit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"thompson/regexlib"
)

// ErrQuit is returned by Exec for :QUIT.
var ErrQuit = errors.New("quit")

// Command is one input line of the form ":NAME [arg ...]".
type Command struct {
	Name string   `parser:"':' @Word"`
	Args []string `parser:"@Word*"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Colon", Pattern: `:`},
	{Name: "Word", Pattern: `[^\s:]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a command line.
func Parse(line string) (*Command, error) {
	return parser.ParseString("input", line)
}

const usage = `:QUIT           leave
:AFND [regex]   show the NFA of a regex (alias :NFA)
:AFD [regex]    show the DFA of a regex (alias :DFA)
:MATCH [regex [text]]
                list the positions where matches of regex start in text
:HELP           show this list
Regex syntax: letters a-z, E for the empty string, * for Kleene closure,
| for union, ( ) for grouping; letters side by side are concatenated.`

func (c *Command) Exec(ctx *Context) error {
	switch strings.ToUpper(c.Name) {
	case "QUIT", "Q":
		return ErrQuit
	case "HELP":
		fmt.Fprintln(ctx.Out, usage)
		return nil
	case "AFND", "NFA":
		pattern, err := c.arg(ctx, 0, "regex for NFA: ")
		if err != nil {
			return err
		}
		n, err := regexlib.CompileNFA(pattern)
		if err != nil {
			reportError(ctx, pattern, err)
			return nil
		}
		ctx.Log.Debug("compiled NFA", "pattern", pattern, "states", n.Size, "transitions", len(n.Transitions))
		fmt.Fprintln(ctx.Out, "NFA:")
		show(ctx, n)
		return nil
	case "AFD", "DFA":
		pattern, err := c.arg(ctx, 0, "regex for DFA: ")
		if err != nil {
			return err
		}
		re, err := regexlib.CompileWithConfig(pattern, ctx.Config.RegexConfig())
		if err != nil {
			reportError(ctx, pattern, err)
			return nil
		}
		ctx.Log.Debug("determinized", "pattern", pattern, "nfa_states", re.NFA().Size, "dfa_states", len(re.DFA().States))
		fmt.Fprintln(ctx.Out, "DFA:")
		show(ctx, re.DFA())
		return nil
	case "MATCH":
		pattern, err := c.arg(ctx, 0, "regex: ")
		if err != nil {
			return err
		}
		text, err := c.arg(ctx, 1, "text: ")
		if err != nil {
			return err
		}
		re, err := regexlib.CompileWithConfig(pattern, ctx.Config.RegexConfig())
		if err != nil {
			reportError(ctx, pattern, err)
			return nil
		}
		showPositions(ctx, re.Positions(text))
		return nil
	}
	fmt.Fprintf(ctx.Out, "unknown command :%s\n%s\n", c.Name, usage)
	return nil
}

// arg returns the i-th inline argument, or reads it from the next line.
func (c *Command) arg(ctx *Context, i int, prompt string) (string, error) {
	if i < len(c.Args) {
		return c.Args[i], nil
	}
	if ctx.Config.Prompt == "" {
		prompt = ""
	}
	return ctx.ReadLine(prompt)
}

func reportError(ctx *Context, pattern string, err error) {
	ctx.Log.Warn("rejected regex", "pattern", pattern, "err", err)
	fmt.Fprintf(ctx.Out, "error: %v\n", err)
}

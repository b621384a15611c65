package interpreter

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// Context stores the session's input, output, logger and settings.
type Context struct {
	In     *bufio.Scanner
	Out    io.Writer
	Log    *slog.Logger
	Config Config
}

func NewContext(in io.Reader, out io.Writer, log *slog.Logger, cfg Config) *Context {
	return &Context{In: bufio.NewScanner(in), Out: out, Log: log, Config: cfg}
}

// ReadLine prints prompt, if any, and returns the next input line without
// its line ending. It returns io.EOF when the input is exhausted.
func (c *Context) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(c.Out, prompt)
	}
	if !c.In.Scan() {
		if err := c.In.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.In.Text(), nil
}

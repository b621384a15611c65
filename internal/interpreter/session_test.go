package interpreter

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func runScript(t *testing.T, script string, mutate ...func(*Config)) string {
	t.Helper()
	cfg := Config{Format: FormatText, MaxDFAStates: 100}
	for _, m := range mutate {
		m(&cfg)
	}
	var out bytes.Buffer
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if err := Run(NewContext(strings.NewReader(script), &out, log, cfg)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func wantContains(t *testing.T, out string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(out, p) {
			t.Fatalf("output lacks %q:\n%s", p, out)
		}
	}
}

// ------------------------------------------------------------------- Parse

func TestParse(t *testing.T) {
	cmd, err := Parse(":MATCH (a|b)* abba")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Name != "MATCH" || len(cmd.Args) != 2 || cmd.Args[0] != "(a|b)*" || cmd.Args[1] != "abba" {
		t.Fatalf("got %+v", cmd)
	}

	cmd, err = Parse(":QUIT")
	if err != nil || cmd.Name != "QUIT" || len(cmd.Args) != 0 {
		t.Fatalf("got %+v, %v", cmd, err)
	}

	for _, bad := range []string{"abc", ":", "QUIT", ": :"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

// ------------------------------------------------------------------- session

func TestSessionNFA(t *testing.T) {
	out := runScript(t, ":AFND\na\n:QUIT\n")
	wantContains(t, out, "NFA:", "K=[0, 1]", "(0, a, 1)", "s=q0", "F=[1]")
}

func TestSessionDFAInline(t *testing.T) {
	out := runScript(t, ":DFA a|b\n")
	wantContains(t, out, "DFA:", "(0, a, 1)", "(0, b, 2)", "s=[0, 1, 3]", "F=[[2, 5], [4, 5]]")
}

func TestSessionMatch(t *testing.T) {
	out := runScript(t, ":MATCH\nab\nxabyab\n:MATCH q abc\n")
	wantContains(t, out, "matches start at positions: [1, 4]", "no matches found")
}

func TestSessionMatchEmptyText(t *testing.T) {
	out := runScript(t, ":MATCH a*\n\n")
	wantContains(t, out, "matches start at positions: [0]")
}

func TestSessionSurvivesBadInput(t *testing.T) {
	out := runScript(t, ":AFND 5\n:AFND )\n:AFD (a\n:AFND a|\nhello\n:NOPE\n:AFD ab\n")
	wantContains(t, out,
		"invalid regular expression",
		"unbalanced parentheses",
		"operand/operator mismatch",
		`got "hello"`,
		"unknown command :NOPE",
		"DFA:",
		"(1, b, 2)",
	)
}

func TestSessionStopsAtQuit(t *testing.T) {
	out := runScript(t, ":QUIT\n:AFND a\n")
	if strings.Contains(out, "NFA:") {
		t.Fatalf("ran a command after :QUIT:\n%s", out)
	}
}

func TestSessionStateLimit(t *testing.T) {
	out := runScript(t, ":AFD abc\n", func(c *Config) { c.MaxDFAStates = 2 })
	wantContains(t, out, "DFA state limit exceeded")
}

func TestSessionDOT(t *testing.T) {
	out := runScript(t, ":AFND a\n", func(c *Config) { c.Format = FormatDOT })
	wantContains(t, out, "digraph G {", `n0 -> n1 [label="a"]`)
}

func TestSessionPrompt(t *testing.T) {
	out := runScript(t, ":HELP\n", func(c *Config) { c.Prompt = "> " })
	wantContains(t, out, banner, "> ", ":MATCH [regex [text]]")
}

// ------------------------------------------------------------------- config

func TestLoadConfig(t *testing.T) {
	t.Setenv("THOMPSON_LOG_LEVEL", "debug")
	t.Setenv("THOMPSON_FORMAT", "dot")
	t.Setenv("THOMPSON_MAX_DFA_STATES", "42")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != slog.LevelDebug || cfg.Format != FormatDOT || cfg.MaxDFAStates != 42 {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.RegexConfig().MaxDFAStates != 42 {
		t.Fatal("RegexConfig ignores MaxDFAStates")
	}
}

func TestLoadConfigRejects(t *testing.T) {
	t.Setenv("THOMPSON_FORMAT", "svg")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("accepted format svg")
	}
	t.Setenv("THOMPSON_FORMAT", "")
	t.Setenv("THOMPSON_MAX_DFA_STATES", "lots")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("accepted a non-numeric limit")
	}
}

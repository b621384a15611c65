package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"thompson/regexlib"
)

// Display formats.
const (
	FormatText = "text"
	FormatDOT  = "dot"
)

// Config holds the session settings. LoadConfig fills it from the
// environment; command-line flags may override fields afterwards.
type Config struct {
	LogLevel     slog.Level
	Format       string
	MaxDFAStates int
	Prompt       string
}

// LoadConfig reads THOMPSON_LOG_LEVEL, THOMPSON_FORMAT and
// THOMPSON_MAX_DFA_STATES.
func LoadConfig() (Config, error) {
	cfg := Config{
		LogLevel: ParseLogLevel(getEnv("THOMPSON_LOG_LEVEL", "info")),
		Format:   getEnv("THOMPSON_FORMAT", FormatText),
		Prompt:   "> ",
	}
	limit, err := strconv.Atoi(getEnv("THOMPSON_MAX_DFA_STATES", strconv.Itoa(regexlib.DefaultMaxDFAStates)))
	if err != nil {
		return cfg, fmt.Errorf("THOMPSON_MAX_DFA_STATES: %w", err)
	}
	cfg.MaxDFAStates = limit
	return cfg, cfg.Validate()
}

// Validate rejects unknown formats and negative limits.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatDOT:
	default:
		return fmt.Errorf("unknown display format %q (want %s or %s)", c.Format, FormatText, FormatDOT)
	}
	if c.MaxDFAStates < 0 {
		return fmt.Errorf("max DFA states must be non-negative, got %d", c.MaxDFAStates)
	}
	return nil
}

// RegexConfig is the compiler configuration for this session.
func (c Config) RegexConfig() regexlib.Config {
	rc := regexlib.DefaultConfig()
	rc.MaxDFAStates = c.MaxDFAStates
	return rc
}

// NewLogger returns a text logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ParseLogLevel maps debug, warn and error to their slog levels and
// anything else to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

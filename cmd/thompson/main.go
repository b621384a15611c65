package main

import (
	"flag"
	"io"
	"log"
	"os"

	"thompson/internal/interpreter"
)

func main() {
	cfg, err := interpreter.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	script := flag.String("script", "", "read commands from this file instead of stdin")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "automaton display format: text or dot")
	flag.IntVar(&cfg.MaxDFAStates, "max-states", cfg.MaxDFAStates, "DFA state limit, 0 for none")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := interpreter.NewLogger(os.Stderr, cfg.LogLevel)

	var in io.Reader = os.Stdin
	if *script != "" {
		// load the command script from disk
		f, err := os.Open(*script)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
		cfg.Prompt = ""
	}

	logger.Debug("starting session", "format", cfg.Format, "max_dfa_states", cfg.MaxDFAStates, "script", *script)
	ctx := interpreter.NewContext(in, os.Stdout, logger, cfg)
	if err := interpreter.Run(ctx); err != nil {
		logger.Error("session failed", "err", err)
		os.Exit(1)
	}
}

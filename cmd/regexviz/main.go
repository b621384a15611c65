package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/exec"

	"thompson/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	maxStates := flag.Int("max-states", regexlib.DefaultMaxDFAStates, "DFA state limit, 0 for none")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz -re <pattern> [-nfa] [-max-states n] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	config := regexlib.DefaultConfig()
	config.MaxDFAStates = *maxStates
	re, err := regexlib.CompileWithConfig(*pattern, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "regexviz: %v\n", err)
		os.Exit(2)
	}

	var buf bytes.Buffer
	if *nfaFlag {
		regexlib.ExportDOT(&buf, re.NFA())
	} else {
		regexlib.ExportDOT(&buf, re.DFA())
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "dot failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create %s: %v\n", *outFile, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}

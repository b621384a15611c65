package regexlib

import (
	"fmt"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tSymbol  tokenType = iota // a-z
	tEpsilon                  // E
	tLParen                   // (
	tRParen                   // )
	tStar                     // *
	tUnion                    // |
)

func (t tokenType) String() string {
	switch t {
	case tSymbol:
		return "symbol"
	case tEpsilon:
		return "epsilon"
	case tLParen:
		return "("
	case tRParen:
		return ")"
	case tStar:
		return "*"
	case tUnion:
		return "|"
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

type token struct {
	typ tokenType
	ch  byte
	pos int
}

// The lexer is compiled once and only read afterwards; every tokenize call
// gets its own scanner.
var regexLexer = sync.OnceValues(func() (*lexmachine.Lexer, error) {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[a-z]`), tokAction(tSymbol))
	l.Add([]byte(`E`), tokAction(tEpsilon))
	l.Add([]byte(`[(]`), tokAction(tLParen))
	l.Add([]byte(`[)]`), tokAction(tRParen))
	l.Add([]byte(`[*]`), tokAction(tStar))
	l.Add([]byte(`[|]`), tokAction(tUnion))
	if err := l.Compile(); err != nil {
		return nil, err
	}
	return l, nil
})

func tokAction(typ tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{typ: typ, ch: m.Bytes[0], pos: m.TC}, nil
	}
}

// tokenize splits pattern into one token per character. Any character the
// lexer cannot consume makes the whole pattern invalid.
func tokenize(pattern string) ([]token, error) {
	if pattern == "" {
		return nil, compileError(pattern, -1, ErrInvalidRegex)
	}
	lex, err := regexLexer()
	if err != nil {
		return nil, fmt.Errorf("build regex lexer: %w", err)
	}
	scanner, err := lex.Scanner([]byte(pattern))
	if err != nil {
		return nil, fmt.Errorf("scan %q: %w", pattern, err)
	}
	toks := make([]token, 0, len(pattern))
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if err != nil {
			return nil, compileError(pattern, firstIllegal(pattern), ErrInvalidRegex)
		}
		toks = append(toks, tok.(token))
	}
	return toks, nil
}

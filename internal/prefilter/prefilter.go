// Package prefilter finds input offsets where a match can begin, so a
// scanner does not have to run the DFA from every position.
package prefilter

import (
	"github.com/coregx/ahocorasick"
)

// Prefilter reports offsets whose byte is one of a fixed set of first
// symbols. A nil *Prefilter accepts every offset.
type Prefilter struct {
	first []byte
	ac    *ahocorasick.Automaton
}

// New builds a prefilter over the given first symbols. It returns nil and no
// error when first is empty: with nothing to look for, filtering is useless.
func New(first []byte) (*Prefilter, error) {
	if len(first) == 0 {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, c := range first {
		builder.AddPattern([]byte{c})
	}
	ac, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{first: append([]byte(nil), first...), ac: ac}, nil
}

// Next returns the first candidate offset >= at, or -1.
func (p *Prefilter) Next(haystack []byte, at int) int {
	if at < 0 {
		at = 0
	}
	if p == nil {
		if at > len(haystack) {
			return -1
		}
		return at
	}
	if at >= len(haystack) {
		return -1
	}
	m := p.ac.Find(haystack, at)
	if m == nil {
		return -1
	}
	return m.Start
}

// Symbols returns the first symbols the prefilter looks for.
func (p *Prefilter) Symbols() []byte {
	if p == nil {
		return nil
	}
	return append([]byte(nil), p.first...)
}

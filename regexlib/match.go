package regexlib

import "thompson/internal/prefilter"

// Match is a half-open byte range [Start, End) of the input.
type Match struct {
	Start, End int
}

// Len is the number of bytes matched.
func (m Match) Len() int { return m.End - m.Start }

// Run simulates d on input from offset start: it follows transitions until
// the next byte has none or the input ends, then checks the state it stopped
// in. ok is true when that state is accepting; n is then the number of bytes
// consumed, which is 0 for an empty match. A start outside [0, len(input)]
// never matches.
func (d *DFA) Run(input string, start int) (n int, ok bool) {
	if start < 0 || start > len(input) {
		return 0, false
	}
	state, i := d.Initial, start
	for ; i < len(input); i++ {
		next := d.Next(state, input[i])
		if next < 0 {
			break
		}
		state = next
	}
	if !d.accepting[state] {
		return 0, false
	}
	return i - start, true
}

// FindAll returns the non-overlapping matches of d in input, scanning start
// offsets left to right. After an empty match the scan moves on by one byte.
func (d *DFA) FindAll(input string) []Match {
	return findAll(d, nil, input)
}

func findAll(d *DFA, pf *prefilter.Prefilter, input string) []Match {
	var out []Match
	hay := []byte(input)
	for i := 0; i <= len(input); {
		if pf != nil {
			if i = pf.Next(hay, i); i < 0 {
				break
			}
		}
		n, ok := d.Run(input, i)
		if !ok {
			i++
			continue
		}
		out = append(out, Match{Start: i, End: i + n})
		i += max(n, 1)
	}
	return out
}

// firstSymbols lists the symbols leaving the initial state.
func (d *DFA) firstSymbols() []byte {
	var out []byte
	for _, c := range Symbols() {
		if d.Next(d.Initial, c) >= 0 {
			out = append(out, c)
		}
	}
	return out
}

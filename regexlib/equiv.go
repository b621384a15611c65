package regexlib

// Isomorphic reports whether a and b are the same automaton up to renaming
// of states: a bijection between their states that maps initial to initial
// and preserves every transition and acceptance.
func Isomorphic(a, b *DFA) bool {
	if len(a.States) != len(b.States) || len(a.Transitions) != len(b.Transitions) {
		return false
	}
	fwd := make([]int, len(a.States))
	back := make([]int, len(b.States))
	for i := range fwd {
		fwd[i], back[i] = -1, -1
	}

	type pair struct{ i, j int }
	fwd[a.Initial], back[b.Initial] = b.Initial, a.Initial
	queue := []pair{{a.Initial, b.Initial}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if a.IsFinal(p.i) != b.IsFinal(p.j) {
			return false
		}
		for _, c := range Symbols() {
			ta, tb := a.Next(p.i, c), b.Next(p.j, c)
			if (ta < 0) != (tb < 0) {
				return false
			}
			if ta < 0 {
				continue
			}
			switch {
			case fwd[ta] == -1 && back[tb] == -1:
				fwd[ta], back[tb] = tb, ta
				queue = append(queue, pair{ta, tb})
			case fwd[ta] != tb:
				return false
			}
		}
	}
	return true
}

// Equivalent reports whether a and b accept the same language. It walks the
// product automaton, with -1 standing for the missing (dead) state, and
// fails on the first reachable pair that disagrees on acceptance.
func Equivalent(a, b *DFA) bool {
	type pair struct{ i, j int }
	accepts := func(d *DFA, s int) bool { return s >= 0 && d.IsFinal(s) }

	start := pair{a.Initial, b.Initial}
	seen := map[pair]bool{start: true}
	queue := []pair{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if accepts(a, p.i) != accepts(b, p.j) {
			return false
		}
		for _, c := range Symbols() {
			np := pair{a.Next(p.i, c), b.Next(p.j, c)}
			if np.i < 0 && np.j < 0 {
				continue
			}
			if !seen[np] {
				seen[np] = true
				queue = append(queue, np)
			}
		}
	}
	return true
}

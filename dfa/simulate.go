package dfa

// IsMatch reports whether s, taken as a whole, drives the DFA from its
// start state to an accepting state.
func (d *DFA) IsMatch(s []rune) bool {
	cur := d.start
	for _, r := range s {
		next, ok := d.Step(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.final[cur]
}

// FindAt returns the leftmost, longest match starting at or after start.
func (d *DFA) FindAt(s []rune, start int) (int, int, bool) {
	return d.search(s, start, false)
}

// FindShortestAt returns the leftmost match starting at or after start,
// preferring the shortest extent found at that start position.
func (d *DFA) FindShortestAt(s []rune, start int) (int, int, bool) {
	return d.search(s, start, true)
}

func (d *DFA) search(s []rune, from int, shortest bool) (int, int, bool) {
	for at := from; at <= len(s); at++ {
		if end, ok := d.matchFrom(s, at, shortest); ok {
			return at, end, true
		}
	}
	return 0, 0, false
}

func (d *DFA) matchFrom(s []rune, at int, shortest bool) (int, bool) {
	cur := d.start
	best := -1
	if d.final[cur] {
		best = at
		if shortest {
			return best, true
		}
	}

	for i := at; i < len(s); i++ {
		next, ok := d.Step(cur, s[i])
		if !ok {
			break
		}
		cur = next
		if d.final[cur] {
			best = i + 1
			if shortest {
				return best, true
			}
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}

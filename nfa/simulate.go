package nfa

// IsMatch reports whether s, taken as a whole, drives the NFA from its
// start state to an accepting state: leftmost-longest anchored at 0 and
// required to cover the entire input, not a search for a substring match.
func (n *NFA) IsMatch(s []rune) bool {
	cur := n.epsilonClosure([]StateID{n.start})
	for _, r := range s {
		moved := n.move(cur, r)
		if len(moved) == 0 {
			return false
		}
		cur = n.epsilonClosure(moved)
	}
	return n.containsFinal(cur)
}

// FindAt returns the leftmost, longest match starting at or after start.
func (n *NFA) FindAt(s []rune, start int) (int, int, bool) {
	return n.search(s, start, false)
}

// FindShortestAt returns the leftmost match starting at or after start,
// preferring the shortest extent found at that start position.
func (n *NFA) FindShortestAt(s []rune, start int) (int, int, bool) {
	return n.search(s, start, true)
}

// search tries successive start offsets from `from` onward, the way
// find_at(s, k) = find(s[k..]) requires, and returns the first one that
// yields a match.
func (n *NFA) search(s []rune, from int, shortest bool) (int, int, bool) {
	for at := from; at <= len(s); at++ {
		if end, ok := n.matchFrom(s, at, shortest); ok {
			return at, end, true
		}
	}
	return 0, 0, false
}

// matchFrom simulates starting at position at, tracking the furthest
// offset at which an accepting state was entered. For a shortest match it
// returns as soon as any accept is reached; on stuck or end of input it
// returns the best (longest) offset recorded, if any.
func (n *NFA) matchFrom(s []rune, at int, shortest bool) (int, bool) {
	cur := n.epsilonClosure([]StateID{n.start})
	best := -1
	if n.containsFinal(cur) {
		best = at
		if shortest {
			return best, true
		}
	}

	for i := at; i < len(s); i++ {
		moved := n.move(cur, s[i])
		if len(moved) == 0 {
			break
		}
		cur = n.epsilonClosure(moved)
		if n.containsFinal(cur) {
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

// Package prefilter wraps github.com/coregx/ahocorasick as a fast-reject
// check ahead of full NFA/DFA simulation, built from a pattern's required
// literal alternatives (see the literal package).
package prefilter

import "github.com/coregx/ahocorasick"

// Filter reports whether a haystack could possibly contain a match: if it
// says no, no amount of simulation will find one, so the caller can skip
// straight to "no match" without walking the automaton at all.
type Filter struct {
	automaton *ahocorasick.Automaton
}

// New builds a Filter that rejects any string not containing at least one
// of literals. It returns an error only if the underlying automaton fails
// to build; callers should treat that as "no prefilter available" and fall
// back to full simulation rather than surfacing it to their own caller.
func New(literals []string) (*Filter, error) {
	b := ahocorasick.NewBuilder()
	for _, lit := range literals {
		b.AddPattern([]byte(lit))
	}
	automaton, err := b.Build()
	if err != nil {
		return nil, err
	}
	return &Filter{automaton: automaton}, nil
}

// MaybeMatch reports whether s could possibly contain a match. A nil
// Filter (no prefilter available) always returns true, deferring entirely
// to full simulation.
func (f *Filter) MaybeMatch(s string) bool {
	if f == nil {
		return true
	}
	return f.automaton.IsMatch([]byte(s))
}

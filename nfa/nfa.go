// Package nfa builds Thompson NFAs from character-class-labelled regex ASTs
// and simulates them. Every non-epsilon transition is labelled with a
// charclass.Class rather than a single byte or rune.
package nfa

import (
	"github.com/coregx/classregex/charclass"
	"github.com/coregx/classregex/internal/conv"
)

// StateID identifies a state within a single NFA's state slice.
type StateID uint32

type stateKind uint8

const (
	// kindSymbol states have exactly one outgoing transition, taken when
	// the input rune belongs to class.
	kindSymbol stateKind = iota
	// kindSplit states have zero or more outgoing epsilon transitions.
	// Zero epsilon edges marks a dead end: such a state only has
	// meaning as an accepting leaf when it is a member of NFA.final.
	kindSplit
)

type state struct {
	kind  stateKind
	class charclass.Class // kindSymbol only
	next  StateID         // kindSymbol only
	eps   []StateID       // kindSplit only
}

// NFA is a Thompson construction: a flat slice of states reached from a
// single start state, with a set of accepting states.
type NFA struct {
	states []state
	start  StateID
	final  map[StateID]bool
}

func stateID(n int) StateID {
	return StateID(conv.IntToUint32(n))
}

// Char builds the two-state primitive fragment for a single character
// class: a symbol transition into a dead-end accepting state.
func Char(c charclass.Class) *NFA {
	return &NFA{
		states: []state{
			{kind: kindSymbol, class: c, next: 1},
			{kind: kindSplit},
		},
		start: 0,
		final: map[StateID]bool{1: true},
	}
}

// EpsilonNFA builds the two-state fragment matching only the empty string.
func EpsilonNFA() *NFA {
	return &NFA{
		states: []state{
			{kind: kindSplit, eps: []StateID{1}},
			{kind: kindSplit},
		},
		start: 0,
		final: map[StateID]bool{1: true},
	}
}

// cloneStatesOffset returns a deep copy of states with every StateID
// reference shifted by offset, so the copy can be embedded alongside other
// fragments without colliding state ids.
func cloneStatesOffset(states []state, offset StateID) []state {
	out := make([]state, len(states))
	for i, st := range states {
		ns := state{kind: st.kind, class: st.class}
		if st.kind == kindSymbol {
			ns.next = st.next + offset
		} else if len(st.eps) > 0 {
			ns.eps = make([]StateID, len(st.eps))
			for j, e := range st.eps {
				ns.eps[j] = e + offset
			}
		}
		out[i] = ns
	}
	return out
}

func offsetSet(ids map[StateID]bool, offset StateID) map[StateID]bool {
	out := make(map[StateID]bool, len(ids))
	for id := range ids {
		out[id+offset] = true
	}
	return out
}

// Union builds A|B: a fresh start with epsilon edges to copies of A's and
// B's starts, and a fresh final reached by epsilon from copies of every
// final state of A and B.
func Union(a, b *NFA) *NFA {
	offA := StateID(1)
	offB := offA + stateID(len(a.states))
	newFinal := offB + stateID(len(b.states))

	statesA := cloneStatesOffset(a.states, offA)
	statesB := cloneStatesOffset(b.states, offB)

	// Every final state a constructor produces is a kindSplit dead end, so
	// it is always safe to extend its (empty) eps list in place.
	for id := range offsetSet(a.final, offA) {
		statesA[id-offA].eps = append(statesA[id-offA].eps, newFinal)
	}
	for id := range offsetSet(b.final, offB) {
		statesB[id-offB].eps = append(statesB[id-offB].eps, newFinal)
	}

	all := make([]state, 0, 1+len(statesA)+len(statesB)+1)
	all = append(all, state{kind: kindSplit, eps: []StateID{a.start + offA, b.start + offB}})
	all = append(all, statesA...)
	all = append(all, statesB...)
	all = append(all, state{kind: kindSplit})

	return &NFA{states: all, start: 0, final: map[StateID]bool{newFinal: true}}
}

// Concat builds AB: a copy of A followed by a copy of B, with an epsilon
// edge from each of A's finals to B's start.
func Concat(a, b *NFA) *NFA {
	offB := stateID(len(a.states))

	statesA := cloneStatesOffset(a.states, 0)
	statesB := cloneStatesOffset(b.states, offB)
	bStart := b.start + offB

	for id := range a.final {
		statesA[id].eps = append(statesA[id].eps, bStart)
	}

	all := append(statesA, statesB...)
	return &NFA{states: all, start: a.start, final: offsetSet(b.final, offB)}
}

// Star builds A*: a fresh start with epsilon edges to A's start and to a
// fresh final, and an epsilon edge from each of A's finals back to A's
// start and forward to the fresh final.
func Star(a *NFA) *NFA {
	offA := StateID(1)
	newFinal := offA + stateID(len(a.states))

	statesA := cloneStatesOffset(a.states, offA)
	aStart := a.start + offA

	for id := range offsetSet(a.final, offA) {
		statesA[id-offA].eps = append(statesA[id-offA].eps, aStart, newFinal)
	}

	all := make([]state, 0, 1+len(statesA)+1)
	all = append(all, state{kind: kindSplit, eps: []StateID{aStart, newFinal}})
	all = append(all, statesA...)
	all = append(all, state{kind: kindSplit})

	return &NFA{states: all, start: 0, final: map[StateID]bool{newFinal: true}}
}

// Plus builds A+ as AA*.
func Plus(a *NFA) *NFA {
	return Concat(a, Star(a))
}

// Optional builds A? as A|ε.
func Optional(a *NFA) *NFA {
	return Union(a, EpsilonNFA())
}

// Combine builds the n-ary union of every NFA in fragments: a fresh start
// with an epsilon edge to each fragment's start, and a final set that is
// the union of every fragment's finals (no shared fresh final state is
// needed, since membership in the final set already suffices to accept).
// An empty fragments list combines to the empty-string NFA.
func Combine(fragments []*NFA) *NFA {
	if len(fragments) == 0 {
		return EpsilonNFA()
	}

	offsets := make([]StateID, len(fragments))
	total := StateID(1)
	for i, f := range fragments {
		offsets[i] = total
		total += stateID(len(f.states))
	}

	all := make([]state, 1, total)
	starts := make([]StateID, len(fragments))
	final := make(map[StateID]bool)
	for i, f := range fragments {
		off := offsets[i]
		all = append(all, cloneStatesOffset(f.states, off)...)
		starts[i] = f.start + off
		for id := range offsetSet(f.final, off) {
			final[id] = true
		}
	}
	all[0] = state{kind: kindSplit, eps: starts}

	return &NFA{states: all, start: 0, final: final}
}

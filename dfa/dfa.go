// Package dfa builds a deterministic automaton from an nfa.NFA by subset
// construction, with each state's outgoing transitions disjoined into
// non-overlapping character-class ranges.
package dfa

import (
	"github.com/coregx/classregex/charclass"
	"github.com/coregx/classregex/internal/table"
	"github.com/coregx/classregex/nfa"
)

// StateID identifies a state within a single DFA.
type StateID uint32

// DFA is a deterministic automaton whose transitions are keyed by
// pairwise-disjoint character-class ranges.
type DFA struct {
	transitions *table.Table[StateID, charclass.Range, StateID]
	final       map[StateID]bool
	start       StateID
	numStates   int

	// NFASets records, for each DFA state, the sorted set of NFA states it
	// was built from, for traceability back to the source automaton.
	NFASets [][]nfa.StateID
}

// NumStates returns how many states the DFA has.
func (d *DFA) NumStates() int { return d.numStates }

// IsFinalState reports whether id is one of the DFA's accepting states.
func (d *DFA) IsFinalState(id StateID) bool { return d.final[id] }

// Step returns the destination state for a single input rune from state
// from, or ok=false if the machine is stuck: no outgoing range contains r.
func (d *DFA) Step(from StateID, r rune) (to StateID, ok bool) {
	for rng, dest := range d.transitions.Row(from) {
		if rng.Contains(r) {
			return dest, true
		}
	}
	return 0, false
}

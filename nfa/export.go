package nfa

import (
	"sort"

	"github.com/coregx/classregex/charclass"
)

// Start returns the NFA's start state id.
func (n *NFA) Start() StateID { return n.start }

// NumStates returns how many states the NFA has.
func (n *NFA) NumStates() int { return len(n.states) }

// IsFinal reports whether id is one of the NFA's accepting states.
func (n *NFA) IsFinal(id StateID) bool { return n.final[id] }

// Closure returns the epsilon-closure of seed as an ascending slice of
// state ids. The sorted, deduplicated form gives subset construction a
// stable identity for "is this the same NFA-state subset we've already
// minted a DFA state for".
func (n *NFA) Closure(seed []StateID) []StateID {
	set := n.epsilonClosure(seed)
	vals := set.Values()
	out := make([]StateID, len(vals))
	for i, v := range vals {
		out[i] = StateID(v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Edge is one non-epsilon transition leaving a state.
type Edge struct {
	Class charclass.Class
	Dest  StateID
}

// OutgoingEdges collects every symbol transition leaving any state in set.
func (n *NFA) OutgoingEdges(set []StateID) []Edge {
	var edges []Edge
	for _, s := range set {
		st := n.states[s]
		if st.kind == kindSymbol {
			edges = append(edges, Edge{Class: st.class, Dest: st.next})
		}
	}
	return edges
}

package dfa

import (
	"fmt"

	"github.com/coregx/classregex/charclass"
	"github.com/coregx/classregex/internal/conv"
	"github.com/coregx/classregex/internal/table"
	"github.com/coregx/classregex/nfa"
)

// setKey turns a sorted NFA-state subset into a map key identifying it,
// so subset construction can recognize when it has already minted a DFA
// state for a given subset.
func setKey(set []nfa.StateID) string {
	return fmt.Sprint(set)
}

// From performs subset construction over n: the start DFA state is
// epsilon-closure(n.Start()), and each subsequent state is discovered by
// disjoining the collected outgoing classes of its backing NFA-state set
// and following each disjoint piece to the epsilon-closure of the states
// it reaches. The disjoining step is what guarantees every DFA state's
// out-edges are pairwise disjoint.
func From(n *nfa.NFA) *DFA {
	d := &DFA{
		transitions: table.New[StateID, charclass.Range, StateID](),
		final:       make(map[StateID]bool),
	}

	seen := make(map[string]StateID)
	var unmarked [][]nfa.StateID

	mint := func(set []nfa.StateID) StateID {
		key := setKey(set)
		if id, ok := seen[key]; ok {
			return id
		}
		id := StateID(conv.IntToUint32(d.numStates))
		d.numStates++
		seen[key] = id
		d.NFASets = append(d.NFASets, set)
		for _, s := range set {
			if n.IsFinal(s) {
				d.final[id] = true
				break
			}
		}
		unmarked = append(unmarked, set)
		return id
	}

	d.start = mint(n.Closure([]nfa.StateID{n.Start()}))

	for len(unmarked) > 0 {
		set := unmarked[0]
		unmarked = unmarked[1:]
		id := seen[setKey(set)]

		edges := n.OutgoingEdges(set)
		if len(edges) == 0 {
			continue
		}

		classes := make([]charclass.Class, len(edges))
		for i, e := range edges {
			classes[i] = e.Class
		}

		for _, piece := range charclass.Disjoin(classes) {
			var moved []nfa.StateID
			for _, e := range edges {
				if e.Class.Overlaps(piece) {
					moved = append(moved, e.Dest)
				}
			}
			target := mint(n.Closure(moved))

			pieceRange := piece.Ranges()[0]
			d.transitions.Set(id, pieceRange, target)
		}
	}

	return d
}

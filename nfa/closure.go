package nfa

import (
	"github.com/coregx/classregex/internal/conv"
	"github.com/coregx/classregex/internal/sparse"
)

// epsilonClosure returns every state reachable from seed via zero or more
// epsilon transitions, including the seed states themselves. It is
// computed with an explicit worklist over a sparse.SparseSet rather than
// recursion, since A* and similar constructions produce cyclic epsilon
// graphs.
func (n *NFA) epsilonClosure(seed []StateID) *sparse.SparseSet {
	set := sparse.NewSparseSet(conv.IntToUint32(len(n.states)))
	stack := make([]StateID, 0, len(seed))

	for _, s := range seed {
		if !set.Contains(uint32(s)) {
			set.Insert(uint32(s))
			stack = append(stack, s)
		}
	}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st := n.states[s]
		if st.kind != kindSplit {
			continue
		}
		for _, e := range st.eps {
			if !set.Contains(uint32(e)) {
				set.Insert(uint32(e))
				stack = append(stack, e)
			}
		}
	}

	return set
}

// move returns every state directly reachable from a state in S via a
// symbol transition whose class contains k.
func (n *NFA) move(S *sparse.SparseSet, k rune) []StateID {
	var out []StateID
	for _, v := range S.Values() {
		st := n.states[v]
		if st.kind == kindSymbol && st.class.Contains(k) {
			out = append(out, st.next)
		}
	}
	return out
}

// containsFinal reports whether any state in set is an accepting state.
func (n *NFA) containsFinal(set *sparse.SparseSet) bool {
	for _, v := range set.Values() {
		if n.final[StateID(v)] {
			return true
		}
	}
	return false
}

package charclass

import (
	"cmp"
	"sort"
)

// MergeValue is the element type a MergeSet stores. V must be able to report
// a sort key, test intersection with another V, and combine with an
// intersecting V into a single merged V.
type MergeValue[K cmp.Ordered, V any] interface {
	Key() K
	IntersectsWith(other V) bool
	Union(other V) V
}

// MergeSet holds a minimal set of pairwise disjoint, non-adjacent values:
// inserting a value that intersects a neighbour merges the two instead of
// storing both. It backs Class's range list.
//
// Go has no balanced-tree ordered map in its standard library (unlike the
// im::OrdMap the original mergeset.rs was built on), so MergeSet keeps its
// elements in a slice sorted by Key and locates the insertion point with
// binary search. Lookup is O(log n); insertion is O(n) for the slice shift.
// Character classes hold at most a few dozen ranges in practice, so this
// trade favours simplicity over the tree's asymptotics.
type MergeSet[K cmp.Ordered, V MergeValue[K, V]] struct {
	items []V // sorted ascending by Key()
}

// Insert merges v into the set, combining it with an intersecting
// predecessor and with every successor it intersects, as described by the
// type's invariants.
func (s *MergeSet[K, V]) Insert(v V) {
	key := v.Key()
	ip := sort.Search(len(s.items), func(i int) bool { return cmp.Compare(s.items[i].Key(), key) > 0 })

	if ip > 0 {
		pred := s.items[ip-1]
		if v.IntersectsWith(pred) {
			v = v.Union(pred)
			s.items = append(s.items[:ip-1], s.items[ip:]...)
			ip--
		}
	}

	for ip < len(s.items) && v.IntersectsWith(s.items[ip]) {
		v = v.Union(s.items[ip])
		s.items = append(s.items[:ip], s.items[ip+1:]...)
	}

	key = v.Key()
	ip = sort.Search(len(s.items), func(i int) bool { return cmp.Compare(s.items[i].Key(), key) > 0 })
	s.items = append(s.items, v)
	copy(s.items[ip+1:], s.items[ip:len(s.items)-1])
	s.items[ip] = v
}

// Len reports the number of stored (disjoint) values.
func (s *MergeSet[K, V]) Len() int {
	return len(s.items)
}

// IsEmpty reports whether the set holds no values.
func (s *MergeSet[K, V]) IsEmpty() bool {
	return len(s.items) == 0
}

// Values returns the stored values in ascending key order. The caller must
// not mutate the returned slice.
func (s *MergeSet[K, V]) Values() []V {
	return s.items
}

// Clone returns a MergeSet with an independent backing slice.
func (s *MergeSet[K, V]) Clone() *MergeSet[K, V] {
	out := &MergeSet[K, V]{items: make([]V, len(s.items))}
	copy(out.items, s.items)
	return out
}

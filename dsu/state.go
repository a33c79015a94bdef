package dsu

import "go.uber.org/atomic"

// isRoot reports whether a lock-free slot value encodes a root (negative
// value) rather than a parent index (non-negative value). See spec §4.1.
func isRoot(v int32) bool {
	return v < 0
}

// rankOfRoot extracts the rank packed into a root's slot value.
// Precondition: isRoot(v).
func rankOfRoot(v int32) int32 {
	return -(v + 1)
}

// rootValue packs a non-negative rank into the slot-value encoding for a
// root. Precondition: rank >= 0.
func rootValue(rank int32) int32 {
	return -(rank + 1)
}

// newLockFreeState allocates n atomic words, each initialized to
// root_value(0) — every element starts as its own singleton root.
func newLockFreeState(n int) []atomic.Int32 {
	state := make([]atomic.Int32, n)
	for i := range state {
		state[i].Store(rootValue(0))
	}
	return state
}

// newTwoArrayState allocates the parent/rank arrays used by the
// serial/coarse/fine engines: parent[i] == i marks i as a root, and
// rank[i] is only meaningful while i is a root.
func newTwoArrayState(n int) (parent, rank []int) {
	parent = make([]int, n)
	rank = make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return parent, rank
}

package segtree

import "fmt"

// node covers the half-open range [lo, hi). Leafs cover exactly one index and have
// no children; inner nodes split their range at mid = midpoint(lo, hi) into children[0] covering
// [lo, mid) and children[1] covering [mid, hi).
//
// Nodes are write-once: after a node has been linked into a tree it is never changed again,
// as it may be shared between any number of trees.
type node struct {
	lo, hi   int
	sum      int64
	children [2]*node
}

// build creates a zero-valued complete partition of [lo, hi).
func build(lo, hi int) *node {
	n := &node{lo: lo, hi: hi}
	if lo < hi-1 {
		mid := midpoint(lo, hi)
		n.children[0] = build(lo, mid)
		n.children[1] = build(mid, hi)
	}
	return n
}

func (n *node) isLeaf() bool {
	return n.children[0] == nil
}

// withDelta returns a copy of n with delta added to its sum. Children are shared.
func (n node) withDelta(delta int64) node {
	cow := n
	cow.sum += delta
	return cow
}

// childFor selects the child whose range contains position. Positions left of the
// left child's range end up in the right child; they are outside the tree's domain anyway.
func (n *node) childFor(position int) int {
	left := n.children[0]
	if left.lo <= position && position < left.hi {
		return 0
	}
	return 1
}

func (n *node) rangeSum(qlo, qhi int) int64 {
	if qlo <= n.lo && n.hi <= qhi { // node inside query range
		return n.sum
	}
	if max(qlo, n.lo) >= min(qhi, n.hi) { // no overlap
		return 0
	}
	assertThat(!n.isLeaf(), "internal inconsistency: leaf %s partially overlaps [%d,%d)", n, qlo, qhi)
	return n.children[0].rangeSum(qlo, qhi) + n.children[1].rangeSum(qlo, qhi)
}

// size is the number of nodes in the subtree of n.
func (n *node) size() int {
	return 2*(n.hi-n.lo) - 1
}

func (n *node) String() string {
	if n == nil {
		return "[]"
	}
	return fmt.Sprintf("[%d,%d)=%d", n.lo, n.hi, n.sum)
}

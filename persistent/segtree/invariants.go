package segtree

import (
	"errors"
	"fmt"
)

// ErrInvariant signals a structurally broken tree.
var ErrInvariant = errors.New("segtree: invariant violated")

// Check validates structural tree invariants: every node covers a non-empty range,
// exactly the nodes covering more than one index have children, children split the
// range of their parent at its midpoint, and every inner node's sum equals the sum of
// its children.
//
// Trees created by this package always pass Check; it is meant to be used in tests.
func (t Tree) Check() error {
	if t.root == nil {
		return nil
	}
	return checkNode(t.root)
}

func checkNode(n *node) error {
	if n == nil {
		return fmt.Errorf("%w: nil node", ErrInvariant)
	}
	if n.lo >= n.hi {
		return fmt.Errorf("%w: node %s covers an empty range", ErrInvariant, n)
	}
	if n.lo == n.hi-1 {
		if n.children[0] != nil || n.children[1] != nil {
			return fmt.Errorf("%w: leaf %s has children", ErrInvariant, n)
		}
		return nil
	}
	l, r := n.children[0], n.children[1]
	if l == nil || r == nil {
		return fmt.Errorf("%w: inner node %s is missing a child", ErrInvariant, n)
	}
	mid := midpoint(n.lo, n.hi)
	if l.lo != n.lo || l.hi != mid || r.lo != mid || r.hi != n.hi {
		return fmt.Errorf("%w: node %s is not split at %d: %s | %s", ErrInvariant, n, mid, l, r)
	}
	if n.sum != l.sum+r.sum {
		return fmt.Errorf("%w: sum of %s differs from children %s + %s", ErrInvariant, n, l, r)
	}
	if err := checkNode(l); err != nil {
		return err
	}
	return checkNode(r)
}

package segtree

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- A new incarnation of a tree always is reflected by a new tree.root. Nodes reachable from
  an existing root are never modified.

- Positions are not checked against the domain of a tree. Adding at a position outside
  [lo, hi) terminates, but leaves the tree with meaningless sums. Clients which cannot
  guarantee valid positions should use package versions, which checks them.

*/

// Tree is a persistent segment tree over a fixed domain [lo, hi), holding range sums.
// Trees are values and cheap to copy; copies share all of their nodes.
//
// The zero value is an empty tree without a domain. Sums over an empty tree are always 0,
// and adding to it is a no-op.
type Tree struct {
	root *node
}

// New creates a tree over the index domain [lo, hi), with every index holding 0.
// lo has to be less than hi, otherwise New panics.
func New(lo, hi int) Tree {
	assertThat(lo < hi, "cannot create tree over empty domain [%d,%d)", lo, hi)
	tracer().Debugf("new tree over [%d,%d)", lo, hi)
	return Tree{root: build(lo, hi)}
}

// --- API -------------------------------------------------------------------

// IsEmpty reports whether t is the zero Tree.
func (t Tree) IsEmpty() bool {
	return t.root == nil
}

// Bounds returns the domain [lo, hi) of t.
func (t Tree) Bounds() (lo, hi int) {
	if t.root == nil {
		return 0, 0
	}
	return t.root.lo, t.root.hi
}

// Depth returns the number of levels of t, where a tree over a single index has depth 1.
func (t Tree) Depth() int {
	if t.root == nil {
		return 0
	}
	depth := 1
	for width := t.root.hi - t.root.lo; width > 1; width = (width + 1) / 2 {
		depth++ // the wider half of a split has ⌈width/2⌉ indices
	}
	return depth
}

// Total returns the sum over the whole domain of t.
func (t Tree) Total() int64 {
	if t.root == nil {
		return 0
	}
	return t.root.sum
}

// Value returns the value accumulated at a single position.
func (t Tree) Value(position int) int64 {
	return t.Sum(position, position+1)
}

// Sum returns the sum of all values at indices in [qlo, qhi). The query range may exceed the
// domain of t; indices outside the domain contribute nothing. If qlo ≥ qhi, Sum returns 0.
func (t Tree) Sum(qlo, qhi int) int64 {
	if t.root == nil {
		return 0
	}
	return t.root.rangeSum(qlo, qhi)
}

// Add returns a copy of t with delta added to the value at position. t is left unchanged.
// All nodes not on the path from the root to position's leaf are shared between t
// and the copy.
//
// position must lie within the domain of t; this is not checked.
func (t Tree) Add(position int, delta int64) Tree {
	if t.root == nil {
		return t
	}
	path := t.findPath(position, make(slotPath, 0, t.Depth()))
	tracer().Debugf("add %+d at %d: slot path = %s", delta, position, path)
	leaf := path.last()
	cow := leaf.node.withDelta(delta) // copy-on-write
	newRoot := path.dropLast().foldR(cloneSeam(delta), slot{node: &cow})
	tracer().Debugf("add: new root = %s", newRoot.node)
	return Tree{root: newRoot.node}
}

// SharedWith counts the nodes of t which are identical to nodes of other, i.e. which
// are shared between both trees. Trees over different domains share nothing.
func (t Tree) SharedWith(other Tree) int {
	return shared(t.root, other.root)
}

func shared(a, b *node) int {
	if a == nil || b == nil || a.lo != b.lo || a.hi != b.hi {
		return 0
	}
	if a == b {
		return a.size()
	}
	return shared(a.children[0], b.children[0]) + shared(a.children[1], b.children[1])
}

// findPath collects the slots from the root down to the leaf for position.
func (t Tree) findPath(position int, pathBuf slotPath) slotPath {
	path := pathBuf[:0]
	if t.root == nil {
		return path
	}
	n := t.root
	for !n.isLeaf() {
		index := n.childFor(position)
		path = append(path, slot{node: n, index: index})
		n = n.children[index]
	}
	return append(path, slot{node: n})
}

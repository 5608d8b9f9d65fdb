package versions

import (
	"fmt"
	"sync"

	"github.com/npillmayer/persum/maybe"
	"github.com/npillmayer/persum/persistent/segtree"
)

// Index is a versioned range-sum index over a fixed domain [lo, hi).
// An Index must be created with Create.
type Index struct {
	lo, hi int
	mu     sync.RWMutex
	roots  []segtree.Tree // append-only, roots[v] is version v
}

// Option is a type to help initializing an index at creation time.
type Option func(*Index)

// Capacity is an option to reserve room for n versions in advance.
//
// Use it like this:
//
//     ix, err := versions.Create(0, 1024, versions.Capacity(10000))
//
func Capacity(n int) Option {
	return func(ix *Index) {
		if n > cap(ix.roots) {
			roots := make([]segtree.Tree, len(ix.roots), n)
			copy(roots, ix.roots)
			ix.roots = roots
		}
	}
}

// Create creates an index over the domain [lo, hi), with version 0 holding 0 at every
// index. If lo ≥ hi, ErrEmptyDomain is returned.
func Create(lo, hi int, opts ...Option) (*Index, error) {
	if lo >= hi {
		return nil, fmt.Errorf("%w: [%d,%d)", ErrEmptyDomain, lo, hi)
	}
	ix := &Index{lo: lo, hi: hi}
	for _, option := range opts {
		option(ix)
	}
	ix.roots = append(ix.roots, segtree.New(lo, hi))
	tracer().Debugf("created index over [%d,%d)", lo, hi)
	return ix, nil
}

// --- API -------------------------------------------------------------------

// Apply derives a new version from version by adding delta to the value at position.
// It returns the number of the new version, which is the number of versions present
// when the new root is appended.
//
// Apply fails with ErrVersionOutOfRange if version does not exist, and with
// ErrPositionOutOfDomain if position is not within the domain of the index.
func (ix *Index) Apply(version, position int, delta int64) (int, error) {
	if position < ix.lo || position >= ix.hi {
		return -1, fmt.Errorf("%w: %d not in [%d,%d)", ErrPositionOutOfDomain, position, ix.lo, ix.hi)
	}
	root, err := ix.Root(version)
	if err != nil {
		return -1, err
	}
	cow := root.Add(position, delta) // base versions never change, no need to lock
	ix.mu.Lock()
	ix.roots = append(ix.roots, cow)
	v := len(ix.roots) - 1
	ix.mu.Unlock()
	tracer().Debugf("version %d = version %d with %+d at %d", v, version, delta, position)
	return v, nil
}

// Query returns the sum of all values at indices in [qlo, qhi) for a given version.
// Indices outside the domain of the index contribute nothing to the sum.
//
// Query fails with ErrVersionOutOfRange if version does not exist.
func (ix *Index) Query(version, qlo, qhi int) (int64, error) {
	root, err := ix.Root(version)
	if err != nil {
		return 0, err
	}
	return root.Sum(qlo, qhi), nil
}

// Root returns the segment tree of a version.
func (ix *Index) Root(version int) (segtree.Tree, error) {
	var root segtree.Tree
	switch m := ix.Lookup(version).Match(); m {
	case m.Just(&root):
		return root, nil
	}
	return root, fmt.Errorf("%w: %d not in [0,%d)", ErrVersionOutOfRange, version, ix.Len())
}

// Lookup returns the segment tree of a version, or Nothing if version does not exist.
func (ix *Index) Lookup(version int) maybe.Maybe[segtree.Tree] {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if version < 0 || version >= len(ix.roots) {
		return maybe.Nothing[segtree.Tree]()
	}
	return maybe.Just(ix.roots[version])
}

// Len returns the number of versions, including version 0.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.roots)
}

// Domain returns the domain [lo, hi) of the index.
func (ix *Index) Domain() (lo, hi int) {
	return ix.lo, ix.hi
}

// Latest returns the number of the most recent version.
func (ix *Index) Latest() int {
	return ix.Len() - 1
}

// History returns the sum over [qlo, qhi) for every version present at the time of
// the call, indexed by version number.
func (ix *Index) History(qlo, qhi int) []int64 {
	ix.mu.RLock()
	roots := ix.roots[:len(ix.roots):len(ix.roots)]
	ix.mu.RUnlock()
	sums := make([]int64, len(roots))
	for v, root := range roots {
		sums[v] = root.Sum(qlo, qhi)
	}
	return sums
}

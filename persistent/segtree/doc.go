/*
Package segtree implements a persistent (immutable) in-memory segment tree of range sums.

A tree covers a fixed half-open index domain [lo, hi). Every node caches the sum of all
values added at indices within its own range. The shape of a tree is a complete binary
partition of the domain and is fixed at construction time; it never changes, there is
no rebalancing.

Adding a value at a position returns a new tree. Only the nodes on the path from the root
down to the position's leaf are copied, every other subtree is shared with the original:

    t0 := segtree.New(1, 9)
    t1 := t0.Add(2, 1)
    t1.Sum(1, 9)   // returns 1
    t0.Sum(1, 9)   // still returns 0

Trees are immutable and therefore safe for concurrent reading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persum.segtree'.
func tracer() tracing.Trace {
	return tracing.Select("persum.segtree")
}

/*
Package versions implements a versioned range-sum index.

An Index keeps an append-only history of persistent segment trees (see package segtree),
one per version. Version 0 is created together with the index and holds 0 at every index
of the domain. Every further version is derived from an existing version by a single
point update:

    ix, _ := versions.Create(1, 9)
    v1, _ := ix.Apply(0, 2, 1)     // version 1: version 0 with +1 at index 2
    v2, _ := ix.Apply(v1, 4, 1)    // version 2: version 1 with +1 at index 4
    sum, _ := ix.Query(v2, 1, 9)   // 2
    sum, _ = ix.Query(v1, 1, 9)    // still 1

Versions may be derived from any existing version, not just from the latest one. Versions
are never changed or removed once created.

Concurrency

All versions are immutable and may be queried concurrently. Apply may be called from
multiple goroutines as well; version numbers are assigned in the order updates are
appended to the history.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package versions

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'persum.versions'.
func tracer() tracing.Trace {
	return tracing.Select("persum.versions")
}

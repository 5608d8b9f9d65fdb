/*
Package persum provides a persistent, versioned range-sum index.

An index covers a fixed half-open domain of integer positions [lo, hi). It keeps
every version ever created: version 0 holds 0 at every position, and each further
version is derived from an existing one by adding a value at a single position.
Every version can be queried for the sum over a range of positions in O(log n),
no matter how many versions have been created after it.

The functions of this package are shortcuts for the methods of versions.Index.
Package persistent/segtree holds the underlying persistent segment tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persum

import (
	"github.com/npillmayer/persum/persistent/versions"
)

// Index is a versioned range-sum index.
type Index = versions.Index

// Create constructs version 0 of an index over the domain [lo, hi).
// Options are those of package versions, e.g. versions.Capacity.
func Create(lo, hi int, opts ...versions.Option) (*Index, error) {
	return versions.Create(lo, hi, opts...)
}

// Apply derives a new version from version by adding delta at position, and returns
// the new version's number.
func Apply(index *Index, version, position int, delta int64) (int, error) {
	return index.Apply(version, position, delta)
}

// Query returns the sum over [qlo, qhi) of a version.
func Query(index *Index, version, qlo, qhi int) (int64, error) {
	return index.Query(version, qlo, qhi)
}

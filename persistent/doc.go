/*
Package persistent holds the persistent data structures of this module.

Persistent immutable data structures are structures which can be copied and modified
efficiently, leaving the original unchanged. Every "modification" creates a new incarnation
of the structure, which shares most of its memory with the original (structural sharing).
Old incarnations stay valid and may be queried at any time.

Sub-package segtree implements a persistent segment tree over a fixed, half-open index
domain, caching range sums in every node. Sub-package versions keeps an append-only
history of segment tree roots, one per version, and is the entry point for most clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent

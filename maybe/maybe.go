/*
Package maybe implements optional values.

A Maybe either holds a value (Just) or holds nothing (Nothing). Clients get at the
value by matching:

	var root segtree.Tree
	switch m := ix.Lookup(7).Match(); m {
	case m.Just(&root):
		// version 7 exists
	case m.Nothing():
		// it doesn't
	}
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match. Of its two methods exactly one returns the
// matcher itself and the other one returns nil, which makes it usable as the tag
// of a switch statement. T has to be comparable for this to work.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}

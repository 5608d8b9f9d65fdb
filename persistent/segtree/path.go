package segtree

import (
	"fmt"
	"strconv"
	"strings"
)

// --- Slot ------------------------------------------------------------------

// slot holds a step of a path: a node together with the index of the child the
// path continues with. For the final slot of a path (a leaf) the index is meaningless.
type slot struct {
	node  *node
	index int
}

func (s slot) String() string {
	return strconv.Itoa(s.index) + "@" + s.node.String()
}

// cloneSeam returns a folding function for slot paths. It creates a copy of the parent
// with delta added, linking the (already copied) child into the copy. The sibling of
// the child is left untouched and ends up shared between old and new parent.
func cloneSeam(delta int64) func(slot, slot) slot {
	return func(parent, child slot) slot {
		tracer().Debugf("seam: parent = %s, child = %s", parent, child)
		cowParent := parent.node.withDelta(delta)
		cowParent.children[parent.index] = child.node
		return slot{node: &cowParent, index: parent.index}
	}
}

// --- Path ------------------------------------------------------------------

// slotPath is a list of slots, denoting the path from a root to a leaf.
type slotPath []slot

func (path slotPath) String() string {
	var sb = strings.Builder{}
	sb.WriteRune('[')
	for _, s := range path {
		sb.WriteString(fmt.Sprintf("⟨%s⟩", s))
	}
	sb.WriteRune(']')
	return sb.String()
}

func (path slotPath) last() slot {
	if len(path) == 0 {
		return slot{}
	}
	return path[len(path)-1]
}

func (path slotPath) dropLast() slotPath {
	if len(path) == 0 {
		return path
	}
	return path[:len(path)-1]
}

// foldR applies function f on pairs (parent,child) of slots of path.
// Application starts from the right ('R'), which corresponds to the bottom-most slot of
// the path. zero is applied as `child` in the rightmost call of f(parent,child).
// If path is empty, zero will be returned, otherwise the value returned from the final
// call to f will be returned.
func (path slotPath) foldR(f func(slot, slot) slot, zero slot) slot {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}

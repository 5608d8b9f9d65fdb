package segtree

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Print renders t as an indented tree, one node per line, for debugging.
func (t Tree) Print() string {
	lo, hi := t.Bounds()
	header := fmt.Sprintf("\nTree(depth=%d [%d,%d))\n", t.Depth(), lo, hi)
	p := tp.New()
	ppt(p, t.root)
	return header + p.String() + "\n"
}

func ppt(p tp.Tree, n *node) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		p.AddNode(n.String())
		return
	}
	branch := p.AddBranch(n.String())
	for _, ch := range n.children {
		ppt(branch, ch)
	}
}

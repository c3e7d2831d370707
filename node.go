package trie

import (
	"fmt"
	"sort"
)

var _ sort.Interface = children[int]{}

func (c children[V]) Len() int {
	return len(c)
}

func (c children[V]) Less(l, r int) bool {
	return c[l].ch < c[r].ch
}

func (c children[V]) Swap(l, r int) {
	c[l], c[r] = c[r], c[l]
}

// search returns the position of ch, or where it would be inserted
func (c children[V]) search(ch byte) int {
	return sort.Search(len(c), func(i int) bool {
		return c[i].ch >= ch
	})
}

func (n *mapNode[V]) findChild(ch byte) *mapNode[V] {
	idx := n.children.search(ch)
	if idx < len(n.children) && n.children[idx].ch == ch {
		return n.children[idx].node
	}
	return nil
}

// nextChild returns the child with the smallest label greater than ch
func (n *mapNode[V]) nextChild(ch byte) (child[V], bool) {
	idx := n.children.search(ch)
	if idx < len(n.children) && n.children[idx].ch == ch {
		idx++
	}
	if idx >= len(n.children) {
		return child[V]{}, false
	}
	return n.children[idx], true
}

func (n *mapNode[V]) firstChild() (child[V], bool) {
	if len(n.children) == 0 {
		return child[V]{}, false
	}
	return n.children[0], true
}

// addChild keeps children sorted
func (n *mapNode[V]) addChild(ch byte) *mapNode[V] {
	node := newMapNode(ch, n)
	idx := n.children.search(ch)

	n.children = append(n.children, child[V]{})
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child[V]{ch: ch, node: node}

	return node
}

func (n *mapNode[V]) isRoot() bool {
	return n.parent == nil
}

func (n *setNode[K]) isLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// slot returns the array holding n: its parent's children or the roots
func (n *setNode[K]) slot(roots *[SetRadix]*setNode[K]) **setNode[K] {
	if n.parent == nil {
		return &roots[n.index]
	}
	return &n.parent.children[n.index]
}

func invariant(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
}

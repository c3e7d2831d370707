package trie

// Iterator returns an iterator over the entries whose keys start with
// prefix, in lexicographic byte order. An empty prefix covers the whole map.
//
// The iterator borrows t: any insert that adds a node or a key invalidates
// it, and its next call to Next reports ErrConcurrentModification.
func (t *TrieMap[V]) Iterator(prefix string) *MapIterator[V] {
	it := &MapIterator[V]{
		owner: t,
		gen:   t.gen,
	}

	start := t.advanceToNode(prefix)
	if start == nil {
		return it
	}

	it.node = start
	it.bound = start
	it.key = append(make([]byte, 0, len(prefix)+16), prefix...)

	if !start.terminal {
		it.advance()
	}
	return it
}

func (it *MapIterator[V]) HasNext() bool {
	return it != nil && it.node != nil
}

// Key returns the key of the entry the next call to Next yields.
func (it *MapIterator[V]) Key() string {
	if !it.HasNext() {
		panic(ErrNoMoreNodes)
	}
	return string(it.key)
}

// Value returns the handle of the entry the next call to Next yields.
func (it *MapIterator[V]) Value() *V {
	if !it.HasNext() {
		panic(ErrNoMoreNodes)
	}
	return it.node.value
}

// Next returns the current entry and moves to the following one.
func (it *MapIterator[V]) Next() (Entry[V], error) {
	if !it.HasNext() {
		return Entry[V]{}, ErrNoMoreNodes
	}
	if it.gen != it.owner.gen {
		return Entry[V]{}, ErrConcurrentModification
	}
	e := Entry[V]{
		Key:   string(it.key),
		Value: it.node.value,
	}
	it.advance()
	return e, nil
}

// advance moves to the next terminal node in preorder, skipping path nodes
func (it *MapIterator[V]) advance() {
	for {
		it.step()
		if it.node == nil || it.node.terminal {
			return
		}
	}
}

// step moves to the next node in preorder without leaving the subtree
// rooted at it.bound.
func (it *MapIterator[V]) step() {
	curr := it.node

	if c, ok := curr.firstChild(); ok {
		it.node = c.node
		it.key = append(it.key, c.ch)
		return
	}

	for {
		if curr == it.bound {
			it.exhaust()
			return
		}

		if curr.isRoot() {
			invariant("climbed past the root from %q", it.key)
		}
		parent := curr.parent

		if sib, ok := parent.nextChild(curr.ch); ok {
			it.key[len(it.key)-1] = sib.ch
			it.node = sib.node
			return
		}

		curr = parent
		it.key = it.key[:len(it.key)-1]
	}
}

func (it *MapIterator[V]) exhaust() {
	it.node = nil
	it.key = it.key[:0]
}

package trie

func (s *TrieSet[K]) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

func (s *TrieSet[K]) Empty() bool {
	return s.Size() == 0
}

// Insert adds key and reports whether it was absent. A key that decomposes
// into no digits (the empty string) cannot be stored.
func (s *TrieSet[K]) Insert(key K) bool {
	node := s.descend(key, true)
	if node == nil || node.hasKey {
		return false
	}
	node.key = key
	node.hasKey = true
	s.size++
	return true
}

func (s *TrieSet[K]) Count(key K) int {
	node := s.descend(key, false)
	if node == nil || !node.hasKey {
		return 0
	}
	return 1
}

// Erase removes key and reports whether it was present. Nodes left without
// a key and without children are pruned up to the first ancestor still in
// use.
func (s *TrieSet[K]) Erase(key K) bool {
	node := s.descend(key, false)
	if node == nil || !node.hasKey {
		return false
	}

	s.size--
	var zero K
	node.key = zero
	node.hasKey = false

	for node != nil && node.isLeaf() && !node.hasKey {
		parent := node.parent
		*node.slot(&s.roots) = nil
		node.parent = nil
		s.log.Debug().Uint8("index", node.index).Msg("pruned set node")
		node = parent
	}
	return true
}

func (s *TrieSet[K]) Clear() {
	s.roots = [SetRadix]*setNode[K]{}
	s.size = 0
}

// Range calls f for every key in digit order until f returns false.
func (s *TrieSet[K]) Range(f func(key K) bool) {
	for _, root := range s.roots {
		if root != nil && !root.walk(f) {
			return
		}
	}
}

func (n *setNode[K]) walk(f func(key K) bool) bool {
	if n.hasKey && !f(n.key) {
		return false
	}
	for _, c := range n.children {
		if c != nil && !c.walk(f) {
			return false
		}
	}
	return true
}

// descend follows the digits of key and returns the landing node. Missing
// nodes are created when create is set, otherwise descend returns nil.
func (s *TrieSet[K]) descend(key K, create bool) *setNode[K] {
	slots := &s.roots
	var parent, curr *setNode[K]

	it := s.digits(key)
	for it.Valid() {
		d := it.Value()
		if d < 0 || d >= SetRadix {
			invariant("digit %d out of range", d)
		}

		curr = slots[d]
		if curr == nil {
			if !create {
				return nil
			}
			curr = newSetNode[K](uint8(d), parent)
			slots[d] = curr
			s.log.Debug().Uint8("index", curr.index).Msg("created set node")
		}

		parent = curr
		slots = &curr.children
		if err := it.Next(); err != nil {
			invariant("advancing valid digit iterator: %v", err)
		}
	}
	return curr
}

func (n *setNode[K]) count() int {
	total := 1
	for _, c := range n.children {
		if c != nil {
			total += c.count()
		}
	}
	return total
}

// nodes returns the number of live nodes
func (s *TrieSet[K]) nodes() int {
	total := 0
	for _, root := range s.roots {
		if root != nil {
			total += root.count()
		}
	}
	return total
}

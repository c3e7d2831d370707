package trie

import "errors"

func (t *TrieMap[V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

func (t *TrieMap[V]) Empty() bool {
	return t.Size() == 0
}

// Find returns the handle stored under key, or nil if key was never
// inserted. The handle is shared with the map, not copied.
func (t *TrieMap[V]) Find(key string) *V {
	node := t.advanceToNode(key)
	if node == nil || !node.terminal {
		return nil
	}
	return node.value
}

func (t *TrieMap[V]) Count(key string) int {
	node := t.advanceToNode(key)
	if node == nil || !node.terminal {
		return 0
	}
	return 1
}

// Insert stores value under key unless key is already present, and returns
// the handle that ends up stored.
func (t *TrieMap[V]) Insert(key string, value *V) *V {
	return t.InsertWith(key, value, false)
}

// InsertOrReplace stores value under key, replacing any existing handle.
func (t *TrieMap[V]) InsertOrReplace(key string, value *V) *V {
	return t.InsertWith(key, value, true)
}

func (t *TrieMap[V]) InsertWith(key string, value *V, replaceExisting bool) *V {
	curr := t.root
	for i := 0; i < len(key); i++ {
		next := curr.findChild(key[i])
		if next == nil {
			next = curr.addChild(key[i])
			t.gen++
			t.log.Debug().Str("prefix", key[:i+1]).Msg("created map node")
		}
		curr = next
	}
	if curr == nil {
		invariant("nil landing node for key %q", key)
	}

	if curr.terminal {
		if !replaceExisting {
			return curr.value
		}
		curr.value = value
		return curr.value
	}

	curr.terminal = true
	curr.value = value
	t.size++
	t.gen++

	return curr.value
}

// ForEachKeyPrefix returns, in order, every key starting with prefix.
func (t *TrieMap[V]) ForEachKeyPrefix(prefix string) []string {
	keys := make([]string, 0)
	for it := t.Iterator(prefix); it.HasNext(); {
		e, err := it.Next()
		if err != nil {
			break
		}
		keys = append(keys, e.Key)
	}
	return keys
}

// Range calls f for every entry under prefix in key order. Returning
// ErrStopIteration from f ends the walk and Range returns nil.
func (t *TrieMap[V]) Range(prefix string, f func(key string, value *V) error) error {
	it := t.Iterator(prefix)
	for it.HasNext() {
		e, err := it.Next()
		if err != nil {
			return err
		}
		if err := f(e.Key, e.Value); err != nil {
			if errors.Is(err, ErrStopIteration) {
				return nil
			}
			return err
		}
	}
	return nil
}

// advanceToNode returns the node reached by consuming key, or nil if some
// edge along the way is missing.
func (t *TrieMap[V]) advanceToNode(key string) *mapNode[V] {
	curr := t.root
	for i := 0; i < len(key); i++ {
		curr = curr.findChild(key[i])
		if curr == nil {
			return nil
		}
	}
	return curr
}

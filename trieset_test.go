package trie

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPruned checks that no node is both leafless and keyless.
func assertPruned[K any](t *testing.T, s *TrieSet[K]) {
	t.Helper()
	var check func(n *setNode[K])
	check = func(n *setNode[K]) {
		assert.False(t, n.isLeaf() && !n.hasKey, "dangling node at index %d", n.index)
		for i, c := range n.children {
			if c != nil {
				assert.Same(t, n, c.parent)
				assert.Equal(t, uint8(i), c.index)
				check(c)
			}
		}
	}
	for _, root := range s.roots {
		if root != nil {
			assert.Nil(t, root.parent)
			check(root)
		}
	}
}

func TestStringSetExample(t *testing.T) {
	s := NewStringSet()
	assert.True(t, s.Insert("cat"))
	assert.True(t, s.Insert("car"))
	assert.True(t, s.Insert("cart"))
	assert.Equal(t, 3, s.Size())

	assert.Equal(t, 0, s.Count("ca"))
	assert.Equal(t, 1, s.Count("cat"))

	assert.True(t, s.Erase("car"))
	assert.Equal(t, 0, s.Count("car"))
	assert.Equal(t, 1, s.Count("cart"))
	assert.Equal(t, 1, s.Count("cat"))
	assert.Equal(t, 2, s.Size())
	assertPruned(t, s)

	assert.True(t, s.Erase("cart"))
	assert.True(t, s.Erase("cat"))
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, s.nodes())
}

func TestSetInsertDuplicate(t *testing.T) {
	s := NewStringSet()
	assert.True(t, s.Insert("dup"))
	assert.False(t, s.Insert("dup"))
	assert.Equal(t, 1, s.Size())
}

func TestSetEmptyKey(t *testing.T) {
	s := NewStringSet()
	assert.False(t, s.Insert(""))
	assert.Equal(t, 0, s.Count(""))
	assert.False(t, s.Erase(""))
	assert.Equal(t, 0, s.Size())
}

func TestSetEraseMissing(t *testing.T) {
	s := NewStringSet()
	s.Insert("abc")
	nodes := s.nodes()

	assert.False(t, s.Erase("ab"))
	assert.False(t, s.Erase("abcd"))
	assert.False(t, s.Erase("x"))
	assert.Equal(t, 1, s.Size())
	assert.Equal(t, nodes, s.nodes())
}

func TestSetEraseInternalNode(t *testing.T) {
	s := NewStringSet()
	s.Insert("ab")
	s.Insert("abc")
	nodes := s.nodes()

	assert.True(t, s.Erase("ab"))
	assert.Equal(t, nodes, s.nodes(), "internal node must be kept")
	assert.Equal(t, 1, s.Count("abc"))

	assert.True(t, s.Erase("abc"))
	assert.Equal(t, 0, s.nodes())
}

func TestSetEraseKeepsAncestorKey(t *testing.T) {
	s := NewStringSet()
	s.Insert("ab")
	s.Insert("abc")
	withShort := NewStringSet()
	withShort.Insert("ab")

	assert.True(t, s.Erase("abc"))
	assert.Equal(t, withShort.nodes(), s.nodes())
	assert.Equal(t, 1, s.Count("ab"))
	assertPruned(t, s)
}

func TestSetClear(t *testing.T) {
	s := NewStringSet()
	keys := []string{"a", "b", "hello", "help"}
	for _, k := range keys {
		s.Insert(k)
	}
	s.Clear()
	assert.Equal(t, 0, s.Size())
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.nodes())
	for _, k := range keys {
		assert.Equal(t, 0, s.Count(k))
	}

	assert.True(t, s.Insert("a"))
	assert.Equal(t, 1, s.Size())
}

func TestIntegerSet(t *testing.T) {
	s := NewIntegerSet[int]()
	for _, k := range []int{0, 1, 16, 256, 0xabc, -5} {
		assert.True(t, s.Insert(k))
	}
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, 1, s.Count(0))
	assert.Equal(t, 1, s.Count(16))
	assert.Equal(t, 0, s.Count(17))
	assert.Equal(t, 1, s.Count(-5))

	// 0 and 16 share the first digit
	assert.True(t, s.Erase(0))
	assert.Equal(t, 1, s.Count(16))
	assertPruned(t, s)
}

func TestSetRange(t *testing.T) {
	s := NewStringSet()
	keys := []string{"b", "a", "ab", "abc", "ba", "\xff", "\x01"}
	for _, k := range keys {
		s.Insert(k)
	}

	var got []string
	s.Range(func(k string) bool {
		got = append(got, k)
		return true
	})
	sort.Strings(keys)
	assert.Equal(t, keys, got, "nibble order matches byte order")

	got = got[:0]
	s.Range(func(k string) bool {
		got = append(got, k)
		return len(got) < 2
	})
	assert.Len(t, got, 2)
}

type badDigits struct{}

func (badDigits) Valid() bool { return true }
func (badDigits) Value() int  { return SetRadix }
func (badDigits) Next() error { return nil }

func TestSetDigitOutOfRange(t *testing.T) {
	s := NewTrieSet(func(int) DigitIterator { return badDigits{} })
	assert.PanicsWithError(t, fmt.Sprintf("%v: digit 16 out of range", ErrInvariantViolation), func() {
		s.Insert(1)
	})
}

func TestSetDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	s := NewStringSet(WithLogger(logger))
	s.Insert("a")
	s.Erase("a")

	out := buf.String()
	assert.Contains(t, out, "created set node")
	assert.Contains(t, out, "pruned set node")
}

func TestSetRandomOps(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	s := NewIntegerSet[uint32]()
	ref := map[uint32]bool{}

	for i := 0; i < 5000; i++ {
		k := uint32(rnd.Intn(512))
		if rnd.Intn(3) == 0 {
			assert.Equal(t, ref[k], s.Erase(k))
			delete(ref, k)
		} else {
			assert.Equal(t, !ref[k], s.Insert(k))
			ref[k] = true
		}
	}
	require.Equal(t, len(ref), s.Size())
	for k := uint32(0); k < 512; k++ {
		expected := 0
		if ref[k] {
			expected = 1
		}
		assert.Equal(t, expected, s.Count(k))
	}
	assertPruned(t, s)

	for k := range ref {
		s.Erase(k)
	}
	assert.Equal(t, 0, s.nodes())
}

func TestBigKeySetStringSet(t *testing.T) {
	keys := sample(getKeys("1mvl5_10"), 20000)
	s := NewStringSet()
	for _, k := range keys {
		s.Insert(k)
	}
	for _, k := range keys {
		assert.Equal(t, 1, s.Count(k))
	}
	for _, k := range keys {
		s.Erase(k)
	}
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, s.nodes())
}

func BenchmarkWordsSetInsert(b *testing.B) {
	benchBigKeySet(b, func(b *testing.B, fn string, keys []string) {
		n := len(keys)
		b.ResetTimer()

		for i := 0; i < b.N/n; i++ {
			s := NewStringSet()
			for _, k := range keys {
				s.Insert(k)
			}
		}
	})
}

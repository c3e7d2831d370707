package trie

import (
	"errors"

	"github.com/rs/zerolog"
)

const (
	// SetRadix is the branching factor of a TrieSet node.
	SetRadix = 16

	// nibble decomposition of a byte
	nibbleBits = 4
	nibbleMask = 0x0f
)

var (
	ErrNoMoreNodes            = errors.New("there are no more nodes in the tree")
	ErrDigitsExhausted        = errors.New("digit iterator out of range")
	ErrConcurrentModification = errors.New("trie modified during iteration")
	ErrInvariantViolation     = errors.New("trie invariant violated")

	// ErrStopIteration may be returned from a Range callback to stop the
	// walk early; Range itself then returns nil.
	ErrStopIteration = errors.New("stop iteration")
)

type (
	// edge from a map node to one of its children
	child[V any] struct {
		ch   byte
		node *mapNode[V]
	}

	// children sorted ascending by ch
	children[V any] []child[V]

	mapNode[V any] struct {
		ch       byte
		children children[V]
		parent   *mapNode[V]
		value    *V
		terminal bool
	}

	// TrieMap maps byte strings to shared value handles and iterates them
	// in lexicographic order. It is not safe for concurrent use.
	TrieMap[V any] struct {
		root *mapNode[V]
		size int
		// bumped on every structural change, checked by iterators
		gen uint64
		log zerolog.Logger
	}

	// MapIterator walks the terminal nodes of a TrieMap in key order.
	MapIterator[V any] struct {
		owner *TrieMap[V]
		node  *mapNode[V]
		// ascent never goes above bound
		bound *mapNode[V]
		key   []byte
		gen   uint64
	}

	// Entry is one key/value pair produced by a MapIterator.
	Entry[V any] struct {
		Key   string
		Value *V
	}

	setNode[K any] struct {
		key      K
		hasKey   bool
		children [SetRadix]*setNode[K]
		parent   *setNode[K]
		index    uint8
	}

	// TrieSet is a set of keys stored in a 16-way trie over the digits
	// produced by a DigitIterator. It is not safe for concurrent use.
	TrieSet[K any] struct {
		roots  [SetRadix]*setNode[K]
		size   int
		digits func(K) DigitIterator
		log    zerolog.Logger
	}

	options struct {
		logger zerolog.Logger
	}

	// Option configures a TrieMap or TrieSet.
	Option func(*options)
)

// WithLogger sets the logger used for node level debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newMapNode[V any](ch byte, parent *mapNode[V]) *mapNode[V] {
	return &mapNode[V]{
		ch:     ch,
		parent: parent,
	}
}

func newSetNode[K any](index uint8, parent *setNode[K]) *setNode[K] {
	return &setNode[K]{
		index:  index,
		parent: parent,
	}
}

package trie

import (
	"golang.org/x/exp/constraints"
)

// DigitIterator decomposes one key into a finite sequence of small digits.
// Callers must check Valid before reading Value or calling Next.
type DigitIterator interface {
	Valid() bool
	Value() int
	Next() error
}

func NewTrieMap[V any](opts ...Option) *TrieMap[V] {
	o := buildOptions(opts)
	return &TrieMap[V]{
		root: newMapNode[V](0, nil),
		log:  o.logger,
	}
}

// NewTrieSet returns an empty set whose keys are decomposed by digits.
// Every digit produced must be below SetRadix.
func NewTrieSet[K any](digits func(K) DigitIterator, opts ...Option) *TrieSet[K] {
	o := buildOptions(opts)
	return &TrieSet[K]{
		digits: digits,
		log:    o.logger,
	}
}

func NewStringSet(opts ...Option) *TrieSet[string] {
	return NewTrieSet(func(key string) DigitIterator {
		return NewStringDigits(key)
	}, opts...)
}

func NewIntegerSet[K constraints.Integer](opts ...Option) *TrieSet[K] {
	return NewTrieSet(func(key K) DigitIterator {
		return NewIntegerDigits(key, SetRadix)
	}, opts...)
}

package repl

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/e11jah/trie"
)

var ErrInvalidKey = errors.New("invalid key")

// Store is the set surface the shell drives. Keys arrive as raw tokens.
type Store interface {
	Insert(key string) error
	Erase(key string) error
	Count(key string) (int, error)
	Digits(key string) ([]int, error)
	Size() int
	Clear()
}

type stringStore struct {
	set *trie.TrieSet[string]
}

// NewStringStore wraps a set of string keys.
func NewStringStore(set *trie.TrieSet[string]) Store {
	return &stringStore{set: set}
}

func (s *stringStore) Insert(key string) error {
	s.set.Insert(key)
	return nil
}

func (s *stringStore) Erase(key string) error {
	s.set.Erase(key)
	return nil
}

func (s *stringStore) Count(key string) (int, error) {
	return s.set.Count(key), nil
}

func (s *stringStore) Digits(key string) ([]int, error) {
	return trie.Digits(trie.NewStringDigits(key))
}

func (s *stringStore) Size() int {
	return s.set.Size()
}

func (s *stringStore) Clear() {
	s.set.Clear()
}

type intStore struct {
	set *trie.TrieSet[int64]
}

// NewIntStore wraps a set of integer keys parsed from base 10 tokens.
func NewIntStore(set *trie.TrieSet[int64]) Store {
	return &intStore{set: set}
}

func parseInt(key string) (int64, error) {
	n, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidKey, key)
	}
	return n, nil
}

func (s *intStore) Insert(key string) error {
	n, err := parseInt(key)
	if err != nil {
		return err
	}
	s.set.Insert(n)
	return nil
}

func (s *intStore) Erase(key string) error {
	n, err := parseInt(key)
	if err != nil {
		return err
	}
	s.set.Erase(n)
	return nil
}

func (s *intStore) Count(key string) (int, error) {
	n, err := parseInt(key)
	if err != nil {
		return 0, err
	}
	return s.set.Count(n), nil
}

func (s *intStore) Digits(key string) ([]int, error) {
	n, err := parseInt(key)
	if err != nil {
		return nil, err
	}
	return trie.Digits(trie.NewIntegerDigits(n, trie.SetRadix))
}

func (s *intStore) Size() int {
	return s.set.Size()
}

func (s *intStore) Clear() {
	s.set.Clear()
}

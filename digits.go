package trie

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// IntegerDigits yields the digits of an integer key, least significant
// first. Negative keys are decomposed as their two's complement uint64.
type IntegerDigits struct {
	current uint64
	radix   uint64
	valid   bool
}

// ByteDigits yields two radix 16 digits per byte, high nibble first.
type ByteDigits struct {
	key     []byte
	pos     int
	lowHalf bool
}

var (
	_ DigitIterator = (*IntegerDigits)(nil)
	_ DigitIterator = (*ByteDigits)(nil)
)

// NewIntegerDigits panics if radix < 2.
func NewIntegerDigits[T constraints.Integer](key T, radix uint64) *IntegerDigits {
	if radix < 2 {
		panic(fmt.Sprintf("trie: invalid radix %d", radix))
	}
	// key 0 still produces the single digit 0
	return &IntegerDigits{
		current: uint64(key),
		radix:   radix,
		valid:   true,
	}
}

func (it *IntegerDigits) Valid() bool {
	return it.valid
}

func (it *IntegerDigits) Value() int {
	return int(it.current % it.radix)
}

func (it *IntegerDigits) Next() error {
	if !it.valid {
		return ErrDigitsExhausted
	}
	it.current /= it.radix
	it.valid = it.current != 0
	return nil
}

func NewStringDigits(key string) *ByteDigits {
	return &ByteDigits{key: []byte(key)}
}

// NewBytesDigits does not copy key; it must not change while iterating.
func NewBytesDigits(key []byte) *ByteDigits {
	return &ByteDigits{key: key}
}

func (it *ByteDigits) Valid() bool {
	return it.pos < len(it.key)
}

func (it *ByteDigits) Value() int {
	c := it.key[it.pos]
	if it.lowHalf {
		return int(c & nibbleMask)
	}
	return int(c >> nibbleBits)
}

func (it *ByteDigits) Next() error {
	if !it.Valid() {
		return ErrDigitsExhausted
	}
	if !it.lowHalf {
		it.lowHalf = true
		return nil
	}
	it.lowHalf = false
	it.pos++
	return nil
}

// Digits drains it and returns every digit it produced.
func Digits(it DigitIterator) ([]int, error) {
	var out []int
	for it.Valid() {
		out = append(out, it.Value())
		if err := it.Next(); err != nil {
			return out, err
		}
	}
	return out, nil
}

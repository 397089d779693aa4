package spread

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"
	"golang.org/x/exp/constraints"
)

// IntHasher hashes integers deterministically with One64.
type IntHasher[T constraints.Integer] struct{}

var _ immutable.Hasher[int] = IntHasher[int]{}

func (IntHasher[T]) Hash(key T) uint32 { return Fold64(One64(uint64(key))) }

func (IntHasher[T]) Equal(a, b T) bool { return a == b }

// seed is fixed for the life of the process so that equal keys always hash alike.
var seed = maphash.MakeSeed()

// Hasher hashes any comparable value with hash/maphash and spreads the result
// with Two64. Hashes differ between processes.
type Hasher[T comparable] struct{}

var _ immutable.Hasher[string] = Hasher[string]{}

func (Hasher[T]) Hash(key T) uint32 { return Fold64(Two64(maphash.Comparable(seed, key))) }

func (Hasher[T]) Equal(a, b T) bool { return a == b }

// NewHasher returns IntHasher for the built-in integer types and Hasher otherwise.
func NewHasher[T comparable]() (hasher immutable.Hasher[T]) {
	var h any
	switch any(*new(T)).(type) {
	case int:
		h = IntHasher[int]{}
	case int8:
		h = IntHasher[int8]{}
	case int16:
		h = IntHasher[int16]{}
	case int32:
		h = IntHasher[int32]{}
	case int64:
		h = IntHasher[int64]{}
	case uint:
		h = IntHasher[uint]{}
	case uint8:
		h = IntHasher[uint8]{}
	case uint16:
		h = IntHasher[uint16]{}
	case uint32:
		h = IntHasher[uint32]{}
	case uint64:
		h = IntHasher[uint64]{}
	default:
		return Hasher[T]{}
	}
	hasher = h.(immutable.Hasher[T])
	return
}

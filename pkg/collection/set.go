// Package collection provides the materialized containers that lazy pipelines
// drain into: hash sets and bags on persistent hash array mapped tries, and
// sorted sets on B-trees.
package collection

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/spread"
	"github.com/dball/intervals/pkg/types"
)

// Set is an immutable set of distinct values. Operations that change a set
// return a new set sharing structure with the original.
type Set[T comparable] struct {
	m *immutable.Map[T, types.Void]
}

// NewSet returns a set of the given values.
func NewSet[T comparable](values ...T) *Set[T] {
	return SetOf[T](iterator.Slice[T](values))
}

// SetOf returns a set of the values in the given collection.
func SetOf[T comparable](coll iterator.Collection[T]) *Set[T] {
	builder := immutable.NewMapBuilder[T, types.Void](spread.NewHasher[T]())
	coll.Each(func(value T) bool {
		builder.Set(value, types.Void{})
		return true
	})
	return &Set[T]{m: builder.Map()}
}

func (set *Set[T]) Len() int {
	return set.m.Len()
}

func (set *Set[T]) Contains(value T) (extant bool) {
	_, extant = set.m.Get(value)
	return
}

// With returns a set that also contains the given value.
func (set *Set[T]) With(value T) *Set[T] {
	if set.Contains(value) {
		return set
	}
	return &Set[T]{m: set.m.Set(value, types.Void{})}
}

// Without returns a set that does not contain the given value.
func (set *Set[T]) Without(value T) *Set[T] {
	if !set.Contains(value) {
		return set
	}
	return &Set[T]{m: set.m.Delete(value)}
}

// Each enumerates the set's values in no particular order.
func (set *Set[T]) Each(accept iterator.Accept[T]) {
	itr := set.m.Iterator()
	for !itr.Done() {
		value, _, _ := itr.Next()
		if !accept(value) {
			return
		}
	}
}

func (set *Set[T]) All() iter.Seq[T] {
	return iterator.All[T](set)
}

func (set *Set[T]) ToSlice() []T {
	values := make([]T, 0, set.Len())
	set.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Equal returns true if both sets contain exactly the same values.
func (set *Set[T]) Equal(other *Set[T]) (equal bool) {
	if set.Len() != other.Len() {
		return false
	}
	equal = true
	set.Each(func(value T) bool {
		equal = other.Contains(value)
		return equal
	})
	return
}

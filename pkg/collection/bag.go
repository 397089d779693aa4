package collection

import (
	"iter"

	"github.com/benbjohnson/immutable"
	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/spread"
)

// Bag is an immutable multiset, counting the occurrences of each distinct value.
type Bag[T comparable] struct {
	m    *immutable.Map[T, int]
	size int
}

func NewBag[T comparable](values ...T) *Bag[T] {
	return BagOf[T](iterator.Slice[T](values))
}

// BagOf returns a bag of the values in the given collection.
func BagOf[T comparable](coll iterator.Collection[T]) *Bag[T] {
	builder := immutable.NewMapBuilder[T, int](spread.NewHasher[T]())
	size := 0
	coll.Each(func(value T) bool {
		count, _ := builder.Get(value)
		builder.Set(value, count+1)
		size++
		return true
	})
	return &Bag[T]{m: builder.Map(), size: size}
}

// Len returns the total number of occurrences in the bag.
func (bag *Bag[T]) Len() int {
	return bag.size
}

func (bag *Bag[T]) DistinctLen() int {
	return bag.m.Len()
}

func (bag *Bag[T]) Occurrences(value T) (count int) {
	count, _ = bag.m.Get(value)
	return
}

func (bag *Bag[T]) Contains(value T) bool {
	return bag.Occurrences(value) > 0
}

// With returns a bag with one more occurrence of the given value.
func (bag *Bag[T]) With(value T) *Bag[T] {
	return &Bag[T]{m: bag.m.Set(value, bag.Occurrences(value)+1), size: bag.size + 1}
}

// Each enumerates every occurrence in the bag, grouped by value.
func (bag *Bag[T]) Each(accept iterator.Accept[T]) {
	for value, count := range bag.All() {
		for i := 0; i < count; i++ {
			if !accept(value) {
				return
			}
		}
	}
}

// All yields each distinct value with its count, in no particular order.
func (bag *Bag[T]) All() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		itr := bag.m.Iterator()
		for !itr.Done() {
			value, count, _ := itr.Next()
			if !yield(value, count) {
				return
			}
		}
	}
}

// Equal returns true if both bags hold the same values with the same counts.
func (bag *Bag[T]) Equal(other *Bag[T]) bool {
	if bag.size != other.size || bag.DistinctLen() != other.DistinctLen() {
		return false
	}
	for value, count := range bag.All() {
		if other.Occurrences(value) != count {
			return false
		}
	}
	return true
}

package collection

import (
	"iter"

	"github.com/dball/intervals/pkg/iterator"
	"github.com/google/btree"
)

// DefaultDegree is the B-tree degree used when none is given.
const DefaultDegree = 32

// SortedSet maintains an ordered set of values. Sorted sets are safe for concurrent read
// operations but are not safe for concurrent write operations, including cloning.
type SortedSet[T any] struct {
	tree *btree.BTreeG[T]
	less Lesser[T]
}

// NewSortedSet returns an empty sorted set backed by a btree of the given degree that
// orders values according to the given lesser function. Values for which neither is
// less than the other are considered equal.
func NewSortedSet[T any](degree int, less Lesser[T]) *SortedSet[T] {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &SortedSet[T]{tree: btree.NewG(degree, btree.LessFunc[T](less)), less: less}
}

// SortedSetOf returns a sorted set of the values in the given collection.
func SortedSetOf[T any](coll iterator.Collection[T], less Lesser[T]) *SortedSet[T] {
	set := NewSortedSet(DefaultDegree, less)
	coll.Each(func(value T) bool {
		set.Insert(value)
		return true
	})
	return set
}

func (set *SortedSet[T]) Len() int {
	return set.tree.Len()
}

func (set *SortedSet[T]) Contains(value T) bool {
	return set.tree.Has(value)
}

// Insert ensures the given value is present in the set, returning true if it was already.
// An extant value is retained rather than replaced.
func (set *SortedSet[T]) Insert(value T) (extant bool) {
	extant = set.tree.Has(value)
	if !extant {
		set.tree.ReplaceOrInsert(value)
	}
	return
}

// Delete ensures the given value is not present in the set, returning true if it was.
func (set *SortedSet[T]) Delete(value T) (extant bool) {
	_, extant = set.tree.Delete(value)
	return
}

// Clone returns a copy of the set. Both the original and the clone may be changed hereafter
// without either affecting the other.
func (set *SortedSet[T]) Clone() *SortedSet[T] {
	return &SortedSet[T]{tree: set.tree.Clone(), less: set.less}
}

func (set *SortedSet[T]) Min() (T, bool) {
	return set.tree.Min()
}

func (set *SortedSet[T]) Max() (T, bool) {
	return set.tree.Max()
}

// Each enumerates the set in ascending order.
func (set *SortedSet[T]) Each(accept iterator.Accept[T]) {
	set.tree.Ascend(btree.ItemIteratorG[T](accept))
}

func (set *SortedSet[T]) All() iter.Seq[T] {
	return iterator.All[T](set)
}

func (set *SortedSet[T]) Descending() iter.Seq[T] {
	return func(yield func(T) bool) {
		set.tree.Descend(btree.ItemIteratorG[T](yield))
	}
}

// Range yields the values in [lo, hi) in ascending order.
func (set *SortedSet[T]) Range(lo T, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		set.tree.AscendRange(lo, hi, btree.ItemIteratorG[T](yield))
	}
}

func (set *SortedSet[T]) ToSlice() []T {
	values := make([]T, 0, set.Len())
	set.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

package interval

import (
	"github.com/benbjohnson/immutable"
	"github.com/dball/intervals/internal/arith"
	"github.com/dball/intervals/pkg/collection"
	"github.com/dball/intervals/pkg/lazy"
	"github.com/dball/intervals/pkg/types"
)

var (
	_ lazy.Window[int]  = Interval[int]{}
	_ lazy.Indexed[int] = Interval[int]{}
)

// Len returns the number of values in the interval.
func (iv Interval[T]) Len() int {
	return iv.size
}

// Size is an alias of Len.
func (iv Interval[T]) Size() int {
	return iv.size
}

func (iv Interval[T]) IsEmpty() bool {
	return iv.size == 0
}

func (iv Interval[T]) at(index int) T {
	return arith.At(index, iv.from, iv.step)
}

func (iv Interval[T]) outOfRange(op string, index int) types.Error {
	return types.NewError(types.ErrIndexOutOfRange, "interval."+op+".indexOutOfRange", "index", index, "size", iv.size)
}

// Get returns the value at index, failing outside [0, Len()).
func (iv Interval[T]) Get(index int) (value T, err error) {
	if index < 0 || index >= iv.size {
		err = iv.outOfRange("get", index)
		return
	}
	value = iv.at(index)
	return
}

// At returns the value at index, panicking outside [0, Len()) as slice indexing does.
func (iv Interval[T]) At(index int) T {
	if index < 0 || index >= iv.size {
		panic(iv.outOfRange("at", index))
	}
	return iv.at(index)
}

func (iv Interval[T]) First() (value T, ok bool) {
	if iv.size > 0 {
		value, ok = iv.from, true
	}
	return
}

func (iv Interval[T]) Last() (value T, ok bool) {
	if iv.size > 0 {
		value, ok = iv.at(iv.size-1), true
	}
	return
}

// IndexOf returns the position of value in the interval, or -1.
func (iv Interval[T]) IndexOf(value T) int {
	if iv.size == 0 {
		return -1
	}
	return arith.IndexOf(value, iv.from, iv.to, iv.step)
}

// LastIndexOf is IndexOf, since values never repeat.
func (iv Interval[T]) LastIndexOf(value T) int {
	return iv.IndexOf(value)
}

func (iv Interval[T]) Contains(value T) bool {
	return iv.IndexOf(value) >= 0
}

func (iv Interval[T]) ContainsAll(values ...T) bool {
	for _, value := range values {
		if !iv.Contains(value) {
			return false
		}
	}
	return true
}

func (iv Interval[T]) sub(i, j int) Interval[T] {
	if i == j {
		return empty[T]()
	}
	from := iv.at(i)
	to := iv.at(j - 1)
	step := iv.step
	if i == j-1 {
		// A lone value may come from a step that cannot be reversed later.
		step = 1
	}
	return Interval[T]{from: from, to: to, step: step, size: j - i}
}

// SubList returns the interval of the values at [i, j), failing unless 0 <= i <= j <= Len().
func (iv Interval[T]) SubList(i, j int) (Interval[T], error) {
	if i < 0 || j > iv.size || i > j {
		return Interval[T]{}, types.NewError(types.ErrIndexOutOfRange, "interval.subList.indexOutOfRange", "from", i, "to", j, "size", iv.size)
	}
	return iv.sub(i, j), nil
}

// Window is SubList for lazy pipelines, which only ask for valid windows.
func (iv Interval[T]) Window(i, j int) lazy.Window[T] {
	return Must(iv.SubList(i, j))
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(types.NewError(types.ErrInvalidArgument, "interval."+op+".negativeCount", "count", n))
	}
}

// Take returns the first n values, panicking if n is negative.
func (iv Interval[T]) Take(n int) Interval[T] {
	checkCount("take", n)
	if n >= iv.size {
		return iv
	}
	return iv.sub(0, n)
}

// Drop returns all but the first n values, panicking if n is negative.
func (iv Interval[T]) Drop(n int) Interval[T] {
	checkCount("drop", n)
	if n == 0 {
		return iv
	}
	if n >= iv.size {
		return empty[T]()
	}
	return iv.sub(n, iv.size)
}

// Distinct returns the interval itself, whose values never repeat.
func (iv Interval[T]) Distinct() Interval[T] {
	return iv
}

func (iv Interval[T]) DistinctByConstruction() bool {
	return true
}

// ReverseThis returns the interval of the same values in reverse order. It panics for
// the few two-element intervals whose step is the minimum value of T, whose reverse
// has no representable step.
func (iv Interval[T]) ReverseThis() Interval[T] {
	switch iv.size {
	case 0:
		return iv
	case 1:
		return From(iv.from)
	}
	if -iv.step == iv.step {
		panic(types.NewError(types.ErrInvalidState, "interval.reverseThis.unrepresentable", "from", iv.from, "step", iv.step))
	}
	last := iv.at(iv.size - 1)
	return Interval[T]{from: last, to: iv.from, step: -iv.step, size: iv.size}
}

// Equal returns true if other yields the same values in the same order.
func (iv Interval[T]) Equal(other lazy.Source[T]) bool {
	if o, ok := other.(Interval[T]); ok {
		switch {
		case iv.size != o.size:
			return false
		case iv.size == 0:
			return true
		case iv.size == 1:
			return iv.from == o.from
		default:
			return iv.from == o.from && iv.step == o.step
		}
	}
	return lazy.Equal[T](iv, other)
}

// Hash returns the hash of the values in order, which agrees with lazy.HashInts of any
// equal source.
func (iv Interval[T]) Hash() uint32 {
	return lazy.HashInts[T](iv)
}

func (iv Interval[T]) ToSlice() []T {
	values := make([]T, 0, iv.size)
	iv.ForEach(func(value T) {
		values = append(values, value)
	})
	return values
}

func (iv Interval[T]) ToList() *immutable.List[T] {
	return iv.AsLazy().ToList()
}

func (iv Interval[T]) ToSet() *collection.Set[T] {
	return collection.SetOf[T](iv)
}

func (iv Interval[T]) ToBag() *collection.Bag[T] {
	return collection.BagOf[T](iv)
}

// ToSortedSet returns the values in ascending order.
func (iv Interval[T]) ToSortedSet() *collection.SortedSet[T] {
	return collection.SortedSetOf[T](iv, collection.Less[T])
}

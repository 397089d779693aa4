package interval

import (
	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/types"
	"golang.org/x/exp/constraints"
)

// FixedList presents an interval in the shape of a mutable list for code that expects
// one. It reads through to the interval and refuses every change.
type FixedList[T constraints.Signed] struct {
	iv Interval[T]
}

// AsFixedList returns the interval as a FixedList.
func (iv Interval[T]) AsFixedList() FixedList[T] {
	return FixedList[T]{iv: iv}
}

func (list FixedList[T]) Interval() Interval[T] {
	return list.iv
}

func (list FixedList[T]) Len() int {
	return list.iv.Len()
}

func (list FixedList[T]) Get(index int) (T, error) {
	return list.iv.Get(index)
}

func (list FixedList[T]) IndexOf(value T) int {
	return list.iv.IndexOf(value)
}

func (list FixedList[T]) Contains(value T) bool {
	return list.iv.Contains(value)
}

func (list FixedList[T]) Each(accept iterator.Accept[T]) {
	list.iv.Each(accept)
}

// GetOnly returns the sole value of a single element list.
func (list FixedList[T]) GetOnly() (value T, err error) {
	if list.iv.Len() != 1 {
		err = types.NewError(types.ErrInvalidState, "interval.getOnly.size", "size", list.iv.Len())
		return
	}
	return list.iv.from, nil
}

func unsupported(op string) error {
	return types.NewError(types.ErrUnsupportedOperation, "interval."+op+".immutable")
}

func (list FixedList[T]) Add(value T) error {
	return unsupported("add")
}

func (list FixedList[T]) AddAll(values ...T) error {
	return unsupported("addAll")
}

func (list FixedList[T]) Remove(value T) error {
	return unsupported("remove")
}

func (list FixedList[T]) RemoveAt(index int) error {
	return unsupported("removeAt")
}

func (list FixedList[T]) Set(index int, value T) error {
	return unsupported("set")
}

func (list FixedList[T]) Clear() error {
	return unsupported("clear")
}

package lazy

import (
	"fmt"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/dball/intervals/pkg/collection"
	"github.com/dball/intervals/pkg/iterator"
)

func (seq *Seq[T]) ToSlice() []T {
	values := []T{}
	if w, ok := seq.window(); ok {
		values = make([]T, 0, w.Len())
	}
	seq.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (seq *Seq[T]) ToList() *immutable.List[T] {
	builder := immutable.NewListBuilder[T]()
	seq.Each(func(value T) bool {
		builder.Append(value)
		return true
	})
	return builder.List()
}

func ToSet[T comparable](seq *Seq[T]) *collection.Set[T] {
	return collection.SetOf[T](seq)
}

func ToBag[T comparable](seq *Seq[T]) *collection.Bag[T] {
	return collection.BagOf[T](seq)
}

func (seq *Seq[T]) ToSortedSet(less collection.Lesser[T]) *collection.SortedSet[T] {
	return collection.SortedSetOf[T](seq, less)
}

func (seq *Seq[T]) Count() (count int) {
	if w, ok := seq.window(); ok {
		return w.Len()
	}
	seq.Each(func(T) bool {
		count++
		return true
	})
	return
}

func (seq *Seq[T]) IsEmpty() bool {
	_, ok := seq.First()
	return !ok
}

// First returns the first value, if any.
func (seq *Seq[T]) First() (first T, ok bool) {
	seq.Each(func(value T) bool {
		first, ok = value, true
		return false
	})
	return
}

// Detect returns the first value that satisfies pred, if any.
func (seq *Seq[T]) Detect(pred func(T) bool) (T, bool) {
	return seq.Select(pred).First()
}

func (seq *Seq[T]) AnySatisfy(pred func(T) bool) bool {
	_, ok := seq.Detect(pred)
	return ok
}

func (seq *Seq[T]) AllSatisfy(pred func(T) bool) bool {
	return !seq.AnySatisfy(func(value T) bool { return !pred(value) })
}

func (seq *Seq[T]) NoneSatisfy(pred func(T) bool) bool {
	return !seq.AnySatisfy(pred)
}

// MakeString formats the values with fmt's default format, separated by sep and
// enclosed by start and end.
func (seq *Seq[T]) MakeString(start string, sep string, end string) string {
	var b strings.Builder
	b.WriteString(start)
	first := true
	seq.Each(func(value T) bool {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, value)
		return true
	})
	b.WriteString(end)
	return b.String()
}

// InjectInto folds the values into init with fn, in order.
func InjectInto[T any, U any](seq *Seq[T], init U, fn func(U, T) U) U {
	it := seq.Iterator()
	defer it.Stop()
	return iterator.Reduce(it, fn, init)
}

// Package iterator provides forwards-only iterators over enumerable, potentially infinite collections, allowing for early termination.
package iterator

import "iter"

// Accept is a predicate that receives a value from an iterator
// and returns true if more values are desired.
type Accept[T any] func(T) bool

// Collection is a source for iterable values.
type Collection[T any] interface {
	Each(Accept[T])
}

// Func adapts a push function to a Collection.
type Func[T any] func(Accept[T])

func (fn Func[T]) Each(accept Accept[T]) {
	fn(accept)
}

// All returns a range-over-func sequence for the collection.
func All[T any](coll Collection[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		coll.Each(Accept[T](yield))
	}
}

// Seq adapts a range-over-func sequence to a Collection.
type Seq[T any] iter.Seq[T]

func (seq Seq[T]) Each(accept Accept[T]) {
	seq(accept)
}

// Iterator is a lazy, forwards-only iterator over an iterable collection with early termination.
type Iterator[T any] struct {
	next    func() (T, bool)
	stop    func()
	current T
}

// BuildIterator returns a reference to an iterator for the given collection.
//
// Nothing is read from the collection until the first call to Next. Iterators
// that are abandoned before exhaustion should be stopped.
func BuildIterator[T any](coll Collection[T]) *Iterator[T] {
	next, stop := iter.Pull(All(coll))
	return &Iterator[T]{next: next, stop: stop}
}

// Next advances the iterator, returning true if successful.
func (it *Iterator[T]) Next() (ok bool) {
	it.current, ok = it.next()
	return
}

// Value returns the value of the iterable collection at the current position of the iterator.
func (it *Iterator[T]) Value() T {
	return it.current
}

// Stop invalidates the iterator, useful for partial iteration over lazy sequences.
// It is safe to call more than once.
func (it *Iterator[T]) Stop() {
	it.stop()
}

// Drain returns a slice of the values remaining in the iterator.
//
// This is not advisable on infinite sequences.
func (it *Iterator[T]) Drain() []T {
	values := []T{}
	for it.Next() {
		values = append(values, it.Value())
	}
	return values
}

// Reduce fully reduces the iterated collection by adding the values sequentially to the given init value.
func Reduce[T any, U any](it *Iterator[T], add func(U, T) U, init U) U {
	result := init
	for it.Next() {
		result = add(result, it.Value())
	}
	return result
}

// Iterators is a collection of iterators that will be iterated consecutively.
type Iterators[T any] []*Iterator[T]

func (iters Iterators[T]) Each(accept Accept[T]) {
	for i, it := range iters {
		for it.Next() {
			if !accept(it.Value()) {
				for j := i; j < len(iters); j++ {
					iters[j].Stop()
				}
				return
			}
		}
	}
}

// Collections is a collection of collections that will be enumerated consecutively.
// Unlike Iterators it may be enumerated any number of times.
type Collections[T any] []Collection[T]

func (colls Collections[T]) Each(accept Accept[T]) {
	for _, coll := range colls {
		more := true
		coll.Each(func(value T) bool {
			more = accept(value)
			return more
		})
		if !more {
			return
		}
	}
}

// Slice is a wrapper type for slices.
type Slice[T any] []T

func (slice Slice[T]) Each(accept Accept[T]) {
	for _, value := range slice {
		if !accept(value) {
			return
		}
	}
}

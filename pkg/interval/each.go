package interval

import (
	"context"
	"iter"
	"sync"

	"github.com/dball/intervals/pkg/executor"
	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/lazy"
	"github.com/dball/intervals/pkg/types"
	"golang.org/x/exp/constraints"
)

// Each passes the values in order to accept until it returns false.
func (iv Interval[T]) Each(accept iterator.Accept[T]) {
	if iv.size == 0 {
		return
	}
	value := iv.from
	for i := 1; accept(value) && i < iv.size; i++ {
		value += iv.step
	}
}

func (iv Interval[T]) All() iter.Seq[T] {
	return iterator.All[T](iv)
}

func (iv Interval[T]) ForEach(proc func(T)) {
	iv.Each(func(value T) bool {
		proc(value)
		return true
	})
}

func (iv Interval[T]) ForEachWithIndex(proc func(T, int)) {
	index := 0
	iv.Each(func(value T) bool {
		proc(value, index)
		index++
		return true
	})
}

// ForEachInRange calls proc with the values at the indexes from start to end inclusive,
// in descending order of index if start is greater than end.
func (iv Interval[T]) ForEachInRange(start, end int, proc func(T)) error {
	for _, index := range []int{start, end} {
		if index < 0 || index >= iv.size {
			return iv.outOfRange("forEachInRange", index)
		}
	}
	if start <= end {
		for i := start; i <= end; i++ {
			proc(iv.at(i))
		}
	} else {
		for i := start; i >= end; i-- {
			proc(iv.at(i))
		}
	}
	return nil
}

// ForEachParallel dispatches proc for each value to exec and waits for every call to
// return. If ctx is done first, it stops dispatching and returns the context's error;
// calls already dispatched continue on the executor.
func (iv Interval[T]) ForEachParallel(ctx context.Context, proc func(T), exec executor.Executor) (err error) {
	var wg sync.WaitGroup
	iv.Each(func(value T) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		wg.Add(1)
		exec.Execute(func() {
			defer wg.Done()
			proc(value)
		})
		return true
	})
	if err != nil {
		return
	}
	done := make(chan types.Void)
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		err = ctx.Err()
	}
	return
}

// Run dispatches fn for each value to exec and returns without waiting.
func (iv Interval[T]) Run(fn func(T), exec executor.Executor) {
	iv.ForEach(func(value T) {
		exec.Execute(func() { fn(value) })
	})
}

// AsLazy returns a lazy sequence of the interval's values.
func (iv Interval[T]) AsLazy() *lazy.Seq[T] {
	return lazy.FromSource[T](iv)
}

// AsReversed returns a lazy reversed view of the interval.
func (iv Interval[T]) AsReversed() *lazy.Seq[T] {
	return lazy.AsReversed[T](iv)
}

func (iv Interval[T]) Select(pred func(T) bool) *lazy.Seq[T] {
	return iv.AsLazy().Select(pred)
}

func (iv Interval[T]) Reject(pred func(T) bool) *lazy.Seq[T] {
	return iv.AsLazy().Reject(pred)
}

// Collect returns a lazy sequence of the interval's values transformed by fn.
func Collect[T constraints.Signed, U any](iv Interval[T], fn func(T) U) *lazy.Seq[U] {
	return lazy.Collect(iv.AsLazy(), fn)
}

package lazy

import "github.com/dball/intervals/pkg/iterator"

// Source is anything a pipeline can enumerate. Sources that are pure functions of their
// state, e.g. slices and intervals, may be enumerated any number of times.
type Source[T any] interface {
	iterator.Collection[T]
}

// Indexed is a finite sequence with random access.
type Indexed[T any] interface {
	Len() int
	At(index int) T
}

// Window is an indexed source that can be sub-ranged in constant time. Window(i, j)
// returns the elements at [i, j), with 0 <= i <= j <= Len(). The bounds are fixed when
// Window is called, so Seq.Take and Seq.Drop over a Window read its length once, when
// the pipeline is built, not on each enumeration.
type Window[T any] interface {
	Source[T]
	Indexed[T]
	Window(i int, j int) Window[T]
}

// distinct is implemented by sources whose elements never repeat.
type distinct interface {
	DistinctByConstruction() bool
}

func isDistinct(src any) bool {
	d, ok := src.(distinct)
	return ok && d.DistinctByConstruction()
}

// SliceSource is a source over a slice.
type SliceSource[T any] []T

func (s SliceSource[T]) Each(accept iterator.Accept[T]) {
	iterator.Slice[T](s).Each(accept)
}

func (s SliceSource[T]) Len() int {
	return len(s)
}

func (s SliceSource[T]) At(index int) T {
	return s[index]
}

func (s SliceSource[T]) Window(i int, j int) Window[T] {
	return s[i:j:j]
}

// span is a fixed window onto an indexed sequence.
type span[T any] struct {
	src Indexed[T]
	lo  int
	hi  int
}

func (s span[T]) Each(accept iterator.Accept[T]) {
	for i := s.lo; i < s.hi; i++ {
		if !accept(s.src.At(i)) {
			return
		}
	}
}

func (s span[T]) Len() int {
	return s.hi - s.lo
}

func (s span[T]) At(index int) T {
	return s.src.At(s.lo + index)
}

func (s span[T]) Window(i int, j int) Window[T] {
	return span[T]{src: s.src, lo: s.lo + i, hi: s.lo + j}
}

func (s span[T]) DistinctByConstruction() bool {
	return isDistinct(s.src)
}

// forward enumerates an indexed sequence front to back, reading its length anew on
// every enumeration.
type forward[T any] struct {
	src Indexed[T]
}

func (f forward[T]) Each(accept iterator.Accept[T]) {
	n := f.src.Len()
	for i := 0; i < n; i++ {
		if !accept(f.src.At(i)) {
			return
		}
	}
}

func (f forward[T]) Len() int {
	return f.src.Len()
}

func (f forward[T]) At(index int) T {
	return f.src.At(index)
}

func (f forward[T]) Window(i int, j int) Window[T] {
	return span[T]{src: f.src, lo: i, hi: j}
}

func (f forward[T]) DistinctByConstruction() bool {
	return isDistinct(f.src)
}

// Reversed is a view of an indexed sequence in reverse order: index i reads index
// Len()-1-i of the wrapped sequence. The wrapped length is read on every access, so
// concurrent modification of the wrapped sequence has undefined results. Windows taken
// from a view, including those behind Seq.Take and Seq.Drop, keep the length the view
// had when they were taken.
type Reversed[T any] struct {
	src Indexed[T]
}

// Reverse returns a reversed view of src. Reversing a reversed view returns a forward
// view of the original sequence.
func Reverse[T any](src Indexed[T]) Window[T] {
	if r, ok := src.(Reversed[T]); ok {
		if w, ok := r.src.(Window[T]); ok {
			return w
		}
		return forward[T]{src: r.src}
	}
	return Reversed[T]{src: src}
}

func (r Reversed[T]) Each(accept iterator.Accept[T]) {
	for i := r.src.Len() - 1; i >= 0; i-- {
		if !accept(r.src.At(i)) {
			return
		}
	}
}

func (r Reversed[T]) Len() int {
	return r.src.Len()
}

func (r Reversed[T]) At(index int) T {
	return r.src.At(r.src.Len() - 1 - index)
}

func (r Reversed[T]) Window(i int, j int) Window[T] {
	return span[T]{src: r, lo: i, hi: j}
}

func (r Reversed[T]) DistinctByConstruction() bool {
	return isDistinct(r.src)
}

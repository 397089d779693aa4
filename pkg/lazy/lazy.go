// Package lazy provides deferred, composable pipelines over sources of values.
//
// Composing a pipeline never evaluates it. Every terminal operation enumerates the
// source from the beginning with fresh state, so a pipeline may be run any number
// of times whenever its source may be.
package lazy

import (
	"iter"
	"slices"

	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/types"
)

type stageKind int

const (
	filterStage stageKind = iota
	tapStage
	takeStage
	dropStage
	distinctStage
)

type stage[T any] struct {
	kind stageKind
	pred func(T) bool
	tap  func(T)
	n    int
	// fresh returns a predicate with its own state for a single run.
	fresh func() func(T) bool
}

// Seq is a lazy sequence: a source and the type-preserving stages queued over it.
type Seq[T any] struct {
	source Source[T]
	stages []stage[T]
}

func FromSource[T any](source Source[T]) *Seq[T] {
	return &Seq[T]{source: source}
}

func FromSlice[T any](values []T) *Seq[T] {
	return FromSource[T](SliceSource[T](values))
}

func Of[T any](values ...T) *Seq[T] {
	return FromSlice(values)
}

// FromSeq returns a lazy sequence over a range-over-func sequence. It is restartable
// only if seq is.
func FromSeq[T any](seq iter.Seq[T]) *Seq[T] {
	return FromSource[T](iterator.Seq[T](seq))
}

func Empty[T any]() *Seq[T] {
	return FromSlice[T](nil)
}

// Generate returns the infinite sequence fn(0), fn(1), ...
func Generate[T any](fn func(index int) T) *Seq[T] {
	return FromSource[T](iterator.Func[T](func(accept iterator.Accept[T]) {
		for i := 0; accept(fn(i)); i++ {
		}
	}))
}

// Repeat returns the infinite sequence of value.
func Repeat[T any](value T) *Seq[T] {
	return Generate(func(int) T { return value })
}

// AsReversed returns a lazy sequence over a reversed view of src.
func AsReversed[T any](src Indexed[T]) *Seq[T] {
	return FromSource[T](Reverse(src))
}

func (seq *Seq[T]) with(s stage[T]) *Seq[T] {
	return &Seq[T]{source: seq.source, stages: append(slices.Clip(seq.stages), s)}
}

// window returns the source as a window if no stages are queued over it.
func (seq *Seq[T]) window() (w Window[T], ok bool) {
	if len(seq.stages) == 0 {
		w, ok = seq.source.(Window[T])
	}
	return
}

// Select retains the values that satisfy pred.
func (seq *Seq[T]) Select(pred func(T) bool) *Seq[T] {
	return seq.with(stage[T]{kind: filterStage, pred: pred})
}

// Reject removes the values that satisfy pred.
func (seq *Seq[T]) Reject(pred func(T) bool) *Seq[T] {
	return seq.Select(func(value T) bool { return !pred(value) })
}

// Tap calls fn with each value as it passes.
func (seq *Seq[T]) Tap(fn func(T)) *Seq[T] {
	return seq.with(stage[T]{kind: tapStage, tap: fn})
}

func checkCount(op string, n int) {
	if n < 0 {
		panic(types.NewError(types.ErrInvalidArgument, "lazy."+op+".negativeCount", "count", n))
	}
}

// Take retains at most the first n values. It panics if n is negative. Over a Window
// source the result is a window whose bounds use the source length at this call.
func (seq *Seq[T]) Take(n int) *Seq[T] {
	checkCount("take", n)
	if w, ok := seq.window(); ok {
		return FromSource[T](w.Window(0, min(n, w.Len())))
	}
	return seq.with(stage[T]{kind: takeStage, n: n})
}

// Drop discards the first n values. It panics if n is negative. Over a Window source
// the result is a window whose bounds use the source length at this call.
func (seq *Seq[T]) Drop(n int) *Seq[T] {
	checkCount("drop", n)
	if n == 0 {
		return seq
	}
	if w, ok := seq.window(); ok {
		size := w.Len()
		return FromSource[T](w.Window(min(n, size), size))
	}
	return seq.with(stage[T]{kind: dropStage, n: n})
}

// Concat returns the values of seq followed by those of other.
func (seq *Seq[T]) Concat(other *Seq[T]) *Seq[T] {
	return FromSource[T](iterator.Collections[T]{seq, other})
}

// Collect returns the values of seq transformed by fn.
func Collect[T any, U any](seq *Seq[T], fn func(T) U) *Seq[U] {
	return FromSource[U](iterator.Func[U](func(accept iterator.Accept[U]) {
		seq.Each(func(value T) bool {
			return accept(fn(value))
		})
	}))
}

// FlatCollect returns the concatenation of the sequences fn returns for the values of seq.
func FlatCollect[T any, U any](seq *Seq[T], fn func(T) iter.Seq[U]) *Seq[U] {
	return FromSource[U](iterator.Func[U](func(accept iterator.Accept[U]) {
		seq.Each(func(value T) bool {
			for inner := range fn(value) {
				if !accept(inner) {
					return false
				}
			}
			return true
		})
	}))
}

// Distinct retains the first occurrence of each value. Sequences whose sources never
// repeat are returned as is.
func Distinct[T comparable](seq *Seq[T]) *Seq[T] {
	if len(seq.stages) == 0 {
		if isDistinct(seq.source) {
			return seq
		}
	}
	return seq.with(stage[T]{kind: distinctStage, fresh: func() func(T) bool {
		seen := map[T]types.Void{}
		return func(value T) bool {
			if _, extant := seen[value]; extant {
				return false
			}
			seen[value] = types.Void{}
			return true
		}
	}})
}

// Each runs the pipeline, passing values to accept until it returns false.
func (seq *Seq[T]) Each(accept iterator.Accept[T]) {
	if len(seq.stages) == 0 {
		seq.source.Each(accept)
		return
	}
	counts := make([]int, len(seq.stages))
	preds := make([]func(T) bool, len(seq.stages))
	for i, s := range seq.stages {
		switch s.kind {
		case takeStage:
			if s.n == 0 {
				return
			}
			counts[i] = s.n
		case dropStage:
			counts[i] = s.n
		case distinctStage:
			preds[i] = s.fresh()
		}
	}
	done := false
	seq.source.Each(func(value T) bool {
		for i := range seq.stages {
			s := &seq.stages[i]
			switch s.kind {
			case filterStage:
				if !s.pred(value) {
					return !done
				}
			case tapStage:
				s.tap(value)
			case takeStage:
				counts[i]--
				if counts[i] == 0 {
					done = true
				}
			case dropStage:
				if counts[i] > 0 {
					counts[i]--
					return !done
				}
			case distinctStage:
				if !preds[i](value) {
					return !done
				}
			}
		}
		return accept(value) && !done
	})
}

func (seq *Seq[T]) All() iter.Seq[T] {
	return iterator.All[T](seq)
}

// Iterator returns a pull iterator over a fresh run of the pipeline.
func (seq *Seq[T]) Iterator() *iterator.Iterator[T] {
	return iterator.BuildIterator[T](seq)
}

func (seq *Seq[T]) String() string {
	return seq.MakeString("[", ", ", "]")
}

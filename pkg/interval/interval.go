// Package interval provides immutable arithmetic progressions of integers.
//
// An Interval is at once a random access sequence, a lazy sequence source, and a
// value: sub-ranging, taking, dropping and reversing are constant time arithmetic
// on its (from, to, step) triple, and equality is defined over the values it
// yields rather than the triple that describes them.
package interval

import (
	"fmt"

	"github.com/dball/intervals/internal/arith"
	"github.com/dball/intervals/pkg/types"
	"golang.org/x/exp/constraints"
)

// Interval is the progression from, from+step, ... that stops at or before to.
// The zero Interval is empty.
type Interval[T constraints.Signed] struct {
	from T
	to   T
	step T
	size int
}

func empty[T constraints.Signed]() Interval[T] {
	return Interval[T]{from: 0, to: -1, step: 1}
}

// build returns the interval for a triple whose step must point towards to.
func build[T constraints.Signed](from, to, step T) (iv Interval[T], err error) {
	size, err := arith.Size(from, to, step)
	if err != nil {
		return
	}
	iv = Interval[T]{from: from, to: to, step: step, size: size}
	return
}

// lenient is like build but yields an empty interval for a step pointing away from to.
// The empty result keeps its triple so that further To and By calls build on it.
func lenient[T constraints.Signed](from, to, step T) (iv Interval[T], err error) {
	size, err := arith.Count(from, to, step)
	if err != nil {
		return
	}
	iv = Interval[T]{from: from, to: to, step: step, size: size}
	return
}

// Must returns iv, panicking if err is not nil.
func Must[T constraints.Signed](iv Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}
	return iv
}

// From returns the single element interval of n, with step 1, to be completed with To and By.
func From[T constraints.Signed](n T) Interval[T] {
	return Interval[T]{from: n, to: n, step: 1, size: 1}
}

// To returns the interval from the receiver's start to m, turning the step around if it
// points away from m.
func (iv Interval[T]) To(m T) Interval[T] {
	step := iv.step
	if step == 0 {
		step = 1
	}
	return Must(build(iv.from, m, arith.AdjustedStep(iv.from, m, step)))
}

// By returns the interval with the receiver's ends and the given step. A step pointing
// away from the end yields an empty interval that still reports those ends and step.
func (iv Interval[T]) By(step T) (Interval[T], error) {
	if step == 0 {
		return Interval[T]{}, types.NewError(types.ErrInvalidArgument, "interval.by.zeroStep", "from", iv.from, "to", iv.to)
	}
	return lenient(iv.from, iv.to, step)
}

func unit[T constraints.Signed](a, b T) T {
	if a <= b {
		return 1
	}
	return -1
}

// FromTo returns the interval from a to b by 1 or -1.
func FromTo[T constraints.Signed](a, b T) Interval[T] {
	return Must(build(a, b, unit(a, b)))
}

// FromToBy returns the interval from a to b by step, failing if the step is zero or
// points away from b.
func FromToBy[T constraints.Signed](a, b, step T) (Interval[T], error) {
	return build(a, b, step)
}

// FromToExclusive returns the interval from a towards b by 1 or -1, excluding b. The
// interval from a to itself is empty, except that it cannot be built at the minimum
// value of T.
func FromToExclusive[T constraints.Signed](a, b T) (Interval[T], error) {
	switch {
	case a == b && b == arith.MinValue[T]():
		return Interval[T]{}, types.NewError(types.ErrInvalidArgument, "interval.fromToExclusive.minimum", "to", b)
	case a == b:
		return empty[T](), nil
	case a < b:
		return build(a, b-1, 1)
	default:
		return build(a, b+1, -1)
	}
}

// Zero returns the interval of the single value 0.
func Zero[T constraints.Signed]() Interval[T] {
	return From[T](0)
}

// ZeroTo returns 0, 1, ... n, which is empty for negative n.
func ZeroTo[T constraints.Signed](n T) Interval[T] {
	if n < 0 {
		return empty[T]()
	}
	return FromTo(0, n)
}

// OneTo returns 1, 2, ... n, which is empty for n less than 1.
func OneTo[T constraints.Signed](n T) Interval[T] {
	if n < 1 {
		return empty[T]()
	}
	return FromTo(1, n)
}

// ZeroToBy returns 0, step, ... up to n, failing unless step is positive.
func ZeroToBy[T constraints.Signed](n, step T) (Interval[T], error) {
	return upBy(0, n, step)
}

// OneToBy returns 1, 1+step, ... up to n, failing unless step is positive.
func OneToBy[T constraints.Signed](n, step T) (Interval[T], error) {
	return upBy(1, n, step)
}

func upBy[T constraints.Signed](from, n, step T) (Interval[T], error) {
	if step <= 0 {
		return Interval[T]{}, types.NewError(types.ErrInvalidArgument, "interval.upBy.step", "step", step)
	}
	if n < from {
		return empty[T](), nil
	}
	return build(from, n, step)
}

// EvensFromTo returns the even values between a and b inclusive, stepping towards b.
func EvensFromTo[T constraints.Signed](a, b T) Interval[T] {
	return parity(a, b, false)
}

// OddsFromTo returns the odd values between a and b inclusive, stepping towards b.
func OddsFromTo[T constraints.Signed](a, b T) Interval[T] {
	return parity(a, b, true)
}

// parity moves the ends inward to the nearest values of the given parity. Moving
// inward never passes the other end, so it cannot overflow.
func parity[T constraints.Signed](a, b T, odd bool) Interval[T] {
	match := func(x T) bool { return (x%2 != 0) == odd }
	if a == b {
		if match(a) {
			return From(a)
		}
		return empty[T]()
	}
	if a < b {
		if !match(a) {
			a++
		}
		if !match(b) {
			b--
		}
		if a > b {
			return empty[T]()
		}
		return Must(build(a, b, 2))
	}
	if !match(a) {
		a--
	}
	if !match(b) {
		b++
	}
	if a < b {
		return empty[T]()
	}
	return Must(build(a, b, -2))
}

// Start returns the first value of a non-empty interval. An empty interval built by By
// reports the start it was given.
func (iv Interval[T]) Start() T {
	return iv.from
}

// End returns the bound given at construction, which is not necessarily a member.
func (iv Interval[T]) End() T {
	return iv.to
}

func (iv Interval[T]) Step() T {
	return iv.step
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("Interval from: %d to: %d step: %d size: %d", iv.from, iv.to, iv.step, iv.size)
}

// Package arith computes sizes, membership and positions of arithmetic progressions
// described by (from, to, step) triples.
//
// All arithmetic happens on the sign-extended uint64 images of the values. The
// distance between two values of any signed type always fits in a uint64, and
// from + index*step is exact modulo 2^64 whenever the result lies between from and
// to, so no triple near the extremes of its type can wrap around.
package arith

import (
	"math"
	"unsafe"

	"github.com/dball/intervals/pkg/types"
	"golang.org/x/exp/constraints"
)

// MinValue returns the smallest value of T.
func MinValue[T constraints.Signed]() T {
	var zero T
	return T(-1) << (8*unsafe.Sizeof(zero) - 1)
}

// MaxValue returns the largest value of T.
func MaxValue[T constraints.Signed]() T {
	return ^MinValue[T]()
}

func wide[T constraints.Signed](x T) uint64 {
	return uint64(int64(x))
}

// magnitude returns |x|, which is exact even for the minimum value of T.
func magnitude[T constraints.Signed](x T) uint64 {
	v := int64(x)
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// Forward reports whether from..to by step runs upwards. A single-element triple
// is forward when its step is positive.
func Forward[T constraints.Signed](from, to, step T) bool {
	return from <= to && step > 0
}

// Consistent reports whether step points from from towards to. Single-element
// triples are consistent for any non-zero step.
func Consistent[T constraints.Signed](from, to, step T) bool {
	switch {
	case step == 0:
		return false
	case from == to:
		return true
	case from < to:
		return step > 0
	default:
		return step < 0
	}
}

func distance[T constraints.Signed](from, to T) uint64 {
	if from <= to {
		return wide(to) - wide(from)
	}
	return wide(from) - wide(to)
}

func count[T constraints.Signed](from, to, step T) (size int, err error) {
	q := distance(from, to) / magnitude(step)
	if q >= uint64(math.MaxInt) {
		err = types.NewError(types.ErrInvalidArgument, "arith.size.tooLarge", "from", from, "to", to, "step", step)
		return
	}
	size = int(q) + 1
	return
}

// Size returns the number of members of from..to by step. It fails when step is
// zero, when step points away from to, or when the count exceeds math.MaxInt.
func Size[T constraints.Signed](from, to, step T) (size int, err error) {
	if step == 0 {
		err = types.NewError(types.ErrInvalidArgument, "arith.size.zeroStep", "from", from, "to", to)
		return
	}
	if !Consistent(from, to, step) {
		err = types.NewError(types.ErrInvalidArgument, "arith.size.stepDirection", "from", from, "to", to, "step", step)
		return
	}
	return count(from, to, step)
}

// Count is like Size but treats a step pointing away from to as an empty
// progression instead of an error.
func Count[T constraints.Signed](from, to, step T) (size int, err error) {
	if step == 0 {
		err = types.NewError(types.ErrInvalidArgument, "arith.size.zeroStep", "from", from, "to", to)
		return
	}
	if !Consistent(from, to, step) {
		return
	}
	return count(from, to, step)
}

// Contains reports whether value is a member of from..to by step.
func Contains[T constraints.Signed](value, from, to, step T) bool {
	if !Consistent(from, to, step) {
		return false
	}
	var offset uint64
	if from <= to {
		if value < from || value > to {
			return false
		}
		offset = wide(value) - wide(from)
	} else {
		if value > from || value < to {
			return false
		}
		offset = wide(from) - wide(value)
	}
	return offset%magnitude(step) == 0
}

// At returns from + index*step without bounds checks.
func At[T constraints.Signed](index int, from, step T) T {
	return T(int64(wide(from) + uint64(index)*wide(step)))
}

// ValueAtIndex returns the member at index, failing outside [0, size).
func ValueAtIndex[T constraints.Signed](index int, from, to, step T) (value T, err error) {
	size, err := Count(from, to, step)
	if err != nil {
		return
	}
	if index < 0 || index >= size {
		err = types.NewError(types.ErrIndexOutOfRange, "arith.valueAtIndex.indexOutOfRange", "index", index, "size", size)
		return
	}
	value = At(index, from, step)
	return
}

// IndexOf returns the position of value in from..to by step, or -1.
func IndexOf[T constraints.Signed](value, from, to, step T) int {
	if !Contains(value, from, to, step) {
		return -1
	}
	return int(distance(from, value) / magnitude(step))
}

// AdjustedStep returns step with its sign made to point from from towards to. The
// minimum value of T cannot be negated and is returned as is.
func AdjustedStep[T constraints.Signed](from, to, step T) T {
	if (from < to && step < 0) || (from > to && step > 0) {
		if -step == step {
			return step
		}
		return -step
	}
	return step
}

// Last returns the final member reached from from by step without passing to,
// which need not itself be a member. It returns from for empty progressions.
func Last[T constraints.Signed](from, to, step T) T {
	size, err := Count(from, to, step)
	if err != nil || size == 0 {
		return from
	}
	return At(size-1, from, step)
}

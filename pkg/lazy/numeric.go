package lazy

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/types"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds integers in an int64 accumulator, wrapping on overflow.
func Sum[T constraints.Integer](seq *Seq[T]) (sum int64) {
	seq.Each(func(value T) bool {
		sum += int64(value)
		return true
	})
	return
}

// kahan is a Kahan-Babuška (Neumaier) compensated sum.
type kahan struct {
	sum float64
	c   float64
}

func (k *kahan) add(x float64) {
	t := k.sum + x
	if math.Abs(k.sum) >= math.Abs(x) {
		k.c += (k.sum - t) + x
	} else {
		k.c += (x - t) + k.sum
	}
	k.sum = t
}

func (k *kahan) value() float64 {
	return k.sum + k.c
}

// SumFloat adds the values with compensated summation, so that the result is all but
// independent of the order of the values.
func SumFloat[T Number](seq *Seq[T]) float64 {
	var k kahan
	seq.Each(func(value T) bool {
		k.add(float64(value))
		return true
	})
	return k.value()
}

// Average returns the arithmetic mean of the values, failing if there are none.
func Average[T Number](seq *Seq[T]) (float64, error) {
	var k kahan
	count := 0
	seq.Each(func(value T) bool {
		k.add(float64(value))
		count++
		return true
	})
	if count == 0 {
		return 0, types.NewError(types.ErrInvalidState, "lazy.average.empty")
	}
	return k.value() / float64(count), nil
}

func Min[T constraints.Ordered](seq *Seq[T]) (T, bool) {
	return extreme(seq, func(a T, b T) bool { return a < b })
}

func Max[T constraints.Ordered](seq *Seq[T]) (T, bool) {
	return extreme(seq, func(a T, b T) bool { return a > b })
}

func extreme[T any](seq *Seq[T], better func(T, T) bool) (result T, ok bool) {
	seq.Each(func(value T) bool {
		if !ok || better(value, result) {
			result, ok = value, true
		}
		return true
	})
	return
}

// Equal returns true if both sources yield equal values in the same order.
func Equal[T comparable](a Source[T], b Source[T]) bool {
	if wa, ok := a.(Indexed[T]); ok {
		if wb, ok := b.(Indexed[T]); ok && wa.Len() != wb.Len() {
			return false
		}
	}
	next, stop := iter.Pull(iterator.All[T](a))
	defer stop()
	equal := true
	b.Each(func(value T) bool {
		other, ok := next()
		equal = ok && other == value
		return equal
	})
	if !equal {
		return false
	}
	_, more := next()
	return !more
}

// HashInts returns the murmur3 hash of the values of src, each encoded as eight
// little-endian bytes. Sources that yield the same integers in the same order hash
// alike whatever their type.
func HashInts[T constraints.Integer](src Source[T]) uint32 {
	h := murmur3.New32()
	var buf [8]byte
	src.Each(func(value T) bool {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(value)))
		h.Write(buf[:])
		return true
	})
	return h.Sum32()
}

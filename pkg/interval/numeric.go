package interval

import (
	"math/big"

	"github.com/dball/intervals/pkg/types"
)

// Sum returns the sum of the values, wrapping on int64 overflow as repeated addition would.
func (iv Interval[T]) Sum() int64 {
	n := uint64(iv.size)
	if n == 0 {
		return 0
	}
	// n*from + step*n*(n-1)/2, halving whichever of n and n-1 is even.
	var triangle uint64
	if n%2 == 0 {
		triangle = (n / 2) * (n - 1)
	} else {
		triangle = n * ((n - 1) / 2)
	}
	return int64(n*uint64(int64(iv.from)) + triangle*uint64(int64(iv.step)))
}

// Product returns the product of the values, which is 1 for the empty interval.
func (iv Interval[T]) Product() *big.Int {
	product := big.NewInt(1)
	if iv.Contains(0) {
		return product.SetInt64(0)
	}
	var factor big.Int
	iv.ForEach(func(value T) {
		product.Mul(product, factor.SetInt64(int64(value)))
	})
	return product
}

// Factorial returns the product of the positive values of an ascending interval of
// consecutive non-negative values, so that ZeroTo(n) and OneTo(n) both yield n!.
func (iv Interval[T]) Factorial() (*big.Int, error) {
	if iv.size == 0 {
		return big.NewInt(1), nil
	}
	if iv.from < 0 || iv.step != 1 {
		return nil, types.NewError(types.ErrInvalidState, "interval.factorial.range", "from", iv.from, "step", iv.step)
	}
	if iv.from == 0 {
		return iv.Drop(1).Product(), nil
	}
	return iv.Product(), nil
}

// Min returns the least value without scanning.
func (iv Interval[T]) Min() (T, bool) {
	first, ok := iv.First()
	last, _ := iv.Last()
	return min(first, last), ok
}

// Max returns the greatest value without scanning.
func (iv Interval[T]) Max() (T, bool) {
	first, ok := iv.First()
	last, _ := iv.Last()
	return max(first, last), ok
}

// Average returns the mean of the values, the midpoint of the first and last.
func (iv Interval[T]) Average() (float64, error) {
	if iv.size == 0 {
		return 0, types.NewError(types.ErrInvalidState, "interval.average.empty")
	}
	first, _ := iv.First()
	last, _ := iv.Last()
	return float64(first)/2 + float64(last)/2, nil
}

package collection

import "golang.org/x/exp/constraints"

// Lesser returns true iff the first arg sorts before the second.
type Lesser[T any] func(a T, b T) bool

// Comparer returns -1, 0 or 1 as the first arg sorts before, with, or after the second.
type Comparer[T any] func(a T, b T) int

func Less[T constraints.Ordered](a T, b T) bool {
	return a < b
}

func Compare[T constraints.Ordered](a T, b T) (diff int) {
	switch {
	case a < b:
		diff = -1
	case a > b:
		diff = 1
	default:
		diff = 0
	}
	return
}

// Reverse returns a lesser that sorts in the opposite order.
func Reverse[T any](less Lesser[T]) Lesser[T] {
	return func(a T, b T) bool {
		return less(b, a)
	}
}

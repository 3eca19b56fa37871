package math

import "golang.org/x/exp/constraints"

func DivFloor[T constraints.Integer](dividend, divisor T) T {
	return dividend / divisor
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Log2Ceil returns the smallest k with 1<<k >= n, and 0 for n <= 1.
func Log2Ceil[T constraints.Integer](n T) int {
	k := 0
	for v := T(1); v < n; v <<= 1 {
		k++
	}
	return k
}

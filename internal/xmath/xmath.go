// Package xmath holds small generic numeric helpers used by the puzzle solutions.
package xmath

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is any integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of xs, or zero for an empty slice.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// MaxIndex returns the index of the first maximum in xs.
// It returns -1 if xs is empty.
func MaxIndex[T constraints.Ordered](xs []T) int {
	if len(xs) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}
	return best
}

// TopN returns the n largest values of xs, highest first.
// xs is not modified. If n exceeds len(xs) every value is returned.
func TopN[T constraints.Ordered](xs []T, n int) []T {
	if n <= 0 {
		return nil
	}
	sorted := slices.Clone(xs)
	slices.SortFunc(sorted, func(a, b T) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Package aocutil holds the small numeric helpers shared by the daily solvers.
package aocutil

import "golang.org/x/exp/constraints"

// AbsDiff returns |a-b| without overflowing for unsigned types.
func AbsDiff[T constraints.Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Counts maps every value of vals to the number of times it occurs.
func Counts[T comparable](vals []T) map[T]int {
	result := make(map[T]int, len(vals))
	for _, v := range vals {
		result[v]++
	}
	return result
}

package utils

import "cmp"

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T cmp.Ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// IsOneOf checks if value equals any of the candidates.
func IsOneOf[T comparable](value T, candidates ...T) bool {
	for _, c := range candidates {
		if value == c {
			return true
		}
	}

	return false
}

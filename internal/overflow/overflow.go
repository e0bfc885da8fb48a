// Package overflow provides overflow-checked int arithmetic for the
// capacity and span calculations the container engines perform. Every
// size, capacity, and count×elemSize computation must go through these
// helpers so that a request that would wrap the machine word is rejected
// instead of corrupting bookkeeping.
package overflow

import "math"

// Add adds a and b, returning ok = false when the result would overflow int.
func Add(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Mul multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elemSize calculations.
func Mul(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Span computes count * elemSize bytes, returning ok = false when either
// argument is negative or the product would overflow int.
func Span(count, elemSize int) (int, bool) {
	if count < 0 || elemSize < 0 {
		return 0, false
	}
	return Mul(count, elemSize)
}

package vecdeque

import (
	"fmt"
	"slices"
)

// Swap exchanges the elements at indices i and j. Swapping an index
// with itself succeeds trivially.
func (v *Vec[T]) Swap(i, j int) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if i < 0 || i >= v.size || j < 0 || j >= v.size {
		return fmt.Errorf("swap %d, %d (size %d): %w", i, j, v.size, ErrInvalidArgument)
	}
	if i != j {
		v.buf[v.start+i], v.buf[v.start+j] = v.buf[v.start+j], v.buf[v.start+i]
	}
	return nil
}

// Sort orders the live range with an unstable comparison sort. cmp
// follows the usual three-way convention: negative when a sorts before
// b, zero when equal, positive when after. Sorting an empty vector is
// a no-op.
func (v *Vec[T]) Sort(cmp func(a, b T) int) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if cmp == nil {
		return ErrInvalidArgument
	}
	if v.size > 0 {
		slices.SortFunc(v.buf[v.start:v.start+v.size], cmp)
	}
	return nil
}

package vecdeque

import "iter"

// All returns an iterator over index/element pairs of the live range,
// front to back. The vector must not be mutated during iteration.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range v.Slice() {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the live range, front
// to back. The vector must not be mutated during iteration.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range v.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

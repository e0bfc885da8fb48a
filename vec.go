package vecdeque

// initialCapacity is the minimum allocation granularity, in elements.
// A vector never shrinks below it, and the first growth of an empty
// vector starts from it, so that small containers do not thrash the
// allocator.
const initialCapacity = 8

// Vec is a contiguous double-ended vector. The zero value is an empty
// vector ready for use.
//
// Elements live in a single owned allocation at a movable start offset:
// buf[start : start+size]. Front insertion and removal adjust the offset
// instead of moving data, so a Vec works equally well as a vector, a
// queue, or a small history.
//
// A Vec must not be used from multiple goroutines without external
// synchronization.
type Vec[T any] struct {
	// buf is the whole owned allocation; len(buf) is the capacity.
	// buf == nil exactly when the capacity is zero.
	buf []T

	// start is the offset, in elements, of the first live element.
	start int

	// size is the count of live elements.
	size int

	// alloc provides backing storage; nil means the default heap allocator.
	alloc Allocator[T]
}

// New returns an empty vector. Equivalent to the zero value; provided
// for symmetry with NewWithAllocator.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// NewWithAllocator returns an empty vector whose backing storage comes
// from a. A nil a selects the default heap allocator.
func NewWithAllocator[T any](a Allocator[T]) *Vec[T] {
	return &Vec[T]{alloc: a}
}

// valid reports whether the container invariants hold. Public
// operations check it on entry; a violation can only come from memory
// corruption or misuse of the package internals.
func (v *Vec[T]) valid() bool {
	if v == nil {
		return false
	}
	if v.buf == nil {
		return v.start == 0 && v.size == 0
	}
	return v.size <= len(v.buf) && v.start >= 0 && v.start+v.size <= len(v.buf)
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Cap returns the number of element slots currently allocated.
func (v *Vec[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// Empty reports whether the vector holds no elements.
func (v *Vec[T]) Empty() bool {
	return v.Len() == 0
}

// Get returns the element at index idx and true, or the zero value and
// false when idx is out of range.
func (v *Vec[T]) Get(idx int) (T, bool) {
	if v == nil || !v.valid() || idx < 0 || idx >= v.size {
		var zero T
		return zero, false
	}
	return v.buf[v.start+idx], true
}

// First returns the first element, if any.
func (v *Vec[T]) First() (T, bool) {
	return v.Get(0)
}

// Last returns the last element, if any.
func (v *Vec[T]) Last() (T, bool) {
	return v.Get(v.Len() - 1)
}

// Set overwrites the element at index idx.
func (v *Vec[T]) Set(idx int, val T) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if idx < 0 || idx >= v.size {
		return ErrInvalidArgument
	}
	v.buf[v.start+idx] = val
	return nil
}

// Slice returns the live elements as a slice view into the vector's
// storage. The view is invalidated by any subsequent mutation of the
// vector; callers that need a stable copy must make one.
func (v *Vec[T]) Slice() []T {
	if v == nil || v.buf == nil {
		return nil
	}
	return v.buf[v.start : v.start+v.size : v.start+v.size]
}

// Clear releases the allocation and resets the vector to its initial
// empty state. Clearing an already-empty vector is a no-op. The
// configured allocator is retained.
func (v *Vec[T]) Clear() {
	if v == nil {
		return
	}
	v.buf = nil
	v.start = 0
	v.size = 0
}

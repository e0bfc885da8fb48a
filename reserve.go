package vecdeque

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/vecdeque/internal/overflow"
)

// Reserve guarantees room for at least additional more elements without
// further reallocation. It is a no-op when the existing free capacity
// already covers the request. On failure the vector is unchanged.
func (v *Vec[T]) Reserve(additional int) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if additional < 0 {
		return ErrInvalidArgument
	}
	return v.reserve(additional)
}

// reserve grows the allocation to capacity+additional elements. The
// live range keeps its start offset; only the base allocation moves.
func (v *Vec[T]) reserve(additional int) error {
	if additional <= len(v.buf)-v.size {
		return nil
	}

	newCap, ok := overflow.Add(len(v.buf), additional)
	if !ok {
		return fmt.Errorf("%w: capacity %d + %d wraps", ErrCapacityOverflow, len(v.buf), additional)
	}

	// Guard the byte count too: make would panic rather than fail if
	// newCap elements exceed the address space.
	elemSize := int(unsafe.Sizeof(*new(T)))
	if _, ok := overflow.Span(newCap, elemSize); !ok {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, newCap, elemSize)
	}

	newBuf, err := v.allocate(newCap)
	if err != nil {
		return err
	}

	copy(newBuf[v.start:], v.buf[v.start:v.start+v.size])
	v.buf = newBuf
	return nil
}

// ShrinkToFit reduces the allocation to fit the current size. An empty
// vector releases its allocation entirely; otherwise capacity drops to
// max(size, the minimum granularity) with the live range compacted to
// offset zero. On failure the vector is unchanged.
func (v *Vec[T]) ShrinkToFit() error {
	if !v.valid() {
		return ErrInvalidState
	}

	if v.size == 0 {
		v.Clear()
		return nil
	}

	if v.size < len(v.buf) && len(v.buf) > initialCapacity {
		newCap := max(v.size, initialCapacity)
		newBuf, err := v.allocate(newCap)
		if err != nil {
			return err
		}
		copy(newBuf, v.buf[v.start:v.start+v.size])
		v.buf = newBuf
		v.start = 0
	}
	return nil
}

// allocate obtains a fresh backing slice of at least n elements from
// the configured allocator.
func (v *Vec[T]) allocate(n int) ([]T, error) {
	a := v.alloc
	if a == nil {
		a = heapAllocator[T]{}
	}
	buf, err := a.Alloc(n)
	if err != nil {
		return nil, fmt.Errorf("allocate %d elements: %w", n, wrapAllocErr(err))
	}
	if len(buf) < n {
		return nil, fmt.Errorf("%w: allocator returned %d of %d elements", ErrAllocFailed, len(buf), n)
	}
	return buf, nil
}

// wrapAllocErr folds allocator-specific errors into the package's
// failure taxonomy while preserving ones that already carry it.
func wrapAllocErr(err error) error {
	switch {
	case err == nil:
		return nil
	case isTaxonomy(err):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
}

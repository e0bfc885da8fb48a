package vecdeque

import "fmt"

// Allocator provides the backing storage for a Vec. The engine funnels
// every reallocation through it, which lets callers inject budgets or
// failure behavior (and lets tests exercise the partial-growth retry
// path without exhausting real memory).
//
// Alloc must return a slice of length at least n, or an error. Returning
// a longer slice is allowed; the extra length becomes usable capacity.
type Allocator[T any] interface {
	Alloc(n int) ([]T, error)
}

// heapAllocator is the default Allocator. It allocates from the Go heap
// and never reports failure (an out-of-memory condition aborts the
// program, as it does for any Go allocation).
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Alloc(n int) ([]T, error) {
	return make([]T, n), nil
}

// Limit is an Allocator that refuses any single allocation above Max
// elements. It is the simplest way to put a vector under memory
// pressure: growth requests beyond the budget fail with ErrAllocFailed
// and the engine falls back to progressively smaller growth steps.
type Limit[T any] struct {
	// Max is the largest allocation, in elements, the allocator will grant.
	Max int
}

func (l Limit[T]) Alloc(n int) ([]T, error) {
	if n > l.Max {
		return nil, fmt.Errorf("%w: %d elements exceeds budget of %d", ErrAllocFailed, n, l.Max)
	}
	return make([]T, n), nil
}

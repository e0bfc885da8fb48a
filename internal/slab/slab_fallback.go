//go:build !unix

// Package slab provides anonymous memory slabs for large container
// backings. This build has no mmap support and hands out heap slices.
package slab

import "errors"

// Map allocates a slab of n bytes from the heap.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("slab: non-positive mapping size")
	}
	return make([]byte, n), nil
}

// Unmap releases a slab returned by Map. Heap slabs are garbage
// collected, so this is a no-op.
func Unmap(data []byte) error {
	return nil
}

//go:build unix

// Package slab provides anonymous memory slabs for large container
// backings. On unix it uses private anonymous mappings so that very
// large buffers come straight from the kernel and can be returned to it
// eagerly; the fallback build uses ordinary heap slices.
package slab

import (
	"errors"

	"golang.org/x/sys/unix"
)

// Map allocates an anonymous private mapping of n bytes.
func Map(n int) ([]byte, error) {
	if n <= 0 {
		return nil, errors.New("slab: non-positive mapping size")
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Unmap releases a mapping returned by Map.
func Unmap(data []byte) error {
	if data == nil {
		return nil
	}
	err := unix.Munmap(data)
	if errors.Is(err, unix.EINVAL) {
		// Treat double-unmap as no-op for callers.
		return nil
	}
	return err
}

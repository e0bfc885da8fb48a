package rawbuf

import (
	"fmt"

	"github.com/joshuapare/vecdeque/internal/slab"
)

// Arena provides the backing bytes for a Buffer. Alloc must return a
// slice of length exactly n. Release is called with slices previously
// returned by Alloc once the buffer no longer references them; arenas
// with nothing to reclaim may treat it as a no-op.
type Arena interface {
	Alloc(n int) ([]byte, error)
	Release(b []byte) error
}

// heapArena is the default Arena; it allocates garbage-collected byte
// slices.
type heapArena struct{}

func (heapArena) Alloc(n int) ([]byte, error) { return make([]byte, n), nil }
func (heapArena) Release([]byte) error        { return nil }

// MmapArena serves buffers from anonymous private memory mappings.
// Released memory goes straight back to the kernel instead of waiting
// for the garbage collector, which matters for multi-megabyte record
// buffers with long-lived processes. On platforms without mmap it
// degrades to heap allocation.
type MmapArena struct{}

func (MmapArena) Alloc(n int) ([]byte, error) {
	b, err := slab.Map(n)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %d bytes: %v", ErrAllocFailed, n, err)
	}
	return b, nil
}

func (MmapArena) Release(b []byte) error {
	return slab.Unmap(b)
}

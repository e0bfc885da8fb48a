package rawbuf

import (
	"fmt"

	"github.com/joshuapare/vecdeque/internal/overflow"
)

// initialCapacity is the minimum allocation granularity, in elements.
// A buffer never shrinks below it.
const initialCapacity = 8

// Buffer is a contiguous sequence of fixed-size byte records with a
// movable start offset. The zero value is an empty buffer ready for
// use. Every operation takes the element size in bytes; see the
// package documentation for the element size contract.
type Buffer struct {
	// mem is the whole owned allocation; len(mem) == capacity*elemSize.
	mem []byte

	// capacity is the number of element slots allocated.
	capacity int

	// start is the offset, in elements, of the first live element.
	start int

	// size is the count of live elements.
	size int

	// arena provides backing memory; nil means the heap.
	arena Arena
}

// New returns an empty buffer backed by the heap.
func New() *Buffer {
	return &Buffer{}
}

// NewWithArena returns an empty buffer whose backing memory comes from
// a. A nil a selects the heap.
func NewWithArena(a Arena) *Buffer {
	return &Buffer{arena: a}
}

// check validates the invariants against the element size supplied for
// this call. A capacity/allocation mismatch means a previous call used
// a different element size.
func (b *Buffer) check(elemSize int) error {
	if b == nil || elemSize <= 0 {
		return ErrInvalidArgument
	}
	if b.mem == nil {
		if b.capacity != 0 || b.start != 0 || b.size != 0 {
			return ErrInvalidState
		}
		return nil
	}
	bytes, ok := overflow.Span(b.capacity, elemSize)
	if !ok || bytes != len(b.mem) ||
		b.size > b.capacity || b.start+b.size > b.capacity {
		return ErrInvalidState
	}
	return nil
}

// Len returns the number of live elements.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Cap returns the number of element slots allocated.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return b.capacity
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer) Empty() bool {
	return b.Len() == 0
}

// Elem returns the idx-th element as a view into the buffer's storage,
// or nil when idx is out of range. The view is invalidated by any
// subsequent mutation.
func (b *Buffer) Elem(idx, elemSize int) []byte {
	if b.check(elemSize) != nil || idx < 0 || idx >= b.size {
		return nil
	}
	return b.elem(idx, elemSize)
}

// elem returns the byte run of the idx-th live element. Bounds are the
// caller's responsibility.
func (b *Buffer) elem(idx, elemSize int) []byte {
	off := (b.start + idx) * elemSize
	return b.mem[off : off+elemSize : off+elemSize]
}

// Bytes returns the live elements as one contiguous view, or nil when
// the buffer is empty. The view is invalidated by any mutation.
func (b *Buffer) Bytes(elemSize int) []byte {
	if b.check(elemSize) != nil || b.size == 0 {
		return nil
	}
	off := b.start * elemSize
	end := off + b.size*elemSize
	return b.mem[off:end:end]
}

// Reserve guarantees room for at least additional more elements without
// further reallocation. On failure the buffer is unchanged.
func (b *Buffer) Reserve(additional, elemSize int) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if additional < 0 {
		return ErrInvalidArgument
	}
	return b.reserve(additional, elemSize)
}

func (b *Buffer) reserve(additional, elemSize int) error {
	if additional <= b.capacity-b.size {
		return nil
	}

	newCap, ok := overflow.Add(b.capacity, additional)
	if !ok {
		return fmt.Errorf("%w: capacity %d + %d wraps", ErrCapacityOverflow, b.capacity, additional)
	}
	allocBytes, ok := overflow.Span(newCap, elemSize)
	if !ok {
		return fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, newCap, elemSize)
	}

	newMem, err := b.allocate(allocBytes)
	if err != nil {
		return err
	}

	// The live range keeps its start offset; only the base moves.
	off := b.start * elemSize
	copy(newMem[off:], b.mem[off:off+b.size*elemSize])
	b.releaseMem()
	b.mem = newMem
	b.capacity = newCap
	return nil
}

// ShrinkToFit reduces the allocation to fit the current size. An empty
// buffer releases its allocation entirely; otherwise capacity drops to
// max(size, the minimum granularity) with the live range compacted to
// offset zero. On failure the buffer is unchanged.
func (b *Buffer) ShrinkToFit(elemSize int) error {
	if err := b.check(elemSize); err != nil {
		return err
	}

	if b.size == 0 {
		b.Clear()
		return nil
	}

	if b.size < b.capacity && b.capacity > initialCapacity {
		newCap := max(b.size, initialCapacity)
		newMem, err := b.allocate(newCap * elemSize)
		if err != nil {
			return err
		}
		off := b.start * elemSize
		copy(newMem, b.mem[off:off+b.size*elemSize])
		b.releaseMem()
		b.mem = newMem
		b.capacity = newCap
		b.start = 0
	}
	return nil
}

// Clear releases the allocation and resets the buffer to its initial
// empty state. Clearing an already-empty buffer is a no-op. The
// configured arena is retained.
func (b *Buffer) Clear() {
	if b == nil {
		return
	}
	b.releaseMem()
	b.mem = nil
	b.capacity = 0
	b.start = 0
	b.size = 0
}

func (b *Buffer) allocate(n int) ([]byte, error) {
	a := b.arena
	if a == nil {
		a = heapArena{}
	}
	mem, err := a.Alloc(n)
	if err != nil {
		if isTaxonomy(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrAllocFailed, err)
	}
	if len(mem) != n {
		return nil, fmt.Errorf("%w: arena returned %d of %d bytes", ErrAllocFailed, len(mem), n)
	}
	return mem, nil
}

// releaseMem hands the current allocation back to the arena. Release
// failures are ignored: the buffer has already let go of the memory
// and the operation that triggered the release has succeeded.
func (b *Buffer) releaseMem() {
	if b.mem == nil || b.arena == nil {
		return
	}
	_ = b.arena.Release(b.mem)
}

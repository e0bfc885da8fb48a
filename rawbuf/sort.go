package rawbuf

import (
	"fmt"
	"sort"
)

// swapChunk bounds the stack scratch used when exchanging two elements,
// so swap cost in stack space is independent of element size.
const swapChunk = 64

// Swap exchanges the elements at indices i and j byte for byte.
// Swapping an index with itself succeeds trivially.
func (b *Buffer) Swap(i, j, elemSize int) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if i < 0 || i >= b.size || j < 0 || j >= b.size {
		return fmt.Errorf("swap %d, %d (size %d): %w", i, j, b.size, ErrInvalidArgument)
	}
	if i != j {
		b.swap(i, j, elemSize)
	}
	return nil
}

// swap exchanges two elements through a fixed-size scratch buffer,
// chunk by chunk for elements larger than the scratch.
func (b *Buffer) swap(i, j, elemSize int) {
	var scratch [swapChunk]byte
	first := b.elem(i, elemSize)
	second := b.elem(j, elemSize)

	for len(first) > 0 {
		n := min(len(first), swapChunk)
		copy(scratch[:n], first[:n])
		copy(first[:n], second[:n])
		copy(second[:n], scratch[:n])
		first = first[n:]
		second = second[n:]
	}
}

// Sort orders the live elements with an unstable comparison sort. cmp
// receives two element views and follows the three-way convention:
// negative when a sorts before b, zero when equal, positive when
// after. Sorting an empty buffer is a no-op.
func (b *Buffer) Sort(elemSize int, cmp func(a, b []byte) int) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if cmp == nil {
		return ErrInvalidArgument
	}
	if b.size > 0 {
		sort.Sort(&byteSorter{b: b, elemSize: elemSize, cmp: cmp})
	}
	return nil
}

// byteSorter adapts a Buffer to sort.Interface so that element
// exchange goes through the chunked swap.
type byteSorter struct {
	b        *Buffer
	elemSize int
	cmp      func(a, b []byte) int
}

func (s *byteSorter) Len() int { return s.b.size }

func (s *byteSorter) Less(i, j int) bool {
	return s.cmp(s.b.elem(i, s.elemSize), s.b.elem(j, s.elemSize)) < 0
}

func (s *byteSorter) Swap(i, j int) {
	s.b.swap(i, j, s.elemSize)
}

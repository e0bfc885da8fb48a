package rawbuf

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vecdeque/internal/overflow"
)

// OpenGap reserves n contiguous free element slots at index idx. It
// does not change the size; callers that fill the gap account for the
// new elements themselves (Insert does both). On failure the buffer is
// unchanged.
func (b *Buffer) OpenGap(idx, n, elemSize int) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	return b.openGap(idx, n, elemSize)
}

func (b *Buffer) openGap(idx, n, elemSize int) error {
	if n <= 0 || idx < 0 || idx > b.size {
		return fmt.Errorf("open gap of %d at %d (size %d): %w", n, idx, b.size, ErrInvalidArgument)
	}
	newSize, ok := overflow.Add(b.size, n)
	if !ok {
		return fmt.Errorf("%w: size %d + %d wraps", ErrCapacityOverflow, b.size, n)
	}

	if newSize > b.capacity {
		if err := b.growFor(n, elemSize); err != nil {
			return err
		}
	}

	// An empty buffer never needs data movement.
	if b.size == 0 {
		return nil
	}

	switch {
	case idx == 0 && b.start >= n:
		// Front extension: regress the offset, move nothing.
		b.start -= n

	case idx < b.size || n > b.capacity-(b.start+b.size):
		// Interior gap, or a back gap larger than the trailing free
		// region. Consume front slack first; push the tail forward
		// only for whatever is still missing. Opening at the very end
		// compacts to the base in one move on the assumption that the
		// pattern is end insertion.
		shiftBack := n
		if idx == b.size || n > b.start {
			shiftBack = b.start
		}

		b.start -= shiftBack
		dst := b.start * elemSize
		src := (b.start + shiftBack) * elemSize
		copy(b.mem[dst:dst+idx*elemSize], b.mem[src:src+idx*elemSize])

		if idx < b.size && n > shiftBack {
			dst = (b.start + idx + n) * elemSize
			src = (b.start + idx + shiftBack) * elemSize
			run := (b.size - idx) * elemSize
			copy(b.mem[dst:dst+run], b.mem[src:src+run])
		}

	default:
		// Back extension: the trailing free region is the gap.
	}

	return nil
}

// growFor reserves capacity for at least n more elements: geometric
// 2.5x stepping from half the current capacity (or the minimum
// granularity), capped at exactly n if the stepping would wrap, then
// retried with progressively smaller additions when the arena refuses,
// down to exactly n.
func (b *Buffer) growFor(n, elemSize int) error {
	addition := initialCapacity
	if b.capacity > 0 {
		// A capacity of one halves to zero; keep the step positive.
		addition = max(b.capacity>>1, 1)
	}

	for addition < n {
		next := (addition << 1) + (addition >> 1)
		if next < addition {
			addition = n
			break
		}
		addition = next
	}

	for {
		err := b.reserve(addition, elemSize)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidState) {
			return err
		}
		if addition > n && addition>>1 < n {
			addition = n
			continue
		}
		addition >>= 1
		if addition < n {
			return err
		}
	}
}

// Insert splices the elements in val at index idx. len(val) must be a
// multiple of elemSize; an empty val succeeds as a no-op. On failure
// the buffer is unchanged.
func (b *Buffer) Insert(idx, elemSize int, val []byte) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if val == nil {
		return ErrInvalidArgument
	}
	if len(val)%elemSize != 0 {
		return fmt.Errorf("%d bytes is not a whole number of %d-byte elements: %w",
			len(val), elemSize, ErrInvalidArgument)
	}
	n := len(val) / elemSize
	if n == 0 {
		if idx < 0 || idx > b.size {
			return ErrInvalidArgument
		}
		return nil
	}
	if err := b.openGap(idx, n, elemSize); err != nil {
		return err
	}
	copy(b.mem[(b.start+idx)*elemSize:], val)
	b.size += n
	return nil
}

// Remove deletes n elements starting at idx. When out is non-nil the
// removed bytes are copied into out[:n*elemSize] before mutation; a nil
// out discards them. Removing zero elements succeeds as a no-op.
// Capacity is never reduced; use ShrinkToFit to reclaim memory. On
// failure the buffer is unchanged.
func (b *Buffer) Remove(idx, n, elemSize int, out []byte) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if idx < 0 || n < 0 || n > b.size || idx > b.size-n {
		return fmt.Errorf("remove %d at %d (size %d): %w", n, idx, b.size, ErrInvalidArgument)
	}
	if n == 0 {
		return nil
	}
	run := n * elemSize
	if out != nil {
		if len(out) < run {
			return fmt.Errorf("out holds %d of %d removed bytes: %w", len(out), run, ErrInvalidArgument)
		}
		off := (b.start + idx) * elemSize
		copy(out, b.mem[off:off+run])
	}

	b.size -= n

	if b.size > 0 {
		if idx == 0 {
			// Front removal: advance the offset, move nothing.
			b.start += n
		} else if idx < b.size {
			dst := (b.start + idx) * elemSize
			src := (b.start + idx + n) * elemSize
			copy(b.mem[dst:dst+(b.size-idx)*elemSize], b.mem[src:])
		}
	}
	return nil
}

// Assign overwrites existing elements starting at idx with the
// elements in val. The target range must already exist; Assign never
// grows the buffer.
func (b *Buffer) Assign(idx, elemSize int, val []byte) error {
	if err := b.check(elemSize); err != nil {
		return err
	}
	if val == nil || len(val)%elemSize != 0 {
		return ErrInvalidArgument
	}
	n := len(val) / elemSize
	if idx < 0 || idx >= b.size || n > b.size-idx {
		return fmt.Errorf("assign %d at %d (size %d): %w", n, idx, b.size, ErrInvalidArgument)
	}
	copy(b.mem[(b.start+idx)*elemSize:], val)
	return nil
}

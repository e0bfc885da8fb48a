package vecdeque

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vecdeque/internal/overflow"
)

// OpenGap reserves n contiguous free slots positioned so that writing n
// elements at idx and then accounting for them yields the old content
// with n fresh slots spliced in at idx. It does not change the size;
// Insert is the usual caller. On failure the vector is unchanged.
//
// The gap is placed with minimal data movement: a gap at the front is
// plain offset regression when slack exists, a gap at the back uses any
// free trailing capacity as is, and an interior gap slides the shorter
// of the neighboring runs.
func (v *Vec[T]) OpenGap(idx, n int) error {
	if !v.valid() {
		return ErrInvalidState
	}
	return v.openGap(idx, n)
}

func (v *Vec[T]) openGap(idx, n int) error {
	// Gaps are never empty, and never open past the end of the live range.
	if n <= 0 || idx < 0 || idx > v.size {
		return fmt.Errorf("open gap of %d at %d (size %d): %w", n, idx, v.size, ErrInvalidArgument)
	}
	newSize, ok := overflow.Add(v.size, n)
	if !ok {
		return fmt.Errorf("%w: size %d + %d wraps", ErrCapacityOverflow, v.size, n)
	}

	if newSize > len(v.buf) {
		if err := v.growFor(n); err != nil {
			return err
		}
	}

	// An empty vector never needs data movement; the trailing free
	// region (the whole allocation) already is the gap.
	if v.size == 0 {
		return nil
	}

	switch {
	case idx == 0 && v.start >= n:
		// Front extension: regress the offset, move nothing.
		v.start -= n

	case idx < v.size || n > len(v.buf)-(v.start+v.size):
		// Interior gap, or a back gap that does not fit in the
		// trailing free region. Consume front slack first, then push
		// the tail forward only for whatever is still missing.
		//
		// When opening at the very end, assume the pattern is end
		// insertion and shift everything to the base in one move.
		shiftBack := n
		if idx == v.size || n > v.start {
			shiftBack = v.start
		}

		v.start -= shiftBack
		copy(v.buf[v.start:v.start+idx], v.buf[v.start+shiftBack:v.start+shiftBack+idx])

		if idx < v.size && n > shiftBack {
			// Tail still overlaps the gap: move the suffix forward
			// by the remaining n-shiftBack slots.
			copy(v.buf[v.start+idx+n:v.start+v.size+n],
				v.buf[v.start+idx+shiftBack:v.start+v.size+shiftBack])
		}

	default:
		// Back extension: the trailing free region is the gap.
	}

	return nil
}

// growFor reserves capacity for at least n more elements using a
// geometric policy: start from half the current capacity (or the
// minimum granularity) and step by 2.5x until the addition covers n,
// capping at exactly n if the stepping would wrap. If the allocator
// refuses the computed addition, retry with progressively smaller
// additions down to exactly n before giving up, so that growth under
// memory pressure still makes the immediate request fit.
func (v *Vec[T]) growFor(n int) error {
	addition := initialCapacity
	if c := len(v.buf); c > 0 {
		// A capacity of one halves to zero; keep the step positive.
		addition = max(c>>1, 1)
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
		err := v.reserve(addition)
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

// Insert places vals at index idx, sliding existing elements as needed.
// Inserting at Len appends; inserting nothing succeeds as a no-op.
// On failure the vector is unchanged.
func (v *Vec[T]) Insert(idx int, vals ...T) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if len(vals) == 0 {
		if idx < 0 || idx > v.size {
			return ErrInvalidArgument
		}
		return nil
	}
	if err := v.openGap(idx, len(vals)); err != nil {
		return err
	}
	copy(v.buf[v.start+idx:], vals)
	v.size += len(vals)
	return nil
}

package vecdeque

import "fmt"

// Remove deletes n elements starting at idx. When out is non-nil the
// removed elements are copied into out[:n] before mutation, so out must
// have room for at least n elements; a nil out discards them. Removing
// zero elements succeeds as a no-op. Capacity is never reduced; use
// ShrinkToFit to reclaim memory. On failure the vector is unchanged.
//
// Removal from the front advances the start offset without moving data.
func (v *Vec[T]) Remove(idx, n int, out []T) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if idx < 0 || n < 0 || n > v.size || idx > v.size-n {
		return fmt.Errorf("remove %d at %d (size %d): %w", n, idx, v.size, ErrInvalidArgument)
	}
	if n == 0 {
		return nil
	}
	if out != nil {
		if len(out) < n {
			return fmt.Errorf("out holds %d of %d removed elements: %w", len(out), n, ErrInvalidArgument)
		}
		copy(out, v.buf[v.start+idx:v.start+idx+n])
	}

	oldSize := v.size
	v.size -= n

	if v.size > 0 {
		if idx == 0 {
			v.start += n
			clear(v.buf[v.start-n : v.start])
			return nil
		}
		if idx < v.size {
			copy(v.buf[v.start+idx:v.start+v.size], v.buf[v.start+idx+n:v.start+oldSize])
		}
	}
	// Drop references in the vacated tail slots so removed elements
	// become collectable.
	clear(v.buf[v.start+v.size : v.start+oldSize])
	return nil
}

// Assign overwrites len(vals) existing slots starting at idx. The
// target range must already exist; Assign never grows the vector.
func (v *Vec[T]) Assign(idx int, vals ...T) error {
	if !v.valid() {
		return ErrInvalidState
	}
	if idx < 0 || idx >= v.size || len(vals) > v.size-idx {
		return fmt.Errorf("assign %d at %d (size %d): %w", len(vals), idx, v.size, ErrInvalidArgument)
	}
	copy(v.buf[v.start+idx:], vals)
	return nil
}

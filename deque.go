package vecdeque

// The methods in this file are pure delegations to Insert and Remove.
// They name the four ends-of-the-container operations the way queue and
// stack users expect.

// Push appends val at the end.
func (v *Vec[T]) Push(val T) error {
	return v.Insert(v.Len(), val)
}

// PushN appends vals at the end.
func (v *Vec[T]) PushN(vals ...T) error {
	return v.Insert(v.Len(), vals...)
}

// Pop removes the last element, storing it in out when non-nil.
func (v *Vec[T]) Pop(out *T) error {
	return v.removeOne(v.Len()-1, out)
}

// PopN removes the last n elements, copying them into out when non-nil.
func (v *Vec[T]) PopN(n int, out []T) error {
	return v.Remove(v.Len()-n, n, out)
}

// Shift removes the first element, storing it in out when non-nil.
func (v *Vec[T]) Shift(out *T) error {
	return v.removeOne(0, out)
}

// ShiftN removes the first n elements, copying them into out when non-nil.
func (v *Vec[T]) ShiftN(n int, out []T) error {
	return v.Remove(0, n, out)
}

// Unshift inserts val at the front.
func (v *Vec[T]) Unshift(val T) error {
	return v.Insert(0, val)
}

// UnshiftN inserts vals at the front.
func (v *Vec[T]) UnshiftN(vals ...T) error {
	return v.Insert(0, vals...)
}

func (v *Vec[T]) removeOne(idx int, out *T) error {
	if out == nil {
		return v.Remove(idx, 1, nil)
	}
	var one [1]T
	if err := v.Remove(idx, 1, one[:]); err != nil {
		return err
	}
	*out = one[0]
	return nil
}

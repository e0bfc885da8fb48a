package rawbuf

import "errors"

var (
	// ErrInvalidState indicates the buffer's internal invariants were
	// violated on entry, usually because operations were issued with
	// inconsistent element sizes.
	ErrInvalidState = errors.New("rawbuf: invalid buffer state")

	// ErrInvalidArgument indicates a zero element size, a missing
	// required argument, or an index/length outside the legal range
	// for the requested operation.
	ErrInvalidArgument = errors.New("rawbuf: invalid argument")

	// ErrCapacityOverflow indicates that the requested growth would
	// overflow size, capacity, or byte-count arithmetic.
	ErrCapacityOverflow = errors.New("rawbuf: capacity overflow")

	// ErrAllocFailed indicates that the arena could not satisfy a grow
	// or shrink request.
	ErrAllocFailed = errors.New("rawbuf: allocation failed")
)

// isTaxonomy reports whether err already wraps one of the package's
// sentinel errors.
func isTaxonomy(err error) bool {
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrCapacityOverflow) ||
		errors.Is(err, ErrAllocFailed)
}

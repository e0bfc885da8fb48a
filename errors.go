package vecdeque

import "errors"

var (
	// ErrInvalidState indicates the container's internal invariants were
	// violated on entry. This is a defensive check and should not occur
	// when the container is used through its public API.
	ErrInvalidState = errors.New("vecdeque: invalid container state")

	// ErrInvalidArgument indicates an index or length outside the legal
	// range for the requested operation, or a required argument that was
	// missing (nil comparator, zero-length gap, short out buffer).
	ErrInvalidArgument = errors.New("vecdeque: invalid argument")

	// ErrCapacityOverflow indicates that the requested growth would
	// overflow size, capacity, or byte-count arithmetic.
	ErrCapacityOverflow = errors.New("vecdeque: capacity overflow")

	// ErrAllocFailed indicates that the allocator could not satisfy a
	// grow or shrink request.
	ErrAllocFailed = errors.New("vecdeque: allocation failed")
)

// isTaxonomy reports whether err already wraps one of the package's
// sentinel errors.
func isTaxonomy(err error) bool {
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrCapacityOverflow) ||
		errors.Is(err, ErrAllocFailed)
}

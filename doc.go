// Package vecdeque provides a contiguous, double-ended vector backed by a
// single growable allocation.
//
// # Overview
//
// Vec[T] stores its elements in one contiguous slice together with a movable
// start offset. The offset turns many insertion and removal patterns into
// O(1) index adjustments instead of O(n) copies: pushing or popping at the
// front is amortized O(1), and interior insertion slides the minimum
// necessary run of elements, preferring to consume existing front slack
// before pushing the tail forward. Growth never needs a second live buffer
// beyond the single reallocation copy, and never doubles memory just to
// make room for a handful of elements.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Vec: the container engine (capacity management, gap placement,
//     removal/compaction, element operations)
//   - Allocator: pluggable backing-storage allocation, used to inject
//     budgets or failure behavior
//   - Limit: an Allocator that fails above a fixed element budget
//
// # Usage
//
// The zero value is an empty, ready-to-use vector:
//
//	var v vecdeque.Vec[int]
//	_ = v.Push(1)
//	_ = v.Unshift(0)
//	var first int
//	_ = v.Shift(&first) // first == 0, v == [1]
//
// Bulk edits go through Insert and Remove, which place or close a gap of
// several elements in one movement:
//
//	_ = v.Insert(1, 7, 8, 9)
//	out := make([]int, 2)
//	_ = v.Remove(1, 2, out)
//
// # Failure Contract
//
// Every mutating operation reports failure through one of the sentinel
// errors in this package (ErrInvalidArgument, ErrCapacityOverflow,
// ErrAllocFailed, ErrInvalidState). A failed call leaves the vector exactly
// as it was; no partial mutation is ever observable.
//
// # Concurrency
//
// A Vec performs no internal locking. A single instance must be owned
// exclusively by one goroutine per call; callers that share one across
// goroutines must serialize access themselves (a single mutex around the
// Vec suffices, since every operation leaves it consistent).
//
// For byte-addressed records of a caller-chosen fixed size, see the rawbuf
// subpackage, which exposes the same engine over opaque byte runs.
package vecdeque

// Package rawbuf provides the vecdeque engine over opaque byte runs.
//
// # Overview
//
// Buffer manages fixed-size binary records held in a single contiguous
// byte allocation. It is element-type-agnostic: every operation takes
// the element size in bytes and the engine never stores it, treating
// each element as an opaque run of elemSize bytes. This suits wire
// records, fixed-width rows, and other POD data that lives in []byte
// form, where a typed Vec would force a decode step.
//
// The placement machinery is the same as the root package's: a movable
// start offset gives O(1) amortized insertion and removal at both ends,
// and interior edits slide the minimum necessary run of bytes. All
// count and byte arithmetic is overflow-checked.
//
// # Element Size Contract
//
// Callers must pass the same elemSize to every operation on a given
// Buffer. The engine cross-checks the stored capacity against the
// allocation on each call and reports ErrInvalidState when the sizes
// disagree, which catches most mixups.
//
// # Arenas
//
// Backing memory comes from an Arena. The default allocates from the
// heap; MmapArena serves large buffers from anonymous kernel mappings
// which are returned eagerly on Clear and shrink.
//
// A Buffer is not safe for concurrent use.
package rawbuf

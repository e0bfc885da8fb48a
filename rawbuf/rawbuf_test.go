package rawbuf

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recSize = 4

// rec encodes a uint32 record.
func rec(v uint32) []byte {
	b := make([]byte, recSize)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// recs encodes several uint32 records into one contiguous run.
func recs(vs ...uint32) []byte {
	b := make([]byte, 0, len(vs)*recSize)
	for _, v := range vs {
		b = append(b, rec(v)...)
	}
	return b
}

// decode reads the buffer's live content back as uint32 values.
func decode(t *testing.T, b *Buffer) []uint32 {
	t.Helper()
	raw := b.Bytes(recSize)
	require.Equal(t, 0, len(raw)%recSize)
	out := make([]uint32, 0, len(raw)/recSize)
	for off := 0; off < len(raw); off += recSize {
		out = append(out, binary.LittleEndian.Uint32(raw[off:]))
	}
	return out
}

// requireInvariants validates the buffer bookkeeping for recSize
// records.
func requireInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	require.Equal(t, b.mem == nil, b.capacity == 0, "capacity is zero exactly when no allocation exists")
	require.Equal(t, b.capacity*recSize, len(b.mem))
	require.LessOrEqual(t, b.size, b.capacity)
	require.GreaterOrEqual(t, b.start, 0)
	require.LessOrEqual(t, b.start+b.size, b.capacity)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var b Buffer

	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 0, b.Cap())
	assert.True(t, b.Empty())
	assert.Nil(t, b.Bytes(recSize))
	assert.Nil(t, b.Elem(0, recSize))
}

func TestInsertAndRemoveRecords(t *testing.T) {
	var b Buffer

	require.NoError(t, b.Insert(0, recSize, recs(1, 2, 3, 4, 5)))
	require.Equal(t, []uint32{1, 2, 3, 4, 5}, decode(t, &b))
	requireInvariants(t, &b)

	out := make([]byte, 2*recSize)
	require.NoError(t, b.Remove(1, 2, recSize, out))
	assert.Equal(t, []uint32{1, 4, 5}, decode(t, &b))
	assert.Equal(t, recs(2, 3), out)

	require.NoError(t, b.Insert(0, recSize, recs(9, 9)))
	assert.Equal(t, []uint32{9, 9, 1, 4, 5}, decode(t, &b))

	// Front removals advance the offset.
	for range 3 {
		require.NoError(t, b.Remove(0, 1, recSize, nil))
	}
	assert.Equal(t, []uint32{4, 5}, decode(t, &b))
	assert.Greater(t, b.start, 0)
	requireInvariants(t, &b)
}

func TestElemView(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(10, 20, 30)))

	e := b.Elem(1, recSize)
	require.Len(t, e, recSize)
	assert.Equal(t, uint32(20), binary.LittleEndian.Uint32(e))

	assert.Nil(t, b.Elem(3, recSize))
	assert.Nil(t, b.Elem(-1, recSize))
}

func TestElementSizeZeroRejected(t *testing.T) {
	var b Buffer
	assert.ErrorIs(t, b.Insert(0, 0, []byte{1}), ErrInvalidArgument)
	assert.ErrorIs(t, b.Reserve(1, 0), ErrInvalidArgument)
	assert.ErrorIs(t, b.Sort(0, bytes.Compare), ErrInvalidArgument)
}

func TestElementSizeMismatchDetected(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(1, 2)))

	// The stored capacity no longer matches the allocation when sized
	// for 8-byte elements.
	assert.ErrorIs(t, b.Insert(0, 8, make([]byte, 8)), ErrInvalidState)
	assert.ErrorIs(t, b.Reserve(1, 8), ErrInvalidState)
}

func TestInsertPartialElementRejected(t *testing.T) {
	var b Buffer
	err := b.Insert(0, recSize, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, b.Len())
}

func TestOpenGapLaws(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(1, 2, 3)))

	assert.ErrorIs(t, b.OpenGap(0, 0, recSize), ErrInvalidArgument)
	assert.ErrorIs(t, b.OpenGap(4, 1, recSize), ErrInvalidArgument)
	assert.Equal(t, []uint32{1, 2, 3}, decode(t, &b))

	// A valid gap leaves size untouched until the caller accounts for it.
	require.NoError(t, b.OpenGap(3, 2, recSize))
	assert.Equal(t, 3, b.Len())
	assert.GreaterOrEqual(t, b.Cap(), 5)
}

func TestReserveAndShrink(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Reserve(64, recSize))
	require.Equal(t, 64, b.Cap())

	require.NoError(t, b.Insert(0, recSize, recs(7, 8)))
	require.NoError(t, b.ShrinkToFit(recSize))
	assert.Equal(t, initialCapacity, b.Cap())
	assert.Equal(t, []uint32{7, 8}, decode(t, &b))
	assert.Equal(t, 0, b.start)
	requireInvariants(t, &b)

	require.NoError(t, b.Remove(0, 2, recSize, nil))
	require.NoError(t, b.ShrinkToFit(recSize))
	assert.Equal(t, 0, b.Cap())
	assert.Nil(t, b.mem)
}

func TestCapacityOverflowGuards(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, rec(1)))

	assert.ErrorIs(t, b.Reserve(math.MaxInt, recSize), ErrCapacityOverflow)
	assert.ErrorIs(t, b.OpenGap(0, math.MaxInt, recSize), ErrCapacityOverflow)

	// Byte-count overflow: the element count fits but count*elemSize wraps.
	assert.ErrorIs(t, b.Reserve(math.MaxInt/2, recSize), ErrCapacityOverflow)

	assert.Equal(t, []uint32{1}, decode(t, &b))
	requireInvariants(t, &b)
}

func TestAssignRecords(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(1, 2, 3)))

	require.NoError(t, b.Assign(1, recSize, recs(20, 30)))
	assert.Equal(t, []uint32{1, 20, 30}, decode(t, &b))

	assert.ErrorIs(t, b.Assign(2, recSize, recs(1, 2)), ErrInvalidArgument)
	assert.ErrorIs(t, b.Assign(3, recSize, rec(1)), ErrInvalidArgument)
}

func TestSwapChunkedLargeElements(t *testing.T) {
	// Elements wider than the swap scratch get exchanged in several
	// passes; the content must still swap exactly.
	const wide = swapChunk*2 + 13

	first := bytes.Repeat([]byte{0xAA}, wide)
	second := bytes.Repeat([]byte{0xBB}, wide)
	first[0], first[wide-1] = 1, 2
	second[0], second[wide-1] = 3, 4

	var b Buffer
	require.NoError(t, b.Insert(0, wide, first))
	require.NoError(t, b.Insert(1, wide, second))

	require.NoError(t, b.Swap(0, 1, wide))
	assert.Equal(t, second, b.Elem(0, wide))
	assert.Equal(t, first, b.Elem(1, wide))

	require.NoError(t, b.Swap(1, 1, wide))
	assert.Equal(t, first, b.Elem(1, wide))

	assert.ErrorIs(t, b.Swap(0, 2, wide), ErrInvalidArgument)
}

func TestSortRecords(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(5, 1, 4, 2, 3)))

	// Big-endian re-encoding would be needed for bytes.Compare to give
	// numeric order, so compare decoded values instead.
	cmp := func(a, c []byte) int {
		av := binary.LittleEndian.Uint32(a)
		cv := binary.LittleEndian.Uint32(c)
		switch {
		case av < cv:
			return -1
		case av > cv:
			return 1
		default:
			return 0
		}
	}
	require.NoError(t, b.Sort(recSize, cmp))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, decode(t, &b))

	assert.ErrorIs(t, b.Sort(recSize, nil), ErrInvalidArgument)
}

func TestSortEmptyBuffer(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Sort(recSize, bytes.Compare))
}

func TestRemoveOutSemantics(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(1, 2, 3)))

	short := make([]byte, recSize)
	assert.ErrorIs(t, b.Remove(0, 2, recSize, short), ErrInvalidArgument)
	assert.Equal(t, []uint32{1, 2, 3}, decode(t, &b))

	// A longer out buffer receives exactly the removed run.
	long := bytes.Repeat([]byte{0xFF}, 3*recSize)
	require.NoError(t, b.Remove(0, 2, recSize, long))
	assert.Equal(t, recs(1, 2), long[:2*recSize])
	assert.Equal(t, bytes.Repeat([]byte{0xFF}, recSize), long[2*recSize:])
}

func TestClearIsIdempotent(t *testing.T) {
	var b Buffer
	require.NoError(t, b.Insert(0, recSize, recs(1, 2)))

	b.Clear()
	assert.Equal(t, 0, b.Cap())
	b.Clear()
	assert.Equal(t, 0, b.Cap())

	require.NoError(t, b.Insert(0, recSize, rec(9)))
	assert.Equal(t, []uint32{9}, decode(t, &b))
}

func TestMmapArenaBackedBuffer(t *testing.T) {
	b := NewWithArena(MmapArena{})

	require.NoError(t, b.Insert(0, recSize, recs(1, 2, 3, 4, 5)))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, decode(t, b))

	// Growth through the arena keeps content intact.
	for i := uint32(6); i <= 100; i++ {
		require.NoError(t, b.Insert(b.Len(), recSize, rec(i)))
	}
	assert.Equal(t, 100, b.Len())
	got := decode(t, b)
	for i, v := range got {
		require.Equal(t, uint32(i+1), v)
	}

	require.NoError(t, b.ShrinkToFit(recSize))
	assert.Equal(t, 100, b.Cap())

	b.Clear()
	assert.Equal(t, 0, b.Cap())
}

// limitArena refuses allocations above a byte budget.
type limitArena struct {
	max int
}

func (a limitArena) Alloc(n int) ([]byte, error) {
	if n > a.max {
		return nil, ErrAllocFailed
	}
	return make([]byte, n), nil
}

func (limitArena) Release([]byte) error { return nil }

func TestGrowthRetryUnderMemoryPressure(t *testing.T) {
	b := NewWithArena(limitArena{max: 120 * recSize})
	require.NoError(t, b.Reserve(100, recSize))
	for i := uint32(0); i < 100; i++ {
		require.NoError(t, b.Insert(b.Len(), recSize, rec(i)))
	}

	// The geometric step exceeds the budget; a smaller growth must be
	// retried before giving up.
	require.NoError(t, b.Insert(b.Len(), recSize, rec(100)))
	assert.Equal(t, 101, b.Len())
	assert.LessOrEqual(t, b.Cap(), 120)

	// With no headroom at all, the failure leaves the buffer unchanged.
	tight := NewWithArena(limitArena{max: 8 * recSize})
	require.NoError(t, tight.Reserve(8, recSize))
	for i := uint32(0); i < 8; i++ {
		require.NoError(t, tight.Insert(tight.Len(), recSize, rec(i)))
	}
	err := tight.Insert(tight.Len(), recSize, rec(8))
	require.ErrorIs(t, err, ErrAllocFailed)
	assert.Equal(t, 8, tight.Len())
	assert.Equal(t, 8, tight.Cap())
}

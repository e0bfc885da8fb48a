package vecdeque

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwap(t *testing.T) {
	v := fill(t, 4, 5)

	require.NoError(t, v.Swap(0, 1))
	assert.Equal(t, []int{5, 4}, v.Slice())

	require.NoError(t, v.Swap(0, 0), "self-swap succeeds trivially")
	assert.Equal(t, []int{5, 4}, v.Slice())
}

func TestSwapBounds(t *testing.T) {
	v := fill(t, 1, 2)

	assert.ErrorIs(t, v.Swap(0, 2), ErrInvalidArgument)
	assert.ErrorIs(t, v.Swap(2, 0), ErrInvalidArgument)
	assert.ErrorIs(t, v.Swap(-1, 0), ErrInvalidArgument)
	assert.Equal(t, []int{1, 2}, v.Slice())
}

func TestSwapWithFrontSlack(t *testing.T) {
	v := fillWithFrontSlack(t, 2, 10, 20, 30)

	require.NoError(t, v.Swap(0, 2))
	assert.Equal(t, []int{30, 20, 10}, v.Slice())
}

func TestSort(t *testing.T) {
	v := fill(t, 3, 1, 4, 1, 5, 9, 2, 6)

	require.NoError(t, v.Sort(cmp.Compare))
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 6, 9}, v.Slice())
}

func TestSortNilComparator(t *testing.T) {
	v := fill(t, 2, 1)

	require.ErrorIs(t, v.Sort(nil), ErrInvalidArgument)
	assert.Equal(t, []int{2, 1}, v.Slice())
}

func TestSortEmpty(t *testing.T) {
	var v Vec[int]
	require.NoError(t, v.Sort(cmp.Compare))
	assert.Equal(t, 0, v.Len())
}

func TestSortWithFrontSlack(t *testing.T) {
	v := fillWithFrontSlack(t, 3, 5, 3, 4, 1, 2)

	require.NoError(t, v.Sort(cmp.Compare))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, v.Slice())
	requireInvariants(t, v)
}

package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndices(t *testing.T) {
	rng := NewRNG(4711)

	idx := rng.Indices(32, 100)
	require.Len(t, idx, 32)

	seen := map[int]bool{}
	for _, i := range idx {
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 100)
		assert.False(t, seen[i], "index %d drawn twice", i)
		seen[i] = true
	}

	assert.Len(t, rng.Indices(10, 4), 4)
}

func TestRNGReset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.Indices(8, 1000)
	rng.Reset()
	assert.Equal(t, first, rng.Indices(8, 1000))
	assert.Equal(t, int64(42), rng.Seed())
}

func TestOracle(t *testing.T) {
	o := NewOracle()
	for _, b := range []int{3, 17, 127, 128, 340} {
		o.Set(b, true)
	}

	assert.Equal(t, []int{3, 17, 127, 128, 340}, o.Sorted())
	assert.Equal(t, []int{340, 128, 127, 17, 3}, o.Reversed())
	assert.Equal(t, 5, o.Count())

	assert.Equal(t, 3, o.Next(0))
	assert.Equal(t, 17, o.Next(17))
	assert.Equal(t, None, o.Next(341))

	assert.Equal(t, None, o.Prev(0))
	assert.Equal(t, None, o.Prev(3))
	assert.Equal(t, 3, o.Prev(4))
	assert.Equal(t, 128, o.Prev(340))

	o.Set(17, false)
	assert.False(t, o.Get(17))

	o.Truncate(128)
	assert.Equal(t, []int{3, 127}, o.Sorted())
	assert.Equal(t, None, o.Next(128))

	o.Clear()
	assert.Equal(t, 0, o.Count())
	assert.Equal(t, None, o.Prev(1000))
}

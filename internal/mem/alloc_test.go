package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocWords(t *testing.T) {
	sizes := []int{1, 2, 3, 7, 64, 100}

	for _, size := range sizes {
		buf := AllocWords(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf), "cap should equal len for size %d", size)
		for i, w := range buf {
			assert.Zero(t, w, "word %d should be zero for size %d", i, size)
		}
	}

	assert.Nil(t, AllocWords(0))
	assert.Nil(t, AllocWords(-1))
}

func TestCloneWords(t *testing.T) {
	src := []uint{1, 2, 3}

	buf := CloneWords(src, 5)
	require.GreaterOrEqual(t, len(buf), 5)
	assert.Equal(t, len(buf), cap(buf))
	assert.Equal(t, src, buf[:3])
	for _, w := range buf[3:] {
		assert.Zero(t, w)
	}

	buf[0] = 42
	assert.Equal(t, uint(1), src[0], "clone must not alias its source")
}

func TestCloneWords_SmallerTarget(t *testing.T) {
	src := []uint{7, 8, 9, 10}

	buf := CloneWords(src, 1)
	require.GreaterOrEqual(t, len(buf), len(src))
	assert.Equal(t, src, buf[:len(src)])
}

func TestGrowWords(t *testing.T) {
	buf := []uint{5, 6}

	grown := GrowWords(buf, 9)
	require.GreaterOrEqual(t, len(grown), 9)
	assert.Equal(t, len(grown), cap(grown))
	assert.Equal(t, []uint{5, 6}, grown[:2])
	for i, w := range grown[2:] {
		assert.Zero(t, w, "word %d should be zero", i+2)
	}
}

func TestGrowWords_ZeroesReusedSlack(t *testing.T) {
	backing := []uint{1, 2, 3, 4, 5, 6, 7, 8}
	buf := backing[:2]

	grown := GrowWords(buf, 4)
	require.Len(t, grown, 8)
	assert.Equal(t, []uint{1, 2, 0, 0, 0, 0, 0, 0}, grown)
}

func TestWords(t *testing.T) {
	var arr [4]uint
	view := Words(&arr)
	require.Len(t, view, 4)

	view[2] = 99
	assert.Equal(t, uint(99), arr[2])

	arr[3] = 7
	assert.Equal(t, uint(7), view[3])
}

func BenchmarkGrowWords(b *testing.B) {
	sizes := []int{4, 16, 64, 256}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("words=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = GrowWords(nil, size)
			}
		})
	}
}

package chunkedvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/chunkedvec/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	v := FromSlice(testutil.Sequence(20), WithChunkSize(3))

	bm, err := v.Select(func(x int) bool { return x%4 == 0 })
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 4, 8, 12, 16}, bm.ToArray())

	t.Run("no match", func(t *testing.T) {
		bm, err := v.Select(func(int) bool { return false })
		require.NoError(t, err)
		assert.True(t, bm.IsEmpty())
	})

	t.Run("empty vector", func(t *testing.T) {
		bm, err := New[int]().Select(func(int) bool { return true })
		require.NoError(t, err)
		assert.Equal(t, uint64(0), bm.GetCardinality())
	})
}

func TestGather(t *testing.T) {
	v := FromSlice([]string{"a", "b", "c", "d", "e", "f"}, WithChunkSize(4))

	t.Run("round trip with Select", func(t *testing.T) {
		bm, err := v.Select(func(s string) bool { return s != "c" && s != "e" })
		require.NoError(t, err)

		var got []string
		for i, s := range v.Gather(bm) {
			assert.Equal(t, v.At(i), s)
			got = append(got, s)
		}
		assert.Equal(t, []string{"a", "b", "d", "f"}, got)
	})

	t.Run("positions past the end are skipped", func(t *testing.T) {
		bm := roaring.BitmapOf(1, 5, 6, 100)

		var idx []int
		for i := range v.Gather(bm) {
			idx = append(idx, i)
		}
		assert.Equal(t, []int{1, 5}, idx)
	})

	t.Run("early break", func(t *testing.T) {
		bm := roaring.BitmapOf(0, 1, 2, 3)
		n := 0
		for range v.Gather(bm) {
			n++
			if n == 2 {
				break
			}
		}
		assert.Equal(t, 2, n)
	})

	t.Run("nil bitmap", func(t *testing.T) {
		for range v.Gather(nil) {
			t.Fatal("nil bitmap must not yield")
		}
	})
}

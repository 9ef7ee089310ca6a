package chunkedvec

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/chunkedvec/internal/conv"
)

// Select returns the positions of the elements matching pred as a roaring
// bitmap. Bitmap positions are uint32; a match beyond that range yields
// ErrPositionOverflow.
func (v *Vec[T]) Select(pred func(T) bool) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for i, x := range v.All() {
		if !pred(x) {
			continue
		}
		pos, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPositionOverflow, err)
		}
		bm.Add(pos)
	}
	return bm, nil
}

// Gather returns an iterator over the index-value pairs at the positions in
// bm, in ascending order. Positions at or past Len() are skipped.
func (v *Vec[T]) Gather(bm *roaring.Bitmap) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if bm == nil {
			return
		}
		it := bm.Iterator()
		for it.HasNext() {
			i, err := conv.Uint32ToInt(it.Next())
			if err != nil || i >= v.length {
				return
			}
			if !yield(i, *v.ref(i)) {
				return
			}
		}
	}
}

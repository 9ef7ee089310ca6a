package chunkedvec_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hupe1980/chunkedvec"
)

// Example demonstrates pushing and indexing.
func Example() {
	v := chunkedvec.New[int](chunkedvec.WithChunkSize(4))
	for i := range 5 {
		v.Push(i * 10)
	}

	fmt.Println(v.Len(), v.NumChunks(), v.At(4))

	if _, ok := v.Get(5); !ok {
		fmt.Println("index 5 is out of range")
	}
	// Output:
	// 5 2 40
	// index 5 is out of range
}

// ExampleNewWithCapacity shows that pre-sizing rounds up to whole chunks.
func ExampleNewWithCapacity() {
	v := chunkedvec.NewWithCapacity[int](8, 100)

	fmt.Println(v.NumChunks(), v.AllocatedCapacity())
	// Output: 13 104
}

// ExampleFromSlice converts a slice and back.
func ExampleFromSlice() {
	v := chunkedvec.FromSlice([]string{"a", "b", "c"}, chunkedvec.WithChunkSize(2))

	fmt.Println(v.ToSlice())
	fmt.Println(slices.Collect(v.Values()))
	// Output:
	// [a b c]
	// [a b c]
}

// ExampleVec_Ptr updates an element in place.
func ExampleVec_Ptr() {
	v := chunkedvec.Of(1, 2, 3)

	if p, ok := v.Ptr(1); ok {
		*p = 20
	}

	fmt.Println(v.At(1))
	// Output: 20
}

// ExampleVec_At shows the panic raised by the index operator.
func ExampleVec_At() {
	v := chunkedvec.Of(1, 2, 3)

	defer func() {
		err := recover().(error)
		fmt.Println(err)
		fmt.Println(errors.Is(err, chunkedvec.ErrIndexOutOfRange))
	}()

	v.At(3)
	// Output:
	// chunkedvec: index out of range [3] with length 3
	// true
}

// ExampleNewSized uses a compile-time chunk size.
func ExampleNewSized() {
	v := chunkedvec.NewSized[float32, chunkedvec.Size16]()
	v.ExtendRepeat(0.5, 20)

	fmt.Println(v.ChunkSize(), v.Len(), v.NumChunks())
	// Output: 16 20 2
}

// ExampleVec_Select filters positions into a roaring bitmap.
func ExampleVec_Select() {
	v := chunkedvec.Of(5, 12, 7, 30, 1)

	bm, err := v.Select(func(x int) bool { return x > 6 })
	if err != nil {
		panic(err)
	}

	for i, x := range v.Gather(bm) {
		fmt.Println(i, x)
	}
	// Output:
	// 1 12
	// 2 7
	// 3 30
}

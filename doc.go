// Package chunkedvec provides a growable, indexable sequence that stores its
// elements in fixed-size chunks.
//
// A plain slice grows by reallocating and copying every element. A chunked
// vector instead allocates one chunk of ChunkSize() slots whenever the last
// chunk is full. Elements never move, so pointers into the vector stay valid
// and growth costs one allocation per ChunkSize() pushes.
//
// # Quick Start
//
//	v := chunkedvec.New[int]()               // chunk size 64
//	v.Push(1)
//	v.Push(2)
//	fmt.Println(v.At(0), v.Len())            // 1 2
//
//	x, ok := v.Get(5)                        // 0 false: out of range
//
// # Index Resolution
//
// Index i lives in chunk i / ChunkSize() at offset i % ChunkSize(). Every
// indexed operation resolves this in O(1).
//
// # Accessors
//
// Three families share the same resolution:
//
//	v.Get(i), v.Ptr(i)                 // checked: (zero, false) when out of range
//	v.At(i), v.AtPtr(i), v.Set(i, x)   // index operators: panic with *IndexError
//	v.Unchecked().Get(i)               // no length check: caller proves 0 <= i < Len()
//
// # Construction
//
//	chunkedvec.New[int](chunkedvec.WithChunkSize(8))
//	chunkedvec.NewWithCapacity[int](8, 100)  // 13 chunks, AllocatedCapacity() == 104
//	chunkedvec.NewWithChunkCount[int](8, 4)  // 4 chunks
//	chunkedvec.FromSlice([]int{1, 2, 3})
//	chunkedvec.FromSeq(maps.Keys(m))
//	chunkedvec.Of(1, 2, 3)
//	chunkedvec.Repeat("x", 10)
//
// A chunk size below one panics at construction with ErrInvalidChunkSize.
//
// # Compile-Time Chunk Size
//
// Sized fixes the chunk size in the type and otherwise behaves like Vec:
//
//	v := chunkedvec.NewSized[float32, chunkedvec.Size1024]()
//
// # Capacity
//
// AllocatedCapacity() is always NumChunks() * ChunkSize(). Capacity() is
// advisory: it also counts table slots reserved for future chunks and may be
// larger.
//
// # Concurrency
//
// A vector is not safe for concurrent use. Wrap it in a sync.RWMutex if it
// must be shared.
package chunkedvec

package chunkedvec

import (
	"iter"
	"slices"
)

// ChunkSize is implemented by types that fix a chunk size at compile time.
// Size must return the same positive constant on the zero value.
type ChunkSize interface {
	Size() int
}

// Predefined compile-time chunk sizes.
type (
	Size8    struct{}
	Size16   struct{}
	Size32   struct{}
	Size64   struct{}
	Size128  struct{}
	Size256  struct{}
	Size1024 struct{}
)

func (Size8) Size() int    { return 8 }
func (Size16) Size() int   { return 16 }
func (Size32) Size() int   { return 32 }
func (Size64) Size() int   { return 64 }
func (Size128) Size() int  { return 128 }
func (Size256) Size() int  { return 256 }
func (Size1024) Size() int { return 1024 }

func sizeOf[N ChunkSize]() int {
	var n N
	return n.Size()
}

// Sized is a Vec whose chunk size is part of its type.
//
//	v := chunkedvec.NewSized[int, chunkedvec.Size8]()
//
// It shares the storage and indexing of Vec; only where the chunk size comes
// from differs. WithChunkSize is ignored. The zero value is ready to use.
type Sized[T any, N ChunkSize] struct {
	Vec[T]
}

// NewSized creates an empty Sized vector. It panics with ErrInvalidChunkSize
// if N.Size() is below one.
func NewSized[T any, N ChunkSize](opts ...Option) *Sized[T, N] {
	o := applyOptions(opts)
	s := &Sized[T, N]{}
	s.init(sizeOf[N](), o)
	return s
}

// SizedWithCapacity creates an empty Sized vector that can absorb n pushes
// without allocating.
func SizedWithCapacity[T any, N ChunkSize](n int, opts ...Option) *Sized[T, N] {
	return NewSized[T, N](slices.Concat(opts, []Option{WithCapacity(n)})...)
}

// SizedWithChunkCount creates an empty Sized vector with exactly k chunks
// allocated.
func SizedWithChunkCount[T any, N ChunkSize](k int, opts ...Option) *Sized[T, N] {
	return NewSized[T, N](slices.Concat(opts, []Option{WithChunkCount(k)})...)
}

// SizedFromSlice creates a Sized vector holding a copy of s.
func SizedFromSlice[T any, N ChunkSize](s []T, opts ...Option) *Sized[T, N] {
	o := applyOptions(opts)
	o.atLeast(len(s))
	v := &Sized[T, N]{}
	v.init(sizeOf[N](), o)
	v.ExtendSlice(s)
	return v
}

// SizedFromSeq creates a Sized vector by consuming seq in order.
func SizedFromSeq[T any, N ChunkSize](seq iter.Seq[T], opts ...Option) *Sized[T, N] {
	v := NewSized[T, N](opts...)
	v.Extend(seq)
	return v
}

// settle fixes the chunk size of a zero-value Sized before it first grows.
func (s *Sized[T, N]) settle() {
	if s.chunkSize != 0 {
		return
	}
	size := sizeOf[N]()
	if size <= 0 {
		panic(invalidChunkSize(size))
	}
	s.chunkSize = size
}

// ChunkSize returns N.Size().
func (s *Sized[T, N]) ChunkSize() int { return sizeOf[N]() }

// Push appends value to the end of the vector.
func (s *Sized[T, N]) Push(value T) {
	s.settle()
	s.Vec.Push(value)
}

// Reserve allocates chunks so that at least additional more elements can be
// pushed without further allocation.
func (s *Sized[T, N]) Reserve(additional int) {
	s.settle()
	s.Vec.Reserve(additional)
}

// Extend pushes every element of seq, in order.
func (s *Sized[T, N]) Extend(seq iter.Seq[T]) {
	s.settle()
	s.Vec.Extend(seq)
}

// ExtendSlice pushes every element of src, in order.
func (s *Sized[T, N]) ExtendSlice(src []T) {
	s.settle()
	s.Vec.ExtendSlice(src)
}

// ExtendRepeat pushes n copies of value.
func (s *Sized[T, N]) ExtendRepeat(value T, n int) {
	s.settle()
	s.Vec.ExtendRepeat(value, n)
}

// Stats returns a summary of the vector's storage.
func (s *Sized[T, N]) Stats() Stats {
	s.settle()
	return s.Vec.Stats()
}

// Clone returns a deep copy of s.
func (s *Sized[T, N]) Clone() *Sized[T, N] {
	return &Sized[T, N]{Vec: *s.Vec.Clone()}
}

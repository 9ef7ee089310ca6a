package chunkedvec

import (
	"iter"

	"github.com/hupe1980/chunkedvec/internal/chunk"
)

// FromSlice creates a vector holding a copy of s.
//
// Exactly the minimal number of chunks is allocated unless WithCapacity or
// WithChunkCount asks for more.
func FromSlice[T any](s []T, opts ...Option) *Vec[T] {
	o := applyOptions(opts)
	o.atLeast(len(s))
	v := &Vec[T]{}
	v.init(o.chunkSize, o)
	v.ExtendSlice(s)
	return v
}

// FromSeq creates a vector by consuming seq in order.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Vec[T] {
	v := New[T](opts...)
	v.Extend(seq)
	return v
}

// Collect is FromSeq with default options. It mirrors slices.Collect.
func Collect[T any](seq iter.Seq[T]) *Vec[T] {
	return FromSeq(seq)
}

// Of creates a vector holding values, in order, with the default chunk size.
func Of[T any](values ...T) *Vec[T] {
	return FromSlice(values)
}

// Repeat creates a vector holding n copies of value.
func Repeat[T any](value T, n int, opts ...Option) *Vec[T] {
	o := applyOptions(opts)
	o.atLeast(n)
	v := &Vec[T]{}
	v.init(o.chunkSize, o)
	v.ExtendRepeat(value, n)
	return v
}

// Extend pushes every element of seq, in order.
func (v *Vec[T]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.Push(x)
	}
}

// ExtendSlice pushes every element of s, in order. Elements are copied a
// chunk at a time.
func (v *Vec[T]) ExtendSlice(s []T) {
	v.Reserve(len(s))
	for len(s) > 0 {
		chunkIdx, _ := chunk.Locate(v.length, v.chunkSize)
		n := v.chunks[chunkIdx].AppendSlice(s)
		v.length += n
		s = s[n:]
	}
}

// ExtendRepeat pushes n copies of value.
func (v *Vec[T]) ExtendRepeat(value T, n int) {
	v.Reserve(n)
	for range n {
		v.Push(value)
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for items := range v.Chunks() {
			for _, x := range items {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// All returns an iterator over index-value pairs in index order.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for items := range v.Chunks() {
			for _, x := range items {
				if !yield(i, x) {
					return
				}
				i++
			}
		}
	}
}

// Backward returns an iterator over index-value pairs in reverse index order.
func (v *Vec[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if v.length == 0 {
			return
		}
		i := v.length - 1
		last, _ := chunk.Locate(i, v.chunkSize)
		for c := last; c >= 0; c-- {
			items := v.chunks[c].Items()
			for j := len(items) - 1; j >= 0; j-- {
				if !yield(i, items[j]) {
					return
				}
				i--
			}
		}
	}
}

// Chunks returns an iterator over the filled prefix of each non-empty chunk.
// The yielded slices alias the vector's storage.
func (v *Vec[T]) Chunks() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		// Reserved chunks always trail the filled ones.
		for _, c := range v.chunks {
			if c.Empty() {
				return
			}
			if !yield(c.Items()) {
				return
			}
		}
	}
}

// ToSlice returns the elements as a newly allocated slice.
func (v *Vec[T]) ToSlice() []T {
	return v.AppendTo(make([]T, 0, v.length))
}

// AppendTo appends the elements to dst and returns the extended slice.
func (v *Vec[T]) AppendTo(dst []T) []T {
	for items := range v.Chunks() {
		dst = append(dst, items...)
	}
	return dst
}

// Clone returns a deep copy of v with the same chunk size, reservations,
// logger and metrics collector.
func (v *Vec[T]) Clone() *Vec[T] {
	cl := &Vec[T]{
		chunks:    make([]*chunk.Chunk[T], len(v.chunks)),
		chunkSize: v.chunkSize,
		length:    v.length,
		logger:    v.logger,
		metrics:   v.metrics,
	}
	for i, c := range v.chunks {
		cl.chunks[i] = c.Clone()
	}
	return cl
}

// Equal reports whether a and b hold the same elements in the same order.
// Chunk sizes may differ.
func Equal[T comparable](a, b *Vec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ub := b.Unchecked()
	for i, x := range a.All() {
		if x != ub.Get(i) {
			return false
		}
	}
	return true
}

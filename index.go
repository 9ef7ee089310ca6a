package chunkedvec

import (
	"context"

	"github.com/hupe1980/chunkedvec/internal/chunk"
)

// slot resolves i to its chunk and the offset within it.
func (v *Vec[T]) slot(i int) (*chunk.Chunk[T], int) {
	chunkIdx, offset := chunk.Locate(i, v.chunkSize)
	return v.chunks[chunkIdx], offset
}

// ref resolves i to its slot. i must be within [0, Len()).
func (v *Vec[T]) ref(i int) *T {
	c, offset := v.slot(i)
	return c.UncheckedPtr(offset)
}

func (v *Vec[T]) inRange(i int) bool {
	return uint(i) < uint(v.length)
}

// Get returns the element at index i.
// Returns zero value and false if i is out of range.
func (v *Vec[T]) Get(i int) (T, bool) {
	if !v.inRange(i) {
		var zero T
		return zero, false
	}
	c, offset := v.slot(i)
	return c.Get(offset)
}

// Ptr returns a pointer to the element at index i, or false if i is out of
// range. Writes through the pointer are visible to later reads; the pointer
// remains valid after further pushes.
func (v *Vec[T]) Ptr(i int) (*T, bool) {
	if !v.inRange(i) {
		return nil, false
	}
	c, offset := v.slot(i)
	return c.Ptr(offset)
}

// At returns the element at index i.
// It panics with *IndexError if i is out of range.
func (v *Vec[T]) At(i int) T {
	if !v.inRange(i) {
		v.outOfRange(i)
	}
	return *v.ref(i)
}

// AtPtr returns a pointer to the element at index i.
// It panics with *IndexError if i is out of range.
func (v *Vec[T]) AtPtr(i int) *T {
	if !v.inRange(i) {
		v.outOfRange(i)
	}
	return v.ref(i)
}

// Set overwrites the element at index i.
// It panics with *IndexError if i is out of range.
func (v *Vec[T]) Set(i int, value T) {
	if !v.inRange(i) {
		v.outOfRange(i)
	}
	c, offset := v.slot(i)
	if err := c.Set(offset, value); err != nil {
		// Every index below length lies in a chunk's filled prefix.
		panic(err)
	}
}

func (v *Vec[T]) outOfRange(i int) {
	v.collector().RecordBoundsViolation(i, v.length)
	v.log().LogBoundsViolation(context.Background(), i, v.length)
	panic(&IndexError{Index: i, Len: v.length})
}

// Unchecked returns a view of v whose accessors skip the length check.
func (v *Vec[T]) Unchecked() Unchecked[T] {
	return Unchecked[T]{v: v}
}

// Unchecked exposes index access without bounds checking against Len().
//
// The caller must guarantee 0 <= i < Len(). For other indexes the result is
// unspecified: the accessor may return the zero value of a reserved slot or
// panic with a runtime error. Use it only where the bound is already proven,
// e.g. inside a loop over [0, Len()).
type Unchecked[T any] struct {
	v *Vec[T]
}

// Get returns the element at index i.
func (u Unchecked[T]) Get(i int) T {
	return *u.v.ref(i)
}

// Ptr returns a pointer to the element at index i.
func (u Unchecked[T]) Ptr(i int) *T {
	return u.v.ref(i)
}

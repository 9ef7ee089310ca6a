package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrFull is returned when appending to a chunk with no remaining slots.
	ErrFull = errors.New("chunk: full")
	// ErrOutOfRange is returned when writing past the filled prefix.
	ErrOutOfRange = errors.New("chunk: offset out of range")
)

// Chunk is a fixed-capacity block of items.
type Chunk[T any] struct {
	items  []T
	filled int
}

// New creates an empty Chunk with room for size items.
// It panics if size is not positive.
func New[T any](size int) *Chunk[T] {
	if size <= 0 {
		panic(fmt.Sprintf("chunk: invalid size %d", size))
	}
	return &Chunk[T]{items: make([]T, size)}
}

// Locate resolves a linear index into a chunk index and an offset within
// that chunk. size must be positive.
func Locate(i, size int) (chunkIdx, offset int) {
	return i / size, i % size
}

// Append writes v into the next free slot.
func (c *Chunk[T]) Append(v T) error {
	if c.filled == len(c.items) {
		return ErrFull
	}
	c.items[c.filled] = v
	c.filled++
	return nil
}

// AppendSlice copies as many leading items of s as fit into the free slots
// and returns how many were copied.
func (c *Chunk[T]) AppendSlice(s []T) int {
	n := copy(c.items[c.filled:], s)
	c.filled += n
	return n
}

// Get returns the item at offset.
// Returns zero value and false if offset is not within the filled prefix.
func (c *Chunk[T]) Get(offset int) (T, bool) {
	if offset < 0 || offset >= c.filled {
		var zero T
		return zero, false
	}
	return c.items[offset], true
}

// Ptr returns a pointer to the item at offset, or false if offset is not
// within the filled prefix. The pointer stays valid for the chunk's lifetime.
func (c *Chunk[T]) Ptr(offset int) (*T, bool) {
	if offset < 0 || offset >= c.filled {
		return nil, false
	}
	return &c.items[offset], true
}

// UncheckedPtr returns a pointer to the slot at offset without checking it
// against the filled prefix. Slots past Len() hold the zero value.
func (c *Chunk[T]) UncheckedPtr(offset int) *T {
	return &c.items[offset]
}

// Set overwrites the item at offset in place.
func (c *Chunk[T]) Set(offset int, v T) error {
	if offset < 0 || offset >= c.filled {
		return fmt.Errorf("%w: offset %d, filled %d", ErrOutOfRange, offset, c.filled)
	}
	c.items[offset] = v
	return nil
}

// Len returns the number of filled slots.
func (c *Chunk[T]) Len() int { return c.filled }

// Cap returns the number of slots.
func (c *Chunk[T]) Cap() int { return len(c.items) }

// Empty reports whether no slot is filled.
func (c *Chunk[T]) Empty() bool { return c.filled == 0 }

// Items returns the filled prefix. The result aliases the chunk; its
// capacity is clipped so appending to it never touches free slots.
func (c *Chunk[T]) Items() []T {
	return c.items[:c.filled:c.filled]
}

// Clone returns a deep copy of the chunk with the same capacity.
func (c *Chunk[T]) Clone() *Chunk[T] {
	items := make([]T, len(c.items))
	copy(items, c.items[:c.filled])
	return &Chunk[T]{items: items, filled: c.filled}
}

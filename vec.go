package chunkedvec

import (
	"context"
	"slices"
	"time"

	"github.com/hupe1980/chunkedvec/internal/chunk"
	"github.com/hupe1980/chunkedvec/internal/conv"
)

// Vec is a growable sequence that stores its elements in fixed-size chunks.
//
// Growth allocates one new chunk every ChunkSize() pushes; existing
// elements are never copied or moved, so pointers returned by Ptr and
// AtPtr stay valid for the lifetime of the vector.
//
// The zero value is an empty vector with DefaultChunkSize, ready to use.
// A Vec must not be copied after first use and is not safe for concurrent
// use.
type Vec[T any] struct {
	chunks    []*chunk.Chunk[T]
	chunkSize int
	length    int

	logger  *Logger
	metrics MetricsCollector
}

// Stats is a point-in-time summary of a vector's storage.
type Stats struct {
	Len               int
	ChunkSize         int
	NumChunks         int
	AllocatedCapacity int
	Capacity          int
	// Reserved is the number of allocated chunks that hold no element yet.
	Reserved int
}

// New creates an empty vector.
//
// With no options the chunk size is DefaultChunkSize and no chunk is
// allocated until the first Push. New panics with ErrInvalidChunkSize if
// WithChunkSize is given a value below one.
func New[T any](opts ...Option) *Vec[T] {
	o := applyOptions(opts)
	v := &Vec[T]{}
	v.init(o.chunkSize, o)
	return v
}

// NewWithCapacity creates an empty vector that can absorb n pushes without
// allocating. The allocated capacity is n rounded up to a multiple of
// chunkSize.
func NewWithCapacity[T any](chunkSize, n int, opts ...Option) *Vec[T] {
	return New[T](slices.Concat(opts, []Option{WithChunkSize(chunkSize), WithCapacity(n)})...)
}

// NewWithChunkCount creates an empty vector with exactly k chunks allocated.
func NewWithChunkCount[T any](chunkSize, k int, opts ...Option) *Vec[T] {
	return New[T](slices.Concat(opts, []Option{WithChunkSize(chunkSize), WithChunkCount(k)})...)
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (v *Vec[T]) init(chunkSize int, o options) {
	if chunkSize <= 0 {
		panic(invalidChunkSize(chunkSize))
	}
	v.chunkSize = chunkSize
	v.logger = o.logger
	v.metrics = o.metricsCollector

	if o.capacity < 0 {
		panic(invalidCapacity("capacity", o.capacity))
	}
	if o.chunkCount < 0 {
		panic(invalidCapacity("chunk count", o.chunkCount))
	}
	n, err := conv.CeilDiv(o.capacity, chunkSize)
	if err != nil {
		panic(capacityOverflow(err))
	}
	v.reserveChunks(max(n, o.chunkCount))
}

func (v *Vec[T]) log() *Logger {
	if v.logger == nil {
		return defaultLogger
	}
	return v.logger
}

func (v *Vec[T]) collector() MetricsCollector {
	if v.metrics == nil {
		return NoopMetricsCollector{}
	}
	return v.metrics
}

// size returns the chunk size, settling the default for a zero-value Vec.
func (v *Vec[T]) size() int {
	if v.chunkSize == 0 {
		v.chunkSize = DefaultChunkSize
	}
	return v.chunkSize
}

// reserveChunks allocates empty chunks until at least k exist.
func (v *Vec[T]) reserveChunks(k int) {
	missing := k - len(v.chunks)
	if missing <= 0 {
		return
	}
	if _, err := conv.MulInt(k, v.chunkSize); err != nil {
		panic(capacityOverflow(err))
	}

	start := time.Now()
	if cap(v.chunks)-len(v.chunks) < missing {
		grown := make([]*chunk.Chunk[T], len(v.chunks), k)
		copy(grown, v.chunks)
		v.chunks = grown
	}
	for range missing {
		v.chunks = append(v.chunks, chunk.New[T](v.chunkSize))
	}

	v.collector().RecordReserve(missing, v.chunkSize, time.Since(start))
	v.log().LogReserve(context.Background(), missing, v.chunkSize)
}

// Reserve allocates chunks so that at least additional more elements can be
// pushed without further allocation.
func (v *Vec[T]) Reserve(additional int) {
	size := v.size()
	if additional <= 0 {
		return
	}
	total, err := conv.AddInt(v.length, additional)
	if err != nil {
		panic(capacityOverflow(err))
	}
	n, err := conv.CeilDiv(total, size)
	if err != nil {
		panic(capacityOverflow(err))
	}
	v.reserveChunks(n)
}

// Push appends value to the end of the vector.
//
// A new chunk is allocated only when the chunk at the current end is
// missing; the cost is amortized O(1) and no element is ever moved.
func (v *Vec[T]) Push(value T) {
	chunkIdx, _ := chunk.Locate(v.length, v.size())
	if chunkIdx == len(v.chunks) {
		v.chunks = append(v.chunks, chunk.New[T](v.chunkSize))
		v.collector().RecordChunkAlloc(v.chunkSize)
		v.log().LogChunkAlloc(context.Background(), chunkIdx, v.chunkSize)
	}
	if err := v.chunks[chunkIdx].Append(value); err != nil {
		// Chunks before length/chunkSize are full and the one at it has room.
		panic(err)
	}
	v.length++
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int { return v.length }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// ChunkSize returns the number of elements per chunk.
func (v *Vec[T]) ChunkSize() int {
	if v.chunkSize == 0 {
		return DefaultChunkSize
	}
	return v.chunkSize
}

// NumChunks returns the number of allocated chunks, including empty
// reservations.
func (v *Vec[T]) NumChunks() int { return len(v.chunks) }

// AllocatedCapacity returns the number of element slots physically
// allocated: NumChunks() * ChunkSize(). It is the authoritative capacity.
func (v *Vec[T]) AllocatedCapacity() int {
	return len(v.chunks) * v.ChunkSize()
}

// Capacity returns an advisory capacity that also counts chunk slots
// reserved by the chunk table's own growth. It is never less than
// AllocatedCapacity and may be larger.
func (v *Vec[T]) Capacity() int {
	return cap(v.chunks) * v.ChunkSize()
}

// Stats returns a summary of the vector's storage.
func (v *Vec[T]) Stats() Stats {
	used := 0
	if v.length > 0 {
		used = (v.length-1)/v.ChunkSize() + 1
	}
	return Stats{
		Len:               v.length,
		ChunkSize:         v.ChunkSize(),
		NumChunks:         len(v.chunks),
		AllocatedCapacity: v.AllocatedCapacity(),
		Capacity:          v.Capacity(),
		Reserved:          len(v.chunks) - used,
	}
}

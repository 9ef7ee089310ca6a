package chunkedvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    chunkCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordChunkAlloc(chunkSize int) {
//	    p.chunkCounter.Inc()
//	}
type MetricsCollector interface {
	// RecordChunkAlloc is called each time Push allocates a new chunk.
	RecordChunkAlloc(chunkSize int)

	// RecordReserve is called after a constructor or Reserve pre-allocates
	// chunks. chunks is the number of chunks allocated by that call.
	RecordReserve(chunks, chunkSize int, duration time.Duration)

	// RecordBoundsViolation is called right before an index-operator
	// accessor panics.
	RecordBoundsViolation(index, length int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordChunkAlloc(int)                  {}
func (NoopMetricsCollector) RecordReserve(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordBoundsViolation(int, int)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe to share between vectors used from different goroutines.
type BasicMetricsCollector struct {
	ChunkAllocs       atomic.Int64
	SlotsAllocated    atomic.Int64
	ReserveCount      atomic.Int64
	ReservedChunks    atomic.Int64
	ReserveTotalNanos atomic.Int64
	BoundsViolations  atomic.Int64
}

// RecordChunkAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunkAlloc(chunkSize int) {
	b.ChunkAllocs.Add(1)
	b.SlotsAllocated.Add(int64(chunkSize))
}

// RecordReserve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReserve(chunks, chunkSize int, duration time.Duration) {
	b.ReserveCount.Add(1)
	b.ReservedChunks.Add(int64(chunks))
	b.SlotsAllocated.Add(int64(chunks) * int64(chunkSize))
	b.ReserveTotalNanos.Add(duration.Nanoseconds())
}

// RecordBoundsViolation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBoundsViolation(int, int) {
	b.BoundsViolations.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ChunkAllocs:      b.ChunkAllocs.Load(),
		SlotsAllocated:   b.SlotsAllocated.Load(),
		ReserveCount:     b.ReserveCount.Load(),
		ReservedChunks:   b.ReservedChunks.Load(),
		ReserveAvgNanos:  b.getAvgReserveNanos(),
		BoundsViolations: b.BoundsViolations.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReserveNanos() int64 {
	count := b.ReserveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReserveTotalNanos.Load() / count
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	ChunkAllocs      int64
	SlotsAllocated   int64
	ReserveCount     int64
	ReservedChunks   int64
	ReserveAvgNanos  int64
	BoundsViolations int64
}

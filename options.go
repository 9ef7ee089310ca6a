package chunkedvec

// DefaultChunkSize is the chunk size used when none is configured.
const DefaultChunkSize = 64

type options struct {
	chunkSize        int
	capacity         int
	chunkCount       int
	logger           *Logger
	metricsCollector MetricsCollector
}

// atLeast raises the requested capacity to n for constructors that know
// their final length. A negative WithCapacity is rejected first.
func (o *options) atLeast(n int) {
	if o.capacity < 0 {
		panic(invalidCapacity("capacity", o.capacity))
	}
	o.capacity = max(o.capacity, n)
}

// Option configures a vector at construction time.
type Option func(*options)

func defaultOptions() options {
	return options{
		chunkSize:        DefaultChunkSize,
		logger:           defaultLogger,
		metricsCollector: NoopMetricsCollector{},
	}
}

// WithChunkSize sets the number of elements per chunk.
//
// The chunk size is fixed for the lifetime of the vector. A size below one
// makes the constructor panic with ErrInvalidChunkSize. It has no effect on
// Sized vectors, whose chunk size comes from their type.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

// WithCapacity pre-allocates enough chunks to hold n elements, so that n
// pushes allocate nothing further.
//
// The allocated capacity is rounded up to a multiple of the chunk size:
// with chunk size 8, WithCapacity(100) allocates 13 chunks (104 slots).
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithChunkCount pre-allocates exactly k empty chunks.
//
// If combined with WithCapacity, whichever option yields more chunks wins.
func WithChunkCount(k int) Option {
	return func(o *options) {
		o.chunkCount = k
	}
}

// WithLogger configures the logger used for chunk allocation (debug level)
// and bounds violations (error level).
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = defaultLogger
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// allocations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &chunkedvec.BasicMetricsCollector{}
//	v := chunkedvec.New[int](chunkedvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Chunks: %d\n", stats.ChunkAllocs)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

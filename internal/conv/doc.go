// Package conv provides overflow-checked integer arithmetic and conversions.
//
// Chunk-count and capacity math is done on plain ints: a caller asking for
// a capacity close to math.MaxInt must get an error, not a wrapped-around
// chunk count.
//
// For arithmetic that is provably safe by domain constraints (loop indices,
// offsets already bounded by a chunk size), use the operators directly.
package conv

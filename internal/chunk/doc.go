// Package chunk implements the fixed-capacity storage block behind
// chunkedvec.Vec.
//
// A Chunk owns a backing slice of exactly Cap() slots, allocated once. Only
// the first Len() slots are logical elements; the remaining slots hold the
// zero value of T and are never returned by the checked accessors.
//
// # Index Resolution
//
// A linear index i over a sequence of chunks of size c resolves to
//
//	chunkIdx = i / c
//	offset   = i % c
//
// so that chunkIdx*c + offset == i. See Locate.
package chunk

package chunkedvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChunkSize is the panic cause when a vector is configured with
	// a chunk size below one.
	ErrInvalidChunkSize = errors.New("chunkedvec: chunk size must be positive")

	// ErrInvalidCapacity is the panic cause when a negative capacity or chunk
	// count is requested.
	ErrInvalidCapacity = errors.New("chunkedvec: capacity must not be negative")

	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = errors.New("chunkedvec: index out of range")

	// ErrCapacityOverflow is the panic cause when a requested capacity or
	// chunk count cannot be represented.
	ErrCapacityOverflow = errors.New("chunkedvec: capacity overflow")

	// ErrPositionOverflow is returned by Select when a matching position does
	// not fit in a uint32 bitmap slot.
	ErrPositionOverflow = errors.New("chunkedvec: position exceeds bitmap range")
)

// IndexError is the panic value of the index-operator accessors (At, AtPtr,
// Set) when the index is outside [0, Len()).
//
// It wraps ErrIndexOutOfRange, so a recovered value can be matched with
// errors.Is.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chunkedvec: index out of range [%d] with length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func invalidChunkSize(size int) error {
	return fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
}

func invalidCapacity(what string, n int) error {
	return fmt.Errorf("%w: %s %d", ErrInvalidCapacity, what, n)
}

func capacityOverflow(err error) error {
	return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
}

package zalloc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlign indicates an alignment that is zero or not a
	// power of two.
	ErrInvalidAlign = errors.New("zalloc: alignment must be a nonzero power of two")

	// ErrSizeOverflow indicates a size that overflows when rounded up
	// to its alignment.
	ErrSizeOverflow = errors.New("zalloc: size overflows when rounded up to alignment")

	// ErrLockedUnsupported indicates the platform has no mlock-backed
	// allocator.
	ErrLockedUnsupported = errors.New("zalloc: locked allocator unsupported on this platform")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("zalloc.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

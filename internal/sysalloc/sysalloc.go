// Package sysalloc provides the raw allocation backends the public
// zalloc wrapper delegates to. A backend hands out unmanaged blocks
// addressed by pointer and explicit (size, align); it performs no
// clearing of its own.
package sysalloc

import (
	"errors"
	"unsafe"
)

// ErrLockedUnsupported is returned by NewLocked on platforms without
// mlock support.
var ErrLockedUnsupported = errors.New("sysalloc: locked allocations not supported on this platform")

// Backend is the capability set every underlying allocator exposes.
// Alloc and AllocZeroed return nil on failure; Dealloc must receive a
// pointer and layout previously vended by the same backend, anything
// else is undefined behavior inherited from the backing allocator.
// Implementations must be safe for unsynchronized concurrent use.
type Backend interface {
	Alloc(size, align uintptr) unsafe.Pointer
	AllocZeroed(size, align uintptr) unsafe.Pointer
	Dealloc(ptr unsafe.Pointer, size, align uintptr)
}

// Default returns the process backend: C malloc where cgo is available,
// otherwise the pinned Go heap. The value is a process-wide singleton so
// blocks may be freed by any caller holding the same backend.
func Default() Backend {
	return defaultBackend
}

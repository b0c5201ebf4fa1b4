package zalloc

import (
	"unsafe"

	"github.com/zeromem/zalloc-go/internal/sysalloc"
)

// Allocator is the capability set every dynamic-memory manager here
// exposes. Alloc and AllocZeroed return nil on failure; no retries, no
// error channel. Dealloc must receive a pointer and layout obtained
// from a prior allocation on the same Allocator; passing anything else
// or freeing twice is undefined behavior, inherited from the wrapped
// allocator. Implementations must tolerate unsynchronized concurrent
// calls.
type Allocator interface {
	Alloc(l Layout) unsafe.Pointer
	AllocZeroed(l Layout) unsafe.Pointer
	Dealloc(p unsafe.Pointer, l Layout)
}

// System is the process allocator: C malloc where cgo is available,
// otherwise pinned Go heap blocks. Safe for concurrent use.
var System Allocator = backendAllocator{b: sysalloc.Default()}

// Default is the process-wide zeroizing allocator, System wrapped in a
// ZeroAllocator. It is initialized before any allocation traffic and
// never reassigned.
var Default Allocator = &ZeroAllocator{Inner: System}

// NewLockedSystem returns an Allocator over mlocked anonymous mappings,
// for blocks that must not reach swap. Page-granular; alignments above
// the page size fail allocation. Returns ErrLockedUnsupported where the
// platform has no mlock.
func NewLockedSystem() (Allocator, error) {
	b, err := sysalloc.NewLocked()
	if err != nil {
		return nil, &Error{Op: "NewLockedSystem", Err: ErrLockedUnsupported}
	}
	return backendAllocator{b: b}, nil
}

type backendAllocator struct {
	b sysalloc.Backend
}

func (a backendAllocator) Alloc(l Layout) unsafe.Pointer {
	return a.b.Alloc(l.Size, l.Align)
}

func (a backendAllocator) AllocZeroed(l Layout) unsafe.Pointer {
	return a.b.AllocZeroed(l.Size, l.Align)
}

func (a backendAllocator) Dealloc(p unsafe.Pointer, l Layout) {
	a.b.Dealloc(p, l.Size, l.Align)
}

// Bytes views an allocated block as a byte slice of the layout's size.
// The slice aliases the block; it is valid only until Dealloc.
func Bytes(p unsafe.Pointer, l Layout) []byte {
	if p == nil || l.Size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), l.Size)
}

package zalloc

import (
	"unsafe"

	"github.com/zeromem/zalloc-go/internal/wipe"
)

// ZeroAllocator delegates to Inner and guarantees that on Dealloc every
// byte of the block reads as zero before Inner's deallocation runs.
// Alloc and AllocZeroed forward untouched: fresh memory has no prior
// content to erase, so the zero-init guarantee of AllocZeroed is
// Inner's own.
//
// The clear happens in program order before the forwarded Dealloc and
// touches only the region being freed, which the caller still owns
// exclusively at that instant, so concurrent frees of disjoint blocks
// never contend. No memory-visibility fence is added beyond what
// Inner's deallocation provides.
type ZeroAllocator struct {
	Inner Allocator
}

// New returns a ZeroAllocator over inner. A nil inner binds to System.
func New(inner Allocator) *ZeroAllocator {
	if inner == nil {
		inner = System
	}
	return &ZeroAllocator{Inner: inner}
}

func (z *ZeroAllocator) Alloc(l Layout) unsafe.Pointer {
	return z.Inner.Alloc(l)
}

func (z *ZeroAllocator) AllocZeroed(l Layout) unsafe.Pointer {
	return z.Inner.AllocZeroed(l)
}

// Dealloc wipes l.Size bytes at p, then forwards to Inner. By the time
// Inner can place the block on any free list, its former contents are
// gone.
func (z *ZeroAllocator) Dealloc(p unsafe.Pointer, l Layout) {
	wipe.Wipe(p, l.Size)
	z.Inner.Dealloc(p, l)
}

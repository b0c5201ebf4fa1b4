package sysalloc

import (
	"sync"
	"unsafe"
)

// Heap is a Backend carved out of Go-managed byte slices. Every vended
// block is pinned in a registry keyed by its address so the collector
// keeps the backing array live until Dealloc, and so Dealloc can drop
// the original slice again. Relies on the Go heap being non-moving,
// which every released runtime guarantees today.
type Heap struct {
	mu     sync.Mutex
	blocks map[unsafe.Pointer][]byte
}

// NewHeap returns an empty heap backend.
func NewHeap() *Heap {
	return &Heap{blocks: make(map[unsafe.Pointer][]byte)}
}

func (h *Heap) Alloc(size, align uintptr) unsafe.Pointer {
	// Over-allocate by align so there is always an aligned address
	// inside the buffer to shift to.
	buf := make([]byte, size+align)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	shift := (align - addr%align) % align
	p := unsafe.Pointer(&buf[shift])

	h.mu.Lock()
	h.blocks[p] = buf
	h.mu.Unlock()
	return p
}

// AllocZeroed is Alloc: Go heap memory is born zeroed.
func (h *Heap) AllocZeroed(size, align uintptr) unsafe.Pointer {
	return h.Alloc(size, align)
}

func (h *Heap) Dealloc(ptr unsafe.Pointer, size, align uintptr) {
	h.mu.Lock()
	delete(h.blocks, ptr)
	h.mu.Unlock()
}

// Live reports the number of pinned blocks. Test hook.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}

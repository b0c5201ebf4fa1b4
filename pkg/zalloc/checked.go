package zalloc

import (
	"context"
	"sync"
	"unsafe"

	"github.com/zeromem/zalloc-go/pkg/zalloc/logging"
)

// DeallocSnapshot records what a block looked like the moment the
// underlying allocator received it back.
type DeallocSnapshot struct {
	Ptr    unsafe.Pointer
	Layout Layout
	Data   []byte // copy taken at Dealloc entry
}

// CheckedAllocator wraps another Allocator with bookkeeping for tests
// and diagnostics: it tracks live blocks, counts double frees and
// foreign-pointer frees, and snapshots block contents at Dealloc entry.
// Placed underneath a ZeroAllocator it observes exactly the bytes the
// real allocator would receive, which is how the zero-on-free guarantee
// is verified. Not intended for production paths.
type CheckedAllocator struct {
	inner Allocator
	log   logging.Logger

	mu          sync.Mutex
	live        map[unsafe.Pointer]Layout
	snapshots   []DeallocSnapshot
	doubleFrees int
	foreign     int
}

// NewChecked returns a CheckedAllocator over inner. A nil logger binds
// to the slog default.
func NewChecked(inner Allocator, log logging.Logger) *CheckedAllocator {
	if inner == nil {
		inner = System
	}
	if log == nil {
		log = logging.New(nil)
	}
	return &CheckedAllocator{
		inner: inner,
		log:   log,
		live:  make(map[unsafe.Pointer]Layout),
	}
}

func (c *CheckedAllocator) Alloc(l Layout) unsafe.Pointer {
	p := c.inner.Alloc(l)
	c.track(p, l)
	return p
}

func (c *CheckedAllocator) AllocZeroed(l Layout) unsafe.Pointer {
	p := c.inner.AllocZeroed(l)
	c.track(p, l)
	return p
}

func (c *CheckedAllocator) track(p unsafe.Pointer, l Layout) {
	if p == nil {
		return
	}
	c.mu.Lock()
	c.live[p] = l
	c.mu.Unlock()
}

func (c *CheckedAllocator) Dealloc(p unsafe.Pointer, l Layout) {
	c.mu.Lock()
	if _, ok := c.live[p]; ok {
		delete(c.live, p)
		snap := DeallocSnapshot{Ptr: p, Layout: l}
		if l.Size > 0 {
			snap.Data = make([]byte, l.Size)
			copy(snap.Data, unsafe.Slice((*byte)(p), l.Size))
		}
		c.snapshots = append(c.snapshots, snap)
	} else if c.wasFreed(p) {
		c.doubleFrees++
		c.mu.Unlock()
		return // forwarding a double free would corrupt the backing allocator
	} else {
		c.foreign++
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.inner.Dealloc(p, l)
}

// wasFreed reports whether p appears in a prior snapshot. Caller holds mu.
func (c *CheckedAllocator) wasFreed(p unsafe.Pointer) bool {
	for _, s := range c.snapshots {
		if s.Ptr == p {
			return true
		}
	}
	return false
}

// Snapshots returns copies of the Dealloc-entry records collected so far.
func (c *CheckedAllocator) Snapshots() []DeallocSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DeallocSnapshot, len(c.snapshots))
	copy(out, c.snapshots)
	return out
}

// LiveCount reports the number of blocks allocated but not yet freed.
func (c *CheckedAllocator) LiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// DoubleFrees reports how many Dealloc calls named an already-freed block.
func (c *CheckedAllocator) DoubleFrees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doubleFrees
}

// ForeignFrees reports how many Dealloc calls named a pointer this
// allocator never vended.
func (c *CheckedAllocator) ForeignFrees() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.foreign
}

// Report logs outstanding blocks and misuse counters. Returns the number
// of leaked blocks so tests can assert on it directly.
func (c *CheckedAllocator) Report(ctx context.Context) int {
	c.mu.Lock()
	leaks := len(c.live)
	doubleFrees := c.doubleFrees
	foreign := c.foreign
	var leakedBytes uintptr
	for _, l := range c.live {
		leakedBytes += l.Size
	}
	c.mu.Unlock()

	if leaks > 0 {
		c.log.Error(ctx, "allocator leak check failed",
			"leaked_blocks", leaks, "leaked_bytes", leakedBytes)
	}
	if doubleFrees > 0 || foreign > 0 {
		c.log.Warn(ctx, "allocator misuse detected",
			"double_frees", doubleFrees, "foreign_frees", foreign)
	}
	return leaks
}

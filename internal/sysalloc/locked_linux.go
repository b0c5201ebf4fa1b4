//go:build linux

package sysalloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Locked is a Backend over anonymous mmap regions pinned with mlock so
// the blocks never reach swap. Mappings are page granular, so every
// vended block is page aligned; alignments above the page size are
// refused. Intended for secrets-grade blocks, not as the process
// default.
type Locked struct {
	pageSize uintptr
	mu       sync.Mutex
	regions  map[unsafe.Pointer][]byte
}

// NewLocked returns a mlock-backed Backend.
func NewLocked() (Backend, error) {
	return &Locked{
		pageSize: uintptr(unix.Getpagesize()),
		regions:  make(map[unsafe.Pointer][]byte),
	}, nil
}

func (l *Locked) Alloc(size, align uintptr) unsafe.Pointer {
	if align > l.pageSize {
		return nil
	}
	n := size
	if n == 0 {
		n = 1
	}
	mem, err := unix.Mmap(-1, 0, int(n),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}
	if err := unix.Mlock(mem); err != nil {
		_ = unix.Munmap(mem)
		return nil
	}

	p := unsafe.Pointer(&mem[0])
	l.mu.Lock()
	l.regions[p] = mem
	l.mu.Unlock()
	return p
}

// AllocZeroed is Alloc: fresh anonymous pages are zero filled by the
// kernel.
func (l *Locked) AllocZeroed(size, align uintptr) unsafe.Pointer {
	return l.Alloc(size, align)
}

func (l *Locked) Dealloc(ptr unsafe.Pointer, size, align uintptr) {
	l.mu.Lock()
	mem, ok := l.regions[ptr]
	if ok {
		delete(l.regions, ptr)
	}
	l.mu.Unlock()
	if !ok {
		return
	}
	_ = unix.Munlock(mem)
	_ = unix.Munmap(mem)
}

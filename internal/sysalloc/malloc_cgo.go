//go:build cgo && !windows

package sysalloc

/*
#include <stdlib.h>
#include <string.h>

// Thin shims so allocation failure surfaces as NULL instead of tripping
// cgo's panicking wrapper around the bare malloc symbol. Zero-size
// requests are bumped to one byte to keep free() well defined.
static void *xmalloc(size_t n) { return malloc(n ? n : 1); }
static void *xcalloc(size_t n) { return calloc(n ? n : 1, 1); }
*/
import "C"

import "unsafe"

// mallocAlign is the alignment malloc already guarantees for any
// fundamental type on the platforms we build for (C11 max_align_t).
const mallocAlign = 16

var defaultBackend Backend = Malloc{}

// Malloc is a Backend over the C allocator. Requests whose alignment
// exceeds the malloc guarantee route through posix_memalign; everything
// is released with free either way.
type Malloc struct{}

func (Malloc) Alloc(size, align uintptr) unsafe.Pointer {
	if align > mallocAlign {
		return memalign(size, align)
	}
	return C.xmalloc(C.size_t(size))
}

func (Malloc) AllocZeroed(size, align uintptr) unsafe.Pointer {
	if align > mallocAlign {
		p := memalign(size, align)
		if p != nil && size > 0 {
			C.memset(p, 0, C.size_t(size))
		}
		return p
	}
	return C.xcalloc(C.size_t(size))
}

func (Malloc) Dealloc(ptr unsafe.Pointer, size, align uintptr) {
	C.free(ptr)
}

func memalign(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		size = 1
	}
	var p unsafe.Pointer
	if rc := C.posix_memalign(&p, C.size_t(align), C.size_t(size)); rc != 0 {
		return nil
	}
	return p
}

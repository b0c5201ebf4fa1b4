//go:build wipe_reference

package wipe

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// wipeFence is published after every wipe so the stores preceding it
// cannot be treated as unobserved.
var wipeFence atomic.Uint32

//go:noinline
func storeZero(p *byte) {
	*p = 0
}

// Wipe overwrites n bytes at ptr with zero, one ordered store at a time,
// then publishes a completion fence. Markedly slower than the default
// strategy; built only to cross-check its output and for benchmarks.
//
//go:noinline
func Wipe(ptr unsafe.Pointer, n uintptr) {
	if ptr == nil || n == 0 {
		return
	}
	b := unsafe.Slice((*byte)(ptr), n)
	for i := range b {
		storeZero(&b[i])
	}
	wipeFence.Store(1)
	runtime.KeepAlive(b)
}

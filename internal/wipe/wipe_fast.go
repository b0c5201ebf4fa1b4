//go:build !wipe_reference

package wipe

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

type wipeFunc func(ptr unsafe.Pointer, n uintptr)

// wiper holds the identity of the clearing routine. It is populated once
// in init, before any allocator traffic exists, and never reassigned.
// Call sites read it through an atomic load, which the compiler must not
// constant-fold, so it cannot resolve which routine runs or prove the
// stores it performs are dead after the region is freed.
var wiper atomic.Pointer[wipeFunc]

func init() {
	f := wipeFunc(clearBytes)
	wiper.Store(&f)
}

// clearBytes zero-fills n bytes at ptr. Compiled in isolation the range
// loop is recognized and lowered to the runtime's bulk memclr. Never call
// this directly; every clear must go through Wipe so the indirection
// stays between the stores and the optimizer.
func clearBytes(ptr unsafe.Pointer, n uintptr) {
	b := unsafe.Slice((*byte)(ptr), n)
	for i := range b {
		b[i] = 0
	}
}

// Wipe overwrites n bytes at ptr with zero. The write survives dead-store
// elimination per the wiper indirection above; KeepAlive pins the region
// past the stores per golang/go#33325.
//
//go:noinline
func Wipe(ptr unsafe.Pointer, n uintptr) {
	if ptr == nil || n == 0 {
		return
	}
	(*wiper.Load())(ptr, n)
	runtime.KeepAlive(ptr)
}

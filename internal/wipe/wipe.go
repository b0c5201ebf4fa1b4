// Package wipe implements the clearing primitive behind the zeroizing
// allocator: overwrite a memory region with zero in a way the compiler
// cannot eliminate, while still lowering to a bulk clear.
//
// Two strategies exist, selected at build time. The default routes every
// call through an opaque function reference loaded atomically, so the
// compiler can neither devirtualize the call nor prove the stores dead
// once the region is freed. Building with -tags wipe_reference swaps in a
// per-byte ordered-store variant used only for verification and
// benchmarking.
package wipe

import "unsafe"

// Bytes overwrites every byte of b with zero. Safe on nil and empty
// slices.
func Bytes(b []byte) {
	if len(b) == 0 {
		return
	}
	Wipe(unsafe.Pointer(&b[0]), uintptr(len(b)))
}

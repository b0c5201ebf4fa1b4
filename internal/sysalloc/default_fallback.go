//go:build !cgo || windows

package sysalloc

var defaultBackend Backend = NewHeap()

package sysalloc

import (
	"testing"
	"unsafe"
)

func TestHeapAlignment(t *testing.T) {
	h := NewHeap()
	for _, align := range []uintptr{1, 2, 8, 16, 64, 4096} {
		p := h.Alloc(128, align)
		if p == nil {
			t.Fatalf("Alloc(128, %d) returned nil", align)
		}
		if uintptr(p)%align != 0 {
			t.Errorf("Alloc(128, %d) = %p, not %d-aligned", align, p, align)
		}
		h.Dealloc(p, 128, align)
	}
}

func TestHeapZeroed(t *testing.T) {
	h := NewHeap()
	p := h.AllocZeroed(256, 8)
	if p == nil {
		t.Fatal("AllocZeroed returned nil")
	}
	defer h.Dealloc(p, 256, 8)

	b := unsafe.Slice((*byte)(p), 256)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
}

func TestHeapPinAndRelease(t *testing.T) {
	h := NewHeap()
	p1 := h.Alloc(32, 8)
	p2 := h.Alloc(32, 8)
	if h.Live() != 2 {
		t.Fatalf("Live() = %d, want 2", h.Live())
	}

	h.Dealloc(p1, 32, 8)
	if h.Live() != 1 {
		t.Fatalf("Live() after one Dealloc = %d, want 1", h.Live())
	}

	h.Dealloc(p2, 32, 8)
	if h.Live() != 0 {
		t.Fatalf("Live() after both Deallocs = %d, want 0", h.Live())
	}
}

func TestHeapBlockIsWritable(t *testing.T) {
	h := NewHeap()
	p := h.Alloc(64, 16)
	defer h.Dealloc(p, 64, 16)

	b := unsafe.Slice((*byte)(p), 64)
	for i := range b {
		b[i] = byte(i)
	}
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("byte %d = %#x, want %#x", i, b[i], byte(i))
		}
	}
}

func TestDefaultBackendRoundTrip(t *testing.T) {
	b := Default()
	p := b.AllocZeroed(512, 16)
	if p == nil {
		t.Fatal("default backend AllocZeroed returned nil")
	}
	s := unsafe.Slice((*byte)(p), 512)
	for i, v := range s {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
	b.Dealloc(p, 512, 16)
}

package zalloc

import "unsafe"

// Layout describes a memory request: a byte size and the alignment the
// block's address must satisfy.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// NewLayout validates a (size, align) pair. Align must be a nonzero
// power of two and size must not overflow when rounded up to align,
// mirroring the contract the underlying allocators assume.
func NewLayout(size, align uintptr) (Layout, error) {
	if align == 0 || align&(align-1) != 0 {
		return Layout{}, &Error{Op: "NewLayout", Err: ErrInvalidAlign}
	}
	if size > ^uintptr(0)-(align-1) {
		return Layout{}, &Error{Op: "NewLayout", Err: ErrSizeOverflow}
	}
	return Layout{Size: size, Align: align}, nil
}

// MustLayout is NewLayout for statically known arguments; it panics on
// invalid input.
func MustLayout(size, align uintptr) Layout {
	l, err := NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutOf returns the layout of a value of type T.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{Size: unsafe.Sizeof(v), Align: unsafe.Alignof(v)}
}

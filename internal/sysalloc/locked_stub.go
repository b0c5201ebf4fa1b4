//go:build !linux

package sysalloc

// NewLocked reports that mlock-backed allocation is unavailable here.
func NewLocked() (Backend, error) {
	return nil, ErrLockedUnsupported
}

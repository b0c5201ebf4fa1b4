// Package logging provides a minimal logging facade for the allocator's
// diagnostic surfaces.
//
// The package defines a Logger interface wrapping a subset of the
// standard library's log/slog functionality, plus a default slog-backed
// implementation obtained from New. The allocation hot path never logs;
// only CheckedAllocator reporting goes through this facade.
package logging

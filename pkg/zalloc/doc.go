// Package zalloc wraps an allocator so that every block is overwritten
// with zero at the moment it is freed, before the underlying allocator
// reclaims it. Allocation calls pass through untouched; only the
// release path gains the clearing step, performed through an
// optimization-resistant primitive so the stores survive dead-store
// elimination. The zero-value contract for fresh memory is left to the
// underlying allocator's own zero-initializing path.
package zalloc

// Package internalcheck provides internal validation and testing
// utilities for the allocator.
//
// It holds source-policy tests that keep the anti-elision structure of
// the clearing primitive intact, such as verifying that the bulk clear
// routine is never invoked directly. It is not intended for external
// use and the API may change without notice.
package internalcheck

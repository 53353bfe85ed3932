// Package visited provides the solver's visited-state set: a write-once,
// clear-before-reuse collection of 37-bit canonical board keys. Two
// implementations exist, chosen at build time by the "dense" build tag
// rather than at runtime, since they trade memory footprint for
// instantiation cost in opposite directions:
//
//   - default (sparse.go): an open-addressed uint64 hash set, cheap to
//     allocate, a good fit for a single solve or a handful of them.
//   - dense (dense_unix.go, "-tags dense"): a 2^37-bit mmap-backed bit
//     array, expensive to map once but then reused clear-for-clear across
//     many solves with zero further allocation.
package visited

// Set is the visited-state contract the solver drives. TestAndSet reports
// whether key was already present and marks it present either way; Clear
// empties the set for reuse without freeing its backing storage.
type Set interface {
	TestAndSet(key uint64) bool
	Clear()
}

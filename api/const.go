package api

// Allockind tags an allocation request with the space policy the
// caller wants. Heaps with a single space ignore the tag, collectors
// with multiple policies dispatch on it.
type Allockind byte

const (
	// Allocdefault let the heap pick its default space.
	Allocdefault Allockind = iota

	// Allocimmortal objects that are never reclaimed or moved.
	Allocimmortal

	// Alloclos large objects.
	Alloclos

	// Alloccode executable code objects.
	Alloccode

	// Allocreadonly objects immutable after initialization.
	Allocreadonly
)

// Threadid opaque identifier for a mutator thread, carried through
// allocation contexts for collectors that care.
type Threadid int64

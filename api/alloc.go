package api

import "unsafe"

// Mallocer interface for memory managed spaces.
type Mallocer interface {
	// Alloc size bytes such that pointer+offset is a multiple of
	// align, align must be a power of 2. Returns nil when the space
	// is exhausted.
	Alloc(size, align, offset int64) (ptr unsafe.Pointer)

	// Malloc size bytes with no alignment guarantee beyond natural
	// placement.
	Malloc(size int64) (ptr unsafe.Pointer)

	// Free the chunk back to the space. Spaces that never reclaim
	// shall treat this as a no-op.
	Free(ptr unsafe.Pointer)

	// Info of memory accounting for this space.
	Info() (capacity, heap, alloc, overhead int64)

	// Utilization percentage for this space.
	Utilization() ([]int, []float64)

	// Release the space and all its resources.
	Release()
}

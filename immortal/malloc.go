package immortal

import "unsafe"

import "github.com/bnclabs/goheap/api"

// Region implement api.Mallocer{} interface.
var _ api.Mallocer = &Region{}

// Malloc size bytes from the region with no alignment guarantee
// beyond natural placement, conventional allocator shape over the
// bump cursor. Returns nil when the region is exhausted.
func (region *Region) Malloc(size int64) unsafe.Pointer {
	return region.Alloc(size, 1, 0)
}

// Free is a deliberate no-op. The region never reclaims space, so
// freeing removes the label and nothing else: repeated malloc/free
// cycles monotonically consume the region regardless of the frees.
// This deviates from conventional allocator contracts and is the
// point of the immortal policy.
func (region *Region) Free(ptr unsafe.Pointer) {
}

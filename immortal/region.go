package immortal

import "unsafe"
import "sync/atomic"

import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Region is a single contiguous immortal space. start and end are
// fixed for the region's lifetime, cursor is the only mutable field
// and is advanced exclusively by Alloc, never decreased. The central
// invariant, start <= cursor <= end, is checked on every allocation
// by the bounds test against end.
type Region struct {
	// 64-bit aligned, loaded/stored atomically when concurrent.
	cursor int64

	start    int64
	end      int64
	capacity int64

	block      []byte // backing reservation, nil once released
	concurrent bool
}

// NewRegion bootstrap an immortal region of capacity bytes. The
// backing store is an anonymous, zero-filled reservation of capacity
// plus Spacealignment bytes; the region's start is the reservation's
// base rounded up to Spacealignment. Failure to obtain the backing
// store is fatal, there is no recovery path without it. Bootstrap
// happens once per region, regions are never resized or moved.
func NewRegion(capacity int64, setts s.Settings) *Region {
	if capacity <= 0 {
		panicerr("invalid region capacity %v", capacity)
	} else if capacity > Maxregionsize {
		panicerr("region cannot exceed %v bytes (%v)", Maxregionsize, capacity)
	}
	setts = Defaultsettings().Mixin(setts)
	if policy := setts.String("allocator"); policy != "bump" {
		panicerr("unknown allocator %q", policy)
	}

	block, err := reserve(capacity + Spacealignment)
	if err != nil {
		panicerr("unable to reserve %v of memory: %v",
			humanize.Bytes(uint64(capacity)), err)
	}
	base := int64(uintptr(unsafe.Pointer(&block[0])))
	start := alignup(base, Spacealignment)
	region := &Region{
		cursor:     start,
		start:      start,
		end:        start + capacity,
		capacity:   capacity,
		block:      block,
		concurrent: setts.Bool("concurrent"),
	}
	infof("immortal region %x..%x bootstrapped with %v\n",
		region.start, region.end, humanize.Bytes(uint64(capacity)))
	return region
}

//---- accounting

// Startaddress first byte available for allocation, aligned to
// Spacealignment.
func (region *Region) Startaddress() int64 {
	return region.start
}

// Endaddress one past the last byte available for allocation.
func (region *Region) Endaddress() int64 {
	return region.end
}

// Allocated bytes consumed from the region, including alignment
// padding.
func (region *Region) Allocated() int64 {
	return region.loadcursor() - region.start
}

// Available bytes remaining in the region.
func (region *Region) Available() int64 {
	return region.end - region.loadcursor()
}

// Info implement api.Mallocer{} interface. heap counts the full
// reservation, including the alignment slack; overhead is the cost of
// managing it, a region has next to none.
func (region *Region) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*region))
	return region.capacity, int64(len(region.block)), region.Allocated(), self
}

// Utilization implement api.Mallocer{} interface. A region has a
// single slab, the whole space.
func (region *Region) Utilization() ([]int, []float64) {
	uz := (float64(region.Allocated()) / float64(region.capacity)) * 100
	return []int{int(region.capacity)}, []float64{uz}
}

// Release the region's backing reservation back to the OS. Immortal
// regions are normally released only at process exit, Release exists
// so tests and short-lived tools can run many regions in one process.
// Allocating from a released region panics.
func (region *Region) Release() {
	if region.block == nil {
		panicerr("region released")
	}
	if err := unreserve(region.block); err != nil {
		errorf("immortal region %x release: %v\n", region.start, err)
	}
	region.block = nil
	region.start, region.end, region.capacity = 0, 0, 0
	atomic.StoreInt64(&region.cursor, 0)
}

func (region *Region) loadcursor() int64 {
	if region.concurrent {
		return atomic.LoadInt64(&region.cursor)
	}
	return region.cursor
}

package immortal

import "unsafe"
import "errors"
import "sync/atomic"

// ErrorNotImplemented slow path allocation invoked on a region that
// has no collector behind it. Distinct from exhaustion, which Alloc
// reports with a nil pointer.
var ErrorNotImplemented = errors.New("immortal.notimplemented")

// Alignallocation compute the smallest address >= cursor such that
// (address + offset) is a multiple of align. align must be a power of
// 2, offset may be negative. Addresses are treated as signed 64-bit
// integers; only the low bits below align participate, so the mask
// arithmetic is wraparound agnostic. Passing offset 0 recovers plain
// alignment of the returned address.
func Alignallocation(cursor, align, offset int64) int64 {
	checkalign(align)
	mask := align - 1
	delta := ((-offset) - cursor) & mask
	return cursor + delta
}

// Alloc size bytes from the region such that pointer+offset is a
// multiple of align. Returns nil when the aligned candidate plus size
// would cross the region's end; a failed attempt leaves the cursor
// bit-for-bit unchanged, callers can retry against another region or
// escalate to out-of-memory. The returned bytes carry no metadata and
// remain whatever the reservation held, zero unless poisoned by the
// debug build.
func (region *Region) Alloc(size, align, offset int64) unsafe.Pointer {
	if region.block == nil {
		panicerr("region released")
	} else if size < 0 {
		panicerr("invalid allocation size %v", size)
	}
	if region.concurrent {
		return region.alloccas(size, align, offset)
	}
	ptr := Alignallocation(region.cursor, align, offset)
	newcursor := ptr + size
	if newcursor > region.end {
		return nil
	}
	region.cursor = newcursor
	initblock(uintptr(ptr), size)
	return unsafe.Pointer(uintptr(ptr))
}

// compare-and-swap commit for regions shared between mutators. Same
// compute as the single-owner path, the commit retries whenever
// another mutator moved the cursor between read and swap.
func (region *Region) alloccas(size, align, offset int64) unsafe.Pointer {
	for {
		cursor := atomic.LoadInt64(&region.cursor)
		ptr := Alignallocation(cursor, align, offset)
		newcursor := ptr + size
		if newcursor > region.end {
			return nil
		}
		if atomic.CompareAndSwapInt64(&region.cursor, cursor, newcursor) {
			initblock(uintptr(ptr), size)
			return unsafe.Pointer(uintptr(ptr))
		}
	}
}

// Allocslow is the seam where a collector would reclaim space and
// retry. An immortal region never reclaims, invoking the slow path
// panics with ErrorNotImplemented.
func (region *Region) Allocslow(size, align, offset int64) unsafe.Pointer {
	panic(ErrorNotImplemented)
}

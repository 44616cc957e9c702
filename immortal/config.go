package immortal

import s "github.com/bnclabs/gosettings"

// Spacealignment quantum, in bytes, to which a region's start address
// is rounded up during bootstrap. Reservations carry this much slack
// over the requested capacity so the rounding always succeeds.
const Spacealignment = int64(1) << 19

// Maxregionsize maximum capacity of a single region. Can be used as
// an upper bound when sizing regions from system memory.
const Maxregionsize = int64(1024 * 1024 * 1024 * 1024) // 1TB

// Defaultsettings for an immortal region.
//
// "allocator" (string, default: "bump")
//
//	Allocation policy, only "bump" is supported.
//
// "concurrent" (bool, default: false)
//
//	If true, Alloc commits the region's cursor with a
//	compare-and-swap retry loop and is safe to call from concurrent
//	mutators. If false the region is single-owner and the fast path
//	carries no synchronization, sharing such a region across
//	goroutines is a correctness hazard.
func Defaultsettings() s.Settings {
	return s.Settings{
		"allocator":  "bump",
		"concurrent": false,
	}
}

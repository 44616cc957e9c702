package goheap

import s "github.com/bnclabs/gosettings"
import sigar "github.com/cloudfoundry/gosigar"

import "github.com/bnclabs/goheap/immortal"

// Defaultsettings for the process wide heap.
//
// "capacity" (int64, default: half of free system memory)
//
//	Heap capacity in bytes, used when Init is called with a zero or
//	negative size.
//
// "immortal.allocator" (string, default: "bump")
//
//	Allocation policy for the immortal space, only "bump" is
//	supported.
//
// "immortal.concurrent" (bool, default: false)
//
//	If true the immortal space commits its cursor with a
//	compare-and-swap retry loop, making Alloc safe for concurrent
//	mutators. Leave false for single mutator setups, the fast path
//	then carries no synchronization at all.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"capacity": int64(free / 2),
	}
	for key, value := range immortal.Defaultsettings() {
		setts["immortal."+key] = value
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

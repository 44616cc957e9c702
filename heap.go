package goheap

import "unsafe"

import humanize "github.com/dustin/go-humanize"
import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/goheap/api"
import "github.com/bnclabs/goheap/immortal"

// process wide heap, bootstrapped by Init. Option processing with
// Process() is valid only before Init.
var heap struct {
	space     *immortal.Region
	collector Collector
	setts     s.Settings
}

func init() {
	heap.setts = Defaultsettings()
}

// Collector plugs a tracing collector behind the heap's slow path. The
// immortal space never reclaims, so the reference heap ships without an
// implementation; the interface exists so a collector can be wired in
// without touching the fast path contract.
type Collector interface {
	// Allocslow allocate size bytes after attempting to reclaim
	// space, with the same alignment contract as Mutator.Alloc.
	Allocslow(
		tls api.Threadid,
		size, align, offset int64, kind api.Allockind) unsafe.Pointer
}

// Setcollector register a collector for slow path allocation. Passing
// nil restores the fatal default.
func Setcollector(c Collector) {
	heap.collector = c
}

// Process a single name=value option before the heap is initialized.
// Returns false for names this runtime does not understand, so callers
// can forward unknown options elsewhere.
func Process(name, value string) bool {
	if heap.space != nil {
		panicerr("cannot process options after Init")
	}
	switch name {
	case "immortal.allocator":
		heap.setts[name] = value
	case "immortal.concurrent":
		switch value {
		case "true":
			heap.setts[name] = true
		case "false":
			heap.setts[name] = false
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Init bootstrap the process wide heap with heapsize bytes of immortal
// space. Must be called exactly once, before binding mutators. If
// heapsize is zero or negative the "capacity" setting applies. Failure
// to reserve backing memory is fatal.
func Init(heapsize int64) {
	if heap.space != nil {
		panicerr("heap already initialized")
	}
	if heapsize <= 0 {
		heapsize = heap.setts.Int64("capacity")
	}
	heap.space = immortal.NewRegion(
		heapsize, heap.setts.Section("immortal.").Trim("immortal."))
	infof("goheap initialized with %v of immortal space\n",
		humanize.Bytes(uint64(heapsize)))
}

// Mutator is a per-thread allocation context. The immortal space is
// shared by all mutators, the context only carries the thread identity
// for collectors that care.
type Mutator struct {
	tls   api.Threadid
	space *immortal.Region
}

// Bindmutator an allocation context for thread tls.
func Bindmutator(tls api.Threadid) *Mutator {
	if heap.space == nil {
		panicerr("heap not initialized")
	}
	return &Mutator{tls: tls, space: heap.space}
}

// Alloc size bytes such that pointer+offset is a multiple of align,
// align must be a power of 2. The kind tag is carried for collectors
// that dispatch on it and ignored by the immortal space. Returns nil
// when the space is exhausted, callers escalate to Allocslow or treat
// it as out-of-memory.
func (m *Mutator) Alloc(
	size, align, offset int64, kind api.Allockind) unsafe.Pointer {

	return m.space.Alloc(size, align, offset)
}

// Allocslow retry allocation after reclaiming space. Delegates to the
// registered collector; without one the slow path panics with
// ErrorNotImplemented.
func (m *Mutator) Allocslow(
	size, align, offset int64, kind api.Allockind) unsafe.Pointer {

	if heap.collector == nil {
		panic(ErrorNotImplemented)
	}
	return heap.collector.Allocslow(m.tls, size, align, offset, kind)
}

//---- VM accounting.

// Freebytes remaining in the heap.
func Freebytes() int64 {
	return space().Available()
}

// Usedbytes consumed from the heap so far.
func Usedbytes() int64 {
	return space().Allocated()
}

// Startingheapaddress first byte of the immortal space.
func Startingheapaddress() int64 {
	return space().Startaddress()
}

// Lastheapaddress one past the last byte of the immortal space.
func Lastheapaddress() int64 {
	return space().Endaddress()
}

func space() *immortal.Region {
	if heap.space == nil {
		panicerr("heap not initialized")
	}
	return heap.space
}

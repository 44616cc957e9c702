package goheap

import "errors"

// ErrorOutofMemory heap is exhausted and no collector is available to
// reclaim space.
var ErrorOutofMemory = errors.New("goheap.outofmemory")

// ErrorNotImplemented slow path allocation was invoked without a
// registered collector. Distinct from ordinary exhaustion, which is
// reported with a nil pointer.
var ErrorNotImplemented = errors.New("goheap.notimplemented")

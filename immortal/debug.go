//go:build debug

package immortal

import "unsafe"

// poisonfill reports whether fresh allocations are poisoned. Tests
// that assert on the zero-fill contract skip themselves when set.
const poisonfill = true

// initblock poison fresh allocations with 0xff, to flush out clients
// that silently rely on zero-filled memory.
func initblock(block uintptr, size int64) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(block)), size)
	for i := range dst {
		dst[i] = 0xff
	}
}

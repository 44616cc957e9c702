package immortal

import "testing"
import "unsafe"

func TestMalloc(t *testing.T) {
	capacity := int64(64 * 1024)
	region := NewRegion(capacity, nil)
	defer region.Release()

	// natural placement, successive mallocs are contiguous.
	ptrs := make([]unsafe.Pointer, 100)
	for i := 0; i < 100; i++ {
		ptrs[i] = region.Malloc(24)
		if ptrs[i] == nil {
			t.Fatalf("unexpected exhaustion at %v", i)
		}
	}
	for i := 1; i < 100; i++ {
		prev, curr := uintptr(ptrs[i-1]), uintptr(ptrs[i])
		if curr != prev+24 {
			t.Errorf("expected %v, got %v", prev+24, curr)
		}
	}
}

func TestFreeNoop(t *testing.T) {
	capacity := int64(4096)
	region := NewRegion(capacity, nil)
	defer region.Release()

	// frees never return capacity, malloc/free cycles consume the
	// region monotonically.
	count := 0
	for {
		ptr := region.Malloc(512)
		if ptr == nil {
			break
		}
		region.Free(ptr)
		count++
	}
	if count != 8 {
		t.Errorf("expected %v, got %v", 8, count)
	}
	if x := region.Allocated(); x != capacity {
		t.Errorf("expected %v, got %v", capacity, x)
	}
}

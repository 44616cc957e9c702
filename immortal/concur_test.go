package immortal

import "sort"
import "sync"
import "testing"

import s "github.com/bnclabs/gosettings"

func settingsconcurrent() s.Settings {
	return s.Settings{"concurrent": true}
}

func TestConcur(t *testing.T) {
	nroutines, repeat := 8, 10000

	capacity := int64(64 * 1024 * 1024)
	region := NewRegion(capacity, settingsconcurrent())
	defer region.Release()

	type span struct {
		addr, size int64
	}
	spans := make([][]span, nroutines)
	var wg sync.WaitGroup
	wg.Add(nroutines)
	for n := 0; n < nroutines; n++ {
		go func(n int) {
			defer wg.Done()

			sizes := []int64{8, 16, 24, 48, 96}
			for i := 0; i < repeat; i++ {
				size := sizes[i%len(sizes)]
				ptr := region.Alloc(size, 8, 0)
				if ptr == nil {
					t.Errorf("routine %v: unexpected exhaustion at %v", n, i)
					return
				}
				spans[n] = append(spans[n], span{int64(uintptr(ptr)), size})
			}
		}(n)
	}
	wg.Wait()

	all := make([]span, 0, nroutines*repeat)
	total := int64(0)
	for _, routinespans := range spans {
		all = append(all, routinespans...)
		for _, sp := range routinespans {
			total += sp.size
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].addr < all[j].addr })
	for i := 1; i < len(all); i++ {
		if all[i-1].addr+all[i-1].size > all[i].addr {
			t.Fatalf("%v+%v overlaps %v",
				all[i-1].addr, all[i-1].size, all[i].addr)
		}
	}
	if first, last := all[0], all[len(all)-1]; first.addr < region.start {
		t.Errorf("%v below region start %v", first.addr, region.start)
	} else if last.addr+last.size > region.end {
		t.Errorf("%v beyond region end %v", last.addr+last.size, region.end)
	}
	if x := region.Allocated(); x < total {
		t.Errorf("allocated %v accounts less than %v handed out", x, total)
	}
	t.Logf("%v routines allocated %v bytes, %v with padding",
		nroutines, total, region.Allocated())
}

package main

import "fmt"
import "os"
import "flag"
import "time"

import "github.com/bnclabs/golog"
import hm "github.com/dustin/go-humanize"
import sigar "github.com/cloudfoundry/gosigar"

import "github.com/bnclabs/goheap"
import "github.com/bnclabs/goheap/api"
import "github.com/bnclabs/goheap/immortal"

var options struct {
	capacity   int64
	n          int
	size       int64
	align      int64
	offset     int64
	concurrent bool
	log        string
}

func argParse() {
	flag.Int64Var(&options.capacity, "capacity", 0,
		"heap capacity in bytes, 0 picks half of free system memory")
	flag.IntVar(&options.n, "n", 10000000,
		"number of allocations")
	flag.Int64Var(&options.size, "size", 24,
		"size of each allocation in bytes")
	flag.Int64Var(&options.align, "align", 8,
		"alignment for each allocation, power of 2")
	flag.Int64Var(&options.offset, "offset", 0,
		"signed offset, pointer+offset lands on the aligned boundary")
	flag.BoolVar(&options.concurrent, "concurrent", false,
		"commit the heap cursor with compare-and-swap")
	flag.StringVar(&options.log, "log", "info",
		"log level")
	flag.Parse()

	if options.capacity == 0 {
		mem := sigar.Mem{}
		mem.Get()
		options.capacity = int64(mem.Free / 2)
	}
}

func main() {
	argParse()

	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.log, "log.file": "",
	})
	goheap.LogComponents("all")
	immortal.LogComponents("all")

	if options.concurrent {
		goheap.Process("immortal.concurrent", "true")
	}
	goheap.Init(options.capacity)
	mutator := goheap.Bindmutator(1)

	now := time.Now()
	for i := 0; i < options.n; i++ {
		ptr := mutator.Alloc(
			options.size, options.align, options.offset, api.Allocdefault)
		if ptr == nil {
			fmt.Printf("%v after %v allocations\n", goheap.ErrorOutofMemory, i)
			os.Exit(1)
		}
	}
	elapsed := time.Since(now)

	rate := int64(float64(options.n) / elapsed.Seconds())
	fmt.Printf("allocated %v blocks of %v bytes in %v (%v allocs/sec)\n",
		hm.Comma(int64(options.n)), options.size, elapsed, hm.Comma(rate))
	fmt.Printf("heap used: %v, free: %v\n",
		hm.Bytes(uint64(goheap.Usedbytes())),
		hm.Bytes(uint64(goheap.Freebytes())))
}

package immortal

import "fmt"

func alignup(addr, align int64) int64 {
	return (addr + align - 1) &^ (align - 1)
}

func checkalign(align int64) {
	if align <= 0 || (align&(align-1)) != 0 {
		panicerr("alignment %v is not a power of 2", align)
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}

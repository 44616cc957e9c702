//go:build unix

package immortal

import "golang.org/x/sys/unix"

// reserve n bytes of anonymous, private, read-write memory. The
// kernel hands the pages back zero-filled, which is the zero-init
// guarantee clients of the region rely on.
func reserve(n int64) ([]byte, error) {
	return unix.Mmap(
		-1, 0, int(n),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
}

func unreserve(block []byte) error {
	return unix.Munmap(block)
}

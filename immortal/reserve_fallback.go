//go:build !unix

package immortal

// reserve falls back to a zeroed Go allocation on platforms without
// anonymous mappings. The zero-fill contract holds either way.
func reserve(n int64) ([]byte, error) {
	return make([]byte, n), nil
}

func unreserve(block []byte) error {
	return nil
}

package values

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Fingerprint returns an xxh3 digest of items.
//
// Two runs that report the same fingerprint measured identical inputs.
// Strings are length-prefixed so that ["ab","c"] and ["a","bc"] differ.
func Fingerprint[T Element](items []T) uint64 {
	h := xxh3.New()
	var buf [8]byte
	for i := range items {
		switch v := any(items[i]).(type) {
		case int:
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			_, _ = h.Write(buf[:])
		case string:
			binary.LittleEndian.PutUint64(buf[:], uint64(len(v)))
			_, _ = h.Write(buf[:])
			_, _ = h.WriteString(v)
		case uuid.UUID:
			_, _ = h.Write(v[:])
		}
	}
	return h.Sum64()
}

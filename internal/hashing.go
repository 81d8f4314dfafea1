package internal

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"
)

// CacheKey builds a cache key from its parts by hashing them with XXHash128.
// The hash is extremely fast and keeps keys a fixed length regardless of how
// many machine ids or filter values go into them.
func CacheKey(prefix string, parts ...string) string {
	h := xxh3.New()
	for _, part := range parts {
		_, err := h.Write([]byte(part))
		if err != nil {
			zap.S().Errorf("Unable to write to hash: %v", err)
		}
	}

	sum := h.Sum128()
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[0:8], sum.Lo)
	binary.LittleEndian.PutUint64(b[8:16], sum.Hi)

	return prefix + "-" + hex.EncodeToString(b)
}

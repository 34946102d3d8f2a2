package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyHexLen is the hash length used in storage keys: 16 hex chars
// (64 bits), collision-safe for practical upload counts.
const KeyHexLen = 16

// ContentHash computes the xxHash64 of data and returns a hex string
// truncated to the given length.
func ContentHash(data []byte, hexLen int) string {
	return truncate(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	h := xxhash.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return truncate(h.Sum64(), hexLen), nil
}

// StorageKey returns a content-addressed object name: <hash>.<ext>.
// Identical bytes always map to the same key.
func StorageKey(data []byte, ext string) string {
	key := ContentHash(data, KeyHexLen)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return key
	}
	return key + "." + strings.ToLower(ext)
}

// KeyHash returns the hash portion of a storage key.
func KeyHash(key string) string {
	if i := strings.IndexByte(key, '.'); i >= 0 {
		return key[:i]
	}
	return key
}

func truncate(sum uint64, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], sum)
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}

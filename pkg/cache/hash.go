package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey returns the key for svg converted to format at scale.
// The scale is formatted exactly, so 2 and 2.0000001 are distinct keys.
func ArtifactKey(svg []byte, format string, scale float64) string {
	h := sha256.New()
	h.Write([]byte(Hash(svg)))
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(scale, 'g', -1, 64)))
	return "artifact:" + hex.EncodeToString(h.Sum(nil))
}

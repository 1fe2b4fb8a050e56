package util

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// ChainKey derives a deterministic composite key for a whole-chain entry
// from the ordered member content hashes. Order matters: the same certs in a
// different order are a different chain.
func ChainKey(prefix string, hashes []uint64) string {
	joined := make([]byte, 8*len(hashes))
	for i, h := range hashes {
		binary.LittleEndian.PutUint64(joined[i*8:], h)
	}
	sum := sha256.Sum256(joined)
	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}

// CertKey derives the storage key for a single certificate from its content
// hash.
func CertKey(prefix string, hash uint64) string {
	return fmt.Sprintf("%s:%016x", prefix, hash)
}

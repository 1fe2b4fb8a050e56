package certpack

import (
	"encoding/binary"
	"hash/fnv"
)

// HashCert returns the 64-bit FNV-1a hash of raw certificate bytes. This is
// the content hash advertised by peers and written into cached entries. It
// is a cache key only; collisions are tolerated (see package doc).
func HashCert(cert []byte) uint64 {
	h := fnv.New64a()
	h.Write(cert)
	return h.Sum64()
}

// hashAll hashes every certificate in certs, preserving order.
func hashAll(certs [][]byte) []uint64 {
	hashes := make([]uint64, len(certs))
	for i, c := range certs {
		hashes[i] = HashCert(c)
	}
	return hashes
}

// advertisedHashes interprets a peer-supplied blob as a flat sequence of
// little-endian 64-bit hashes. A blob that is empty or not a multiple of 8
// bytes is treated as "peer cached nothing" rather than an error: the
// advertisement is an optimization hint, and a garbled one just costs
// compression ratio. Order is preserved; duplicates are kept as sent, since
// matching is first-hit by linear scan and that order is observable.
func advertisedHashes(blob []byte) []uint64 {
	if len(blob) == 0 || len(blob)%8 != 0 {
		return nil
	}
	hashes := make([]uint64, 0, len(blob)/8)
	for off := 0; off < len(blob); off += 8 {
		hashes = append(hashes, binary.LittleEndian.Uint64(blob[off:off+8]))
	}
	return hashes
}

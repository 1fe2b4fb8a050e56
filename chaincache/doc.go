// Package chaincache retains certificates and chains seen in earlier
// handshakes so later ones can transmit them by reference.
//
// Entries are content-addressed: a certificate's storage key is derived
// from its 64-bit FNV-1a hash, the same hash the certpack frame format uses
// for cached entries. That makes entries immutable — there is nothing to
// invalidate, and a read validates itself by re-hashing the payload.
// Corrupt or foreign provider entries are deleted on read (self-heal) and
// reported as misses.
//
// Components:
//   - Provider: byte store with TTL (BigCache, Ristretto, Redis).
//   - Codec: serializes whole chains ([][]byte); deterministic CBOR by
//     default.
//
// The cache feeds the codec on both sides of the handshake:
//
//	blob, _ := cc.AdvertisedHashes(ctx)        // client hello
//	frame, _ := certpack.CompressChain(chain, blob)  // server
//	cached, _ := cc.CachedCerts(ctx)           // client
//	chain, err := certpack.DecompressChain(frame, cached)
package chaincache

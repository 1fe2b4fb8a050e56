package chaincache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/certpack/codec"
	pr "github.com/unkn0wn-root/certpack/provider"
)

// Cache is the provider-agnostic certificate store. All byte-slice inputs
// are copied or framed before storage; returned slices must not be mutated.
type Cache interface {
	Enabled() bool
	Close(context.Context) error

	// PutCert stores one certificate under its content hash and returns the
	// hash. Idempotent: re-putting the same bytes is a no-op.
	PutCert(ctx context.Context, der []byte) (uint64, error)

	// Cert returns the certificate with the given content hash.
	Cert(ctx context.Context, hash uint64) (der []byte, ok bool, err error)

	// PutChain stores a whole chain plus each member certificate, returning
	// the member hashes in chain order.
	PutChain(ctx context.Context, chain [][]byte) ([]uint64, error)

	// Chain returns the chain previously stored for these member hashes.
	Chain(ctx context.Context, hashes []uint64) ([][]byte, bool, error)

	// AdvertisedHashes returns a flat little-endian 8-byte-per-hash blob of
	// every certificate currently held, in first-seen order. The blob is
	// consumed directly by certpack.CompressChain on the remote side.
	AdvertisedHashes(ctx context.Context) ([]byte, error)

	// CachedCerts returns the held certificates in the same first-seen order
	// as AdvertisedHashes, for certpack.DecompressChain.
	CachedCerts(ctx context.Context) ([][]byte, error)
}

// Options tune the cache. Namespace and Provider are required; everything
// else has defaults.
type Options struct {
	// Required
	Namespace string // isolates keyspaces, e.g. "quic" or a server fleet name
	Provider  pr.Provider

	ChainCodec    c.Codec[c.Chain] // nil => deterministic CBOR
	Logger        Logger           // nil => NopLogger
	Hooks         Hooks            // nil => NopHooks
	CertTTL       time.Duration    // 0 => 24h; certs age out, they never change
	ChainTTL      time.Duration    // 0 => 1h
	MaxAdvertised int              // cap on certs indexed for advertisement; 0 => 64
	Disabled      bool             // default false (enabled)
}

func New(opts Options) (Cache, error) {
	return newCache(opts)
}

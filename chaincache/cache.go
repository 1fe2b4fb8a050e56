package chaincache

import (
	"context"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/unkn0wn-root/certpack"
	c "github.com/unkn0wn-root/certpack/codec"
	"github.com/unkn0wn-root/certpack/internal/util"
	"github.com/unkn0wn-root/certpack/internal/wire"
	pr "github.com/unkn0wn-root/certpack/provider"
)

const (
	defaultCertTTL       = 24 * time.Hour
	defaultChainTTL      = time.Hour
	defaultMaxAdvertised = 64
)

type cache struct {
	ns         string
	provider   pr.Provider
	chainCodec c.Codec[c.Chain]
	log        Logger
	hooks      Hooks

	enabled       bool
	certTTL       time.Duration
	chainTTL      time.Duration
	maxAdvertised int

	// advertisement index: content hashes in first-seen order. The codec's
	// cache matching is first-hit by linear scan, so this order is part of
	// the observable behavior and must be stable.
	mu    sync.Mutex
	index []uint64
	seen  map[uint64]struct{}
}

func newCache(opts Options) (*cache, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("chaincache: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("chaincache: namespace is required")
	}

	cc := &cache{
		ns:       opts.Namespace,
		provider: opts.Provider,
		enabled:  !opts.Disabled,
		seen:     make(map[uint64]struct{}),
	}

	// defaults
	if opts.ChainCodec != nil {
		cc.chainCodec = opts.ChainCodec
	} else {
		cc.chainCodec = c.MustCBOR[c.Chain]()
	}
	cc.log = coalesce[Logger](opts.Logger, NopLogger{})
	cc.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cc.certTTL = coalesce[time.Duration](opts.CertTTL, defaultCertTTL)
	cc.chainTTL = coalesce[time.Duration](opts.ChainTTL, defaultChainTTL)
	cc.maxAdvertised = coalesce[int](opts.MaxAdvertised, defaultMaxAdvertised)

	return cc, nil
}

func (cc *cache) Enabled() bool { return cc.enabled }

func (cc *cache) Close(ctx context.Context) error {
	if cc.provider != nil {
		return cc.provider.Close(ctx)
	}
	return nil
}

func (cc *cache) PutCert(ctx context.Context, der []byte) (uint64, error) {
	h := certpack.HashCert(der)
	if !cc.enabled {
		return h, nil
	}

	cc.mu.Lock()
	if _, dup := cc.seen[h]; dup {
		cc.mu.Unlock()
		return h, nil
	}
	if len(cc.index) >= cc.maxAdvertised {
		cc.mu.Unlock()
		cc.hooks.AdvertisementFull(h)
		cc.log.Debug("cert not indexed (advertisement full)", Fields{"hash": h})
		return h, nil
	}
	cc.seen[h] = struct{}{}
	cc.index = append(cc.index, h)
	cc.mu.Unlock()

	k := cc.certKey(h)
	wireb := wire.EncodeCert(h, der)
	ok, err := cc.provider.Set(ctx, k, wireb, int64(len(wireb)), cc.certTTL)
	if err != nil {
		cc.drop(h)
		return h, err
	}
	if !ok {
		cc.drop(h)
		cc.hooks.ProviderSetRejected(k)
		cc.log.Debug("cert Set rejected by provider (pressure)", Fields{"key": k})
	}
	return h, nil
}

func (cc *cache) Cert(ctx context.Context, hash uint64) ([]byte, bool, error) {
	if !cc.enabled {
		return nil, false, nil
	}
	k := cc.certKey(hash)
	raw, ok, err := cc.provider.Get(ctx, k)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		cc.drop(hash) // evicted underneath us; stop advertising it
		return nil, false, nil
	}

	storedHash, der, err := wire.DecodeCert(raw)
	if err != nil {
		cc.selfHeal(ctx, k, hash, "corrupt")
		return nil, false, nil
	}
	// An entry is its own proof: the payload must hash to the key it lives
	// under.
	if storedHash != hash || certpack.HashCert(der) != hash {
		cc.selfHeal(ctx, k, hash, "hash_mismatch")
		return nil, false, nil
	}
	return der, true, nil
}

func (cc *cache) PutChain(ctx context.Context, chain [][]byte) ([]uint64, error) {
	hashes := make([]uint64, len(chain))
	for i, der := range chain {
		h, err := cc.PutCert(ctx, der)
		if err != nil {
			return nil, err
		}
		hashes[i] = h
	}
	if !cc.enabled || len(chain) == 0 {
		return hashes, nil
	}

	payload, err := cc.chainCodec.Encode(chain)
	if err != nil {
		return nil, err
	}
	k := cc.chainKey(hashes)
	wireb := wire.EncodeChain(len(chain), payload)
	ok, err := cc.provider.Set(ctx, k, wireb, int64(len(wireb)), cc.chainTTL)
	if err != nil {
		return nil, err
	}
	if !ok {
		cc.hooks.ProviderSetRejected(k)
		cc.log.Debug("chain Set rejected by provider (pressure)", Fields{"key": k})
	}
	return hashes, nil
}

func (cc *cache) Chain(ctx context.Context, hashes []uint64) ([][]byte, bool, error) {
	if !cc.enabled || len(hashes) == 0 {
		return nil, false, nil
	}
	k := cc.chainKey(hashes)
	raw, ok, err := cc.provider.Get(ctx, k)
	if err != nil || !ok {
		return nil, false, err
	}

	n, payload, err := wire.DecodeChain(raw)
	if err != nil {
		cc.healKey(ctx, k, "corrupt")
		return nil, false, nil
	}
	if n != len(hashes) {
		cc.healKey(ctx, k, "member_mismatch")
		return nil, false, nil
	}
	chain, err := cc.chainCodec.Decode(payload)
	if err != nil {
		cc.healKey(ctx, k, "decode")
		return nil, false, nil
	}
	if len(chain) != len(hashes) {
		cc.healKey(ctx, k, "member_mismatch")
		return nil, false, nil
	}
	for i, der := range chain {
		if certpack.HashCert(der) != hashes[i] {
			cc.healKey(ctx, k, "member_mismatch")
			return nil, false, nil
		}
	}
	return chain, true, nil
}

func (cc *cache) AdvertisedHashes(ctx context.Context) ([]byte, error) {
	hashes, _, err := cc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	blob := make([]byte, 0, 8*len(hashes))
	for _, h := range hashes {
		blob = binary.LittleEndian.AppendUint64(blob, h)
	}
	return blob, nil
}

func (cc *cache) CachedCerts(ctx context.Context) ([][]byte, error) {
	_, certs, err := cc.snapshot(ctx)
	return certs, err
}

// snapshot walks the advertisement index and returns the hashes and certs
// actually present in the provider, in first-seen order. Cert() prunes the
// index on miss, so the two views stay consistent: a hash is advertised only
// while its bytes are retrievable.
func (cc *cache) snapshot(ctx context.Context) ([]uint64, [][]byte, error) {
	if !cc.enabled {
		return nil, nil, nil
	}
	cc.mu.Lock()
	candidates := slices.Clone(cc.index)
	cc.mu.Unlock()

	hashes := make([]uint64, 0, len(candidates))
	certs := make([][]byte, 0, len(candidates))
	for _, h := range candidates {
		der, ok, err := cc.Cert(ctx, h)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			continue
		}
		hashes = append(hashes, h)
		certs = append(certs, der)
	}
	return hashes, certs, nil
}

func (cc *cache) selfHeal(ctx context.Context, key string, hash uint64, reason string) {
	_ = cc.provider.Del(ctx, key)
	cc.drop(hash)
	cc.hooks.SelfHeal(key, reason)
	cc.log.Warn("deleted bad cert entry", Fields{"key": key, "reason": reason})
}

func (cc *cache) healKey(ctx context.Context, key, reason string) {
	_ = cc.provider.Del(ctx, key)
	cc.hooks.SelfHeal(key, reason)
	cc.log.Warn("deleted bad chain entry", Fields{"key": key, "reason": reason})
}

func (cc *cache) drop(hash uint64) {
	cc.mu.Lock()
	if _, ok := cc.seen[hash]; ok {
		delete(cc.seen, hash)
		if i := slices.Index(cc.index, hash); i >= 0 {
			cc.index = slices.Delete(cc.index, i, i+1)
		}
	}
	cc.mu.Unlock()
}

func (cc *cache) certKey(hash uint64) string {
	return util.CertKey("cert:"+cc.ns, hash)
}

func (cc *cache) chainKey(hashes []uint64) string {
	return util.ChainKey("chain:"+cc.ns, hashes)
}

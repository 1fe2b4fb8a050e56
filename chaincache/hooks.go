package chaincache

// Hooks are lightweight callbacks for high-signal events. Implementations
// MUST be cheap and non-blocking; the cache calls them on hot paths.
type Hooks interface {
	// An entry was deleted by the cache on read.
	// reason ∈ {"corrupt", "hash_mismatch", "decode", "member_mismatch"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// A certificate was not indexed because MaxAdvertised was reached.
	AdvertisementFull(hash uint64)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) AdvertisementFull(uint64)   {}

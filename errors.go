package certpack

import "errors"

var (
	// ErrMalformed reports a frame that violates the wire format: a missing
	// terminator, an unknown entry type, a truncated hash or length field,
	// an oversized declared length, or bytes left over after reassembly.
	ErrMalformed = errors.New("certpack: malformed frame")

	// ErrUnknownCachedCert reports a cached entry whose hash matches nothing
	// in the supplied local cache. The frame cannot be reassembled.
	ErrUnknownCachedCert = errors.New("certpack: cached cert not in local cache")

	// ErrChainTooLarge reports a chain whose compressed payload would not fit
	// the frame's 32-bit length fields.
	ErrChainTooLarge = errors.New("certpack: chain too large for frame")
)

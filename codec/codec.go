// Package codec provides pluggable value serialization for chaincache.
// The stock chain codecs are deterministic: chain entries are
// content-addressed, so re-encoding the same chain must produce the same
// bytes.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Chain is the value type stored for whole certificate chains: ordered,
// opaque DER byte strings.
type Chain = [][]byte

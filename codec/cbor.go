package codec

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR is a Codec that serializes values using fxamacker/cbor in RFC 8949
// Core Deterministic mode. The zero value is NOT ready to use; construct
// with NewCBOR or MustCBOR.
//
// Deterministic encoding is not optional here: chaincache derives keys from
// content, and a codec that can emit two encodings of the same chain would
// silently split entries.
type CBOR[V any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ Codec[Chain] = CBOR[Chain]{}

// NewCBOR constructs a deterministic CBOR codec.
func NewCBOR[V any]() (CBOR[V], error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error. Handy for package-level
// variables; the stock options never fail.
func MustCBOR[V any]() CBOR[V] {
	c, err := NewCBOR[V]()
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Encode(v V) ([]byte, error) {
	return c.enc.Marshal(v)
}

func (c CBOR[V]) Decode(b []byte) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}

package codec

import "github.com/vmihailenco/msgpack/v5"

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use. Encoding of []byte and [][]byte values is
// deterministic, which is all chaincache requires; for struct values prefer
// CBOR if you depend on stable field ordering.
type Msgpack[V any] struct{}

var _ Codec[Chain] = Msgpack[Chain]{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

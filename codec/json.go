package codec

import "encoding/json"

// JSONCodec serializes values as JSON. Mostly useful for debugging a cache
// with external tooling; byte strings inflate by a third under base64.
type JSONCodec[V any] struct{}

func (JSONCodec[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSONCodec[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}

package codec

// Bytes is an identity codec for []byte values. Encode/Decode return the
// input unchanged. Single-certificate entries use this: DER is already a
// canonical byte string and needs no re-encoding.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

package codec

import (
	"bytes"
	"strings"
	"testing"
)

var testChain = Chain{[]byte("leaf"), []byte("intermediate"), []byte("root"), {}}

func mustRoundTrip(t *testing.T, c Codec[Chain], chain Chain) Chain {
	t.Helper()
	b, err := c.Encode(chain)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	return got
}

func chainsEqual(a, b Chain) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func TestCBORChainDeterministic(t *testing.T) {
	c := MustCBOR[Chain]()

	b1, err := c.Encode(testChain)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	b2, err := c.Encode(testChain)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !bytes.Equal(b1, b2) {
		t.Fatal("CBOR encoding of the same chain differs between calls")
	}

	if got := mustRoundTrip(t, c, testChain); !chainsEqual(got, testChain) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestMsgpackChainRoundTrip(t *testing.T) {
	if got := mustRoundTrip(t, Msgpack[Chain]{}, testChain); !chainsEqual(got, testChain) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestLimitCodecRejectsOversized(t *testing.T) {
	limited := LimitCodec[Chain]{Inner: MustCBOR[Chain](), MaxDecode: 8}

	big := Chain{[]byte(strings.Repeat("x", 64))}
	b, err := limited.Encode(big) // Encode is not limited
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if _, err := limited.Decode(b); err == nil {
		t.Fatal("Decode accepted an oversized payload")
	}
}

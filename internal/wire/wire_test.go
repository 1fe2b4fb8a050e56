package wire

import (
	"bytes"
	"math"
	"testing"
)

func mustDecodeCert(t *testing.T, b []byte) (uint64, []byte) {
	t.Helper()
	h, der, err := DecodeCert(b)
	if err != nil {
		t.Fatalf("DecodeCert error: %v", err)
	}
	return h, der
}

func TestCertRoundTrip(t *testing.T) {
	cases := []struct {
		hash uint64
		der  []byte
	}{
		{0, nil},
		{42, []byte("certificate bytes")},
		{math.MaxUint64, []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		h, der := mustDecodeCert(t, EncodeCert(tc.hash, tc.der))
		if h != tc.hash {
			t.Fatalf("hash mismatch: got %d want %d", h, tc.hash)
		}
		if !bytes.Equal(der, tc.der) {
			t.Fatalf("der mismatch: got %x want %x", der, tc.der)
		}
	}
}

func TestCertRejectsCorruption(t *testing.T) {
	good := EncodeCert(7, []byte("payload"))

	truncated := good[:len(good)-1]
	trailing := append(append([]byte{}, good...), 0xff)
	badMagic := append([]byte{}, good...)
	badMagic[0] = 'X'
	badVersion := append([]byte{}, good...)
	badVersion[4] = 99
	wrongKind := append([]byte{}, good...)
	wrongKind[5] = kindChain

	for name, b := range map[string][]byte{
		"truncated":   truncated,
		"trailing":    trailing,
		"bad magic":   badMagic,
		"bad version": badVersion,
		"wrong kind":  wrongKind,
		"too short":   {1, 2, 3},
	} {
		if _, _, err := DecodeCert(b); err != ErrCorrupt {
			t.Fatalf("%s: err = %v, want ErrCorrupt", name, err)
		}
	}
}

func TestChainRoundTrip(t *testing.T) {
	payload := []byte("codec-encoded chain")
	n, got, err := DecodeChain(EncodeChain(3, payload))
	if err != nil {
		t.Fatalf("DecodeChain error: %v", err)
	}
	if n != 3 {
		t.Fatalf("member count = %d, want 3", n)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: got %x want %x", got, payload)
	}
}

func TestChainRejectsCertKind(t *testing.T) {
	if _, _, err := DecodeChain(EncodeCert(1, []byte("x"))); err != ErrCorrupt {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

package certpack

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func mustCompress(t *testing.T, certs [][]byte, hashBlob []byte) []byte {
	t.Helper()
	frame, err := CompressChain(certs, hashBlob)
	if err != nil {
		t.Fatalf("CompressChain error: %v", err)
	}
	return frame
}

func mustDecompress(t *testing.T, frame []byte, cached [][]byte) [][]byte {
	t.Helper()
	certs, err := DecompressChain(frame, cached)
	if err != nil {
		t.Fatalf("DecompressChain error: %v", err)
	}
	return certs
}

// hashBlob builds a peer advertisement for the given certs.
func hashBlob(certs ...[]byte) []byte {
	blob := make([]byte, 0, 8*len(certs))
	var u8 [8]byte
	for _, c := range certs {
		binary.LittleEndian.PutUint64(u8[:], HashCert(c))
		blob = append(blob, u8[:]...)
	}
	return blob
}

func chainsEqual(a, b [][]byte) bool {
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

func TestRoundTripAllCacheSubsets(t *testing.T) {
	chain := [][]byte{
		[]byte("leaf certificate bytes, long enough to bother deflating"),
		[]byte("intermediate certificate bytes"),
		[]byte("root certificate bytes"),
	}

	// Every subset of the chain pre-declared as cached on both sides.
	for mask := 0; mask < 1<<len(chain); mask++ {
		var cached [][]byte
		for i, c := range chain {
			if mask&(1<<i) != 0 {
				cached = append(cached, c)
			}
		}
		frame := mustCompress(t, chain, hashBlob(cached...))
		got := mustDecompress(t, frame, cached)
		if !chainsEqual(got, chain) {
			t.Fatalf("mask %03b: round trip mismatch: got %q want %q", mask, got, chain)
		}
	}
}

func TestRoundTripEmptyChain(t *testing.T) {
	frame := mustCompress(t, nil, nil)
	if !bytes.Equal(frame, []byte{0}) {
		t.Fatalf("empty chain frame = %x, want bare terminator", frame)
	}
	got := mustDecompress(t, frame, nil)
	if len(got) != 0 {
		t.Fatalf("empty chain decoded to %d certs", len(got))
	}
}

func TestRoundTripZeroLengthCert(t *testing.T) {
	chain := [][]byte{{}, []byte("nonempty")}
	got := mustDecompress(t, mustCompress(t, chain, nil), nil)
	if !chainsEqual(got, chain) {
		t.Fatalf("round trip mismatch: got %q want %q", got, chain)
	}
}

func TestEndToEndCachedPlusCompressed(t *testing.T) {
	certA := []byte("CERT_A")
	certB := []byte("CERT_B")
	frame := mustCompress(t, [][]byte{certA, certB}, hashBlob(certA))

	// Entry list: cached(hash A), compressed, terminator.
	if frame[0] != byte(kindCached) {
		t.Fatalf("entry 0 type = %d, want cached", frame[0])
	}
	if h := binary.LittleEndian.Uint64(frame[1:9]); h != HashCert(certA) {
		t.Fatalf("entry 0 hash = %016x, want %016x", h, HashCert(certA))
	}
	if frame[9] != byte(kindCompressed) || frame[10] != 0 {
		t.Fatalf("frame header = %x, want compressed entry then terminator", frame[:11])
	}

	got := mustDecompress(t, frame, [][]byte{certA})
	if !chainsEqual(got, [][]byte{certA, certB}) {
		t.Fatalf("decoded %q, want [CERT_A CERT_B]", got)
	}
}

func TestAllCachedFrameHasNoZlibBlock(t *testing.T) {
	chain := [][]byte{[]byte("one"), []byte("two")}
	frame := mustCompress(t, chain, hashBlob(chain...))
	if want := 2*(1+8) + 1; len(frame) != want {
		t.Fatalf("all-cached frame is %d bytes, want %d (entries only)", len(frame), want)
	}
}

func TestMalformedAdvertisementIgnored(t *testing.T) {
	cert := []byte("some certificate")
	blob := hashBlob(cert)[:7] // not a multiple of 8
	frame := mustCompress(t, [][]byte{cert}, blob)
	if frame[0] != byte(kindCompressed) {
		t.Fatalf("entry type = %d, want compressed (bad blob must be ignored)", frame[0])
	}
}

func TestDuplicateAdvertisedHashes(t *testing.T) {
	cert := []byte("repeated advertisement")
	blob := append(hashBlob(cert), hashBlob(cert)...)
	frame := mustCompress(t, [][]byte{cert}, blob)
	if frame[0] != byte(kindCached) {
		t.Fatalf("entry type = %d, want cached", frame[0])
	}
	got := mustDecompress(t, frame, [][]byte{cert})
	if !chainsEqual(got, [][]byte{cert}) {
		t.Fatalf("round trip mismatch with duplicate hashes")
	}
}

func TestDictDeterministicAndReversed(t *testing.T) {
	certs := [][]byte{[]byte("first"), []byte("second"), []byte("third")}
	entries := []entry{
		{kind: kindCached, hash: HashCert(certs[0])},
		{kind: kindCompressed},
		{kind: kindCached, hash: HashCert(certs[2])},
	}

	d1 := dictForEntries(entries, certs)
	d2 := dictForEntries(entries, certs)
	if !bytes.Equal(d1, d2) {
		t.Fatal("dictionary construction is not deterministic")
	}

	// Cached certs in reverse chain order, then the corpus.
	want := append(append([]byte("third"), []byte("first")...), commonCertSubstrings...)
	if !bytes.Equal(d1, want) {
		t.Fatalf("dictionary layout wrong:\n got %x\nwant %x", d1[:16], want[:16])
	}
}

func TestHashVectors(t *testing.T) {
	// Standard FNV-1a 64 vectors; these are protocol constants.
	cases := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}
	for _, tc := range cases {
		if got := HashCert([]byte(tc.in)); got != tc.want {
			t.Fatalf("HashCert(%q) = %016x, want %016x", tc.in, got, tc.want)
		}
	}
}

func TestDecompressRejectsMalformedFrames(t *testing.T) {
	oversized := make([]byte, 2+4)
	oversized[0] = byte(kindCompressed)
	binary.LittleEndian.PutUint32(oversized[2:], maxUncompressedSize+1)

	cases := []struct {
		name string
		in   []byte
	}{
		{"empty input", nil},
		{"missing terminator", []byte{1, 1}},
		{"unknown entry type", []byte{3, 0}},
		{"truncated cached hash", []byte{2, 1, 2, 3}},
		{"truncated length field", []byte{1, 0, 9, 9}},
		{"oversized declared length", oversized},
	}
	for _, tc := range cases {
		if _, err := DecompressChain(tc.in, nil); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err = %v, want ErrMalformed", tc.name, err)
		}
	}
}

func TestDecompressRejectsUnknownCachedHash(t *testing.T) {
	cert := []byte("known only to the sender")
	frame := mustCompress(t, [][]byte{cert}, hashBlob(cert))
	if _, err := DecompressChain(frame, nil); !errors.Is(err, ErrUnknownCachedCert) {
		t.Fatalf("err = %v, want ErrUnknownCachedCert", err)
	}
}

func TestDecompressRejectsTrailingCompressedBytes(t *testing.T) {
	frame := mustCompress(t, [][]byte{[]byte("payload cert")}, nil)
	frame = append(frame, 0xff)
	if _, err := DecompressChain(frame, nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed for trailing bytes", err)
	}
}

// buildFrame assembles a frame with a single compressed entry whose zlib
// block holds payload, declaring declared as the uncompressed length.
func buildFrame(t *testing.T, payload []byte, declared uint32) []byte {
	t.Helper()
	entries := []entry{{kind: kindCompressed}}
	dict := dictForEntries(entries, [][]byte{nil})

	var block bytes.Buffer
	zw, err := zlib.NewWriterLevelDict(&block, zlib.DefaultCompression, dict)
	if err != nil {
		t.Fatalf("zlib init: %v", err)
	}
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}

	frame := []byte{byte(kindCompressed), 0}
	var u4 [4]byte
	binary.LittleEndian.PutUint32(u4[:], declared)
	frame = append(frame, u4[:]...)
	return append(frame, block.Bytes()...)
}

// certPayload returns the logical payload for a single compressed cert.
func certPayload(cert []byte) []byte {
	p := make([]byte, 4+len(cert))
	binary.LittleEndian.PutUint32(p, uint32(len(cert)))
	copy(p[4:], cert)
	return p
}

func TestDecompressRejectsInflationMismatch(t *testing.T) {
	payload := certPayload([]byte("exactly this cert"))

	cases := []struct {
		name     string
		payload  []byte
		declared uint32
	}{
		{"payload shorter than declared", payload, uint32(len(payload)) + 1},
		{"payload longer than declared", payload, uint32(len(payload)) - 1},
		{"trailing payload after reassembly", append(certPayload([]byte("cert")), 0xaa), uint32(len(certPayload([]byte("cert")))) + 1},
		{"cert length exceeds payload", certPayload([]byte("cert"))[:4], 4},
	}
	for _, tc := range cases {
		frame := buildFrame(t, tc.payload, tc.declared)
		if _, err := DecompressChain(frame, nil); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: err = %v, want ErrMalformed", tc.name, err)
		}
	}
}

func TestCompressedCertsMissingBlock(t *testing.T) {
	// A compressed entry with nothing after the terminator cannot be filled.
	if _, err := DecompressChain([]byte{1, 0}, nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
}

package certpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DecompressChain reconstructs a certificate chain from a frame produced by
// CompressChain. cachedCerts holds the certificates this side has retained
// from earlier handshakes; every cached entry in the frame must resolve
// against it or decoding fails with ErrUnknownCachedCert.
//
// The frame is fully validated: the zlib block must consume all input after
// the terminator, inflate to exactly its declared length (capped at 128
// KiB), and be consumed exactly by the compressed entries. Any violation
// fails the whole call; there is no partial chain.
func DecompressChain(in []byte, cachedCerts [][]byte) ([][]byte, error) {
	entries, certs, rest, err := parseEntries(in, cachedCerts)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if len(rest) > 0 {
		if len(rest) < 4 {
			return nil, fmt.Errorf("%w: truncated uncompressed-length field", ErrMalformed)
		}
		declared := binary.LittleEndian.Uint32(rest[:4])
		rest = rest[4:]

		// Reject before allocating: declared sizes the inflation buffer and
		// is otherwise sender-controlled.
		if declared > maxUncompressedSize {
			return nil, fmt.Errorf("%w: declared payload %d exceeds %d", ErrMalformed, declared, maxUncompressedSize)
		}
		payload = make([]byte, declared)

		br := bytes.NewReader(rest)
		zr, err := zlib.NewReaderDict(br, dictForEntries(entries, certs))
		if err != nil {
			return nil, fmt.Errorf("%w: inflate: %v", ErrMalformed, err)
		}
		if _, err := io.ReadFull(zr, payload); err != nil {
			zr.Close()
			return nil, fmt.Errorf("%w: inflate: %v", ErrMalformed, err)
		}

		// The stream must end exactly at the declared length; reading past it
		// also drives the zlib checksum verification.
		var extra [1]byte
		if n, err := zr.Read(extra[:]); n != 0 || err != io.EOF {
			zr.Close()
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("%w: inflate: %v", ErrMalformed, err)
			}
			return nil, fmt.Errorf("%w: payload longer than declared", ErrMalformed)
		}
		if err := zr.Close(); err != nil {
			return nil, fmt.Errorf("%w: inflate: %v", ErrMalformed, err)
		}
		if br.Len() != 0 {
			return nil, fmt.Errorf("%w: trailing bytes after zlib block", ErrMalformed)
		}
	}

	for i := range entries {
		if entries[i].kind != kindCompressed {
			continue
		}
		if len(payload) < 4 {
			return nil, fmt.Errorf("%w: truncated cert length in payload", ErrMalformed)
		}
		n := binary.LittleEndian.Uint32(payload[:4])
		payload = payload[4:]
		if uint64(n) > uint64(len(payload)) {
			return nil, fmt.Errorf("%w: cert length %d exceeds payload", ErrMalformed, n)
		}
		certs[i] = payload[:n:n]
		payload = payload[n:]
	}
	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d unconsumed payload bytes", ErrMalformed, len(payload))
	}

	return certs, nil
}

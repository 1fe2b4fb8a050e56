package certpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zlib"
)

// maxUncompressedSize caps the declared payload length a decoder will
// inflate. Protocol constant shared with DecompressChain.
const maxUncompressedSize = 128 * 1024

// CompressChain encodes certs into a single frame for a peer that advertised
// clientCachedHashes, a flat blob of little-endian 64-bit FNV-1a hashes of
// certificates it already holds (empty or malformed blobs are ignored).
// Certificates whose hash appears in the advertisement are sent by
// reference; the rest travel in a zlib block deflated against a preset
// dictionary of the referenced certs and the common-substring corpus.
//
// An error means the frame could not be produced and nothing should be sent;
// there is no partial output.
func CompressChain(certs [][]byte, clientCachedHashes []byte) ([]byte, error) {
	entries := matchCerts(certs, clientCachedHashes)

	var uncompressedSize uint64
	for i, e := range entries {
		if e.kind != kindCompressed {
			continue
		}
		uncompressedSize += 4 + uint64(len(certs[i]))
		if uncompressedSize > math.MaxUint32 {
			return nil, ErrChainTooLarge
		}
	}

	headerSize, err := entriesSize(entries)
	if err != nil {
		return nil, err
	}

	frame := make([]byte, headerSize, headerSize+4)
	serializeEntries(frame, entries)

	if uncompressedSize == 0 {
		return frame, nil
	}

	var lenField [4]byte
	binary.LittleEndian.PutUint32(lenField[:], uint32(uncompressedSize))
	frame = append(frame, lenField[:]...)

	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevelDict(&compressed, zlib.DefaultCompression, dictForEntries(entries, certs))
	if err != nil {
		return nil, fmt.Errorf("certpack: deflate init: %w", err)
	}

	for i, e := range entries {
		if e.kind != kindCompressed {
			continue
		}
		binary.LittleEndian.PutUint32(lenField[:], uint32(len(certs[i])))
		if _, err := zw.Write(lenField[:]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("certpack: deflate: %w", err)
		}
		if _, err := zw.Write(certs[i]); err != nil {
			zw.Close()
			return nil, fmt.Errorf("certpack: deflate: %w", err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("certpack: deflate close: %w", err)
	}

	return append(frame, compressed.Bytes()...), nil
}

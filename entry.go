package certpack

import (
	"encoding/binary"
	"fmt"
	"math"
)

type entryKind byte

const (
	// Kind 0 is reserved on the wire as the end-of-list terminator and never
	// appears as a live entry.
	kindCompressed entryKind = 1 // cert bytes travel in the zlib block
	kindCached     entryKind = 2 // cert replaced by its content hash
)

// entry describes one certificate of the chain. Entries and the chain are
// always index-aligned: entry i describes cert i.
type entry struct {
	kind entryKind
	hash uint64 // set only for kindCached
}

// matchCerts decides, per certificate, whether the peer already holds it.
// hashBlob is the peer's advertisement as received; a malformed blob is
// treated as empty. First matching advertised hash wins.
func matchCerts(certs [][]byte, hashBlob []byte) []entry {
	entries := make([]entry, 0, len(certs))
	advertised := advertisedHashes(hashBlob)

	for _, cert := range certs {
		if len(advertised) > 0 {
			h := HashCert(cert)
			cached := false
			for _, a := range advertised {
				if a == h {
					entries = append(entries, entry{kind: kindCached, hash: h})
					cached = true
					break
				}
			}
			if cached {
				continue
			}
		}
		entries = append(entries, entry{kind: kindCompressed})
	}
	return entries
}

// entriesSize returns the serialized byte length of entries plus the
// terminator. Arithmetic is overflow-checked: a wrapped size would govern
// the frame allocation.
func entriesSize(entries []entry) (int, error) {
	size := 1 // terminator
	for _, e := range entries {
		n := 1
		if e.kind == kindCached {
			n += 8
		}
		if size > math.MaxInt-n {
			return 0, fmt.Errorf("%w: entry list size overflows", ErrChainTooLarge)
		}
		size += n
	}
	return size, nil
}

// serializeEntries writes the entry list and terminator into dst, which must
// be at least entriesSize(entries) bytes.
func serializeEntries(dst []byte, entries []entry) {
	off := 0
	for _, e := range entries {
		dst[off] = byte(e.kind)
		off++
		if e.kind == kindCached {
			binary.LittleEndian.PutUint64(dst[off:], e.hash)
			off += 8
		}
	}
	dst[off] = 0
}

// parseEntries consumes the entry list from in, up to and including the
// terminator, and resolves every cached entry against cachedCerts. It
// returns the entries, an index-aligned cert list with compressed slots left
// nil for the decompressor to fill, and the unread remainder of in.
//
// cachedCerts is hashed lazily, once, on the first cached entry. Resolution
// is first match wins, mirroring the encoder's scan of the advertisement.
func parseEntries(in []byte, cachedCerts [][]byte) ([]entry, [][]byte, []byte, error) {
	var (
		entries      []entry
		certs        [][]byte
		cachedHashes []uint64
	)

	for {
		if len(in) == 0 {
			return nil, nil, nil, fmt.Errorf("%w: missing terminator", ErrMalformed)
		}
		typeByte := in[0]
		in = in[1:]

		if typeByte == 0 {
			return entries, certs, in, nil
		}

		switch entryKind(typeByte) {
		case kindCompressed:
			entries = append(entries, entry{kind: kindCompressed})
			certs = append(certs, nil)

		case kindCached:
			if len(in) < 8 {
				return nil, nil, nil, fmt.Errorf("%w: truncated cached hash", ErrMalformed)
			}
			h := binary.LittleEndian.Uint64(in[:8])
			in = in[8:]

			if cachedHashes == nil {
				cachedHashes = hashAll(cachedCerts)
			}
			found := false
			for i, ch := range cachedHashes {
				if ch == h {
					certs = append(certs, cachedCerts[i])
					found = true
					break
				}
			}
			if !found {
				return nil, nil, nil, fmt.Errorf("%w: %016x", ErrUnknownCachedCert, h)
			}
			entries = append(entries, entry{kind: kindCached, hash: h})

		default:
			return nil, nil, nil, fmt.Errorf("%w: unknown entry type %#x", ErrMalformed, typeByte)
		}
	}
}

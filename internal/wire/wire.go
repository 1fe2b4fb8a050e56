// Package wire frames values stored by chaincache. The envelope lets a read
// detect foreign or corrupt provider entries before any payload is trusted,
// and carries the certificate's content hash so a cert entry can be
// re-validated without decoding anything.
//
// Multi-byte fields are little-endian, matching the certpack frame format.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version   byte = 1
	kindCert  byte = 1
	kindChain byte = 2
)

var (
	ErrCorrupt = errors.New("chaincache: corrupt entry")
	magic4     = [...]byte{'C', 'P', 'K', 'C'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Cert: magic(4) | ver(1) | kind(1=cert) | hash(u64 le) | dlen(u32 le) | der(dlen)
func EncodeCert(hash uint64, der []byte) []byte {
	buf := make([]byte, 0, 4+1+1+8+4+len(der))
	buf = append(buf, magic4[:]...)
	buf = append(buf, version, kindCert)
	buf = binary.LittleEndian.AppendUint64(buf, hash)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(der)))
	return append(buf, der...)
}

func DecodeCert(b []byte) (hash uint64, der []byte, err error) {
	const hdr = 4 + 1 + 1 + 8 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindCert {
		return 0, nil, ErrCorrupt
	}

	hash = binary.LittleEndian.Uint64(b[6:14])
	dlen := int(binary.LittleEndian.Uint32(b[14:18]))
	if dlen < 0 || dlen != len(b)-hdr { // exact length, no trailing bytes
		return 0, nil, ErrCorrupt
	}
	return hash, b[hdr:], nil
}

// Chain: magic(4) | ver(1) | kind(2=chain) | n(u32 le) | plen(u32 le) | payload(plen)
//
// n is the member count of the serialized chain, recorded redundantly so a
// reader can reject a mismatched codec payload without decoding it.
func EncodeChain(n int, payload []byte) []byte {
	buf := make([]byte, 0, 4+1+1+4+4+len(payload))
	buf = append(buf, magic4[:]...)
	buf = append(buf, version, kindChain)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	return append(buf, payload...)
}

func DecodeChain(b []byte) (n int, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 4 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version || b[5] != kindChain {
		return 0, nil, ErrCorrupt
	}

	n = int(binary.LittleEndian.Uint32(b[6:10]))
	plen := int(binary.LittleEndian.Uint32(b[10:14]))
	if n < 0 || plen < 0 || plen != len(b)-hdr {
		return 0, nil, ErrCorrupt
	}
	return n, b[hdr:], nil
}

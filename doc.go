// Package certpack compresses certificate chains for transmission to a peer
// that may already hold some of the certificates.
//
// A chain is an ordered list of opaque certificate byte strings; certpack
// never parses or validates X.509 contents. The peer advertises the 64-bit
// FNV-1a hashes of certificates it has cached, and the encoder replaces any
// matching certificate with its hash. Remaining certificates are deflated
// against a preset dictionary built from the cached certificates plus a
// static corpus of substrings common across real-world certificates, so even
// a cold chain compresses well.
//
// Wire format:
//
//	Frame   := Entry* 0x00 [ UncompressedLen(u32 le) ZlibBlock ]
//	Entry   := 0x01                   ; compressed, bytes in ZlibBlock
//	         | 0x02 Hash(u64 le)      ; cached, referenced by content hash
//	Payload := ( CertLen(u32 le) CertBytes )*  ; pre-compression, one per
//	                                           ; compressed entry, in order
//
// The zlib block is present iff at least one entry is compressed, and
// UncompressedLen is the exact byte length of the payload. Decoders reject
// frames whose declared length exceeds 128 KiB, whose zlib block does not
// consume all remaining input, or whose inflated payload is not consumed
// exactly by the compressed entries.
//
// All multi-byte integers are little-endian. The original protocol wrote
// them in host byte order and only ever ran on little-endian hosts, so the
// fixed encoding is byte-identical with deployed peers while staying
// portable.
//
// Hashes are cache keys, not security primitives: a colliding advertised
// hash makes the encoder reference the wrong cached certificate, which the
// receiving handshake layer detects when the chain fails validation.
//
// Long-lived storage of previously seen certificates lives in the separate
// chaincache package; certpack itself keeps no state across calls.
package certpack

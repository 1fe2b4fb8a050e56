package certpack

// dictForEntries builds the zlib preset dictionary for the frame described
// by entries. certs is index-aligned with entries and must hold the bytes of
// every cached certificate.
//
// Cached certs are laid down in reverse chain order so that the certificate
// nearest the compressed payload is the one most likely to share long
// matches with it (chains repeat their intermediates more than their
// leaves). The static substring corpus follows. Encoder and decoder must
// derive byte-identical dictionaries from the same (entries, certs) pair or
// inflation fails the dictionary checksum.
func dictForEntries(entries []entry, certs [][]byte) []byte {
	size := len(commonCertSubstrings)
	for i := len(certs) - 1; i >= 0; i-- {
		if entries[i].kind != kindCompressed {
			size += len(certs[i])
		}
	}

	dict := make([]byte, 0, size)
	for i := len(certs) - 1; i >= 0; i-- {
		if entries[i].kind != kindCompressed {
			dict = append(dict, certs[i]...)
		}
	}
	return append(dict, commonCertSubstrings...)
}

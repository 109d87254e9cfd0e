package compress

// ZstdDecompressor unwraps Zstandard frames, the most common wrapping for
// archived replays.
//
// Two implementations back this type: a cgo binding (valyala/gozstd) when cgo
// is available, and a pure-Go fallback (klauspost/compress/zstd) otherwise.
// Both decode the same frame format; the build picks one.
type ZstdDecompressor struct{}

var _ Decompressor = (*ZstdDecompressor)(nil)

// NewZstdDecompressor creates a new Zstandard decompressor.
func NewZstdDecompressor() ZstdDecompressor {
	return ZstdDecompressor{}
}

// Decompress decompresses a complete Zstandard frame.
func (d ZstdDecompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return zstdDecompress(data)
}

package compress

// NoOpDecompressor passes data through unchanged. It backs
// format.CompressionNone so callers can treat raw and archived containers
// uniformly.
type NoOpDecompressor struct{}

var _ Decompressor = (*NoOpDecompressor)(nil)

// NewNoOpDecompressor creates a new pass-through decompressor.
func NewNoOpDecompressor() NoOpDecompressor {
	return NoOpDecompressor{}
}

// Decompress returns the input slice as-is, without copying.
//
// The returned slice shares the same underlying memory as the input.
func (d NoOpDecompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

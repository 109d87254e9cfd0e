package compress

import (
	"bytes"
	"fmt"

	"github.com/replaykit/bsor/format"
)

// Decompressor unwraps one compression frame format.
//
// Implementations are stateless and safe for concurrent use; the input slice
// is never modified. All implementations except the pass-through codec return
// a newly allocated slice owned by the caller.
type Decompressor interface {
	// Decompress decompresses the input data and returns the result.
	Decompress(data []byte) ([]byte, error)
}

// Frame magics of the supported compression formats.
var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
	// S2 uses the snappy framing format, which opens with a stream
	// identifier chunk: type 0xFF, 6-byte length, "sNaPpY".
	s2FrameMagic = []byte{0xFF, 0x06, 0x00, 0x00, 0x73, 0x4E, 0x61, 0x50, 0x70, 0x59}
)

// Detect sniffs the compression frame wrapping data, or
// format.CompressionNone when data does not open with a known frame magic.
//
// Only the leading bytes are inspected; Detect never fails. An uncompressed
// replay container can not be misdetected because its own magic signature
// shares no prefix with the supported frame magics.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdFrameMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2FrameMagic):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// ForType returns the Decompressor for the given compression type.
// format.CompressionNone yields a pass-through codec.
func ForType(ct format.CompressionType) (Decompressor, error) {
	switch ct {
	case format.CompressionNone:
		return NewNoOpDecompressor(), nil
	case format.CompressionZstd:
		return NewZstdDecompressor(), nil
	case format.CompressionS2:
		return NewS2Decompressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Decompressor(), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %v", ct)
	}
}

// Package compress provides decompression codecs for stored replay
// containers.
//
// Replay files are frequently archived or shipped wrapped whole in a
// general-purpose compression frame (Zstandard, LZ4 or S2/snappy). This
// package detects the frame from its leading magic bytes and unwraps it, so
// the decoder can accept archived replays as easily as raw ones:
//
//	ct := compress.Detect(data)
//	if ct != format.CompressionNone {
//	    dec, _ := compress.ForType(ct)
//	    data, err = dec.Decompress(data)
//	}
//
// Only the read side is implemented; writing replay archives is out of scope,
// like the rest of the encode path.
package compress

// Package bsor decodes BSOR replay containers, the binary format VR
// rhythm-game sessions are recorded in.
//
// A container holds a small Info block (player, song, score, modifiers) and
// five data blocks: per-tick motion frames, note events, wall events, height
// changes and pauses. The frames block routinely dominates the file, so two
// access modes are provided:
//
// Full decode reads everything in one forward pass over any io.Reader:
//
//	rep, err := bsor.Decode(f)
//	fmt.Println(rep.Info.PlayerName, rep.Info.Score, len(rep.Notes))
//
// Indexed decode scans a seekable stream once, decoding only the header and
// Info, and hands back lazily loadable block handles — useful when only some
// blocks are needed and peak memory matters:
//
//	idx, err := bsor.DecodeIndexed(f)
//	notes, err := idx.Notes.Load(f) // decodes just the notes block
//
// Replays archived inside a Zstandard, LZ4 or S2 compression frame are
// handled transparently by the byte-slice entry points:
//
//	rep, err := bsor.DecodeBytes(data) // sniffs and unwraps the frame first
//
// Decode errors wrap the sentinel values in the errs package
// (errs.ErrUnsupportedFormat, errs.ErrTruncated, errs.ErrInvalidEncoding,
// errs.ErrUnknownBlock, errs.ErrSeekUnsupported) and are classified with
// errors.Is.
//
// This package provides convenient top-level wrappers around the replay
// package; use the replay package directly for fine-grained control.
package bsor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/replaykit/bsor/compress"
	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/format"
	"github.com/replaykit/bsor/replay"
)

// Decode reads a complete replay container from r in a single forward pass.
// r does not need to support seeking.
func Decode(r io.Reader) (*replay.Replay, error) {
	return replay.Decode(r)
}

// DecodeIndexed scans the container once and returns a lazily loadable index:
// header and Info decoded eagerly, every other block recorded as an offset
// and record count only.
//
// Indexed mode needs to seek. An r that does not implement io.Seeker is
// rejected with errs.ErrSeekUnsupported before any byte is read.
func DecodeIndexed(r io.Reader) (*replay.ReplayIndex, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("indexed decode: %w", errs.ErrSeekUnsupported)
	}

	return replay.DecodeIndex(rs)
}

// DecodeBytes decodes a replay container held in memory. If data is wrapped
// in a known compression frame (Zstandard, LZ4, S2) it is unwrapped first.
func DecodeBytes(data []byte) (*replay.Replay, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}

	return replay.Decode(bytes.NewReader(raw))
}

// IndexBytes builds a lazy replay index over a container held in memory,
// unwrapping a compression frame first when one is detected. The returned
// index loads blocks from any reader over the same unwrapped bytes:
//
//	raw, _ := bsor.Unwrap(data)
//	idx, _ := bsor.IndexBytes(raw)
//	frames, _ := idx.Frames.Load(bytes.NewReader(raw))
func IndexBytes(data []byte) (*replay.ReplayIndex, error) {
	raw, err := unwrap(data)
	if err != nil {
		return nil, err
	}

	return replay.DecodeIndex(bytes.NewReader(raw))
}

// Detect sniffs the compression frame wrapping data, or
// format.CompressionNone when data is not wrapped. See compress.Detect.
func Detect(data []byte) format.CompressionType {
	return compress.Detect(data)
}

// Unwrap removes a detected compression frame from data, returning the raw
// container bytes. Uncompressed input is returned as-is, sharing the input's
// memory.
func Unwrap(data []byte) ([]byte, error) {
	return unwrap(data)
}

func unwrap(data []byte) ([]byte, error) {
	ct := compress.Detect(data)
	if ct == format.CompressionNone {
		return data, nil
	}

	dec, err := compress.ForType(ct)
	if err != nil {
		return nil, err
	}

	raw, err := dec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("unwrap %v container: %w", ct, err)
	}

	return raw, nil
}

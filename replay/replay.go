// Package replay implements the dual-mode BSOR replay container decoder.
//
// A replay container records one VR rhythm-game session: a small Info block
// describing the session, then five data blocks (frames, notes, walls,
// heights, pauses), each a tag byte, a record count and that many records.
//
// Two access modes are provided. Decode reads the whole container in one
// forward pass and materializes every block. DecodeIndex scans a seekable
// stream once, eagerly decoding only the header and Info, and records each
// remaining block's offset and record count so individual blocks can be
// materialized later with BlockIndex.Load. The frames block usually dominates
// a replay's size, so skipping it until (unless) it is needed keeps peak
// memory low for callers that only want scores or note events.
//
// All decoding is synchronous and single-threaded; the input stream is owned
// by the call for its duration.
package replay

import (
	"fmt"
	"io"

	"github.com/replaykit/bsor/encoding"
	"github.com/replaykit/bsor/endian"
	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/format"
)

// Replay is the fully materialized result of decoding a replay container.
type Replay struct {
	Version uint8
	Info    Info
	Frames  []Frame
	Notes   []Note
	Walls   []Wall
	Heights []Height
	Pauses  []Pause
}

// Decode reads a complete replay container from r in a single forward pass.
//
// The header is validated first (magic signature and version byte), then the
// Info block, then every data block in stream order. A block tag this module
// does not recognize fails with errs.ErrUnknownBlock; a stream that ends
// mid-record fails with errs.ErrTruncated. No partially filled Replay is ever
// returned.
func Decode(r io.Reader) (*Replay, error) {
	rd := encoding.NewReader(r, endian.GetLittleEndianEngine())

	version, err := decodeHeader(rd)
	if err != nil {
		return nil, err
	}

	info, err := decodeInfo(rd)
	if err != nil {
		return nil, err
	}

	rep := &Replay{Version: version, Info: info}

	var seen [format.BlockPauses + 1]bool
	for {
		tag, err := rd.ReadTag()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		bt := format.BlockType(tag)
		if err := markBlock(&seen, bt); err != nil {
			return nil, err
		}

		switch bt {
		case format.BlockFrames:
			rep.Frames, err = decodeBlock(rd, decodeFrame)
		case format.BlockNotes:
			rep.Notes, err = decodeBlock(rd, decodeNote)
		case format.BlockWalls:
			rep.Walls, err = decodeBlock(rd, decodeWall)
		case format.BlockHeights:
			rep.Heights, err = decodeBlock(rd, decodeHeight)
		case format.BlockPauses:
			rep.Pauses, err = decodeBlock(rd, decodePause)
		default:
			return nil, fmt.Errorf("block tag %d: %w", tag, errs.ErrUnknownBlock)
		}
		if err != nil {
			return nil, fmt.Errorf("%s block: %w", bt, err)
		}
	}

	return rep, nil
}

// decodeHeader validates the container prologue: a 4-byte magic signature
// followed by a single version byte. It runs first in both access modes,
// before any block is touched.
func decodeHeader(rd *encoding.Reader) (uint8, error) {
	magic, err := rd.ReadInt32()
	if err != nil {
		return 0, fmt.Errorf("magic signature: %w", err)
	}
	if magic != format.Magic {
		return 0, fmt.Errorf("magic signature 0x%08X: %w", uint32(magic), errs.ErrUnsupportedFormat)
	}

	version, err := rd.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("version byte: %w", err)
	}
	if version != format.Version1 {
		return 0, fmt.Errorf("container version %d: %w", version, errs.ErrUnsupportedFormat)
	}

	return version, nil
}

// markBlock rejects a block tag that already appeared. The dispatch loop
// accepts blocks in any order, so without this check a duplicated block would
// silently overwrite an earlier one.
func markBlock(seen *[format.BlockPauses + 1]bool, bt format.BlockType) error {
	if int(bt) >= len(seen) {
		// Unknown tags are reported by the dispatch switch.
		return nil
	}
	if seen[bt] {
		return fmt.Errorf("duplicate %s block: %w", bt, errs.ErrUnsupportedFormat)
	}
	seen[bt] = true

	return nil
}

// readCount reads a block's leading record count. A negative count cannot
// describe a valid block and is rejected as structural corruption.
func readCount(rd *encoding.Reader) (int32, error) {
	count, err := rd.ReadInt32()
	if err != nil {
		return 0, fmt.Errorf("record count: %w", err)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative record count %d: %w", count, errs.ErrUnsupportedFormat)
	}

	return count, nil
}

// decodeRecords invokes dec exactly count times, collecting the results in
// order. A zero count yields an empty, non-nil slice.
func decodeRecords[T any](rd *encoding.Reader, count int32, dec func(*encoding.Reader) (T, error)) ([]T, error) {
	records := make([]T, 0, count)
	for i := int32(0); i < count; i++ {
		rec, err := dec(rd)
		if err != nil {
			return nil, fmt.Errorf("record %d of %d: %w", i, count, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// decodeBlock reads one whole block body: the leading record count, then that
// many records. The tag byte has already been consumed by the dispatch loop.
func decodeBlock[T any](rd *encoding.Reader, dec func(*encoding.Reader) (T, error)) ([]T, error) {
	count, err := readCount(rd)
	if err != nil {
		return nil, err
	}

	return decodeRecords(rd, count, dec)
}

// expectTag consumes one byte and verifies it equals the wanted block tag.
// Used for the Info block, whose position is fixed by the format.
func expectTag(rd *encoding.Reader, want format.BlockType) error {
	tag, err := rd.ReadUint8()
	if err != nil {
		return err
	}
	if format.BlockType(tag) != want {
		return fmt.Errorf("expected %s block tag, found %d: %w", want, tag, errs.ErrUnsupportedFormat)
	}

	return nil
}

package replay

import (
	"fmt"
	"io"

	"github.com/replaykit/bsor/encoding"
	"github.com/replaykit/bsor/endian"
	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/format"
)

// BlockIndex records where one data block's records live in the stream: the
// block type, the byte offset of the first record (the tag byte and record
// count have already been consumed and captured) and the declared record
// count.
//
// Entries are created by DecodeIndex and immutable afterwards. Load never
// mutates the entry, so materialization can be repeated freely.
type BlockIndex[T any] struct {
	tag    format.BlockType
	offset int64
	count  int32
	decode func(*encoding.Reader) (T, error)
}

// BlockType returns the type tag of the indexed block.
func (b BlockIndex[T]) BlockType() format.BlockType {
	return b.tag
}

// Offset returns the byte offset of the block's first record.
func (b BlockIndex[T]) Offset() int64 {
	return b.offset
}

// Len returns the declared record count of the indexed block.
func (b BlockIndex[T]) Len() int {
	return int(b.count)
}

// IsEmpty reports whether the indexed block declares zero records.
func (b BlockIndex[T]) IsEmpty() bool {
	return b.count == 0
}

// Load materializes the indexed block: it seeks rs to the recorded offset and
// decodes exactly the declared number of records, returning the same sequence
// the full decoder would have produced for this block.
//
// Load is idempotent; calling it again (on the same or an independent stream
// handle over the same container) yields identical results. The stream's
// cursor position after Load is unspecified. Concurrent Load calls sharing
// one stream handle race on that cursor and must be serialized by the caller.
func (b BlockIndex[T]) Load(rs io.ReadSeeker) ([]T, error) {
	if b.count == 0 {
		return []T{}, nil
	}

	if _, err := rs.Seek(b.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %s block at offset %d: %w", b.tag, b.offset, err)
	}

	rd := encoding.NewReader(rs, endian.GetLittleEndianEngine())

	records, err := decodeRecords(rd, b.count, b.decode)
	if err != nil {
		return nil, fmt.Errorf("%s block: %w", b.tag, err)
	}

	return records, nil
}

// ReplayIndex is the result of the index phase: the always-eager header and
// Info, plus one BlockIndex per data block. Materialize individual blocks
// with their Load method:
//
//	idx, err := replay.DecodeIndex(rs)
//	notes, err := idx.Notes.Load(rs)
//
// The index holds no reference to the stream it was built from; any stream
// positioned over the same container bytes works for Load.
type ReplayIndex struct {
	Version uint8
	Info    Info

	Frames  BlockIndex[Frame]
	Notes   BlockIndex[Note]
	Walls   BlockIndex[Wall]
	Heights BlockIndex[Height]
	Pauses  BlockIndex[Pause]
}

// DecodeIndex scans a replay container once, decoding only the header and the
// Info block, and records each remaining block's offset and record count
// without decoding its contents.
//
// Fixed-width blocks are skipped with count*width seek arithmetic. Notes
// records are semi-fixed (cut details depend on each record's outcome), so
// the notes block is decoded-and-discarded instead; fixed-width arithmetic
// would be wrong there.
func DecodeIndex(rs io.ReadSeeker) (*ReplayIndex, error) {
	rd := encoding.NewReader(rs, endian.GetLittleEndianEngine())

	version, err := decodeHeader(rd)
	if err != nil {
		return nil, err
	}

	info, err := decodeInfo(rd)
	if err != nil {
		return nil, err
	}

	idx := &ReplayIndex{
		Version: version,
		Info:    info,
		Frames:  BlockIndex[Frame]{tag: format.BlockFrames, decode: decodeFrame},
		Notes:   BlockIndex[Note]{tag: format.BlockNotes, decode: decodeNote},
		Walls:   BlockIndex[Wall]{tag: format.BlockWalls, decode: decodeWall},
		Heights: BlockIndex[Height]{tag: format.BlockHeights, decode: decodeHeight},
		Pauses:  BlockIndex[Pause]{tag: format.BlockPauses, decode: decodePause},
	}

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

		count, err := readCount(rd)
		if err != nil {
			return nil, fmt.Errorf("%s block: %w", bt, err)
		}

		// The reader consumes exactly what it decodes, so the stream cursor
		// now sits on the block's first record.
		pos, err := rs.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, fmt.Errorf("%s block: current offset: %w", bt, err)
		}

		switch bt {
		case format.BlockFrames:
			idx.Frames.offset, idx.Frames.count = pos, count
		case format.BlockNotes:
			idx.Notes.offset, idx.Notes.count = pos, count
		case format.BlockWalls:
			idx.Walls.offset, idx.Walls.count = pos, count
		case format.BlockHeights:
			idx.Heights.offset, idx.Heights.count = pos, count
		case format.BlockPauses:
			idx.Pauses.offset, idx.Pauses.count = pos, count
		default:
			return nil, fmt.Errorf("block tag %d: %w", tag, errs.ErrUnknownBlock)
		}

		if err := skipBlock(rs, rd, bt, count); err != nil {
			return nil, fmt.Errorf("%s block: %w", bt, err)
		}
	}

	return idx, nil
}

// skipBlock advances the stream past count records of the given block type.
func skipBlock(rs io.ReadSeeker, rd *encoding.Reader, bt format.BlockType, count int32) error {
	if width, ok := format.FixedRecordSize(bt); ok {
		if _, err := rs.Seek(int64(count)*int64(width), io.SeekCurrent); err != nil {
			return fmt.Errorf("skip %d records: %w", count, err)
		}

		return nil
	}

	// Variable-width records: decode and discard.
	for i := int32(0); i < count; i++ {
		if _, err := decodeNote(rd); err != nil {
			return fmt.Errorf("record %d of %d: %w", i, count, err)
		}
	}

	return nil
}

// Package format defines the wire-level constants of the BSOR replay
// container: the magic signature, the supported versions, the block type tags
// and the fixed record widths used by the indexed decoder's skip arithmetic.
package format

type (
	BlockType       uint8
	CompressionType uint8
)

// Magic is the little-endian int32 signature at byte offset 0 of every
// replay container.
const Magic int32 = 0x442D3D69

// MagicSize and VersionSize describe the fixed container prologue.
const (
	MagicSize   = 4
	VersionSize = 1
	HeaderSize  = MagicSize + VersionSize
)

// Version1 is the only container revision this module understands. The
// version byte follows the magic signature immediately.
const Version1 uint8 = 1

const (
	BlockInfo    BlockType = 0 // BlockInfo sits right after the header; its tag is verified, never dispatched on.
	BlockFrames  BlockType = 1 // BlockFrames holds per-tick pose samples.
	BlockNotes   BlockType = 2 // BlockNotes holds note cut/miss events.
	BlockWalls   BlockType = 3 // BlockWalls holds wall collision events.
	BlockHeights BlockType = 4 // BlockHeights holds player height changes.
	BlockPauses  BlockType = 5 // BlockPauses holds pause events.
)

func (b BlockType) String() string {
	switch b {
	case BlockInfo:
		return "Info"
	case BlockFrames:
		return "Frames"
	case BlockNotes:
		return "Notes"
	case BlockWalls:
		return "Walls"
	case BlockHeights:
		return "Heights"
	case BlockPauses:
		return "Pauses"
	default:
		return "Unknown"
	}
}

// Fixed record widths in bytes. Blocks whose record type has a fixed width
// can be skipped with count*width arithmetic during indexing; Notes records
// are semi-fixed (cut info presence depends on the decoded event type) and
// must be decoded-and-discarded instead.
const (
	TagSize   = 1
	CountSize = 4

	Vector3Size    = 4 * 3
	QuaternionSize = 4 * 4
	PoseSize       = Vector3Size + QuaternionSize

	FrameRecordSize  = 4 + 4 + 3*PoseSize // time, fps, head + both hands
	WallRecordSize   = 4 + 4 + 4 + 4      // wallID, energy, time, spawnTime
	HeightRecordSize = 4 + 4              // height, time
	PauseRecordSize  = 8 + 4              // duration, time

	NoteRecordBaseSize = 4 + 4 + 4 + 4               // noteID, eventTime, spawnTime, eventType
	NoteCutInfoSize    = 4 + 4 + 7*4 + 3*Vector3Size // 4 bools, saberType, 7 floats, 3 vectors
)

// FixedRecordSize reports the wire width of one record of the given block
// type, or ok=false when the width is not a pure function of the type
// (Notes, and Info which contains variable-width text).
func FixedRecordSize(b BlockType) (size int, ok bool) {
	switch b {
	case BlockFrames:
		return FrameRecordSize, true
	case BlockWalls:
		return WallRecordSize, true
	case BlockHeights:
		return HeightRecordSize, true
	case BlockPauses:
		return PauseRecordSize, true
	default:
		return 0, false
	}
}

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed container.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard-framed container.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2/snappy-framed container.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4-framed container.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

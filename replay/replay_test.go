package replay

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/format"
)

func TestDecode(t *testing.T) {
	want := testReplay()
	buf := encodeReplay(want)

	got, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodeBadMagic(t *testing.T) {
	buf := encodeReplay(testReplay())
	buf[0] ^= 0xFF

	_, err := Decode(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestDecodeBadVersion(t *testing.T) {
	buf := encodeReplay(testReplay())
	buf[format.MagicSize] = 99

	_, err := Decode(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestDecodeUnknownBlockTag(t *testing.T) {
	buf := appendHeader(nil)
	buf = appendInfo(buf, testInfo())
	buf = append(buf, 9) // no such block type
	buf = appendInt32(buf, 0)

	_, err := Decode(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrUnknownBlock)
}

func TestDecodeDuplicateBlock(t *testing.T) {
	buf := appendHeader(nil)
	buf = appendInfo(buf, testInfo())
	buf = appendBlock(buf, format.BlockHeights, []Height{{Height: 1.7}}, appendHeight)
	buf = appendBlock(buf, format.BlockHeights, []Height{{Height: 1.8}}, appendHeight)

	_, err := Decode(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestDecodeNegativeCount(t *testing.T) {
	buf := appendHeader(nil)
	buf = appendInfo(buf, testInfo())
	buf = append(buf, byte(format.BlockFrames))
	buf = appendInt32(buf, -1)

	_, err := Decode(bytes.NewReader(buf))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)
}

func TestDecodeTruncated(t *testing.T) {
	full := encodeReplay(testReplay())

	infoOnly := appendInfo(appendHeader(nil), testInfo())

	tests := []struct {
		name string
		cut  int
	}{
		{name: "mid magic", cut: 2},
		{name: "missing version byte", cut: format.MagicSize},
		{name: "mid info", cut: format.HeaderSize + 10},
		{name: "tag without count", cut: len(infoOnly) + 1},
		{name: "one byte short of last record", cut: len(full) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(bytes.NewReader(full[:tt.cut]))
			require.ErrorIs(t, err, errs.ErrTruncated)
		})
	}
}

// A container may stop after any block boundary; a clean end between blocks
// is not truncation.
func TestDecodeNoBlocks(t *testing.T) {
	buf := appendInfo(appendHeader(nil), testInfo())

	got, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, testInfo(), got.Info)
	require.Empty(t, got.Frames)
	require.Empty(t, got.Notes)
	require.Empty(t, got.Walls)
	require.Empty(t, got.Heights)
	require.Empty(t, got.Pauses)
}

// An empty block is five bytes of tag+count; the records of the following
// block must not be consumed as its own.
func TestDecodeEmptyBlockFollowedByNonEmpty(t *testing.T) {
	buf := appendHeader(nil)
	buf = appendInfo(buf, testInfo())
	buf = appendBlock(buf, format.BlockFrames, []Frame{}, appendFrame)
	buf = appendBlock(buf, format.BlockNotes, []Note{testNote(NoteEventGood)}, appendNote)

	got, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	require.NotNil(t, got.Frames)
	require.Len(t, got.Frames, 0)
	require.Len(t, got.Notes, 1)
	require.Equal(t, testNote(NoteEventGood), got.Notes[0])
}

// Block order on the wire is conventionally frames..pauses, but dispatch is
// by tag, so any order decodes.
func TestDecodeBlocksOutOfOrder(t *testing.T) {
	want := testReplay()

	buf := appendHeader(nil)
	buf = appendInfo(buf, want.Info)
	buf = appendBlock(buf, format.BlockPauses, want.Pauses, appendPause)
	buf = appendBlock(buf, format.BlockNotes, want.Notes, appendNote)
	buf = appendBlock(buf, format.BlockHeights, want.Heights, appendHeight)
	buf = appendBlock(buf, format.BlockWalls, want.Walls, appendWall)
	buf = appendBlock(buf, format.BlockFrames, want.Frames, appendFrame)

	got, err := Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestDecodePreservesRecordOrder(t *testing.T) {
	rep := &Replay{Version: format.Version1, Info: testInfo()}
	for i := 0; i < 64; i++ {
		rep.Frames = append(rep.Frames, testFrame(i))
	}

	got, err := Decode(bytes.NewReader(encodeReplay(rep)))
	require.NoError(t, err)
	require.Len(t, got.Frames, 64)
	for i, f := range got.Frames {
		require.Equal(t, testFrame(i), f, "frame %d", i)
	}
}

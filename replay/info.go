package replay

import (
	"fmt"
	"strconv"

	"github.com/replaykit/bsor/encoding"
	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/format"
	"github.com/replaykit/bsor/internal/hash"
)

// Info describes the recorded session: versions, player and song identity,
// modifiers and the final result. It sits at a fixed position right after the
// container header and is always decoded eagerly, in both access modes.
//
// The field order and count are fixed by the container version; unknown
// extra fields are not tolerated.
type Info struct {
	Version        string
	GameVersion    string
	Timestamp      uint32
	PlayerID       string
	PlayerName     string
	Platform       string
	TrackingSystem string
	HMD            string
	Controller     string
	SongHash       string
	SongName       string
	Mapper         string
	Difficulty     string

	Score        int32
	Mode         string
	Environment  string
	Modifiers    string
	JumpDistance float32
	LeftHanded   bool
	Height       float32

	// StartTime, FailTime and Speed describe practice-mode and failure
	// state; all three are zero for a regular cleared run.
	StartTime float32
	FailTime  float32
	Speed     float32
}

// Fingerprint returns a stable 64-bit identity for the session, derived from
// the player, song, mode, difficulty and timestamp fields. Two decodes of the
// same replay always produce the same fingerprint, which makes it usable as a
// cache or deduplication key for decoded replays.
func (i *Info) Fingerprint() uint64 {
	return hash.Fields(
		i.PlayerID,
		i.SongHash,
		i.Mode,
		i.Difficulty,
		strconv.FormatUint(uint64(i.Timestamp), 10),
	)
}

// fieldReader reads consecutive Info fields, remembering the first failure so
// the fixed field list below stays flat instead of nesting 23 error checks.
type fieldReader struct {
	rd  *encoding.Reader
	err error
}

func (f *fieldReader) str(name string, dst *string) {
	if f.err != nil {
		return
	}
	v, err := f.rd.ReadString()
	if err != nil {
		f.err = fmt.Errorf("info %s: %w", name, err)
		return
	}
	*dst = v
}

func (f *fieldReader) i32(name string, dst *int32) {
	if f.err != nil {
		return
	}
	v, err := f.rd.ReadInt32()
	if err != nil {
		f.err = fmt.Errorf("info %s: %w", name, err)
		return
	}
	*dst = v
}

func (f *fieldReader) f32(name string, dst *float32) {
	if f.err != nil {
		return
	}
	v, err := f.rd.ReadFloat32()
	if err != nil {
		f.err = fmt.Errorf("info %s: %w", name, err)
		return
	}
	*dst = v
}

func (f *fieldReader) boolean(name string, dst *bool) {
	if f.err != nil {
		return
	}
	v, err := f.rd.ReadBool()
	if err != nil {
		f.err = fmt.Errorf("info %s: %w", name, err)
		return
	}
	*dst = v
}

// timestamp reads the capture timestamp, which the container stores as
// decimal text. Non-numeric text violates the format's text contract and is
// classed with errs.ErrInvalidEncoding.
func (f *fieldReader) timestamp(dst *uint32) {
	if f.err != nil {
		return
	}
	text, err := f.rd.ReadString()
	if err != nil {
		f.err = fmt.Errorf("info timestamp: %w", err)
		return
	}
	ts, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		f.err = fmt.Errorf("info timestamp %q is not a decimal number: %w", text, errs.ErrInvalidEncoding)
		return
	}
	*dst = uint32(ts)
}

// decodeInfo reads the Info block. On the wire the block starts with the info
// tag byte (0) even though its position is fixed; the tag is verified, never
// dispatched on.
func decodeInfo(rd *encoding.Reader) (Info, error) {
	var info Info

	if err := expectTag(rd, format.BlockInfo); err != nil {
		return info, fmt.Errorf("info block: %w", err)
	}

	f := &fieldReader{rd: rd}

	f.str("version", &info.Version)
	f.str("gameVersion", &info.GameVersion)
	f.timestamp(&info.Timestamp)
	f.str("playerID", &info.PlayerID)
	f.str("playerName", &info.PlayerName)
	f.str("platform", &info.Platform)
	f.str("trackingSystem", &info.TrackingSystem)
	f.str("hmd", &info.HMD)
	f.str("controller", &info.Controller)
	f.str("songHash", &info.SongHash)
	f.str("songName", &info.SongName)
	f.str("mapper", &info.Mapper)
	f.str("difficulty", &info.Difficulty)
	f.i32("score", &info.Score)
	f.str("mode", &info.Mode)
	f.str("environment", &info.Environment)
	f.str("modifiers", &info.Modifiers)
	f.f32("jumpDistance", &info.JumpDistance)
	f.boolean("leftHanded", &info.LeftHanded)
	f.f32("height", &info.Height)
	f.f32("startTime", &info.StartTime)
	f.f32("failTime", &info.FailTime)
	f.f32("speed", &info.Speed)

	if f.err != nil {
		return Info{}, f.err
	}

	return info, nil
}

package replay

import (
	"github.com/replaykit/bsor/encoding"
)

// NoteEventType classifies the outcome of a note event. The outcome alone
// determines whether cut detail fields follow on the wire: good and bad cuts
// carry a NoteCutInfo, misses and bomb hits do not.
type NoteEventType int32

const (
	NoteEventGood NoteEventType = 0
	NoteEventBad  NoteEventType = 1
	NoteEventMiss NoteEventType = 2
	NoteEventBomb NoteEventType = 3

	// NoteEventUnknown marks an outcome value newer than this module.
	// Unknown outcomes decode without cut details, like misses.
	NoteEventUnknown NoteEventType = 255
)

func (t NoteEventType) String() string {
	switch t {
	case NoteEventGood:
		return "Good"
	case NoteEventBad:
		return "Bad"
	case NoteEventMiss:
		return "Miss"
	case NoteEventBomb:
		return "Bomb"
	default:
		return "Unknown"
	}
}

// HasCutInfo reports whether this outcome carries cut detail fields.
func (t NoteEventType) HasCutInfo() bool {
	return t == NoteEventGood || t == NoteEventBad
}

// ScoringType describes how a note is scored.
type ScoringType uint8

const (
	ScoringNormalOld ScoringType = iota
	ScoringIgnore
	ScoringNoScore
	ScoringNormal
	ScoringSliderHead
	ScoringSliderTail
	ScoringBurstSliderHead
	ScoringBurstSliderElement

	ScoringUnknown ScoringType = 255
)

// CutDirection is the direction a note demands to be cut in.
type CutDirection uint8

const (
	CutTopCenter CutDirection = iota
	CutBottomCenter
	CutMiddleLeft
	CutMiddleRight
	CutTopLeft
	CutTopRight
	CutBottomLeft
	CutBottomRight
	CutDot

	CutUnknown CutDirection = 255
)

// ColorType is the saber/note color.
type ColorType uint8

const (
	ColorRed  ColorType = 0
	ColorBlue ColorType = 1

	ColorUnknown ColorType = 255
)

// Note is one note event. The note's grid placement, color, scoring type and
// demanded cut direction arrive decimal-packed in a single identifier field.
//
// CutInfo is nil unless EventType.HasCutInfo() — the conditional presence is
// part of the wire format, not an optimization of this module.
type Note struct {
	ScoringType  ScoringType
	LineIdx      uint8
	LineLayer    uint8
	ColorType    ColorType
	CutDirection CutDirection

	EventTime float32
	SpawnTime float32
	EventType NoteEventType
	CutInfo   *NoteCutInfo
}

// NoteCutInfo carries the cut detail fields present for good and bad cuts.
type NoteCutInfo struct {
	SpeedOK       bool
	DirectionOK   bool
	SaberTypeOK   bool
	WasCutTooSoon bool

	SaberSpeed          float32
	SaberDir            Vector3
	SaberType           ColorType
	TimeDeviation       float32
	CutDirDeviation     float32
	CutPoint            Vector3
	CutNormal           Vector3
	CutDistanceToCenter float32
	CutAngle            float32
	BeforeCutRating     float32
	AfterCutRating      float32
}

func noteEventTypeFrom(v int32) NoteEventType {
	switch t := NoteEventType(v); t {
	case NoteEventGood, NoteEventBad, NoteEventMiss, NoteEventBomb:
		return t
	default:
		return NoteEventUnknown
	}
}

func scoringTypeFrom(v int32) ScoringType {
	if v >= int32(ScoringNormalOld) && v <= int32(ScoringBurstSliderElement) {
		return ScoringType(v)
	}

	return ScoringUnknown
}

func cutDirectionFrom(v int32) CutDirection {
	if v >= int32(CutTopCenter) && v <= int32(CutDot) {
		return CutDirection(v)
	}

	return CutUnknown
}

func colorTypeFrom(v int32) ColorType {
	switch c := ColorType(v); c {
	case ColorRed, ColorBlue:
		return c
	default:
		return ColorUnknown
	}
}

func decodeNote(rd *encoding.Reader) (Note, error) {
	var n Note

	noteID, err := rd.ReadInt32()
	if err != nil {
		return n, err
	}

	// The identifier packs five fields in decimal digits:
	// scoringType*10000 + lineIdx*1000 + lineLayer*100 + colorType*10 + cutDirection.
	n.ScoringType = scoringTypeFrom(noteID / 10000)
	noteID %= 10000
	n.LineIdx = uint8(noteID / 1000)
	noteID %= 1000
	n.LineLayer = uint8(noteID / 100)
	noteID %= 100
	n.ColorType = colorTypeFrom(noteID / 10)
	n.CutDirection = cutDirectionFrom(noteID % 10)

	if n.EventTime, err = rd.ReadFloat32(); err != nil {
		return n, err
	}
	if n.SpawnTime, err = rd.ReadFloat32(); err != nil {
		return n, err
	}

	eventType, err := rd.ReadInt32()
	if err != nil {
		return n, err
	}
	n.EventType = noteEventTypeFrom(eventType)

	// The outcome decoded above decides whether cut details follow; there is
	// no separate presence flag on the wire.
	if n.EventType.HasCutInfo() {
		cutInfo, err := decodeNoteCutInfo(rd)
		if err != nil {
			return n, err
		}
		n.CutInfo = &cutInfo
	}

	return n, nil
}

func decodeNoteCutInfo(rd *encoding.Reader) (NoteCutInfo, error) {
	var c NoteCutInfo
	var err error

	if c.SpeedOK, err = rd.ReadBool(); err != nil {
		return c, err
	}
	if c.DirectionOK, err = rd.ReadBool(); err != nil {
		return c, err
	}
	if c.SaberTypeOK, err = rd.ReadBool(); err != nil {
		return c, err
	}
	if c.WasCutTooSoon, err = rd.ReadBool(); err != nil {
		return c, err
	}
	if c.SaberSpeed, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	if c.SaberDir, err = decodeVector3(rd); err != nil {
		return c, err
	}

	saberType, err := rd.ReadInt32()
	if err != nil {
		return c, err
	}
	c.SaberType = colorTypeFrom(saberType)

	if c.TimeDeviation, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	if c.CutDirDeviation, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	if c.CutPoint, err = decodeVector3(rd); err != nil {
		return c, err
	}
	if c.CutNormal, err = decodeVector3(rd); err != nil {
		return c, err
	}
	if c.CutDistanceToCenter, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	if c.CutAngle, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	if c.BeforeCutRating, err = rd.ReadFloat32(); err != nil {
		return c, err
	}
	c.AfterCutRating, err = rd.ReadFloat32()

	return c, err
}

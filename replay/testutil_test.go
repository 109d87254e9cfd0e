package replay

import (
	"math"
	"strconv"

	"github.com/replaykit/bsor/endian"
	"github.com/replaykit/bsor/format"
)

// Test-only container builders. The decode path is the product; tests build
// wire images by hand, the same way the format reference encoder lays them
// out.

var testEngine = endian.GetLittleEndianEngine()

func appendInt32(buf []byte, v int32) []byte {
	return testEngine.AppendUint32(buf, uint32(v))
}

func appendFloat32(buf []byte, v float32) []byte {
	return testEngine.AppendUint32(buf, math.Float32bits(v))
}

func appendBool(buf []byte, v bool) []byte {
	if v {
		return append(buf, 1)
	}

	return append(buf, 0)
}

func appendString(buf []byte, s string) []byte {
	buf = appendInt32(buf, int32(len(s)))
	return append(buf, s...)
}

func appendHeader(buf []byte) []byte {
	buf = appendInt32(buf, format.Magic)
	return append(buf, format.Version1)
}

func appendInfo(buf []byte, info Info) []byte {
	buf = append(buf, byte(format.BlockInfo))
	buf = appendString(buf, info.Version)
	buf = appendString(buf, info.GameVersion)
	buf = appendString(buf, strconv.FormatUint(uint64(info.Timestamp), 10))
	buf = appendString(buf, info.PlayerID)
	buf = appendString(buf, info.PlayerName)
	buf = appendString(buf, info.Platform)
	buf = appendString(buf, info.TrackingSystem)
	buf = appendString(buf, info.HMD)
	buf = appendString(buf, info.Controller)
	buf = appendString(buf, info.SongHash)
	buf = appendString(buf, info.SongName)
	buf = appendString(buf, info.Mapper)
	buf = appendString(buf, info.Difficulty)
	buf = appendInt32(buf, info.Score)
	buf = appendString(buf, info.Mode)
	buf = appendString(buf, info.Environment)
	buf = appendString(buf, info.Modifiers)
	buf = appendFloat32(buf, info.JumpDistance)
	buf = appendBool(buf, info.LeftHanded)
	buf = appendFloat32(buf, info.Height)
	buf = appendFloat32(buf, info.StartTime)
	buf = appendFloat32(buf, info.FailTime)
	buf = appendFloat32(buf, info.Speed)

	return buf
}

func appendVector3(buf []byte, v Vector3) []byte {
	buf = appendFloat32(buf, v.X)
	buf = appendFloat32(buf, v.Y)
	return appendFloat32(buf, v.Z)
}

func appendQuaternion(buf []byte, q Quaternion) []byte {
	buf = appendFloat32(buf, q.X)
	buf = appendFloat32(buf, q.Y)
	buf = appendFloat32(buf, q.Z)
	return appendFloat32(buf, q.W)
}

func appendPose(buf []byte, p Pose) []byte {
	buf = appendVector3(buf, p.Position)
	return appendQuaternion(buf, p.Rotation)
}

func appendFrame(buf []byte, f Frame) []byte {
	buf = appendFloat32(buf, f.Time)
	buf = appendInt32(buf, f.FPS)
	buf = appendPose(buf, f.Head)
	buf = appendPose(buf, f.LeftHand)
	return appendPose(buf, f.RightHand)
}

func appendNote(buf []byte, n Note) []byte {
	noteID := int32(n.ScoringType)*10000 +
		int32(n.LineIdx)*1000 +
		int32(n.LineLayer)*100 +
		int32(n.ColorType)*10 +
		int32(n.CutDirection)
	buf = appendInt32(buf, noteID)
	buf = appendFloat32(buf, n.EventTime)
	buf = appendFloat32(buf, n.SpawnTime)
	buf = appendInt32(buf, int32(n.EventType))

	if n.CutInfo != nil {
		c := n.CutInfo
		buf = appendBool(buf, c.SpeedOK)
		buf = appendBool(buf, c.DirectionOK)
		buf = appendBool(buf, c.SaberTypeOK)
		buf = appendBool(buf, c.WasCutTooSoon)
		buf = appendFloat32(buf, c.SaberSpeed)
		buf = appendVector3(buf, c.SaberDir)
		buf = appendInt32(buf, int32(c.SaberType))
		buf = appendFloat32(buf, c.TimeDeviation)
		buf = appendFloat32(buf, c.CutDirDeviation)
		buf = appendVector3(buf, c.CutPoint)
		buf = appendVector3(buf, c.CutNormal)
		buf = appendFloat32(buf, c.CutDistanceToCenter)
		buf = appendFloat32(buf, c.CutAngle)
		buf = appendFloat32(buf, c.BeforeCutRating)
		buf = appendFloat32(buf, c.AfterCutRating)
	}

	return buf
}

func appendWall(buf []byte, w Wall) []byte {
	wallID := int32(w.LineIdx)*100 + int32(w.ObstacleType)*10 + int32(w.Width)
	buf = appendInt32(buf, wallID)
	buf = appendFloat32(buf, w.Energy)
	buf = appendFloat32(buf, w.Time)
	return appendFloat32(buf, w.SpawnTime)
}

func appendHeight(buf []byte, h Height) []byte {
	buf = appendFloat32(buf, h.Height)
	return appendFloat32(buf, h.Time)
}

func appendPause(buf []byte, p Pause) []byte {
	buf = testEngine.AppendUint64(buf, p.Duration)
	return appendFloat32(buf, p.Time)
}

func appendBlock[T any](buf []byte, tag format.BlockType, records []T, appendRec func([]byte, T) []byte) []byte {
	buf = append(buf, byte(tag))
	buf = appendInt32(buf, int32(len(records)))
	for _, rec := range records {
		buf = appendRec(buf, rec)
	}

	return buf
}

// encodeReplay lays out a complete container in the canonical block order.
func encodeReplay(rep *Replay) []byte {
	buf := appendHeader(nil)
	buf = appendInfo(buf, rep.Info)
	buf = appendBlock(buf, format.BlockFrames, rep.Frames, appendFrame)
	buf = appendBlock(buf, format.BlockNotes, rep.Notes, appendNote)
	buf = appendBlock(buf, format.BlockWalls, rep.Walls, appendWall)
	buf = appendBlock(buf, format.BlockHeights, rep.Heights, appendHeight)
	buf = appendBlock(buf, format.BlockPauses, rep.Pauses, appendPause)

	return buf
}

func testInfo() Info {
	return Info{
		Version:        "0.5.4",
		GameVersion:    "1.27.0",
		Timestamp:      1662289178,
		PlayerID:       "76561198035381239",
		PlayerName:     "xor eax eax",
		Platform:       "steam",
		TrackingSystem: "Oculus",
		HMD:            "Rift_S",
		Controller:     "Unknown",
		SongHash:       "C3CFED196F96B161C0862EC387E0EE9241CD5B48",
		SongName:       "Novablast",
		Mapper:         "Bitz",
		Difficulty:     "Expert",
		Score:          1216422,
		Mode:           "Standard",
		Environment:    "Timbaland",
		Modifiers:      "DA,FS",
		JumpDistance:   19.96,
		LeftHanded:     false,
		Height:         1.76,
	}
}

func testFrame(i int) Frame {
	base := float32(i)
	return Frame{
		Time: base * 0.011,
		FPS:  90,
		Head: Pose{
			Position: Vector3{X: 0.1 * base, Y: 1.7, Z: 0},
			Rotation: Quaternion{X: 0, Y: 0.7, Z: 0, W: 0.7},
		},
		LeftHand: Pose{
			Position: Vector3{X: -0.3, Y: 1.2, Z: 0.4 + base},
			Rotation: Quaternion{X: 0.1, Y: 0, Z: 0.2, W: 0.9},
		},
		RightHand: Pose{
			Position: Vector3{X: 0.3, Y: 1.2, Z: 0.4},
			Rotation: Quaternion{X: 0.2, Y: 0.1, Z: 0, W: 0.95},
		},
	}
}

func testCutInfo() *NoteCutInfo {
	return &NoteCutInfo{
		SpeedOK:             true,
		DirectionOK:         true,
		SaberTypeOK:         true,
		WasCutTooSoon:       false,
		SaberSpeed:          32.5,
		SaberDir:            Vector3{X: 0, Y: -1, Z: 0},
		SaberType:           ColorRed,
		TimeDeviation:       0.012,
		CutDirDeviation:     4.2,
		CutPoint:            Vector3{X: 0.1, Y: 1.4, Z: 0.8},
		CutNormal:           Vector3{X: -1, Y: 0, Z: 0},
		CutDistanceToCenter: 0.05,
		CutAngle:            102.3,
		BeforeCutRating:     1.0,
		AfterCutRating:      0.92,
	}
}

func testNote(eventType NoteEventType) Note {
	n := Note{
		ScoringType:  ScoringNormal,
		LineIdx:      2,
		LineLayer:    1,
		ColorType:    ColorBlue,
		CutDirection: CutBottomCenter,
		EventTime:    12.84,
		SpawnTime:    12.35,
		EventType:    eventType,
	}
	if eventType.HasCutInfo() {
		n.CutInfo = testCutInfo()
	}

	return n
}

func testWall() Wall {
	return Wall{
		LineIdx:      1,
		ObstacleType: 2,
		Width:        3,
		Energy:       0.15,
		Time:         42.5,
		SpawnTime:    41.0,
	}
}

func testReplay() *Replay {
	return &Replay{
		Version: format.Version1,
		Info:    testInfo(),
		Frames:  []Frame{testFrame(0), testFrame(1), testFrame(2)},
		Notes: []Note{
			testNote(NoteEventGood),
			testNote(NoteEventBad),
			testNote(NoteEventMiss),
			testNote(NoteEventBomb),
		},
		Walls:   []Wall{testWall()},
		Heights: []Height{{Height: 1.76, Time: 0}, {Height: 1.81, Time: 30.2}},
		Pauses:  []Pause{{Duration: 5300, Time: 61.7}},
	}
}

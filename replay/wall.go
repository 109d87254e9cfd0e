package replay

import (
	"github.com/replaykit/bsor/encoding"
)

// Wall is one wall collision event. Like notes, the wall's placement arrives
// decimal-packed in a single identifier field.
type Wall struct {
	LineIdx      uint8
	ObstacleType uint8
	Width        uint8

	Energy    float32
	Time      float32
	SpawnTime float32
}

func decodeWall(rd *encoding.Reader) (Wall, error) {
	var w Wall

	wallID, err := rd.ReadInt32()
	if err != nil {
		return w, err
	}

	// lineIdx*100 + obstacleType*10 + width
	w.LineIdx = uint8(wallID / 100)
	wallID %= 100
	w.ObstacleType = uint8(wallID / 10)
	w.Width = uint8(wallID % 10)

	if w.Energy, err = rd.ReadFloat32(); err != nil {
		return w, err
	}
	if w.Time, err = rd.ReadFloat32(); err != nil {
		return w, err
	}
	w.SpawnTime, err = rd.ReadFloat32()

	return w, err
}

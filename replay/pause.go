package replay

import (
	"github.com/replaykit/bsor/encoding"
)

// Pause is one pause event. Duration is in milliseconds.
type Pause struct {
	Duration uint64
	Time     float32
}

func decodePause(rd *encoding.Reader) (Pause, error) {
	var p Pause
	var err error

	if p.Duration, err = rd.ReadUint64(); err != nil {
		return p, err
	}
	p.Time, err = rd.ReadFloat32()

	return p, err
}

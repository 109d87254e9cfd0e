package replay

import (
	"github.com/replaykit/bsor/encoding"
)

// Height is one player height change event.
type Height struct {
	Height float32
	Time   float32
}

func decodeHeight(rd *encoding.Reader) (Height, error) {
	var h Height
	var err error

	if h.Height, err = rd.ReadFloat32(); err != nil {
		return h, err
	}
	h.Time, err = rd.ReadFloat32()

	return h, err
}

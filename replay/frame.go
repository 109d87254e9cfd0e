package replay

import (
	"github.com/replaykit/bsor/encoding"
)

// Vector3 is a 3D position or direction.
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is an orientation.
type Quaternion struct {
	X, Y, Z, W float32
}

// Pose is one tracked object's position and orientation.
type Pose struct {
	Position Vector3
	Rotation Quaternion
}

// Frame is one per-tick motion sample: the capture time, the reported
// framerate and the pose of the headset and both controllers. Frames is
// usually by far the largest block of a replay.
type Frame struct {
	Time      float32
	FPS       int32
	Head      Pose
	LeftHand  Pose
	RightHand Pose
}

func decodeVector3(rd *encoding.Reader) (Vector3, error) {
	var v Vector3
	var err error

	if v.X, err = rd.ReadFloat32(); err != nil {
		return v, err
	}
	if v.Y, err = rd.ReadFloat32(); err != nil {
		return v, err
	}
	v.Z, err = rd.ReadFloat32()

	return v, err
}

func decodeQuaternion(rd *encoding.Reader) (Quaternion, error) {
	var q Quaternion
	var err error

	if q.X, err = rd.ReadFloat32(); err != nil {
		return q, err
	}
	if q.Y, err = rd.ReadFloat32(); err != nil {
		return q, err
	}
	if q.Z, err = rd.ReadFloat32(); err != nil {
		return q, err
	}
	q.W, err = rd.ReadFloat32()

	return q, err
}

func decodePose(rd *encoding.Reader) (Pose, error) {
	var p Pose
	var err error

	if p.Position, err = decodeVector3(rd); err != nil {
		return p, err
	}
	p.Rotation, err = decodeQuaternion(rd)

	return p, err
}

func decodeFrame(rd *encoding.Reader) (Frame, error) {
	var f Frame
	var err error

	if f.Time, err = rd.ReadFloat32(); err != nil {
		return f, err
	}
	if f.FPS, err = rd.ReadInt32(); err != nil {
		return f, err
	}
	if f.Head, err = decodePose(rd); err != nil {
		return f, err
	}
	if f.LeftHand, err = decodePose(rd); err != nil {
		return f, err
	}
	f.RightHand, err = decodePose(rd)

	return f, err
}

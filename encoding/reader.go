// Package encoding implements the primitive codec layer of the replay
// container: fixed-width scalars and length-prefixed UTF-8 text read from a
// byte stream at the current cursor position.
//
// All record and block decoders in the replay package are built on the Reader
// type. The Reader performs no buffering of its own; every call consumes
// exactly the encoded width of the requested value, so the underlying
// stream's position always matches the decoder's logical cursor.
package encoding

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/replaykit/bsor/endian"
	"github.com/replaykit/bsor/errs"
	"github.com/replaykit/bsor/internal/pool"
)

// Reader is a cursor-style decoder over an io.Reader.
//
// Reader is not safe for concurrent use; it is owned by a single decode call
// for the duration of that call.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader creates a Reader decoding from r with the given byte order
// engine. The replay wire format is little-endian, so callers normally pass
// endian.GetLittleEndianEngine().
func NewReader(r io.Reader, engine endian.EndianEngine) *Reader {
	return &Reader{r: r, engine: engine}
}

// fill reads exactly n bytes into the inline scratch buffer.
// A short read is reported as errs.ErrTruncated.
func (r *Reader) fill(n int) ([]byte, error) {
	buf := r.scratch[:n]
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return nil, fmt.Errorf("need %d bytes: %w", n, errs.ErrTruncated)
	}

	return buf, nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	buf, err := r.fill(1)
	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

// ReadTag reads a single byte like ReadUint8, but reports a clean end of
// stream as io.EOF instead of errs.ErrTruncated. Block-dispatch loops use it
// to distinguish "no more blocks" from a record cut short.
func (r *Reader) ReadTag() (uint8, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:1]); err != nil {
		if err == io.EOF {
			return 0, io.EOF
		}

		return 0, fmt.Errorf("block tag: %w", errs.ErrTruncated)
	}

	return r.scratch[0], nil
}

// ReadBool reads a single byte and reports whether it equals 1.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.ReadUint8()
	if err != nil {
		return false, err
	}

	return b == 1, nil
}

// ReadInt32 reads a 4-byte signed integer.
func (r *Reader) ReadInt32() (int32, error) {
	buf, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(buf)), nil
}

// ReadUint32 reads a 4-byte unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.fill(4)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint32(buf), nil
}

// ReadUint64 reads an 8-byte unsigned integer.
func (r *Reader) ReadUint64() (uint64, error) {
	buf, err := r.fill(8)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint64(buf), nil
}

// ReadFloat32 reads a 4-byte IEEE 754 float.
func (r *Reader) ReadFloat32() (float32, error) {
	bits, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(bits), nil
}

// ReadString reads a length-prefixed UTF-8 string: a 4-byte count followed by
// that many raw bytes.
//
// A negative length prefix, or bytes that are not valid UTF-8, are reported
// as errs.ErrInvalidEncoding. Invalid UTF-8 is a known artifact of very old
// encoder builds; it is surfaced, never repaired, so callers can apply their
// own recovery policy.
func (r *Reader) ReadString() (string, error) {
	length, err := r.ReadInt32()
	if err != nil {
		return "", err
	}

	if length < 0 {
		return "", fmt.Errorf("negative string length %d: %w", length, errs.ErrInvalidEncoding)
	}

	if length == 0 {
		return "", nil
	}

	bb := pool.GetScratchBuffer()
	defer pool.PutScratchBuffer(bb)

	buf := bb.ExtendTo(int(length))
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return "", fmt.Errorf("string body of %d bytes: %w", length, errs.ErrTruncated)
	}

	if !utf8.Valid(buf) {
		return "", fmt.Errorf("string is not valid UTF-8: %w", errs.ErrInvalidEncoding)
	}

	return string(buf), nil
}

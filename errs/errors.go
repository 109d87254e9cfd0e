// Package errs defines the sentinel errors shared across the bsor packages.
//
// All decode failures wrap one of these sentinels, so callers can classify
// failures with errors.Is without parsing error strings:
//
//	replay, err := bsor.Decode(r)
//	if errors.Is(err, errs.ErrInvalidEncoding) {
//	    // historical encoder bug: non-UTF-8 text field, choose a recovery policy
//	}
package errs

import "errors"

var (
	// ErrUnsupportedFormat indicates the leading magic signature or version
	// byte does not match any container revision this module understands.
	// Also wrapped by structural violations found after the header, such as a
	// duplicated block.
	ErrUnsupportedFormat = errors.New("unsupported replay format")

	// ErrTruncated indicates the stream ended before the current record or
	// block was fully decoded.
	ErrTruncated = errors.New("truncated replay stream")

	// ErrInvalidEncoding indicates a text field violates the format's string
	// encoding contract (non-UTF-8 bytes, or non-numeric text where the
	// format requires a decimal number). Replays written by very old encoder
	// builds trigger this; the module deliberately does not repair them.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrUnknownBlock indicates a block type tag this module does not
	// recognize was encountered after the info block.
	ErrUnknownBlock = errors.New("unknown block type")

	// ErrSeekUnsupported indicates indexed mode was requested on an input
	// that does not implement io.Seeker.
	ErrSeekUnsupported = errors.New("input stream does not support seeking")
)

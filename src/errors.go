package sstv

import (
	"errors"
)

// The codec never panics on bad input.  Operations return their
// zero or sentinel outputs together with one of these, so a caller
// can still hand a partial result to the user.
var (
	// ErrEmptyInput - the input sequence had length zero.
	ErrEmptyInput = errors.New("sstv: empty input")

	// ErrShortInput - the decoder ran out of samples before any
	// scanline was captured.
	ErrShortInput = errors.New("sstv: input too short to decode")

	// ErrUnsupportedMode - the encoder was invoked for a mode with
	// no scan modulator; only the leader and VIS prefix is emitted.
	ErrUnsupportedMode = errors.New("sstv: mode not supported for encode")
)

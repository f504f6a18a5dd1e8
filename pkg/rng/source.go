// Package rng provides the randomness sources handed to SLH-DSA key
// generation and signing: a crypto/rand backed source for real keys and a
// scripted source that replays pre-arranged buffers for reproducible vectors.
package rng

import (
	"errors"
	"io"
)

var (
	// ErrExhausted is returned when a scripted source is asked for more
	// buffers than were pushed.
	ErrExhausted = errors.New("scripted random source exhausted")
	// ErrLengthMismatch is returned when a request size differs from the
	// size of the next scripted buffer.
	ErrLengthMismatch = errors.New("scripted random source length mismatch")
	// ErrUnsupported is returned for draws the scripted source never serves.
	ErrUnsupported = errors.New("unsupported random source operation")
)

// Source is the randomness capability injected into key generation and
// signing. Only the byte-fill path (Read) is used by the signing pipeline.
type Source interface {
	io.Reader
	Uint32() (uint32, error)
	Uint64() (uint64, error)
}

var (
	_ Source = (*Scripted)(nil)
	_ Source = Entropy{}
)

package rng

import "fmt"

// Scripted replays pushed buffers instead of generating randomness.
// Buffers are served last-pushed-first, so callers push them in the reverse
// of the order in which the consumer will request them.
//
// A Scripted is not safe for concurrent use.
type Scripted struct {
	stack  [][]byte
	served int
}

// NewScripted returns an empty scripted source.
func NewScripted() *Scripted {
	return &Scripted{}
}

// Push adds a copy of buf on top of the stack; it is the next buffer served.
func (s *Scripted) Push(buf []byte) {
	s.stack = append(s.stack, append([]byte(nil), buf...))
}

// Fill copies the top buffer into out and removes it. The stack is left
// untouched when the sizes differ.
func (s *Scripted) Fill(out []byte) error {
	if len(s.stack) == 0 {
		return fmt.Errorf("fill of %d bytes after %d buffers: %w", len(out), s.served, ErrExhausted)
	}

	top := s.stack[len(s.stack)-1]
	if len(top) != len(out) {
		return fmt.Errorf("requested %d bytes, next buffer holds %d: %w", len(out), len(top), ErrLengthMismatch)
	}

	copy(out, top)
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	s.served++

	return nil
}

// Read implements io.Reader on top of Fill; every call consumes exactly one
// buffer whose length must equal len(p).
func (s *Scripted) Read(p []byte) (int, error) {
	if err := s.Fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Uint32 is never requested by SLH-DSA and always fails.
func (s *Scripted) Uint32() (uint32, error) {
	return 0, fmt.Errorf("uint32 draw: %w", ErrUnsupported)
}

// Uint64 is never requested by SLH-DSA and always fails.
func (s *Scripted) Uint64() (uint64, error) {
	return 0, fmt.Errorf("uint64 draw: %w", ErrUnsupported)
}

// Len reports how many buffers are still queued.
func (s *Scripted) Len() int {
	return len(s.stack)
}

// Served reports how many buffers have been consumed.
func (s *Scripted) Served() int {
	return s.served
}

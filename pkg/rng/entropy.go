package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Entropy draws from the operating system CSPRNG.
type Entropy struct{}

func (Entropy) Read(p []byte) (int, error) {
	return rand.Read(p)
}

func (e Entropy) Uint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(e, b[:]); err != nil {
		return 0, fmt.Errorf("failed to read entropy: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (e Entropy) Uint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(e, b[:]); err != nil {
		return 0, fmt.Errorf("failed to read entropy: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

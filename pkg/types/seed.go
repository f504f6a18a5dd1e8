package types

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// SegmentSize is the SLH-DSA-SHA2-128s security parameter n in bytes.
	SegmentSize = 16
	// MasterSeedSize holds SK.seed, SK.prf and PK.seed back to back.
	MasterSeedSize = 3 * SegmentSize
)

// ErrSeedLength indicates a master seed that is not exactly 48 bytes.
var ErrSeedLength = errors.New("master seed must be 48 bytes")

// MasterSeed is the single input from which a vector keypair is derived.
type MasterSeed [MasterSeedSize]byte

// KeyMaterial holds non-owning views into a MasterSeed.
type KeyMaterial struct {
	SecretSeed   []byte // bytes [0,16)
	SecretPRFKey []byte // bytes [16,32)
	PublicSeed   []byte // bytes [32,48)
}

// ParseMasterSeed decodes a hex encoded master seed
func ParseMasterSeed(s string) (MasterSeed, error) {
	var seed MasterSeed

	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return seed, fmt.Errorf("failed to decode master seed: %w", err)
	}
	if len(raw) != MasterSeedSize {
		return seed, fmt.Errorf("got %d bytes: %w", len(raw), ErrSeedLength)
	}

	copy(seed[:], raw)
	return seed, nil
}

// SplitSeed slices the master seed into its three key material segments.
// The returned slices alias seed.
func SplitSeed(seed *MasterSeed) KeyMaterial {
	return KeyMaterial{
		SecretSeed:   seed[0:SegmentSize:SegmentSize],
		SecretPRFKey: seed[SegmentSize : 2*SegmentSize : 2*SegmentSize],
		PublicSeed:   seed[2*SegmentSize : MasterSeedSize : MasterSeedSize],
	}
}

// Bytes concatenates the segments back into a 48-byte seed
func (km KeyMaterial) Bytes() []byte {
	out := make([]byte, 0, MasterSeedSize)
	out = append(out, km.SecretSeed...)
	out = append(out, km.SecretPRFKey...)
	out = append(out, km.PublicSeed...)
	return out
}

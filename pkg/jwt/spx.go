// Package jwt provides SPHINCS+ (SLH-DSA-SHA2-128s) JWT signing with
// deterministic key derivation from a 48-byte master seed
package jwt

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/cloudflare/circl/sign/slhdsa"
	"github.com/golang-jwt/jwt/v5"

	"github.com/OpsMx/spx-jwt/pkg/rng"
	"github.com/OpsMx/spx-jwt/pkg/types"
)

// ParameterSet is the SLH-DSA parameter set behind AlgSPHINCS128s
const ParameterSet = slhdsa.SHA2_128s

// ErrAlgorithmMismatch indicates a header naming an algorithm other than
// AlgSPHINCS128s
var ErrAlgorithmMismatch = errors.New("header algorithm does not match signing method")

// PrivateKey encapsulates an SLH-DSA private key together with the
// randomness source its signatures draw from
type PrivateKey struct {
	key    slhdsa.PrivateKey
	public *PublicKey
	random io.Reader
	hedged bool
}

// PublicKey wraps an SLH-DSA public key
type PublicKey struct {
	key slhdsa.PublicKey
}

// ScriptFor loads a scripted source with the key material in the reverse
// of the order it is drawn. Key generation draws SK.seed, SK.prf, PK.seed;
// a hedged signature then draws one n-byte opt_rand, which is fed PK.seed
// again so the whole run stays reproducible.
func ScriptFor(km types.KeyMaterial, hedged bool) *rng.Scripted {
	script := rng.NewScripted()
	if hedged {
		script.Push(km.PublicSeed)
	}
	script.Push(km.PublicSeed)
	script.Push(km.SecretPRFKey)
	script.Push(km.SecretSeed)
	return script
}

// DeriveKey derives the keypair for a master seed. The scripted source is
// kept on the key, so a hedged key can produce exactly one signature.
func DeriveKey(seed *types.MasterSeed, hedged bool) (*PrivateKey, error) {
	if seed == nil {
		return nil, fmt.Errorf("master seed is nil")
	}

	script := ScriptFor(types.SplitSeed(seed), hedged)
	return newKey(script, hedged)
}

// GenerateKey creates a fresh keypair from random. Signatures from the key
// are hedged and draw from the same reader.
func GenerateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = rng.Entropy{}
	}
	return newKey(random, true)
}

func newKey(random io.Reader, hedged bool) (*PrivateKey, error) {
	pub, priv, err := slhdsa.GenerateKey(random, ParameterSet)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SPHINCS+ key: %w", err)
	}

	privateKey := &PrivateKey{
		key:    priv,
		public: &PublicKey{key: pub},
		random: random,
		hedged: hedged,
	}

	// Set up finalizer to drop key material on GC
	runtime.SetFinalizer(privateKey, (*PrivateKey).Zero)

	return privateKey, nil
}

// Sign signs msg with empty context. Hedged keys read opt_rand from their
// source; other keys sign deterministically.
func (pk *PrivateKey) Sign(msg []byte) ([]byte, error) {
	if pk == nil || pk.public == nil {
		return nil, fmt.Errorf("private key is nil")
	}

	var (
		sig []byte
		err error
	)
	if pk.hedged {
		sig, err = slhdsa.SignRandomized(&pk.key, pk.random, slhdsa.NewMessage(msg), nil)
	} else {
		sig, err = slhdsa.SignDeterministic(&pk.key, slhdsa.NewMessage(msg), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to sign with SPHINCS+: %w", err)
	}

	return sig, nil
}

// SignJWT builds and signs a compact token for header and payload
func (pk *PrivateKey) SignJWT(header types.Header, payload *types.Payload) (string, error) {
	if payload == nil {
		return "", fmt.Errorf("payload is nil")
	}
	if header.Alg != AlgSPHINCS128s {
		return "", fmt.Errorf("%q: %w", header.Alg, ErrAlgorithmMismatch)
	}

	token := jwt.NewWithClaims(SigningMethodSPHINCS128s, payload)
	token.Header = map[string]interface{}{
		"alg": header.Alg,
		"typ": header.Typ,
	}

	tokenString, err := token.SignedString(pk)
	if err != nil {
		return "", fmt.Errorf("failed to sign SPHINCS+ JWT: %w", err)
	}

	return tokenString, nil
}

// Hedged reports whether signatures draw randomness from the key's source
func (pk *PrivateKey) Hedged() bool {
	return pk.hedged
}

// Public returns the public half of the key
func (pk *PrivateKey) Public() *PublicKey {
	if pk == nil {
		return nil
	}
	return pk.public
}

// Zero drops the key material and the attached randomness source
func (pk *PrivateKey) Zero() {
	pk.key = slhdsa.PrivateKey{}
	pk.random = nil
	pk.public = nil
}

// Bytes returns the encoded public key (PK.seed || PK.root)
func (p *PublicKey) Bytes() ([]byte, error) {
	return p.key.MarshalBinary()
}

// Verify reports whether sig is a valid signature of msg with empty context
func (p *PublicKey) Verify(msg, sig []byte) bool {
	if p == nil {
		return false
	}
	return slhdsa.Verify(&p.key, slhdsa.NewMessage(msg), sig, nil)
}

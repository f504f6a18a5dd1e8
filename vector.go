// Package spxjwt generates reproducible SPHINCS+ signed JWT vectors from a
// fixed master seed
package spxjwt

import (
	"encoding/hex"
	"strings"

	"go.uber.org/zap"

	"github.com/OpsMx/spx-jwt/internal/logging"
	"github.com/OpsMx/spx-jwt/internal/vector"
	"github.com/OpsMx/spx-jwt/pkg/jwt"
	"github.com/OpsMx/spx-jwt/pkg/types"
)

// Generator produces the token vector described by a vector config
type Generator struct {
	cfg    vector.Config
	logger *zap.Logger
}

// NewGenerator creates a generator for cfg. A nil logger discards output.
func NewGenerator(cfg vector.Config, logger *zap.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeConfigurationError, "invalid vector configuration", err.Error())
	}
	if logger == nil {
		logger = logging.Nop()
	}

	return &Generator{
		cfg:    cfg,
		logger: logger,
	}, nil
}

// NewDefaultGenerator creates a generator for the embedded vector
func NewDefaultGenerator(logger *zap.Logger) (*Generator, error) {
	cfg, err := vector.Default()
	if err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeConfigurationError, "failed to load default vector", err.Error())
	}
	return NewGenerator(cfg, logger)
}

// Generate derives the keypair, signs the token and discards the key.
// Two calls with the same config return identical results.
func (g *Generator) Generate() (*Result, error) {
	seed, err := g.cfg.Seed()
	if err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeConfigurationError, "invalid master seed", err.Error())
	}

	hedged := g.cfg.IsHedged()
	g.logger.Debug("deriving SPHINCS+ keypair",
		zap.String("parameter_set", jwt.AlgSPHINCS128s),
		zap.Bool("hedged", hedged),
	)

	key, err := jwt.DeriveKey(&seed, hedged)
	if err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeKeygenError, "failed to derive keypair", err.Error())
	}
	defer key.Zero()

	publicKey, err := key.Public().Bytes()
	if err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeKeygenError, "failed to encode public key", err.Error())
	}
	g.logger.Debug("keypair derived",
		zap.String("public_seed", hex.EncodeToString(publicKey[:types.SegmentSize])),
	)

	token, err := key.SignJWT(g.cfg.JWTHeader(), g.cfg.JWTPayload())
	if err != nil {
		return nil, NewVectorErrorWithDetails(ErrCodeSigningError, "failed to sign token", err.Error())
	}

	signingInput := token[:strings.LastIndex(token, ".")]
	g.logger.Debug("token signed",
		zap.Int("signing_input_len", len(signingInput)),
		zap.Int("token_len", len(token)),
	)

	return &Result{
		Token:        token,
		SigningInput: signingInput,
		PublicKey:    hex.EncodeToString(publicKey),
		Hedged:       hedged,
	}, nil
}

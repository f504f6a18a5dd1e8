// Package vector holds the fixed inputs of the token vector: master seed,
// signing mode, header and payload.
package vector

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/OpsMx/spx-jwt/pkg/jwt"
	"github.com/OpsMx/spx-jwt/pkg/types"
)

//go:embed default.yaml
var defaultVector []byte

type Config struct {
	MasterSeed string        `yaml:"masterSeed"`
	Hedged     *bool         `yaml:"hedged"`
	Debug      bool          `yaml:"debug"`
	Header     HeaderConfig  `yaml:"header"`
	Payload    PayloadConfig `yaml:"payload"`
}

type HeaderConfig struct {
	Alg string `yaml:"alg"`
	Typ string `yaml:"typ"`
}

type PayloadConfig struct {
	Sub   string `yaml:"sub"`
	Name  string `yaml:"name"`
	Admin bool   `yaml:"admin"`
	Exp   int64  `yaml:"exp"`
}

// Default returns the embedded vector.
func Default() (Config, error) {
	return Parse(defaultVector)
}

// Parse decodes and validates a YAML vector. Hedged signing is the default
// when the field is absent.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse vector: %w", err)
	}
	if cfg.Hedged == nil {
		hedged := true
		cfg.Hedged = &hedged
	}
	if cfg.Header.Typ == "" {
		cfg.Header.Typ = "JWT"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := types.ParseMasterSeed(c.MasterSeed); err != nil {
		return fmt.Errorf("invalid masterSeed: %w", err)
	}
	if c.Header.Alg != jwt.AlgSPHINCS128s {
		return fmt.Errorf("header.alg must be %q, got %q", jwt.AlgSPHINCS128s, c.Header.Alg)
	}
	if strings.TrimSpace(c.Payload.Sub) == "" {
		return fmt.Errorf("payload.sub is required")
	}
	return nil
}

// IsHedged reports whether signing draws the scripted opt_rand buffer.
func (c Config) IsHedged() bool {
	return c.Hedged == nil || *c.Hedged
}

// Seed decodes the master seed.
func (c Config) Seed() (types.MasterSeed, error) {
	return types.ParseMasterSeed(c.MasterSeed)
}

func (c Config) JWTHeader() types.Header {
	return types.Header{Alg: c.Header.Alg, Typ: c.Header.Typ}
}

func (c Config) JWTPayload() *types.Payload {
	return &types.Payload{
		Sub:   c.Payload.Sub,
		Name:  c.Payload.Name,
		Admin: c.Payload.Admin,
		Exp:   c.Payload.Exp,
	}
}

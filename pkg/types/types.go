// Package types defines the header, payload and seed types shared by the
// SPHINCS+ token signer
package types

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Header is the JOSE header of a SPHINCS+ token
type Header struct {
	Alg string `json:"alg"` // Signature algorithm identifier
	Typ string `json:"typ"` // Token type, always "JWT"
}

// Payload represents the claims of the demo token. Field order is the
// serialization order.
type Payload struct {
	Sub   string `json:"sub"`   // Subject
	Name  string `json:"name"`  // Display name
	Admin bool   `json:"admin"` // Admin flag
	Exp   int64  `json:"exp"`   // Expiration timestamp (unix seconds)
}

// GetExpirationTime implements jwt.Claims interface
func (p *Payload) GetExpirationTime() (*jwt.NumericDate, error) {
	if p.Exp == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(p.Exp, 0)), nil
}

// GetIssuedAt implements jwt.Claims interface
func (p *Payload) GetIssuedAt() (*jwt.NumericDate, error) {
	return nil, nil
}

// GetNotBefore implements jwt.Claims interface
func (p *Payload) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

// GetIssuer implements jwt.Claims interface
func (p *Payload) GetIssuer() (string, error) {
	return "", nil
}

// GetSubject implements jwt.Claims interface
func (p *Payload) GetSubject() (string, error) {
	return p.Sub, nil
}

// GetAudience implements jwt.Claims interface
func (p *Payload) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

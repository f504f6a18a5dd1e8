package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// AlgSPHINCS128s is the JOSE "alg" value for SLH-DSA-SHA2-128s tokens
const AlgSPHINCS128s = "SPHINCS+128s"

// SigningMethodSPX implements jwt.SigningMethod for SLH-DSA-SHA2-128s.
// Sign expects a *PrivateKey, Verify a *PublicKey or *PrivateKey.
type SigningMethodSPX struct{}

// SigningMethodSPHINCS128s is the registered SPHINCS+ signing method
var SigningMethodSPHINCS128s = &SigningMethodSPX{}

func init() {
	jwt.RegisterSigningMethod(AlgSPHINCS128s, func() jwt.SigningMethod {
		return SigningMethodSPHINCS128s
	})
}

// Alg implements jwt.SigningMethod
func (m *SigningMethodSPX) Alg() string {
	return AlgSPHINCS128s
}

// Sign implements jwt.SigningMethod; the signature covers the raw bytes of
// the signing string
func (m *SigningMethodSPX) Sign(signingString string, key interface{}) ([]byte, error) {
	pk, ok := key.(*PrivateKey)
	if !ok || pk == nil {
		return nil, jwt.ErrInvalidKeyType
	}
	return pk.Sign([]byte(signingString))
}

// Verify implements jwt.SigningMethod
func (m *SigningMethodSPX) Verify(signingString string, sig []byte, key interface{}) error {
	var pub *PublicKey
	switch k := key.(type) {
	case *PublicKey:
		pub = k
	case *PrivateKey:
		pub = k.Public()
	}
	if pub == nil {
		return jwt.ErrInvalidKeyType
	}
	if !pub.Verify([]byte(signingString), sig) {
		return jwt.ErrSignatureInvalid
	}
	return nil
}

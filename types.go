package spxjwt

import (
	"fmt"
)

// Result is one generated token vector
type Result struct {
	Token        string `json:"token"`
	SigningInput string `json:"signing_input"` // base64url(header) "." base64url(payload)
	PublicKey    string `json:"public_key"`    // hex PK.seed || PK.root
	Hedged       bool   `json:"hedged"`
}

// VectorError represents an error from the vector generator
type VectorError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Error implements the error interface
func (e *VectorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Common error codes
const (
	ErrCodeConfigurationError = "CONFIGURATION_ERROR"
	ErrCodeKeygenError        = "KEYGEN_ERROR"
	ErrCodeSigningError       = "SIGNING_ERROR"
)

// NewVectorError creates a new vector error
func NewVectorError(code, message string) *VectorError {
	return &VectorError{
		Code:    code,
		Message: message,
	}
}

// NewVectorErrorWithDetails creates a new vector error with details
func NewVectorErrorWithDetails(code, message, details string) *VectorError {
	return &VectorError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// IsVectorError checks if an error is a VectorError
func IsVectorError(err error) bool {
	_, ok := err.(*VectorError)
	return ok
}

// GetVectorError returns the VectorError if the error is a VectorError
func GetVectorError(err error) *VectorError {
	if vectorErr, ok := err.(*VectorError); ok {
		return vectorErr
	}
	return nil
}

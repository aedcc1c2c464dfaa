package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// RandomOTPGenerator generates cryptographically secure numeric OTP codes
type RandomOTPGenerator struct {
	length int
}

// NewRandomOTPGenerator creates a random OTP generator
func NewRandomOTPGenerator(length int) *RandomOTPGenerator {
	return &RandomOTPGenerator{length: length}
}

// Generate implements domain.OTPGenerator
func (g *RandomOTPGenerator) Generate() (string, error) {
	digits := make([]byte, g.length)

	for i := 0; i < g.length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

// FixedOTPGenerator always returns the configured code. It exists for
// demo and test environments where SMS delivery is simulated, and must
// be selected explicitly through configuration.
type FixedOTPGenerator struct {
	code string
}

// NewFixedOTPGenerator creates a fixed-code OTP generator
func NewFixedOTPGenerator(code string) *FixedOTPGenerator {
	return &FixedOTPGenerator{code: code}
}

// Generate implements domain.OTPGenerator
func (g *FixedOTPGenerator) Generate() (string, error) {
	return g.code, nil
}

package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// APIKeyServiceImpl implements domain.APIKeyService by comparing a
// presented key against a configured bcrypt hash. With no hash configured
// every key is rejected, which disables the admin surface entirely.
type APIKeyServiceImpl struct {
	keyHash string
}

// NewAPIKeyService creates a new API key service
func NewAPIKeyService(keyHash string) *APIKeyServiceImpl {
	return &APIKeyServiceImpl{keyHash: keyHash}
}

// Verify implements domain.APIKeyService
func (s *APIKeyServiceImpl) Verify(key string) bool {
	if s.keyHash == "" || key == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.keyHash), []byte(key)) == nil
}

// HashAPIKey produces a bcrypt hash for configuration bootstrap
func HashAPIKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

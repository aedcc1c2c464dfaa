package mocks

import "github.com/shashi0808/udyam-registration-portal/domain"

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAdminTokenFunc func() (string, error)
	ValidateTokenFunc      func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAdminToken issues an admin bearer token
func (m *MockTokenService) GenerateAdminToken() (string, error) {
	if m.GenerateAdminTokenFunc != nil {
		return m.GenerateAdminTokenFunc()
	}
	return "mock_admin_token", nil
}

// ValidateToken validates a bearer token
func (m *MockTokenService) ValidateToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateTokenFunc != nil {
		return m.ValidateTokenFunc(token)
	}
	if token == "mock_admin_token" {
		return &domain.TokenClaims{Role: "admin"}, nil
	}
	return nil, domain.ErrTokenInvalid
}

// MockAPIKeyService implements domain.APIKeyService for testing
type MockAPIKeyService struct {
	VerifyFunc func(key string) bool
}

// NewMockAPIKeyService creates a new MockAPIKeyService
func NewMockAPIKeyService() *MockAPIKeyService {
	return &MockAPIKeyService{}
}

// Verify checks the presented API key
func (m *MockAPIKeyService) Verify(key string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(key)
	}
	return key == "test-admin-key"
}

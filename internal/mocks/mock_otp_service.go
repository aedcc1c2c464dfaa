package mocks

import (
	"context"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	IssueFunc      func(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error)
	VerifyFunc     func(ctx context.Context, aadhaarNumber, otp string) error
	IsVerifiedFunc func(ctx context.Context, aadhaarNumber string) (bool, error)
	ConsumeFunc    func(ctx context.Context, aadhaarNumber string) error

	ConsumedAadhaars []string
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Issue issues a challenge for the given Aadhaar number
func (m *MockOTPService) Issue(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(ctx, aadhaarNumber)
	}
	return &domain.Challenge{
		AadhaarNumber: aadhaarNumber,
		OTP:           "123456",
		IssuedAt:      time.Now(),
	}, nil
}

// Verify verifies an OTP code for the given Aadhaar number
func (m *MockOTPService) Verify(ctx context.Context, aadhaarNumber, otp string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, aadhaarNumber, otp)
	}
	if otp != "123456" {
		return domain.ErrOTPMismatch
	}
	return nil
}

// IsVerified reports whether the Aadhaar number has a verified challenge
func (m *MockOTPService) IsVerified(ctx context.Context, aadhaarNumber string) (bool, error) {
	if m.IsVerifiedFunc != nil {
		return m.IsVerifiedFunc(ctx, aadhaarNumber)
	}
	return true, nil
}

// Consume removes the challenge for the given Aadhaar number
func (m *MockOTPService) Consume(ctx context.Context, aadhaarNumber string) error {
	m.ConsumedAadhaars = append(m.ConsumedAadhaars, aadhaarNumber)
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, aadhaarNumber)
	}
	return nil
}

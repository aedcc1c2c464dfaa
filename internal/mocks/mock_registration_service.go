package mocks

import (
	"context"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// MockRegistrationService implements domain.RegistrationService for testing
type MockRegistrationService struct {
	SubmitFunc      func(ctx context.Context, registration *domain.Registration) (*domain.Registration, error)
	ValidatePANFunc func(ctx context.Context, panNumber string) error
	ListFunc        func(ctx context.Context) ([]domain.Registration, int64, error)
}

// NewMockRegistrationService creates a new MockRegistrationService
func NewMockRegistrationService() *MockRegistrationService {
	return &MockRegistrationService{}
}

// Submit accepts a registration submission
func (m *MockRegistrationService) Submit(ctx context.Context, registration *domain.Registration) (*domain.Registration, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, registration)
	}
	registration.ID = "UDYAM-TEST00001"
	registration.SubmittedAt = time.Now()
	registration.Status = domain.StatusPending
	return registration, nil
}

// ValidatePAN validates a PAN number
func (m *MockRegistrationService) ValidatePAN(ctx context.Context, panNumber string) error {
	if m.ValidatePANFunc != nil {
		return m.ValidatePANFunc(ctx, panNumber)
	}
	return nil
}

// List returns all accepted registrations
func (m *MockRegistrationService) List(ctx context.Context) ([]domain.Registration, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, 0, nil
}

package mocks

import (
	"context"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// MockChallengeRepository implements domain.ChallengeRepository for
// testing error paths; happy-path tests prefer the real in-memory store.
type MockChallengeRepository struct {
	PutFunc    func(ctx context.Context, challenge *domain.Challenge) error
	GetFunc    func(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error)
	DeleteFunc func(ctx context.Context, aadhaarNumber string) error
}

// NewMockChallengeRepository creates a new MockChallengeRepository
func NewMockChallengeRepository() *MockChallengeRepository {
	return &MockChallengeRepository{}
}

// Put stores a challenge
func (m *MockChallengeRepository) Put(ctx context.Context, challenge *domain.Challenge) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, challenge)
	}
	return nil
}

// Get loads the challenge for the given Aadhaar number
func (m *MockChallengeRepository) Get(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, aadhaarNumber)
	}
	return nil, domain.ErrChallengeNotFound
}

// Delete removes the challenge for the given Aadhaar number
func (m *MockChallengeRepository) Delete(ctx context.Context, aadhaarNumber string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, aadhaarNumber)
	}
	return nil
}

package storage

import (
	"context"
	"sync"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// In-memory stores are the default backends: all state lives only for the
// process lifetime. They favor clarity over performance and keep the
// services testable without external infrastructure.

// InMemoryChallengeStore implements domain.ChallengeRepository
type InMemoryChallengeStore struct {
	mu         sync.RWMutex
	challenges map[string]domain.Challenge
}

// NewInMemoryChallengeStore creates an empty challenge store
func NewInMemoryChallengeStore() *InMemoryChallengeStore {
	return &InMemoryChallengeStore{challenges: make(map[string]domain.Challenge)}
}

// Put implements domain.ChallengeRepository with replace-on-write
// semantics per Aadhaar number.
func (s *InMemoryChallengeStore) Put(_ context.Context, challenge *domain.Challenge) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[challenge.AadhaarNumber] = *challenge
	return nil
}

// Get implements domain.ChallengeRepository
func (s *InMemoryChallengeStore) Get(_ context.Context, aadhaarNumber string) (*domain.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if challenge, ok := s.challenges[aadhaarNumber]; ok {
		return &challenge, nil
	}
	return nil, domain.ErrChallengeNotFound
}

// Delete implements domain.ChallengeRepository
func (s *InMemoryChallengeStore) Delete(_ context.Context, aadhaarNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.challenges, aadhaarNumber)
	return nil
}

// InMemoryRegistrationStore implements domain.RegistrationRepository as an
// append-only list preserving insertion order.
type InMemoryRegistrationStore struct {
	mu            sync.RWMutex
	registrations []domain.Registration
}

// NewInMemoryRegistrationStore creates an empty registration store
func NewInMemoryRegistrationStore() *InMemoryRegistrationStore {
	return &InMemoryRegistrationStore{}
}

// Append implements domain.RegistrationRepository
func (s *InMemoryRegistrationStore) Append(_ context.Context, registration *domain.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrations = append(s.registrations, *registration)
	return nil
}

// ListAll implements domain.RegistrationRepository
func (s *InMemoryRegistrationStore) ListAll(_ context.Context) ([]domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Registration{}, s.registrations...), nil
}

// Count implements domain.RegistrationRepository
func (s *InMemoryRegistrationStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.registrations)), nil
}

package mocks

import (
	"context"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// MockPostalLookup implements domain.PostalLookup for testing
type MockPostalLookup struct {
	LookupFunc func(ctx context.Context, pinCode string) (*domain.PostalAddress, error)
}

// NewMockPostalLookup creates a new MockPostalLookup
func NewMockPostalLookup() *MockPostalLookup {
	return &MockPostalLookup{}
}

// Lookup resolves a PIN code to an address
func (m *MockPostalLookup) Lookup(ctx context.Context, pinCode string) (*domain.PostalAddress, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, pinCode)
	}
	return &domain.PostalAddress{
		City:       "New Delhi",
		State:      "Delhi",
		Country:    "India",
		PINCode:    pinCode,
		PostOffice: "Connaught Place",
	}, nil
}

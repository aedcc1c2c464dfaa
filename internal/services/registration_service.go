package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

const (
	registrationIDPrefix = "UDYAM-"
	registrationIDLength = 9
	minApplicantAge      = 18
	dateOfBirthLayout    = "2006-01-02"

	// EstimatedProcessingTime is the fixed human-readable estimate
	// returned with every accepted submission.
	EstimatedProcessingTime = "7-10 business days"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RegistrationServiceImpl implements domain.RegistrationService. Submission
// is gated on a live verified OTP challenge for the Aadhaar number; the
// verified state is re-checked on every call rather than cached because
// challenges expire independently of request timing.
type RegistrationServiceImpl struct {
	registrations domain.RegistrationRepository
	otpSvc        domain.OTPService
	panDelay      time.Duration
	now           func() time.Time
}

// NewRegistrationService creates a new registration service. panDelay
// models the latency of a real PAN validation authority; set it to zero
// in tests.
func NewRegistrationService(registrations domain.RegistrationRepository, otpSvc domain.OTPService, panDelay time.Duration) *RegistrationServiceImpl {
	return &RegistrationServiceImpl{
		registrations: registrations,
		otpSvc:        otpSvc,
		panDelay:      panDelay,
		now:           time.Now,
	}
}

// Submit implements domain.RegistrationService. On success the stored
// record is immutable within this service: no update or delete operations
// are exposed.
func (s *RegistrationServiceImpl) Submit(ctx context.Context, registration *domain.Registration) (*domain.Registration, error) {
	verified, err := s.otpSvc.IsVerified(ctx, registration.AadhaarNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check verification state: %w", err)
	}
	if !verified {
		return nil, domain.ErrNotVerified
	}

	dob, err := time.Parse(dateOfBirthLayout, strings.TrimSpace(registration.DateOfBirth))
	if err != nil {
		return nil, domain.ErrInvalidDateOfBirth
	}
	if ageAt(s.now(), dob) < minApplicantAge {
		return nil, domain.ErrUnderage
	}

	id, err := generateRegistrationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate registration id: %w", err)
	}

	registration.ID = id
	registration.SubmittedAt = s.now()
	registration.Status = domain.StatusPending

	if err := s.registrations.Append(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to store registration: %w", err)
	}

	// The challenge is spent; a new submission needs a fresh OTP round.
	if err := s.otpSvc.Consume(ctx, registration.AadhaarNumber); err != nil {
		log.Printf("CHALLENGE_CONSUME_FAILED: registration=%s error=%v", id, err)
	}

	log.Printf("REGISTRATION_SUBMITTED: id=%s", id)
	return registration, nil
}

// ValidatePAN implements domain.RegistrationService. Format acceptance is
// enforced by request validation before this is called; the artificial
// delay stands in for a real validation authority round trip.
func (s *RegistrationServiceImpl) ValidatePAN(ctx context.Context, panNumber string) error {
	if s.panDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.panDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// List implements domain.RegistrationService
func (s *RegistrationServiceImpl) List(ctx context.Context) ([]domain.Registration, int64, error) {
	records, err := s.registrations.ListAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list registrations: %w", err)
	}
	total, err := s.registrations.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count registrations: %w", err)
	}
	return records, total, nil
}

// ageAt computes age in whole years at the reference time
func ageAt(at, dob time.Time) int {
	years := at.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(at) {
		years--
	}
	return years
}

// generateRegistrationID builds a human-distinguishable identifier of the
// form UDYAM-XXXXXXXXX where X is an uppercase base36 character. There is
// no uniqueness check beyond collision probability.
func generateRegistrationID() (string, error) {
	chars := make([]byte, registrationIDLength)
	for i := range chars {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Alphabet))))
		if err != nil {
			return "", err
		}
		chars[i] = base36Alphabet[num.Int64()]
	}
	return registrationIDPrefix + string(chars), nil
}

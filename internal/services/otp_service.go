package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// OTPServiceImpl implements domain.OTPService on top of an injected
// challenge repository. Expiry is checked lazily on read; there is no
// background sweeper. Each Aadhaar number has at most one live challenge
// and issuing a new OTP resets any verification progress on the old one.
type OTPServiceImpl struct {
	challenges domain.ChallengeRepository
	notifier   domain.NotificationService
	generator  domain.OTPGenerator
	ttl        time.Duration
	now        func() time.Time
}

// NewOTPService creates a new OTP service
func NewOTPService(challenges domain.ChallengeRepository, notifier domain.NotificationService, generator domain.OTPGenerator, ttl time.Duration) *OTPServiceImpl {
	return &OTPServiceImpl{
		challenges: challenges,
		notifier:   notifier,
		generator:  generator,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Issue implements domain.OTPService. It always succeeds for a well-formed
// Aadhaar number: SMS delivery is simulated and a delivery failure never
// blocks issuance.
func (s *OTPServiceImpl) Issue(ctx context.Context, aadhaarNumber string) (*domain.Challenge, error) {
	code, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP code: %w", err)
	}

	challenge := &domain.Challenge{
		AadhaarNumber: aadhaarNumber,
		OTP:           code,
		IssuedAt:      s.now(),
		Verified:      false,
	}

	// Overwrites any prior challenge for this Aadhaar number
	if err := s.challenges.Put(ctx, challenge); err != nil {
		return nil, fmt.Errorf("failed to store challenge: %w", err)
	}

	message := fmt.Sprintf("Your Udyam registration OTP is %s. Valid for %d minutes.", code, int(s.ttl.Minutes()))
	if err := s.notifier.SendSMS(aadhaarNumber, message); err != nil {
		log.Printf("OTP_SMS_FAILED: aadhaar=%s error=%v", maskAadhaar(aadhaarNumber), err)
	}

	return challenge, nil
}

// Verify implements domain.OTPService. A mismatched code leaves the
// challenge retryable; an expired challenge is removed so a later call
// with the same code reports not-found.
func (s *OTPServiceImpl) Verify(ctx context.Context, aadhaarNumber, otp string) error {
	challenge, err := s.challenges.Get(ctx, aadhaarNumber)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			return domain.ErrOTPNotFound
		}
		return fmt.Errorf("failed to load challenge: %w", err)
	}

	if s.expired(challenge) {
		if err := s.challenges.Delete(ctx, aadhaarNumber); err != nil {
			log.Printf("CHALLENGE_CLEANUP_FAILED: aadhaar=%s error=%v", maskAadhaar(aadhaarNumber), err)
		}
		return domain.ErrOTPExpired
	}

	if challenge.OTP != otp {
		return domain.ErrOTPMismatch
	}

	// Idempotent for an already-verified, non-expired challenge
	challenge.Verified = true
	if err := s.challenges.Put(ctx, challenge); err != nil {
		return fmt.Errorf("failed to update challenge: %w", err)
	}

	return nil
}

// IsVerified implements domain.OTPService. Expired challenges are treated
// as absent regardless of their stored verified flag. Downstream callers
// must re-check this on every gated operation rather than caching the
// result, since challenges expire independently of request timing.
func (s *OTPServiceImpl) IsVerified(ctx context.Context, aadhaarNumber string) (bool, error) {
	challenge, err := s.challenges.Get(ctx, aadhaarNumber)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load challenge: %w", err)
	}

	if s.expired(challenge) {
		if err := s.challenges.Delete(ctx, aadhaarNumber); err != nil {
			log.Printf("CHALLENGE_CLEANUP_FAILED: aadhaar=%s error=%v", maskAadhaar(aadhaarNumber), err)
		}
		return false, nil
	}

	return challenge.Verified, nil
}

// Consume implements domain.OTPService. Called on successful submission
// to prevent reuse of the verified challenge.
func (s *OTPServiceImpl) Consume(ctx context.Context, aadhaarNumber string) error {
	return s.challenges.Delete(ctx, aadhaarNumber)
}

// ExpirySeconds returns the challenge TTL in whole seconds for responses
func (s *OTPServiceImpl) ExpirySeconds() int {
	return int(s.ttl.Seconds())
}

func (s *OTPServiceImpl) expired(challenge *domain.Challenge) bool {
	return s.now().Sub(challenge.IssuedAt) > s.ttl
}

func maskAadhaar(aadhaarNumber string) string {
	if len(aadhaarNumber) < 4 {
		return "****"
	}
	return "********" + aadhaarNumber[len(aadhaarNumber)-4:]
}

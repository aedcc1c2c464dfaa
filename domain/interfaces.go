package domain

import "context"

// ChallengeRepository defines challenge data access operations.
// Put replaces any existing challenge for the same Aadhaar number.
type ChallengeRepository interface {
	Put(ctx context.Context, challenge *Challenge) error
	Get(ctx context.Context, aadhaarNumber string) (*Challenge, error)
	Delete(ctx context.Context, aadhaarNumber string) error
}

// RegistrationRepository defines registration data access operations.
// ListAll returns records in insertion order.
type RegistrationRepository interface {
	Append(ctx context.Context, registration *Registration) error
	ListAll(ctx context.Context) ([]Registration, error)
	Count(ctx context.Context) (int64, error)
}

// OTPService defines the OTP verification workflow operations
type OTPService interface {
	Issue(ctx context.Context, aadhaarNumber string) (*Challenge, error)
	Verify(ctx context.Context, aadhaarNumber, otp string) error
	IsVerified(ctx context.Context, aadhaarNumber string) (bool, error)
	Consume(ctx context.Context, aadhaarNumber string) error
}

// RegistrationService defines registration business logic
type RegistrationService interface {
	Submit(ctx context.Context, registration *Registration) (*Registration, error)
	ValidatePAN(ctx context.Context, panNumber string) error
	List(ctx context.Context) ([]Registration, int64, error)
}

// OTPGenerator defines the OTP code generation strategy. Implementations
// are selected at construction time (random for production, fixed for
// demo/testing), never via runtime inspection.
type OTPGenerator interface {
	Generate() (string, error)
}

// NotificationService defines notification operations
type NotificationService interface {
	SendSMS(to, message string) error
}

// PostalLookup defines PIN code address lookup operations
type PostalLookup interface {
	Lookup(ctx context.Context, pinCode string) (*PostalAddress, error)
}

// TokenService defines admin token operations
type TokenService interface {
	GenerateAdminToken() (string, error)
	ValidateToken(token string) (*TokenClaims, error)
}

// APIKeyService defines admin API key verification
type APIKeyService interface {
	Verify(key string) bool
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

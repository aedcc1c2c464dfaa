package domain

import "errors"

// OTP errors
var (
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPMismatch = errors.New("invalid otp code")
)

// Challenge store errors
var (
	ErrChallengeNotFound = errors.New("challenge not found")
)

// Registration errors
var (
	ErrNotVerified        = errors.New("aadhaar otp verification required")
	ErrUnderage           = errors.New("applicant must be at least 18 years old")
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")
)

// PIN code lookup errors
var (
	ErrPINCodeNotFound   = errors.New("pin code not found")
	ErrLookupUnavailable = errors.New("pin code lookup service unavailable")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrInvalidAPIKey  = errors.New("invalid api key")
)

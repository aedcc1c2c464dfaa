package domain

import "time"

// Registration status values
const (
	StatusPending = "PENDING"
)

// Challenge represents one outstanding OTP verification attempt for an
// Aadhaar number. At most one challenge is live per Aadhaar at a time;
// issuing a new OTP overwrites the previous challenge.
type Challenge struct {
	AadhaarNumber string
	OTP           string
	IssuedAt      time.Time
	Verified      bool
}

// Registration represents an accepted Udyam registration submission
type Registration struct {
	ID            string
	AadhaarNumber string
	PANNumber     string
	ApplicantName string
	Gender        string
	DateOfBirth   string
	MobileNumber  string
	EmailAddress  string
	Address       string
	PINCode       string
	City          string
	State         string
	SubmittedAt   time.Time
	Status        string
}

// PostalAddress represents the result of a PIN code lookup
type PostalAddress struct {
	City       string
	State      string
	Country    string
	PINCode    string
	PostOffice string
}

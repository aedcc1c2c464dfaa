package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"github.com/shashi0808/udyam-registration-portal/domain"
	"github.com/shashi0808/udyam-registration-portal/internal/metrics"
)

var pinCodeParam = regexp.MustCompile(`^[0-9]{6}$`)

// RegistrationHandlers handles the registration workflow HTTP requests
type RegistrationHandlers struct {
	otpSvc    domain.OTPService
	regSvc    domain.RegistrationService
	postal    domain.PostalLookup
	metrics   *metrics.Metrics
	otpExpiry int
	estimate  string
}

// NewRegistrationHandlers creates new registration handlers. otpExpiry is
// the challenge lifetime in seconds reported back to clients.
func NewRegistrationHandlers(otpSvc domain.OTPService, regSvc domain.RegistrationService, postal domain.PostalLookup, m *metrics.Metrics, otpExpiry int, estimate string) *RegistrationHandlers {
	return &RegistrationHandlers{
		otpSvc:    otpSvc,
		regSvc:    regSvc,
		postal:    postal,
		metrics:   m,
		otpExpiry: otpExpiry,
		estimate:  estimate,
	}
}

// SendOTPRequest represents an OTP issuance request
type SendOTPRequest struct {
	AadhaarNumber string `json:"aadhaarNumber"`
}

// VerifyOTPRequest represents an OTP verification request
type VerifyOTPRequest struct {
	AadhaarNumber string `json:"aadhaarNumber"`
	OTP           string `json:"otp"`
}

// ValidatePANRequest represents a PAN validation request
type ValidatePANRequest struct {
	PANNumber string `json:"panNumber"`
}

// SubmitRegistrationRequest represents a full registration submission
type SubmitRegistrationRequest struct {
	AadhaarNumber string `json:"aadhaarNumber"`
	OTPNumber     string `json:"otpNumber"`
	PANNumber     string `json:"panNumber"`
	ApplicantName string `json:"applicantName"`
	Gender        string `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	MobileNumber  string `json:"mobileNumber"`
	EmailAddress  string `json:"emailAddress"`
	Address       string `json:"address"`
	PINCode       string `json:"pinCode"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// SendOTP handles OTP issuance. It always succeeds for a valid Aadhaar
// number; the OTP travels over the (simulated) SMS channel, never the
// HTTP response.
func (h *RegistrationHandlers) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if _, err := h.otpSvc.Issue(c.Request.Context(), req.AadhaarNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send OTP"})
		return
	}
	h.metrics.OTPIssued.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully to your registered mobile number",
		"data": gin.H{
			"otpSent":   true,
			"expiresIn": h.otpExpiry,
		},
	})
}

// VerifyOTP handles OTP verification
func (h *RegistrationHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	err := h.otpSvc.Verify(c.Request.Context(), req.AadhaarNumber, req.OTP)
	if err != nil {
		switch err {
		case domain.ErrOTPNotFound:
			h.metrics.OTPFailures.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "OTP not found. Please request a new OTP."})
		case domain.ErrOTPExpired:
			h.metrics.OTPFailures.WithLabelValues("expired").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "OTP has expired. Please request a new OTP."})
		case domain.ErrOTPMismatch:
			h.metrics.OTPFailures.WithLabelValues("mismatch").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid OTP. Please try again."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "OTP verification failed"})
		}
		return
	}
	h.metrics.OTPVerified.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP verified successfully",
		"data": gin.H{
			"verified":        true,
			"aadhaarVerified": true,
		},
	})
}

// ValidatePAN handles PAN format validation
func (h *RegistrationHandlers) ValidatePAN(c *gin.Context) {
	var req ValidatePANRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.regSvc.ValidatePAN(c.Request.Context(), req.PANNumber); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "PAN validation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "PAN validated successfully",
		"data": gin.H{
			"valid":     true,
			"panNumber": req.PANNumber,
			"status":    "VALID",
		},
	})
}

// SubmitRegistration handles the final registration submission. Field
// shape is enforced by the validation middleware; business gates
// (verified OTP, minimum age) are enforced by the registration service.
func (h *RegistrationHandlers) SubmitRegistration(c *gin.Context) {
	var req SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	registration := &domain.Registration{
		AadhaarNumber: req.AadhaarNumber,
		PANNumber:     req.PANNumber,
		ApplicantName: req.ApplicantName,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		MobileNumber:  req.MobileNumber,
		EmailAddress:  req.EmailAddress,
		Address:       req.Address,
		PINCode:       req.PINCode,
		City:          req.City,
		State:         req.State,
	}

	accepted, err := h.regSvc.Submit(c.Request.Context(), registration)
	if err != nil {
		switch err {
		case domain.ErrNotVerified:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aadhaar OTP verification required before submission."})
		case domain.ErrUnderage:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Applicant must be at least 18 years old."})
		case domain.ErrInvalidDateOfBirth:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Date of birth must be a valid date."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit registration"})
		}
		return
	}
	h.metrics.RegistrationsAccepted.Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Registration submitted successfully",
		"data": gin.H{
			"registrationId":          accepted.ID,
			"submittedAt":             accepted.SubmittedAt,
			"status":                  accepted.Status,
			"estimatedProcessingTime": h.estimate,
		},
	})
}

// LookupPINCode handles PIN code address lookup. Format is checked before
// any upstream call is attempted.
func (h *RegistrationHandlers) LookupPINCode(c *gin.Context) {
	pinCode := c.Param("pincode")
	if !pinCodeParam.MatchString(pinCode) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid PIN code format"})
		return
	}

	address, err := h.postal.Lookup(c.Request.Context(), pinCode)
	if err != nil {
		switch err {
		case domain.ErrPINCodeNotFound:
			h.metrics.PINLookups.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Invalid PIN code or no data found"})
		case domain.ErrLookupUnavailable:
			h.metrics.PINLookups.WithLabelValues("unavailable").Inc()
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "PIN code lookup service temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "PIN code lookup failed"})
		}
		return
	}
	h.metrics.PINLookups.WithLabelValues("ok").Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"city":       address.City,
			"state":      address.State,
			"country":    address.Country,
			"pincode":    address.PINCode,
			"postOffice": address.PostOffice,
		},
	})
}

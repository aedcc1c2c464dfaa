package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shashi0808/udyam-registration-portal/domain"
)

// AdminHandlers handles the administrative HTTP requests
type AdminHandlers struct {
	regSvc   domain.RegistrationService
	apiKeys  domain.APIKeyService
	tokenSvc domain.TokenService
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(regSvc domain.RegistrationService, apiKeys domain.APIKeyService, tokenSvc domain.TokenService) *AdminHandlers {
	return &AdminHandlers{
		regSvc:   regSvc,
		apiKeys:  apiKeys,
		tokenSvc: tokenSvc,
	}
}

// LoginRequest represents an admin API key exchange
type LoginRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// registrationResponse is the wire shape of an accepted registration
type registrationResponse struct {
	ID            string    `json:"id"`
	AadhaarNumber string    `json:"aadhaarNumber"`
	PANNumber     string    `json:"panNumber"`
	ApplicantName string    `json:"applicantName"`
	Gender        string    `json:"gender"`
	DateOfBirth   string    `json:"dateOfBirth"`
	MobileNumber  string    `json:"mobileNumber"`
	EmailAddress  string    `json:"emailAddress"`
	Address       string    `json:"address"`
	PINCode       string    `json:"pinCode"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	SubmittedAt   time.Time `json:"submittedAt"`
	Status        string    `json:"status"`
}

// Login exchanges the configured admin API key for a bearer token
func (h *AdminHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !h.apiKeys.Verify(req.APIKey) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid API key"})
		return
	}

	token, err := h.tokenSvc.GenerateAdminToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":      token,
			"token_type": "Bearer",
		},
	})
}

// ListRegistrations returns all accepted registrations in insertion order
func (h *AdminHandlers) ListRegistrations(c *gin.Context) {
	records, total, err := h.regSvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to list registrations"})
		return
	}

	out := make([]registrationResponse, 0, len(records))
	for _, r := range records {
		out = append(out, registrationResponse{
			ID:            r.ID,
			AadhaarNumber: r.AadhaarNumber,
			PANNumber:     r.PANNumber,
			ApplicantName: r.ApplicantName,
			Gender:        r.Gender,
			DateOfBirth:   r.DateOfBirth,
			MobileNumber:  r.MobileNumber,
			EmailAddress:  r.EmailAddress,
			Address:       r.Address,
			PINCode:       r.PINCode,
			City:          r.City,
			State:         r.State,
			SubmittedAt:   r.SubmittedAt,
			Status:        r.Status,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    out,
		"total":   total,
	})
}

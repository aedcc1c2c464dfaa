package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashi0808/udyam-registration-portal/domain"
	"github.com/shashi0808/udyam-registration-portal/internal/mocks"
)

type adminFixture struct {
	regSvc   *mocks.MockRegistrationService
	apiKeys  *mocks.MockAPIKeyService
	tokenSvc *mocks.MockTokenService
	router   *gin.Engine
}

func setupAdminHandlers(t *testing.T) *adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &adminFixture{
		regSvc:   mocks.NewMockRegistrationService(),
		apiKeys:  mocks.NewMockAPIKeyService(),
		tokenSvc: mocks.NewMockTokenService(),
	}

	h := NewAdminHandlers(f.regSvc, f.apiKeys, f.tokenSvc)

	f.router = gin.New()
	f.router.POST("/admin/login", h.Login)
	f.router.GET("/admin/registrations", h.ListRegistrations)
	return f
}

func TestAdminLogin_Success(t *testing.T) {
	f := setupAdminHandlers(t)

	payload, _ := json.Marshal(gin.H{"apiKey": "test-admin-key"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			TokenType string `json:"token_type"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "mock_admin_token", body.Data.Token)
	assert.Equal(t, "Bearer", body.Data.TokenType)
}

func TestAdminLogin_InvalidKey(t *testing.T) {
	f := setupAdminHandlers(t)

	payload, _ := json.Marshal(gin.H{"apiKey": "wrong-key"})
	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAdminLogin_MissingKey(t *testing.T) {
	f := setupAdminHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRegistrations(t *testing.T) {
	f := setupAdminHandlers(t)

	submitted := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	f.regSvc.ListFunc = func(ctx context.Context) ([]domain.Registration, int64, error) {
		return []domain.Registration{
			{
				ID:            "UDYAM-ABC123DEF",
				AadhaarNumber: "123456789012",
				PANNumber:     "ABCDE1234F",
				ApplicantName: "Asha Verma",
				PINCode:       "110001",
				SubmittedAt:   submitted,
				Status:        domain.StatusPending,
			},
		}, 1, nil
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registrations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Total   int  `json:"total"`
		Data    []struct {
			ID            string `json:"id"`
			AadhaarNumber string `json:"aadhaarNumber"`
			PINCode       string `json:"pinCode"`
			Status        string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "UDYAM-ABC123DEF", body.Data[0].ID)
	assert.Equal(t, "123456789012", body.Data[0].AadhaarNumber)
	assert.Equal(t, "110001", body.Data[0].PINCode)
	assert.Equal(t, domain.StatusPending, body.Data[0].Status)
}

func TestListRegistrations_Empty(t *testing.T) {
	f := setupAdminHandlers(t)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registrations", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotNil(t, body.Data, "empty listing must serialize as [] not null")
	assert.Empty(t, body.Data)
	assert.Equal(t, 0, body.Total)
}

func TestListRegistrations_ServiceFailure(t *testing.T) {
	f := setupAdminHandlers(t)
	f.regSvc.ListFunc = func(ctx context.Context) ([]domain.Registration, int64, error) {
		return nil, 0, assert.AnError
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/registrations", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to list registrations")
}

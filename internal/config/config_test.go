package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.OTP_TTL)
	assert.Equal(t, 6, cfg.OTP_Length)
	assert.Equal(t, "123456", cfg.OTP_DemoCode)
	assert.Equal(t, 1200*time.Millisecond, cfg.PANValidationDelay)
	assert.Equal(t, 15*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, time.Hour, cfg.AdminTokenTTL)
	assert.Equal(t, "udyam-registration-portal", cfg.JWTIssuer)
	assert.Equal(t, "https://api.postalpincode.in", cfg.PostalBaseURL)
	assert.Equal(t, 5*time.Second, cfg.PostalTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.RedisAddr, "in-memory challenge store by default")
	assert.Empty(t, cfg.DSN, "in-memory registration store by default")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
app:
  port: 8080
  gin_mode: release
otp:
  ttl: 5m
  demo_mode: true
pan:
  validation_delay: 0s
rate_limit:
  window: 30s
  max_requests: 50
redis:
  addr: localhost:6379
cors:
  allowed_origins:
    - https://portal.example.com
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 5*time.Minute, cfg.OTP_TTL)
	assert.True(t, cfg.OTP_DemoMode)
	assert.Equal(t, time.Duration(0), cfg.PANValidationDelay)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 50, cfg.RateLimitMax)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"https://portal.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yml"))
	t.Setenv("PORT", "9999")
	t.Setenv("DEMO_MODE", "true")
	t.Setenv("MOCK_OTP", "999999")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("DATABASE_DSN", "postgres://user:pass@db/udyam")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("POSTAL_BASE_URL", "http://stub.local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.True(t, cfg.OTP_DemoMode)
	assert.Equal(t, "999999", cfg.OTP_DemoCode)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "postgres://user:pass@db/udyam", cfg.DSN)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "http://stub.local", cfg.PostalBaseURL)
}

func TestLoad_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("otp:\n  ttl: not-a-duration\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OTP TTL")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app: [not a mapping"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}

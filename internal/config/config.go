package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type OTPFileConfig struct {
	TTL      string `yaml:"ttl"`
	Length   int    `yaml:"length"`
	DemoMode bool   `yaml:"demo_mode"`
	DemoCode string `yaml:"demo_code"`
}

type PANFileConfig struct {
	ValidationDelay string `yaml:"validation_delay"`
}

type RateLimitFileConfig struct {
	Window      string `yaml:"window"`
	MaxRequests int    `yaml:"max_requests"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type AdminFileConfig struct {
	APIKeyHash string `yaml:"api_key_hash"`
	JWTSecret  string `yaml:"jwt_secret"`
	JWTIssuer  string `yaml:"jwt_issuer"`
	TokenTTL   string `yaml:"token_ttl"`
}

type PostalFileConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type CORSFileConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type ConfigFile struct {
	App       AppConfig           `yaml:"app"`
	OTP       OTPFileConfig       `yaml:"otp"`
	PAN       PANFileConfig       `yaml:"pan"`
	RateLimit RateLimitFileConfig `yaml:"rate_limit"`
	Redis     RedisConfig         `yaml:"redis"`
	Database  DatabaseConfig      `yaml:"database"`
	Twilio    TwilioConfig        `yaml:"twilio"`
	Admin     AdminFileConfig     `yaml:"admin"`
	Postal    PostalFileConfig    `yaml:"postal"`
	CORS      CORSFileConfig      `yaml:"cors"`
}

// Config is the resolved runtime configuration
type Config struct {
	Port    string
	GinMode string

	OTP_TTL      time.Duration
	OTP_Length   int
	OTP_DemoMode bool
	OTP_DemoCode string

	PANValidationDelay time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DSN string

	TwilioSID   string
	TwilioToken string
	TwilioFrom  string

	AdminAPIKeyHash string
	JWTSecret       string
	JWTIssuer       string
	AdminTokenTTL   time.Duration

	PostalBaseURL string
	PostalTimeout time.Duration

	AllowedOrigins []string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the yaml config file and resolves durations. The path can be
// overridden with CONFIG_PATH; a missing file falls back to defaults so
// demo deployments work with no config at all.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")

	configFile, err := loadConfigFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		configFile = &ConfigFile{}
	}
	applyDefaults(configFile)

	otpTTL, err := time.ParseDuration(configFile.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}
	panDelay, err := time.ParseDuration(configFile.PAN.ValidationDelay)
	if err != nil {
		return nil, fmt.Errorf("invalid PAN validation delay: %w", err)
	}
	rlWindow, err := time.ParseDuration(configFile.RateLimit.Window)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit window: %w", err)
	}
	tokenTTL, err := time.ParseDuration(configFile.Admin.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid admin token TTL: %w", err)
	}
	postalTimeout, err := time.ParseDuration(configFile.Postal.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid postal timeout: %w", err)
	}

	return &Config{
		Port:               env("PORT", fmt.Sprintf("%d", configFile.App.Port)),
		GinMode:            configFile.App.GinMode,
		OTP_TTL:            otpTTL,
		OTP_Length:         configFile.OTP.Length,
		OTP_DemoMode:       env("DEMO_MODE", "") == "true" || configFile.OTP.DemoMode,
		OTP_DemoCode:       env("MOCK_OTP", configFile.OTP.DemoCode),
		PANValidationDelay: panDelay,
		RateLimitWindow:    rlWindow,
		RateLimitMax:       configFile.RateLimit.MaxRequests,
		RedisAddr:          env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword:      env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:            configFile.Redis.DB,
		DSN:                env("DATABASE_DSN", configFile.Database.DSN),
		TwilioSID:          env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:        env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:         env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
		AdminAPIKeyHash:    env("ADMIN_API_KEY_HASH", configFile.Admin.APIKeyHash),
		JWTSecret:          env("JWT_SECRET", configFile.Admin.JWTSecret),
		JWTIssuer:          configFile.Admin.JWTIssuer,
		AdminTokenTTL:      tokenTTL,
		PostalBaseURL:      env("POSTAL_BASE_URL", configFile.Postal.BaseURL),
		PostalTimeout:      postalTimeout,
		AllowedOrigins:     configFile.CORS.AllowedOrigins,
	}, nil
}

func applyDefaults(cf *ConfigFile) {
	if cf.App.Port == 0 {
		cf.App.Port = 5000
	}
	if cf.OTP.TTL == "" {
		cf.OTP.TTL = "10m"
	}
	if cf.OTP.Length == 0 {
		cf.OTP.Length = 6
	}
	if cf.OTP.DemoCode == "" {
		cf.OTP.DemoCode = "123456"
	}
	if cf.PAN.ValidationDelay == "" {
		cf.PAN.ValidationDelay = "1200ms"
	}
	if cf.RateLimit.Window == "" {
		cf.RateLimit.Window = "15s"
	}
	if cf.RateLimit.MaxRequests == 0 {
		cf.RateLimit.MaxRequests = 100
	}
	if cf.Admin.TokenTTL == "" {
		cf.Admin.TokenTTL = "1h"
	}
	if cf.Admin.JWTIssuer == "" {
		cf.Admin.JWTIssuer = "udyam-registration-portal"
	}
	if cf.Postal.BaseURL == "" {
		cf.Postal.BaseURL = "https://api.postalpincode.in"
	}
	if cf.Postal.Timeout == "" {
		cf.Postal.Timeout = "5s"
	}
	if len(cf.CORS.AllowedOrigins) == 0 {
		cf.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

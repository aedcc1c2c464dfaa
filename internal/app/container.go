package app

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/shashi0808/udyam-registration-portal/domain"
	"github.com/shashi0808/udyam-registration-portal/internal/config"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/auth"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/database"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/notifications"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/postal"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/repositories"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/storage"
	"github.com/shashi0808/udyam-registration-portal/internal/metrics"
	"github.com/shashi0808/udyam-registration-portal/internal/services"
)

// Container holds all dependencies. Stores default to in-memory backends;
// Redis and Postgres are opted into through configuration without
// touching the business logic.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	ChallengeRepo    domain.ChallengeRepository
	RegistrationRepo domain.RegistrationRepository

	NotificationSvc domain.NotificationService
	OTPGenerator    domain.OTPGenerator
	OTPSvc          *services.OTPServiceImpl
	RegistrationSvc domain.RegistrationService
	PostalClient    domain.PostalLookup
	APIKeySvc       domain.APIKeyService
	TokenSvc        domain.TokenService

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initStores(); err != nil {
		return nil, err
	}
	c.initServices()
	c.initMetrics()

	return c, nil
}

func (c *Container) initStores() error {
	if c.Config.RedisAddr != "" {
		c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
		c.ChallengeRepo = repositories.NewChallengeRepository(c.RedisClient, c.Config.OTP_TTL)
	} else {
		c.ChallengeRepo = storage.NewInMemoryChallengeStore()
	}

	if c.Config.DSN != "" {
		db, err := database.Open(c.Config.DSN)
		if err != nil {
			return err
		}
		if err := database.AutoMigrate(db); err != nil {
			return err
		}
		c.DB = db
		c.RegistrationRepo = repositories.NewRegistrationRepository(db)
	} else {
		c.RegistrationRepo = storage.NewInMemoryRegistrationStore()
	}

	return nil
}

func (c *Container) initServices() {
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	if c.Config.OTP_DemoMode {
		log.Printf("otp: demo mode enabled, using fixed code")
		c.OTPGenerator = services.NewFixedOTPGenerator(c.Config.OTP_DemoCode)
	} else {
		c.OTPGenerator = services.NewRandomOTPGenerator(c.Config.OTP_Length)
	}

	c.OTPSvc = services.NewOTPService(c.ChallengeRepo, c.NotificationSvc, c.OTPGenerator, c.Config.OTP_TTL)
	c.RegistrationSvc = services.NewRegistrationService(c.RegistrationRepo, c.OTPSvc, c.Config.PANValidationDelay)
	c.PostalClient = postal.NewClient(c.Config.PostalBaseURL, c.Config.PostalTimeout)
	c.APIKeySvc = auth.NewAPIKeyService(c.Config.AdminAPIKeyHash)
	c.TokenSvc = auth.NewTokenService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AdminTokenTTL)
}

func (c *Container) initMetrics() {
	c.Registry = prometheus.NewRegistry()
	c.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	c.Metrics = metrics.New(c.Registry)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

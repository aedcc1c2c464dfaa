package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shashi0808/udyam-registration-portal/internal/config"
	httpx "github.com/shashi0808/udyam-registration-portal/internal/http"
	"github.com/shashi0808/udyam-registration-portal/internal/http/handlers"
	"github.com/shashi0808/udyam-registration-portal/internal/http/middleware"
	"github.com/shashi0808/udyam-registration-portal/internal/infrastructure/database"
	"github.com/shashi0808/udyam-registration-portal/internal/services"
)

// Run wires the container into the HTTP surface and serves until the
// listener fails.
func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	if c.RedisClient != nil {
		if err := database.Ping(context.Background(), c.RedisClient); err != nil {
			return err
		}
	}

	regH := handlers.NewRegistrationHandlers(
		c.OTPSvc,
		c.RegistrationSvc,
		c.PostalClient,
		c.Metrics,
		c.OTPSvc.ExpirySeconds(),
		services.EstimatedProcessingTime,
	)
	admH := handlers.NewAdminHandlers(c.RegistrationSvc, c.APIKeySvc, c.TokenSvc)
	adminMW := middleware.AdminAuth(c.TokenSvc)

	r := httpx.BuildRouter(regH, admH, adminMW, httpx.RouterOptions{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitWindow: cfg.RateLimitWindow,
		RateLimitMax:    cfg.RateLimitMax,
		Registry:        c.Registry,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shashi0808/udyam-registration-portal/internal/http/handlers"
	"github.com/shashi0808/udyam-registration-portal/internal/http/middleware"
)

// RouterOptions carries the transport-level settings for BuildRouter
type RouterOptions struct {
	AllowedOrigins  []string
	RateLimitWindow time.Duration
	RateLimitMax    int
	Registry        *prometheus.Registry
}

// BuildRouter wires the HTTP surface of the portal
func BuildRouter(rh *handlers.RegistrationHandlers, ah *handlers.AdminHandlers, adminMW gin.HandlerFunc, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID(), middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     opts.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.NewRateLimiter(opts.RateLimitWindow, opts.RateLimitMax).Handler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK", "timestamp": time.Now().UTC()})
	})
	if opts.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/api/v1")
	v1.GET("", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Udyam Registration API v1",
			"endpoints": gin.H{
				"sendOTP":            "POST /send-otp",
				"verifyOTP":          "POST /verify-otp",
				"validatePAN":        "POST /validate-pan",
				"submitRegistration": "POST /submit-registration",
				"pinLookup":          "GET /pincode/:pincode",
			},
		})
	})
	v1.POST("/send-otp", middleware.ValidateRequest("sendOTP"), rh.SendOTP)
	v1.POST("/verify-otp", middleware.ValidateRequest("verifyOTP"), rh.VerifyOTP)
	v1.POST("/validate-pan", middleware.ValidateRequest("validatePAN"), rh.ValidatePAN)
	v1.POST("/submit-registration", middleware.ValidateRequest("submitRegistration"), rh.SubmitRegistration)
	v1.GET("/pincode/:pincode", rh.LookupPINCode)

	adm := r.Group("/admin")
	adm.POST("/login", ah.Login)
	adm.GET("/registrations", adminMW, ah.ListRegistrations)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"success": false, "error": "Route not found"})
	})

	return r
}

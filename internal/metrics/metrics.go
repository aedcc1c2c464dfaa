package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the registration workflow
type Metrics struct {
	OTPIssued             prometheus.Counter
	OTPVerified           prometheus.Counter
	OTPFailures           *prometheus.CounterVec
	RegistrationsAccepted prometheus.Counter
	PINLookups            *prometheus.CounterVec
}

// New registers and returns the workflow metrics
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OTPIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "udyam_otp_issued_total",
			Help: "Number of OTP challenges issued.",
		}),
		OTPVerified: factory.NewCounter(prometheus.CounterOpts{
			Name: "udyam_otp_verified_total",
			Help: "Number of successful OTP verifications.",
		}),
		OTPFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udyam_otp_failures_total",
			Help: "Number of failed OTP verifications by reason.",
		}, []string{"reason"}),
		RegistrationsAccepted: factory.NewCounter(prometheus.CounterOpts{
			Name: "udyam_registrations_accepted_total",
			Help: "Number of accepted registration submissions.",
		}),
		PINLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "udyam_pincode_lookups_total",
			Help: "Number of PIN code lookups by outcome.",
		}, []string{"outcome"}),
	}
}

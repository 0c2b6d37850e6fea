package service

import "github.com/prometheus/client_golang/prometheus"

// Auth event names used as the "event" label.
const (
	EventRegister       = "register"
	EventLogin          = "login"
	EventLogout         = "logout"
	EventRefresh        = "refresh"
	EventVerifyEmail    = "verify_email"
	EventForgotPassword = "forgot_password"
	EventResetPassword  = "reset_password"
	EventChangePassword = "change_password"
)

// AuthMetrics counts authentication events by outcome. A nil *AuthMetrics
// records nothing.
type AuthMetrics struct {
	events *prometheus.CounterVec
}

func NewAuthMetrics(reg prometheus.Registerer, namespace string) *AuthMetrics {
	m := &AuthMetrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_events_total",
			Help:      "Authentication events by type and outcome.",
		}, []string{"event", "outcome"}),
	}
	reg.MustRegister(m.events)
	return m
}

func (m *AuthMetrics) observe(event string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.events.WithLabelValues(event, outcome).Inc()
}

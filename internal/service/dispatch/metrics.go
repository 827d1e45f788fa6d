package dispatch

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/apperr"
)

// Metrics holds dispatch collectors. Nil fields are skipped.
type Metrics struct {
	Outcomes      *prometheus.CounterVec
	ForcedOnline  prometheus.Counter
	Unfulfillable prometheus.Counter
	Duration      prometheus.Histogram
}

func (m Metrics) observe(err error, roundRobin bool, seconds float64) {
	if m.Outcomes != nil {
		m.Outcomes.WithLabelValues(outcomeOf(err, roundRobin)).Inc()
	}
	if m.Duration != nil {
		m.Duration.Observe(seconds)
	}
}

func (m Metrics) forcedOnline() {
	if m.ForcedOnline != nil {
		m.ForcedOnline.Inc()
	}
}

func (m Metrics) unfulfillable() {
	if m.Unfulfillable != nil {
		m.Unfulfillable.Inc()
	}
}

func outcomeOf(err error, roundRobin bool) string {
	switch {
	case err == nil && roundRobin:
		return "round_robin"
	case err == nil:
		return "assigned"
	case errors.Is(err, apperr.ErrNoLocationData):
		return "no_location"
	case errors.Is(err, apperr.ErrNoCouriersExist):
		return "no_couriers"
	case errors.Is(err, apperr.ErrNoAvailableCourier):
		return "no_available"
	case errors.Is(err, apperr.ErrNoScorableCourier):
		return "no_scorable"
	case errors.Is(err, apperr.ErrAlreadyAccepted):
		return "already_accepted"
	case errors.Is(err, apperr.ErrOrderClosed):
		return "closed"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}

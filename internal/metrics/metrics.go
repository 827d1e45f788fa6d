package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGeocodeRetriesTotal returns a counter of geocoder retry attempts
func NewGeocodeRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_retries_total",
		Help: "Total number of retry attempts performed against the geocoding provider",
	})
}

// NewGeocodeFailuresTotal returns a counter of lookups that ended as unknown location
func NewGeocodeFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geocode_failures_total",
		Help: "Total number of postal code lookups that resolved to no location",
	})
}

// NewAssignmentsTotal returns assignment attempts by outcome
func NewAssignmentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_assignments_total",
		Help: "Assignment attempts by outcome",
	}, []string{"outcome"})
}

// NewAssignDuration returns the assignment latency histogram
func NewAssignDuration() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_assign_duration_seconds",
		Help:    "Duration of a single assignment attempt",
		Buckets: prometheus.DefBuckets,
	})
}

// NewForcedOnlineTotal counts couriers switched online by dispatch
func NewForcedOnlineTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_courier_forced_online_total",
		Help: "Total number of couriers forced online because nobody was online",
	})
}

// NewUnfulfillableTotal counts orders cancelled for lack of couriers
func NewUnfulfillableTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_orders_unfulfillable_total",
		Help: "Total number of orders cancelled as no_delivery_available",
	})
}

// NewOffersExpiredTotal counts offers auto-declined by the sweep
func NewOffersExpiredTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_offers_expired_total",
		Help: "Total number of offers auto-declined after the accept deadline",
	})
}

// HTTP holds the per-route request collectors of the API.
type HTTP struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewHTTP returns request collectors labelled by method, route and status.
func NewHTTP() *HTTP {
	labels := []string{"method", "route", "status"}
	return &HTTP{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dispatch_http_requests_total",
			Help: "HTTP requests served by the dispatch API",
		}, labels),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dispatch_http_request_duration_seconds",
			Help:    "HTTP request latency of the dispatch API",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}, labels),
	}
}

// Collectors lists the collectors for Register.
func (h *HTTP) Collectors() []prometheus.Collector {
	return []prometheus.Collector{h.Requests, h.Duration}
}

// Register registers collectors. Collectors that are already registered
// are skipped.
func Register(reg prometheus.Registerer, cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

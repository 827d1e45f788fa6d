package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/service/dispatch"
)

type metricsOut struct {
	dig.Out
	RateLimitExceeded prometheus.Counter `name:"rate_limit_exceeded_total"`
	GeocodeRetries    prometheus.Counter `name:"geocode_retries_total"`
	GeocodeFailures   prometheus.Counter `name:"geocode_failures_total"`
	OffersExpired     prometheus.Counter `name:"offers_expired_total"`
	Dispatch          dispatch.Metrics
	HTTP              *metrics.HTTP
}

func newMetrics(reg prometheus.Registerer) (metricsOut, error) {
	out := metricsOut{
		RateLimitExceeded: metrics.NewRateLimitExceededTotal(),
		GeocodeRetries:    metrics.NewGeocodeRetriesTotal(),
		GeocodeFailures:   metrics.NewGeocodeFailuresTotal(),
		OffersExpired:     metrics.NewOffersExpiredTotal(),
		Dispatch: dispatch.Metrics{
			Outcomes:      metrics.NewAssignmentsTotal(),
			ForcedOnline:  metrics.NewForcedOnlineTotal(),
			Unfulfillable: metrics.NewUnfulfillableTotal(),
			Duration:      metrics.NewAssignDuration(),
		},
		HTTP: metrics.NewHTTP(),
	}
	collectors := append(out.HTTP.Collectors(),
		out.RateLimitExceeded,
		out.GeocodeRetries,
		out.GeocodeFailures,
		out.OffersExpired,
		out.Dispatch.Outcomes,
		out.Dispatch.ForcedOnline,
		out.Dispatch.Unfulfillable,
		out.Dispatch.Duration,
	)
	if err := metrics.Register(reg, collectors...); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container, newMetrics)
}

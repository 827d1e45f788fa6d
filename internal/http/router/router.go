// Package router assembles the chi routing tree of the dispatch API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-dispatch/internal/http/handlers"
	appmw "courier-dispatch/internal/http/middleware"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/metrics"
)

const requestTimeout = 20 * time.Second

// Routes holds everything New mounts. RateLimit, Metrics and HTTP may be nil.
type Routes struct {
	Logger    logx.Logger
	Base      *handlers.Handlers
	Couriers  *handlers.CourierHandler
	Orders    *handlers.OrderHandler
	Offers    *handlers.OfferHandler
	RateLimit *ratelimit.Middleware
	Metrics   http.Handler
	HTTP      *metrics.HTTP
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(rt Routes) http.Handler {
	logger := rt.Logger
	if logger == nil {
		logger = logx.Nop()
	}
	metrics := rt.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(logger, rt.HTTP))
	r.Use(middleware.Recoverer)

	r.Get("/ping", rt.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(rt.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", metrics)
	r.NotFound(rt.Base.NotFound)
	r.MethodNotAllowed(rt.Base.MethodNotAllowed)

	r.Group(func(r chi.Router) {
		if rt.RateLimit != nil {
			r.Use(rt.RateLimit.Handler())
		}
		// assignment scoring can wait on the geocoder
		r.Use(middleware.Timeout(requestTimeout))

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", rt.Orders.Create)
			r.Get("/{id}/tracking", rt.Orders.Tracking)
			r.Post("/{id}/reassign", rt.Orders.Reassign)
		})

		r.Route("/couriers", func(r chi.Router) {
			r.Post("/", rt.Couriers.Create)
			r.Get("/", rt.Couriers.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.Couriers.GetByID)
				r.Put("/online", rt.Couriers.SetOnline)
				r.Put("/location", rt.Couriers.UpdateLocation)
				r.Get("/offer", rt.Offers.Current)
				r.Post("/offer/accept", rt.Offers.Accept)
				r.Post("/offer/decline", rt.Offers.Decline)
				r.Put("/orders/{orderID}/status", rt.Offers.UpdateStatus)
			})
		})
	})

	return r
}

// Package app wires the dispatch API and worker processes.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/gateway/geocode"
	"courier-dispatch/internal/http/handlers"
	"courier-dispatch/internal/http/middleware/ratelimit"
	"courier-dispatch/internal/http/pprofserver"
	"courier-dispatch/internal/http/router"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/metrics"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/courier"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/expiry"
	"courier-dispatch/internal/service/orders"
	"courier-dispatch/internal/transport/kafka"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    func(dsn string) error
	registerer prometheus.Registerer
	logFatalf  func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		registerer: prometheus.DefaultRegisterer,
		logFatalf:  log.Fatalf,
	}
}

// WithConfig replaces config.Load.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate sets the schema migration function.
func (b *ContainerBuilder) WithMigrate(fn func(dsn string) error) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithRegisterer sets where collectors are registered.
func (b *ContainerBuilder) WithRegisterer(reg prometheus.Registerer) *ContainerBuilder {
	if reg != nil {
		b.registerer = reg
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.registerer); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	reg prometheus.Registerer,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		func() prometheus.Registerer { return reg },
		loadConfig,
		NewLogger,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate func(string) error) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(cfg.DB.DSN()); err != nil {
			pool.Close()
			return nil, err
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

// dispatchEvents is the event sink shared by the engine and the orchestrator.
type dispatchEvents interface {
	CourierAssigned(ctx context.Context, res domain.AssignResult) error
	CourierForcedOnline(ctx context.Context, orderID, courierID int64) error
	OrderUnfulfillable(ctx context.Context, orderID int64, reason string) error
}

func newPublisher(cfg *config.Config) (*kafka.Publisher, error) {
	return kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
}

func newDispatchEvents(p *kafka.Publisher) dispatchEvents {
	if p == nil {
		return kafka.NopPublisher{}
	}
	return p
}

type geocodeIn struct {
	dig.In
	Cfg      *config.Config
	Logger   logx.Logger
	Retries  prometheus.Counter `name:"geocode_retries_total"`
	Failures prometheus.Counter `name:"geocode_failures_total"`
}

func newResolver(in geocodeIn) *geocode.Resolver {
	g := in.Cfg.Geocoder
	client := geocode.NewClient(geocode.ClientConfig{
		BaseURL:     g.BaseURL,
		UserAgent:   g.UserAgent,
		Timeout:     g.Timeout,
		MinInterval: g.MinInterval,
	}, nil)
	retrying := geocode.NewRetryingClient(client, in.Logger, in.Retries, geocode.RetryConfig{
		MaxAttempts: g.MaxAttempts,
		BaseDelay:   g.BaseDelay,
		MaxDelay:    g.MaxDelay,
	})
	return geocode.NewResolver(retrying, in.Logger, in.Failures, g.CacheTTL)
}

func newCourierService(
	cfg *config.Config,
	couriers *repository.CourierRepo,
	ords *repository.OrderRepo,
	logger logx.Logger,
) *courier.Service {
	return courier.NewService(couriers, ords, cfg.Dispatch.OperationTimeout, logger)
}

type engineIn struct {
	dig.In
	Cfg         *config.Config
	Orders      *repository.OrderRepo
	Restaurants *repository.RestaurantRepo
	Pool        *courier.Service
	Resolver    *geocode.Resolver
	Events      dispatchEvents
	Metrics     dispatch.Metrics
	Logger      logx.Logger
}

func newEngine(in engineIn) *dispatch.Engine {
	d := in.Cfg.Dispatch
	return dispatch.NewEngine(in.Orders, in.Restaurants, in.Pool, in.Resolver, in.Events, in.Metrics,
		dispatch.Config{
			TieBreakKm:         d.TieBreakKm,
			ScoringConcurrency: d.ScoringConcurrency,
			Country:            in.Cfg.Geocoder.Country,
			OperationTimeout:   d.OperationTimeout,
		},
		in.Logger,
	)
}

type orchestratorIn struct {
	dig.In
	Cfg     *config.Config
	Orders  *repository.OrderRepo
	Pool    *courier.Service
	Engine  *dispatch.Engine
	Events  dispatchEvents
	Metrics dispatch.Metrics
	Logger  logx.Logger
}

func newOrchestrator(in orchestratorIn) *dispatch.Orchestrator {
	return dispatch.NewOrchestrator(in.Orders, in.Pool, in.Engine, in.Events, in.Metrics,
		in.Cfg.Dispatch.OperationTimeout, in.Logger)
}

type ordersIn struct {
	dig.In
	Cfg          *config.Config
	Orders       *repository.OrderRepo
	Couriers     *repository.CourierRepo
	Restaurants  *repository.RestaurantRepo
	Engine       *dispatch.Engine
	Orchestrator *dispatch.Orchestrator
	Logger       logx.Logger
}

func newOrderService(in ordersIn) *orders.Service {
	return orders.NewService(in.Orders, in.Couriers, in.Restaurants, in.Engine, in.Orchestrator,
		orders.Config{
			AcceptDeadline:   in.Cfg.Dispatch.AcceptDeadline,
			OperationTimeout: in.Cfg.Dispatch.OperationTimeout,
		},
		in.Logger,
	)
}

type watcherIn struct {
	dig.In
	Cfg          *config.Config
	Orders       *repository.OrderRepo
	Orchestrator *dispatch.Orchestrator
	Expired      prometheus.Counter `name:"offers_expired_total"`
	Logger       logx.Logger
}

func newWatcher(in watcherIn) *expiry.Watcher {
	return expiry.NewWatcher(in.Orders, in.Orchestrator, expiry.Config{
		Interval: in.Cfg.Dispatch.SweepInterval,
		Deadline: in.Cfg.Dispatch.AcceptDeadline,
	}, in.Expired, in.Logger)
}

func newSweeper(w *expiry.Watcher) sweeper { return w }

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewOrderRepo,
		repository.NewCourierRepo,
		repository.NewRestaurantRepo,
		newPublisher,
		newDispatchEvents,
		newResolver,
		newCourierService,
		newEngine,
		newOrchestrator,
		newOrderService,
		newWatcher,
		newSweeper,
	)
}

type serverIn struct {
	dig.In
	Cfg     *config.Config
	Handler http.Handler
}

type serversOut struct {
	dig.Out
	Main  *http.Server
	Pprof *http.Server `name:"pprof_server"`
}

func newServers(in serverIn) serversOut {
	return serversOut{
		Main: &http.Server{
			Addr:              fmt.Sprintf(":%d", in.Cfg.Port),
			Handler:           in.Handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Pprof: pprofserver.New(pprofserver.Config{
			Addr: in.Cfg.Pprof.Addr,
			User: in.Cfg.Pprof.User,
			Pass: in.Cfg.Pprof.Pass,
		}),
	}
}

func newRouter(
	logger logx.Logger,
	base *handlers.Handlers,
	couriers *handlers.CourierHandler,
	ords *handlers.OrderHandler,
	offers *handlers.OfferHandler,
	rl *ratelimit.Middleware,
	hm *metrics.HTTP,
	reg prometheus.Registerer,
) http.Handler {
	var scrape http.Handler
	if g, ok := reg.(prometheus.Gatherer); ok {
		scrape = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return router.New(router.Routes{
		Logger:    logger,
		Base:      base,
		Couriers:  couriers,
		Orders:    ords,
		Offers:    offers,
		RateLimit: rl,
		Metrics:   scrape,
		HTTP:      hm,
	})
}

func registerHTTP(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		func(logger logx.Logger, svc *courier.Service) *handlers.CourierHandler {
			return handlers.NewCourierHandler(logger, svc)
		},
		func(logger logx.Logger, svc *orders.Service) *handlers.OrderHandler {
			return handlers.NewOrderHandler(logger, svc)
		},
		func(logger logx.Logger, svc *orders.Service) *handlers.OfferHandler {
			return handlers.NewOfferHandler(logger, svc)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		newServers,
	)
}

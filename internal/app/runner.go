package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// sweeper is the part of expiry.Watcher the API process runs.
type sweeper interface {
	Run(ctx context.Context) error
}

// Runner runs the HTTP API together with the expiry sweep.
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		panic(err)
	}
}

type apiIn struct {
	dig.In
	Ctx       context.Context
	Server    *http.Server
	Pprof     *http.Server `name:"pprof_server" optional:"true"`
	Pool      *pgxpool.Pool
	Publisher *kafka.Publisher `optional:"true"`
	Watcher   sweeper          `optional:"true"`
	Logger    logx.Logger
}

func run(container *dig.Container) error {
	return container.Invoke(apiRun)
}

func apiRun(in apiIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, "dispatch api", in.Logger, errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, "pprof", in.Logger, errCh)
	}

	sweepCtx, stopSweep := context.WithCancel(in.Ctx)
	var wg sync.WaitGroup
	if in.Watcher != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := in.Watcher.Run(sweepCtx); err != nil && !errors.Is(err, context.Canceled) {
				in.Logger.Error("expiry sweep stopped", logx.Err(err))
			}
		}()
	}

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down dispatch api")
		runErr = in.Ctx.Err()
	case runErr = <-errCh:
		in.Logger.Error("server failed", logx.Err(runErr))
	}

	stopSweep()
	wg.Wait()
	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	closeResources(in.Pool, in.Publisher, in.Logger)
	return runErr
}

func startServer(server *http.Server, name string, logger logx.Logger, errCh chan<- error) {
	go func() {
		logger.Info("listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, publisher *kafka.Publisher, logger logx.Logger) {
	if err := publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"courier-dispatch/internal/config"
	"courier-dispatch/internal/logx"
	"courier-dispatch/internal/repository"
	"courier-dispatch/internal/service/dispatch"
	"courier-dispatch/internal/service/orders"
	"courier-dispatch/internal/transport/kafka"
)

func newProcessor(
	ords *repository.OrderRepo,
	engine *dispatch.Engine,
	orchestrator *dispatch.Orchestrator,
	logger logx.Logger,
) *orders.Processor {
	return orders.NewProcessor(ords, engine, orchestrator, logger)
}

func newConsumer(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
	k := cfg.Kafka
	return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.OrdersTopic,
		makeOrdersKafka(p, cfg.Dispatch.OperationTimeout))
}

func registerWorker(container *dig.Container) error {
	return provideAll(container, newProcessor, newConsumer)
}

// WorkerRunner runs the Kafka order-event worker.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker until its context is cancelled and panics on any
// other failure.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	publisher *kafka.Publisher,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS for the worker")
	}
	defer closeWorker(pool, logger, consumer, publisher)

	logger.Info("dispatch worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, publisher *kafka.Publisher) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka consumer close error", logx.Err(err))
		}
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}

package orders

import (
	"context"
	"errors"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Processor applies order events to the dispatch engine.
type Processor struct {
	orders   orderRepository
	engine   Assigner
	reassign Reassigner
	factory  *actionFactory
	logger   logx.Logger
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(orders orderRepository, engine Assigner, reassign Reassigner, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		orders:   orders,
		engine:   engine,
		reassign: reassign,
		logger:   logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onDeclined)
	return p
}

// Handle processes a single orders.Event. Only store failures are returned,
// so the consumer retries them; dispatch outcomes are logged and dropped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Event)
	if !ok {
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	o, err := p.orders.Get(ctx, e.OrderID)
	if err != nil {
		return err
	}
	if o == nil {
		p.logger.Warn("order event for unknown order", logx.Int64("order_id", e.OrderID))
		return nil
	}
	if o.AssignmentStatus != domain.AssignmentNone || o.Closed() {
		p.logger.Debug("order already in dispatch, skipping",
			logx.Int64("order_id", o.ID),
			logx.String("assignment_status", string(o.AssignmentStatus)),
		)
		return nil
	}
	if o.RestaurantID == nil {
		p.logger.Warn("order has no restaurant", logx.Int64("order_id", o.ID))
		return nil
	}
	_, err = p.engine.Assign(ctx, o, *o.RestaurantID, nil)
	return p.settle(e, err)
}

func (p *Processor) onDeclined(ctx context.Context, e Event) error {
	_, err := p.reassign.Reassign(ctx, e.OrderID)
	return p.settle(e, err)
}

func (p *Processor) settle(e Event, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, apperr.ErrPersistence) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return err
	}
	p.logger.Info("order event not applied",
		logx.Int64("order_id", e.OrderID),
		logx.String("order_event", e.Event),
		logx.Err(err),
	)
	return nil
}

package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Orchestrator re-runs assignment after a decline or an expired offer.
type Orchestrator struct {
	orders  orderStore
	pool    courierPool
	engine  assigner
	events  eventPublisher
	metrics Metrics
	logger  logx.Logger
	timeout time.Duration
}

// NewOrchestrator creates an Orchestrator. events may be nil.
func NewOrchestrator(orders orderStore, pool courierPool, engine assigner, events eventPublisher, m Metrics, timeout time.Duration, logger logx.Logger) *Orchestrator {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Orchestrator{
		orders:  orders,
		pool:    pool,
		engine:  engine,
		events:  events,
		metrics: m,
		logger:  logger,
		timeout: timeout,
	}
}

// Reassign finds the next courier for an order. Accepted and closed orders
// are left untouched. When every online courier has declined, the decline
// set is cleared so the rotation can continue. Terminal failures cancel the
// order as unfulfillable; other failures leave it for the next sweep.
func (o *Orchestrator) Reassign(ctx context.Context, orderID int64) (domain.AssignResult, error) {
	if orderID <= 0 {
		return domain.AssignResult{}, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	order, err := o.orders.Get(ctx, orderID)
	if err != nil {
		return domain.AssignResult{}, err
	}
	if order == nil {
		return domain.AssignResult{}, apperr.ErrNotFound
	}
	if order.Accepted() {
		return domain.AssignResult{}, apperr.ErrAlreadyAccepted
	}
	if order.Closed() {
		return domain.AssignResult{}, apperr.ErrOrderClosed
	}
	if order.RestaurantID == nil {
		return domain.AssignResult{}, fmt.Errorf("%w: order %d has no restaurant", apperr.ErrNoLocationData, orderID)
	}

	declined := order.DeclinedIDs
	if len(declined) > 0 {
		declined, err = o.resetIfCycled(ctx, order)
		if err != nil {
			return domain.AssignResult{}, err
		}
	}

	res, err := o.engine.Assign(ctx, order, *order.RestaurantID, declined)
	if err == nil {
		return res, nil
	}
	if !apperr.IsTerminal(err) {
		o.logger.Info("reassignment deferred",
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
		return domain.AssignResult{}, err
	}

	ok, markErr := o.orders.MarkUnfulfillable(ctx, orderID)
	if markErr != nil {
		return domain.AssignResult{}, errors.Join(err, markErr)
	}
	if ok {
		o.metrics.unfulfillable()
		o.logger.Warn("order cancelled, no delivery available",
			logx.Event("order_unfulfillable"),
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
		if o.events != nil {
			if pubErr := o.events.OrderUnfulfillable(ctx, orderID, outcomeOf(err, false)); pubErr != nil {
				o.logger.Warn("publish order unfulfillable", logx.Int64("order_id", orderID), logx.Err(pubErr))
			}
		}
	}
	return domain.AssignResult{}, err
}

// resetIfCycled clears the decline set once it covers every online courier.
func (o *Orchestrator) resetIfCycled(ctx context.Context, order *domain.Order) (domain.IDList, error) {
	online, err := o.pool.ListOnline(ctx)
	if err != nil {
		return nil, err
	}
	if len(online) == 0 {
		return order.DeclinedIDs, nil
	}
	ids := make([]int64, 0, len(online))
	for _, c := range online {
		ids = append(ids, c.ID)
	}
	if !order.DeclinedIDs.ContainsAll(ids) {
		return order.DeclinedIDs, nil
	}

	ok, err := o.orders.ResetDeclined(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: order %d was accepted or closed during reassignment", apperr.ErrConflict, order.ID)
	}
	o.logger.Info("every online courier declined, starting a new cycle",
		logx.Event("decline_cycle_reset"),
		logx.Int64("order_id", order.ID),
		logx.Int64s("declined", order.DeclinedIDs),
	)
	order.DeclinedIDs = domain.IDList{}
	order.AssignmentStatus = domain.AssignmentPending
	return order.DeclinedIDs, nil
}

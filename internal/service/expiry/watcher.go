// Package expiry auto-declines offers nobody answered in time and retries
// orders that were left without a courier.
package expiry

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Config holds the sweep settings.
type Config struct {
	Interval time.Duration
	Deadline time.Duration
}

// Stats summarizes one sweep.
type Stats struct {
	Expired int
	Retried int
}

// Watcher periodically sweeps expired offers and stalled orders.
type Watcher struct {
	orders   orderStore
	reassign reassigner
	cfg      Config
	expired  prometheus.Counter
	logger   logx.Logger
	now      func() time.Time
}

// NewWatcher creates a Watcher. expired may be nil.
func NewWatcher(orders orderStore, r reassigner, cfg Config, expired prometheus.Counter, logger logx.Logger) *Watcher {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Deadline <= 0 {
		cfg.Deadline = 30 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Watcher{
		orders:   orders,
		reassign: r,
		cfg:      cfg,
		expired:  expired,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Run sweeps on every tick until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.logger.Info("expiry watcher started",
		logx.Duration("interval", w.cfg.Interval),
		logx.Duration("deadline", w.cfg.Deadline),
	)
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("expiry watcher stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := w.Sweep(ctx); err != nil && ctx.Err() == nil {
				w.logger.Error("expiry sweep failed", logx.Err(err))
			}
		}
	}
}

// Sweep runs one pass. Each expired offer is declined on the courier's
// behalf at most once and then reassigned; orders left declined or never
// assigned past the deadline are reassigned again. Per-order failures are
// logged and skipped; only listing failures are returned.
func (w *Watcher) Sweep(ctx context.Context) (Stats, error) {
	var stats Stats
	cutoff := w.now().Add(-w.cfg.Deadline)

	expired, listErr := w.orders.ListExpiredOffers(ctx, cutoff)
	handled := make(map[int64]struct{}, len(expired))
	for _, o := range expired {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		if w.expire(ctx, o) {
			handled[o.ID] = struct{}{}
			stats.Expired++
		}
	}

	stalled, err := w.orders.ListStalled(ctx, cutoff)
	for _, o := range stalled {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		if _, ok := handled[o.ID]; ok {
			continue
		}
		w.retry(ctx, o.ID)
		stats.Retried++
	}
	return stats, errors.Join(listErr, err)
}

func (w *Watcher) expire(ctx context.Context, o domain.Order) bool {
	if o.CourierID == nil || o.AssignmentTime == nil {
		return false
	}
	courierID, assignedAt := *o.CourierID, *o.AssignmentTime

	ok, err := w.orders.ExpireOffer(ctx, o.ID, courierID, assignedAt)
	if err != nil {
		w.logger.Error("expire offer",
			logx.Int64("order_id", o.ID),
			logx.Err(err),
		)
		return false
	}
	if !ok {
		return false
	}

	if w.expired != nil {
		w.expired.Inc()
	}
	w.logger.Warn("offer expired, auto-declined",
		logx.Event("offer_expired"),
		logx.Int64("order_id", o.ID),
		logx.Int64("courier_id", courierID),
		logx.Time("assigned_at", assignedAt),
	)
	w.retry(ctx, o.ID)
	return true
}

func (w *Watcher) retry(ctx context.Context, orderID int64) {
	res, err := w.reassign.Reassign(ctx, orderID)
	if err != nil {
		w.logger.Info("sweep reassignment failed",
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
		return
	}
	w.logger.Debug("sweep reassigned order",
		logx.Int64("order_id", orderID),
		logx.Int64("courier_id", res.Courier.ID),
	)
}

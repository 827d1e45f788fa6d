// Package dispatch matches orders to couriers and re-matches them after
// declines and timeouts.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/geo"
	"courier-dispatch/internal/logx"
)

// Config tunes candidate scoring.
type Config struct {
	TieBreakKm         float64
	ScoringConcurrency int
	Country            string
	OperationTimeout   time.Duration
}

const countConcurrency = 8

// Engine selects and persists a courier for one order.
type Engine struct {
	orders      orderStore
	restaurants restaurantStore
	pool        courierPool
	geo         geoResolver
	events      eventPublisher
	metrics     Metrics
	logger      logx.Logger
	cfg         Config
	now         func() time.Time
}

// NewEngine creates an Engine. events may be nil.
func NewEngine(
	orders orderStore,
	restaurants restaurantStore,
	pool courierPool,
	resolver geoResolver,
	events eventPublisher,
	m Metrics,
	cfg Config,
	logger logx.Logger,
) *Engine {
	if cfg.ScoringConcurrency <= 0 {
		cfg.ScoringConcurrency = 1
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 15 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Engine{
		orders:      orders,
		restaurants: restaurants,
		pool:        pool,
		geo:         resolver,
		events:      events,
		metrics:     m,
		logger:      logger,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (e *Engine) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.cfg.OperationTimeout)
}

// Assign picks a courier for o, sourcing from restaurantID and skipping the
// declined couriers, and records the offer on the order.
func (e *Engine) Assign(ctx context.Context, o *domain.Order, restaurantID int64, declined domain.IDList) (res domain.AssignResult, err error) {
	if o == nil {
		return domain.AssignResult{}, apperr.ErrInvalid
	}
	if o.Accepted() {
		return domain.AssignResult{}, apperr.ErrAlreadyAccepted
	}
	if o.Closed() {
		return domain.AssignResult{}, apperr.ErrOrderClosed
	}

	start := time.Now()
	defer func() {
		e.metrics.observe(err, res.RoundRobin, time.Since(start).Seconds())
	}()

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	origin, err := e.restaurantPoint(ctx, restaurantID)
	if err != nil {
		return domain.AssignResult{}, err
	}
	customer := e.customerPoint(ctx, o.Address)

	online, err := e.onlineCouriers(ctx, o.ID)
	if err != nil {
		return domain.AssignResult{}, err
	}
	withLoad, err := e.attachLoad(ctx, online)
	if err != nil {
		return domain.AssignResult{}, err
	}

	cands, roundRobin := nextCandidates(withLoad, declined, o.History)
	if len(cands) == 0 {
		return domain.AssignResult{}, apperr.ErrNoAvailableCourier
	}
	if roundRobin {
		e.logger.Info("all online couriers declined, rotating",
			logx.Event("round_robin_fallback"),
			logx.Int64("order_id", o.ID),
			logx.Int64("courier_id", cands[0].Courier.ID),
		)
	}

	scored, err := e.score(ctx, cands, origin, customer)
	if err != nil {
		return domain.AssignResult{}, err
	}
	if len(scored) == 0 {
		return domain.AssignResult{}, apperr.ErrNoScorableCourier
	}
	winner := pickBest(scored, e.cfg.TieBreakKm)

	now := e.now()
	ok, err := e.orders.SaveAssignment(ctx, domain.AssignmentUpdate{
		OrderID:     o.ID,
		CourierID:   winner.Courier.ID,
		DeclinedIDs: declined,
		History:     o.History.Append(winner.Courier.ID),
		AssignedAt:  now,
	})
	if err != nil {
		return domain.AssignResult{}, err
	}
	if !ok {
		return domain.AssignResult{}, fmt.Errorf("%w: order %d was accepted or closed during assignment", apperr.ErrConflict, o.ID)
	}

	res = domain.AssignResult{
		OrderID:      o.ID,
		Courier:      winner.Courier,
		DistanceKm:   winner.DistanceKm,
		ActiveOrders: winner.ActiveOrders,
		RoundRobin:   roundRobin,
		AssignedAt:   now,
	}

	e.logger.Info("courier assigned",
		logx.Event("courier_assigned"),
		logx.Int64("order_id", res.OrderID),
		logx.Int64("courier_id", res.Courier.ID),
		logx.Float64("distance_km", res.DistanceKm),
		logx.Int("active_orders", res.ActiveOrders),
		logx.Int("candidates", len(scored)),
		logx.Bool("round_robin", roundRobin),
	)
	if e.events != nil {
		if err := e.events.CourierAssigned(ctx, res); err != nil {
			e.logger.Warn("publish courier assigned", logx.Int64("order_id", res.OrderID), logx.Err(err))
		}
	}
	return res, nil
}

func (e *Engine) restaurantPoint(ctx context.Context, id int64) (domain.Point, error) {
	r, err := e.restaurants.Get(ctx, id)
	if err != nil {
		return domain.Point{}, err
	}
	if r == nil {
		return domain.Point{}, fmt.Errorf("%w: restaurant %d not found", apperr.ErrNoLocationData, id)
	}
	if r.Location != nil {
		return *r.Location, nil
	}
	if p := e.geo.Resolve(ctx, r.PostalCode, e.cfg.Country); p != nil {
		return *p, nil
	}
	return domain.Point{}, fmt.Errorf("%w: restaurant %d", apperr.ErrNoLocationData, id)
}

func (e *Engine) customerPoint(ctx context.Context, address string) *domain.Point {
	postal, ok := geo.ExtractPostalCode(address)
	if !ok {
		return nil
	}
	return e.geo.Resolve(ctx, postal, e.cfg.Country)
}

// onlineCouriers returns the online couriers. With nobody online, the first
// registered courier is switched online and becomes the only candidate.
func (e *Engine) onlineCouriers(ctx context.Context, orderID int64) ([]domain.Courier, error) {
	online, err := e.pool.ListOnline(ctx)
	if err != nil {
		return nil, err
	}
	if len(online) > 0 {
		return online, nil
	}

	all, err := e.pool.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, apperr.ErrNoCouriersExist
	}

	c := all[0]
	if err := e.pool.SetOnline(ctx, c.ID, true); err != nil {
		return nil, err
	}
	c.Online = true

	e.metrics.forcedOnline()
	e.logger.Warn("no courier online, forcing one online",
		logx.Event("courier_forced_online"),
		logx.Int64("order_id", orderID),
		logx.Int64("courier_id", c.ID),
	)
	if e.events != nil {
		if err := e.events.CourierForcedOnline(ctx, orderID, c.ID); err != nil {
			e.logger.Warn("publish courier forced online", logx.Int64("order_id", orderID), logx.Err(err))
		}
	}
	return []domain.Courier{c}, nil
}

func (e *Engine) attachLoad(ctx context.Context, couriers []domain.Courier) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, len(couriers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(countConcurrency)
	for i, c := range couriers {
		out[i].Courier = c
		g.Go(func() error {
			n, err := e.pool.ActiveOrderCount(gctx, c.ID)
			if err != nil {
				return err
			}
			out[i].ActiveOrders = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// score computes each candidate's delivery distance. Candidates without
// coordinates are geocoded by postal code; unlocatable ones are dropped.
func (e *Engine) score(ctx context.Context, cands []domain.Candidate, origin domain.Point, customer *domain.Point) ([]domain.Candidate, error) {
	located := make([]bool, len(cands))
	out := make([]domain.Candidate, len(cands))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.ScoringConcurrency)
	for i, c := range cands {
		g.Go(func() error {
			p := c.Courier.Location
			if p == nil {
				p = e.geo.Resolve(gctx, c.Courier.PostalCode, e.cfg.Country)
			}
			if p == nil {
				return nil
			}
			c.DistanceKm = geo.CourierDistance(*p, origin, customer)
			out[i] = c
			located[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := out[:0]
	for i, ok := range located {
		if ok {
			scored = append(scored, out[i])
		} else {
			e.logger.Debug("courier dropped, no location",
				logx.Int64("courier_id", cands[i].Courier.ID),
			)
		}
	}
	return scored, nil
}

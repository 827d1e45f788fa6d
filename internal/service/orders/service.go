// Package orders covers order intake, courier decisions on offers and the
// order event processor used by the worker.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Config holds order service settings.
type Config struct {
	// AcceptDeadline is how long a courier has to answer an offer.
	AcceptDeadline   time.Duration
	OperationTimeout time.Duration
}

// Placement is the result of CreateOrder. Assignment is nil when no courier
// could be offered the order yet.
type Placement struct {
	Order      domain.Order
	Assignment *domain.AssignResult
}

// Service implements the order and offer use cases.
type Service struct {
	orders      orderRepository
	couriers    courierReader
	restaurants restaurantReader
	engine      Assigner
	reassign    Reassigner
	cfg         Config
	logger      logx.Logger
}

// NewService creates an order Service.
func NewService(
	orders orderRepository,
	couriers courierReader,
	restaurants restaurantReader,
	engine Assigner,
	reassign Reassigner,
	cfg Config,
	logger logx.Logger,
) *Service {
	if cfg.AcceptDeadline <= 0 {
		cfg.AcceptDeadline = 30 * time.Second
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		orders:      orders,
		couriers:    couriers,
		restaurants: restaurants,
		engine:      engine,
		reassign:    reassign,
		cfg:         cfg,
		logger:      logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// CreateOrder stores a new order and makes the first assignment attempt
// with an empty decline set. A failed attempt leaves the order unassigned
// for the sweep to retry.
func (s *Service) CreateOrder(ctx context.Context, n domain.NewOrder) (Placement, error) {
	n.CustomerName = strings.TrimSpace(n.CustomerName)
	n.Address = strings.TrimSpace(n.Address)
	if err := validateNewOrder(n); err != nil {
		return Placement{}, err
	}

	order, err := s.create(ctx, n)
	if err != nil {
		return Placement{}, err
	}

	res, err := s.engine.Assign(ctx, order, n.RestaurantID, domain.IDList{})
	if err != nil {
		s.logger.Warn("order left unassigned",
			logx.Int64("order_id", order.ID),
			logx.Err(err),
		)
		return Placement{Order: *order}, nil
	}

	placed := Placement{Order: *order, Assignment: &res}
	if fresh, err := s.get(ctx, order.ID); err == nil && fresh != nil {
		placed.Order = *fresh
	}
	return placed, nil
}

func (s *Service) create(ctx context.Context, n domain.NewOrder) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	r, err := s.restaurants.Get(ctx, n.RestaurantID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: unknown restaurant %d", apperr.ErrInvalid, n.RestaurantID)
	}
	return s.orders.Create(ctx, n)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.Get(ctx, id)
}

func validateNewOrder(n domain.NewOrder) error {
	switch {
	case n.CustomerName == "":
		return fmt.Errorf("%w: customer name is required", apperr.ErrInvalid)
	case !domain.ValidatePhone(n.CustomerPhone):
		return fmt.Errorf("%w: customer phone must look like +919876543210", apperr.ErrInvalid)
	case n.Address == "":
		return fmt.Errorf("%w: address is required", apperr.ErrInvalid)
	case n.RestaurantID <= 0:
		return fmt.Errorf("%w: restaurant id is required", apperr.ErrInvalid)
	case n.Total.IsNegative():
		return fmt.Errorf("%w: total must not be negative", apperr.ErrInvalid)
	}
	return nil
}

// Reassign runs the reassignment flow for an order on demand.
func (s *Service) Reassign(ctx context.Context, orderID int64) (domain.AssignResult, error) {
	return s.reassign.Reassign(ctx, orderID)
}

// Accept records the courier's acceptance of its pending offer.
func (s *Service) Accept(ctx context.Context, courierID, orderID int64) error {
	if courierID <= 0 || orderID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.orders.Accept(ctx, orderID, courierID)
	if err != nil {
		return err
	}
	if !ok {
		return s.whyNotPending(ctx, orderID)
	}
	s.logger.Info("offer accepted",
		logx.Int64("order_id", orderID),
		logx.Int64("courier_id", courierID),
	)
	return nil
}

// Decline records the courier's refusal and immediately looks for the next
// courier. The returned assignment is nil when reassignment did not produce
// one; the decline itself is still committed and the sweep will retry.
func (s *Service) Decline(ctx context.Context, courierID, orderID int64) (*domain.AssignResult, error) {
	if courierID <= 0 || orderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	if err := s.decline(ctx, courierID, orderID); err != nil {
		return nil, err
	}

	res, err := s.reassign.Reassign(ctx, orderID)
	if err != nil {
		s.logger.Info("reassignment after decline failed",
			logx.Int64("order_id", orderID),
			logx.Err(err),
		)
		return nil, nil
	}
	return &res, nil
}

func (s *Service) decline(ctx context.Context, courierID, orderID int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.orders.Decline(ctx, orderID, courierID)
	if err != nil {
		return err
	}
	if !ok {
		return s.whyNotPending(ctx, orderID)
	}
	s.logger.Info("offer declined",
		logx.Int64("order_id", orderID),
		logx.Int64("courier_id", courierID),
	)
	return nil
}

// whyNotPending maps a rejected conditional write to an error kind.
func (s *Service) whyNotPending(ctx context.Context, orderID int64) error {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	switch {
	case o == nil:
		return apperr.ErrNotFound
	case o.Closed():
		return apperr.ErrOrderClosed
	case o.Accepted():
		return apperr.ErrAlreadyAccepted
	default:
		return fmt.Errorf("%w: order %d has no pending offer for this courier", apperr.ErrConflict, orderID)
	}
}

// UpdateStatus moves an accepted order along its delivery lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, courierID, orderID int64, status domain.OrderStatus) error {
	if courierID <= 0 || orderID <= 0 {
		return apperr.ErrInvalid
	}
	if !status.CourierSettable() {
		return fmt.Errorf("%w: status %q cannot be set by a courier", apperr.ErrInvalid, status)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.orders.UpdateStatus(ctx, orderID, courierID, status)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	switch {
	case o == nil:
		return apperr.ErrNotFound
	case o.Closed():
		return apperr.ErrOrderClosed
	default:
		return fmt.Errorf("%w: order %d is not accepted by courier %d", apperr.ErrConflict, orderID, courierID)
	}
}

// Tracking returns the customer view of an order. Decline history and
// offers to other couriers are never exposed.
func (s *Service) Tracking(ctx context.Context, orderID int64) (domain.Tracking, error) {
	if orderID <= 0 {
		return domain.Tracking{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return domain.Tracking{}, err
	}
	if o == nil {
		return domain.Tracking{}, apperr.ErrNotFound
	}

	t := domain.Tracking{
		OrderID:          o.ID,
		Status:           o.Status,
		AssignmentStatus: o.AssignmentStatus,
	}
	if !o.Accepted() || o.CourierID == nil {
		return t, nil
	}
	c, err := s.couriers.Get(ctx, *o.CourierID)
	if err != nil {
		return domain.Tracking{}, err
	}
	if c != nil {
		t.CourierName = c.Name
		t.CourierLocation = c.Location
	}
	return t, nil
}

// Offer returns the courier's current pending offer.
func (s *Service) Offer(ctx context.Context, courierID int64) (domain.Offer, error) {
	if courierID <= 0 {
		return domain.Offer{}, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	o, err := s.orders.PendingOfferFor(ctx, courierID)
	if err != nil {
		return domain.Offer{}, err
	}
	if o == nil || o.AssignmentTime == nil {
		return domain.Offer{}, apperr.ErrNotFound
	}
	return domain.Offer{
		OrderID:      o.ID,
		RestaurantID: o.RestaurantID,
		Address:      o.Address,
		Total:        o.Total,
		AssignedAt:   *o.AssignmentTime,
		ExpiresAt:    o.AssignmentTime.Add(s.cfg.AcceptDeadline),
	}, nil
}

package courier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Service is the courier pool used by dispatch and the courier-facing
// operations behind the HTTP API.
type Service struct {
	repo             courierRepository
	orders           orderCounter
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, orders orderCounter, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, orders: orders, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// ListOnline returns online couriers in stable id order.
func (s *Service) ListOnline(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListOnline(ctx)
}

// ListAll returns every courier in stable id order.
func (s *Service) ListAll(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListAll(ctx)
}

// ActiveOrderCount counts the courier's in-flight orders.
func (s *Service) ActiveOrderCount(ctx context.Context, courierID int64) (int, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.orders.CountActive(ctx, courierID, domain.InFlightStrings())
}

// SetOnline persists the courier's online flag.
func (s *Service) SetOnline(ctx context.Context, courierID int64, online bool) error {
	if courierID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.SetOnline(ctx, courierID, online)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	s.logger.Debug("courier online flag set",
		logx.Int64("courier_id", courierID),
		logx.Bool("online", online),
	)
	return nil
}

// UpdateLocation stores the courier's current coordinates.
func (s *Service) UpdateLocation(ctx context.Context, courierID int64, p domain.Point) error {
	if courierID <= 0 || !p.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.UpdateLocation(ctx, courierID, p)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns couriers with optional pagination.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Courier, error) {
	if (limit != nil && *limit < 0) || (offset != nil && *offset < 0) {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Register persists a new courier and returns its generated ID.
func (s *Service) Register(ctx context.Context, c domain.NewCourier) (int64, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.PostalCode = strings.TrimSpace(c.PostalCode)
	if err := validateRegister(c); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

func validateRegister(c domain.NewCourier) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", apperr.ErrInvalid)
	}
	if !domain.ValidatePhone(c.Phone) {
		return fmt.Errorf("%w: phone must look like +919876543210", apperr.ErrInvalid)
	}
	if c.PostalCode != "" && !domain.ValidatePostalCode(c.PostalCode) {
		return fmt.Errorf("%w: postal code must be 5 or 6 digits", apperr.ErrInvalid)
	}
	return nil
}

//go:generate mockgen -source=contracts.go -destination=expiry_mocks_test.go -package=expiry_test

package expiry

import (
	"context"
	"time"

	"courier-dispatch/internal/domain"
)

type orderStore interface {
	ListExpiredOffers(ctx context.Context, before time.Time) ([]domain.Order, error)
	ListStalled(ctx context.Context, before time.Time) ([]domain.Order, error)
	ExpireOffer(ctx context.Context, orderID, courierID int64, assignedAt time.Time) (bool, error)
}

type reassigner interface {
	Reassign(ctx context.Context, orderID int64) (domain.AssignResult, error)
}

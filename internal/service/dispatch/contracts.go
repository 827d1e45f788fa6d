//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"courier-dispatch/internal/domain"
)

// courierPool is the courier view the engine selects from.
type courierPool interface {
	ListOnline(ctx context.Context) ([]domain.Courier, error)
	ListAll(ctx context.Context) ([]domain.Courier, error)
	ActiveOrderCount(ctx context.Context, courierID int64) (int, error)
	SetOnline(ctx context.Context, courierID int64, online bool) error
}

type orderStore interface {
	Get(ctx context.Context, id int64) (*domain.Order, error)
	SaveAssignment(ctx context.Context, u domain.AssignmentUpdate) (bool, error)
	ResetDeclined(ctx context.Context, id int64) (bool, error)
	MarkUnfulfillable(ctx context.Context, id int64) (bool, error)
}

type restaurantStore interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// geoResolver returns nil for unknown locations.
type geoResolver interface {
	Resolve(ctx context.Context, postalCode, country string) *domain.Point
}

type eventPublisher interface {
	CourierAssigned(ctx context.Context, res domain.AssignResult) error
	CourierForcedOnline(ctx context.Context, orderID, courierID int64) error
	OrderUnfulfillable(ctx context.Context, orderID int64, reason string) error
}

type assigner interface {
	Assign(ctx context.Context, o *domain.Order, restaurantID int64, declined domain.IDList) (domain.AssignResult, error)
}

//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"courier-dispatch/internal/domain"
)

type orderRepository interface {
	Create(ctx context.Context, n domain.NewOrder) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	Accept(ctx context.Context, orderID, courierID int64) (bool, error)
	Decline(ctx context.Context, orderID, courierID int64) (bool, error)
	UpdateStatus(ctx context.Context, orderID, courierID int64, status domain.OrderStatus) (bool, error)
	PendingOfferFor(ctx context.Context, courierID int64) (*domain.Order, error)
}

type courierReader interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
}

type restaurantReader interface {
	Get(ctx context.Context, id int64) (*domain.Restaurant, error)
}

// Assigner runs the first assignment of an order.
type Assigner interface {
	Assign(ctx context.Context, o *domain.Order, restaurantID int64, declined domain.IDList) (domain.AssignResult, error)
}

// Reassigner re-runs assignment after a decline.
type Reassigner interface {
	Reassign(ctx context.Context, orderID int64) (domain.AssignResult, error)
}

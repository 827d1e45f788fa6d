//go:generate mockgen -source=contracts.go -destination=courier_mocks_test.go -package=courier_test

package courier

import (
	"context"

	"courier-dispatch/internal/domain"
)

// courierRepository defines storage operations required by the business layer.
type courierRepository interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	ListOnline(ctx context.Context) ([]domain.Courier, error)
	ListAll(ctx context.Context) ([]domain.Courier, error)
	Create(ctx context.Context, c domain.NewCourier) (int64, error)
	SetOnline(ctx context.Context, id int64, online bool) (bool, error)
	UpdateLocation(ctx context.Context, id int64, p domain.Point) (bool, error)
}

// orderCounter counts a courier's orders by status.
type orderCounter interface {
	CountActive(ctx context.Context, courierID int64, statuses []string) (int, error)
}

package handlers

import (
	"context"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/service/orders"
)

type courierUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Courier, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Courier, error)
	Register(ctx context.Context, c domain.NewCourier) (int64, error)
	SetOnline(ctx context.Context, courierID int64, online bool) error
	UpdateLocation(ctx context.Context, courierID int64, p domain.Point) error
}

type orderUsecase interface {
	CreateOrder(ctx context.Context, n domain.NewOrder) (orders.Placement, error)
	Tracking(ctx context.Context, orderID int64) (domain.Tracking, error)
	Reassign(ctx context.Context, orderID int64) (domain.AssignResult, error)
}

type offerUsecase interface {
	Offer(ctx context.Context, courierID int64) (domain.Offer, error)
	Accept(ctx context.Context, courierID, orderID int64) error
	Decline(ctx context.Context, courierID, orderID int64) (*domain.AssignResult, error)
	UpdateStatus(ctx context.Context, courierID, orderID int64, status domain.OrderStatus) error
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// OrderStatus is the customer/restaurant-facing order lifecycle.
	OrderStatus string
	// AssignmentStatus tracks the courier-matching process of an order.
	AssignmentStatus string
)

// Order is a food order together with its courier assignment state.
type Order struct {
	ID               int64
	CustomerName     string
	CustomerPhone    string
	Address          string
	RestaurantID     *int64
	Total            decimal.Decimal
	Status           OrderStatus
	AssignmentStatus AssignmentStatus
	CourierID        *int64
	AssignmentTime   *time.Time
	DeclinedIDs      IDList
	History          IDList
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Accepted reports whether a courier has accepted the order.
func (o *Order) Accepted() bool {
	return o.AssignmentStatus == AssignmentAccepted
}

// Closed reports whether the order no longer needs a courier.
func (o *Order) Closed() bool {
	return o.Status == OrderCancelled || o.Status == OrderDelivered
}

// NewOrder carries the fields required to create an order.
type NewOrder struct {
	CustomerName  string
	CustomerPhone string
	Address       string
	RestaurantID  int64
	Total         decimal.Decimal
}

// AssignmentUpdate is the persisted outcome of a successful assignment.
type AssignmentUpdate struct {
	OrderID     int64
	CourierID   int64
	DeclinedIDs IDList
	History     IDList
	AssignedAt  time.Time
}

// AssignResult describes the courier chosen for an order.
type AssignResult struct {
	OrderID      int64
	Courier      Courier
	DistanceKm   float64
	ActiveOrders int
	RoundRobin   bool
	AssignedAt   time.Time
}

// Offer is the courier-facing view of a pending assignment.
type Offer struct {
	OrderID      int64
	RestaurantID *int64
	Address      string
	Total        decimal.Decimal
	AssignedAt   time.Time
	ExpiresAt    time.Time
}

// Tracking is the customer-facing view of an order.
type Tracking struct {
	OrderID          int64
	Status           OrderStatus
	AssignmentStatus AssignmentStatus
	CourierName      string
	CourierLocation  *Point
}

package domain

// List of order statuses
const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderAccepted       OrderStatus = "accepted"
	OrderPickedUp       OrderStatus = "picked_up"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// List of assignment statuses. An empty status means the order was never offered.
const (
	AssignmentNone                AssignmentStatus = ""
	AssignmentPending             AssignmentStatus = "pending_acceptance"
	AssignmentAccepted            AssignmentStatus = "accepted"
	AssignmentDeclined            AssignmentStatus = "declined"
	AssignmentNoDeliveryAvailable AssignmentStatus = "no_delivery_available"
)

// InFlightStatuses are the order statuses counted as a courier's active load.
var InFlightStatuses = [...]OrderStatus{
	OrderAccepted, OrderOutForDelivery, OrderPickedUp,
}

// courierSettable lists the statuses a courier may move an accepted order into.
var courierSettable = [...]OrderStatus{
	OrderPickedUp, OrderOutForDelivery, OrderDelivered,
}

// Valid checks if the OrderStatus is known
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderAccepted,
		OrderPickedUp, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CourierSettable reports whether a courier may set this status on an accepted order.
func (s OrderStatus) CourierSettable() bool {
	for _, v := range courierSettable {
		if s == v {
			return true
		}
	}
	return false
}

// InFlightStrings returns InFlightStatuses as plain strings for queries.
func InFlightStrings() []string {
	out := make([]string, 0, len(InFlightStatuses))
	for _, s := range InFlightStatuses {
		out = append(out, string(s))
	}
	return out
}

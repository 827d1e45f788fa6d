package orders

// Event is a single order event consumed by the worker.
type Event struct {
	OrderID int64  `json:"order_id"`
	Event   string `json:"event"`
}

package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"courier-dispatch/internal/service/orders"
)

// EventDTO is the wire form of orders.Event. order_id may be sent as a
// JSON number or a numeric string.
type EventDTO struct {
	OrderID json.Number `json:"order_id"`
	Event   string      `json:"event"`
}

var errEmptyOrderID = errors.New("empty order_id")

// ToDomain converts EventDTO to orders.Event.
func ToDomain(dto EventDTO) (orders.Event, error) {
	raw := strings.TrimSpace(dto.OrderID.String())
	if raw == "" {
		return orders.Event{}, errEmptyOrderID
	}
	id, err := json.Number(raw).Int64()
	if err != nil || id <= 0 {
		return orders.Event{}, fmt.Errorf("invalid order_id %q", raw)
	}
	return orders.Event{
		OrderID: id,
		Event:   strings.TrimSpace(dto.Event),
	}, nil
}

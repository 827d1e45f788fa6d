package app

import (
	"context"
	"errors"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/service/orders"
	"courier-dispatch/internal/transport/kafka"
)

type eventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka bounds every event by timeout and marks errors that a
// redelivery cannot fix as permanent.
func makeOrdersKafka(p eventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		err := p.Handle(ctx, event)
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
			return kafka.Permanent(err)
		}
		return err
	}
}

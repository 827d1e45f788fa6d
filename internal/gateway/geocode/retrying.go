package geocode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

type lookuper interface {
	Lookup(ctx context.Context, postal, country string) (domain.Point, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingClient behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingClient retries throttled and unavailable provider responses.
type RetryingClient struct {
	next    lookuper
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
	sleep   func(context.Context, time.Duration) bool
}

// NewRetryingClient wraps next. It returns nil if next is nil.
func NewRetryingClient(next lookuper, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingClient {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingClient{next: next, logger: logger, retries: retries, cfg: cfg, sleep: sleepWithContext}
}

// Lookup implements lookuper.
func (c *RetryingClient) Lookup(ctx context.Context, postal, country string) (domain.Point, error) {
	var lastErr error
	for attempt := 1; attempt <= c.cfg.MaxAttempts; attempt++ {
		p, err := c.next.Lookup(ctx, postal, country)
		if err == nil {
			return p, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == c.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(c.cfg.BaseDelay, c.cfg.MaxDelay, attempt)
		if c.retries != nil {
			c.retries.Inc()
		}
		c.logger.Warn("geocode retry",
			logx.String("postal_code", postal),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !c.sleep(ctx, delay) {
			break
		}
	}
	return domain.Point{}, lastErr
}

func isRetryable(err error) bool {
	if errors.Is(err, ErrHTMLResponse) {
		return true
	}
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusBadGateway,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

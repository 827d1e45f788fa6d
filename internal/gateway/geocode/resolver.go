package geocode

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"courier-dispatch/internal/domain"
	"courier-dispatch/internal/logx"
)

// Resolver is the best-effort postal code lookup used by dispatch. Failures
// are logged and reported as nil, never as errors.
type Resolver struct {
	next     lookuper
	logger   logx.Logger
	failures counter
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	point   *domain.Point
	expires time.Time
}

// NewResolver creates a Resolver. ttl <= 0 disables caching.
func NewResolver(next lookuper, logger logx.Logger, failures counter, ttl time.Duration) *Resolver {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Resolver{
		next:     next,
		logger:   logger,
		failures: failures,
		ttl:      ttl,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
	}
}

// Resolve returns the coordinates of postal in country, or nil.
// Unknown postal codes are cached like hits; provider errors are not.
func (r *Resolver) Resolve(ctx context.Context, postal, country string) *domain.Point {
	postal = strings.TrimSpace(postal)
	if postal == "" || r.next == nil {
		return nil
	}
	key := strings.ToLower(country) + "|" + postal

	if p, ok := r.cached(key); ok {
		return p
	}

	pt, err := r.next.Lookup(ctx, postal, country)
	if err != nil {
		if r.failures != nil {
			r.failures.Inc()
		}
		r.logger.Warn("geocode failed",
			logx.Event("geocode_failed"),
			logx.String("postal_code", postal),
			logx.String("country", country),
			logx.Err(err),
		)
		if errors.Is(err, ErrNoResults) {
			r.store(key, nil)
		}
		return nil
	}
	r.store(key, &pt)
	return &pt
}

func (r *Resolver) cached(key string) (*domain.Point, bool) {
	if r.ttl <= 0 {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.cache[key]
	if !ok {
		return nil, false
	}
	if r.now().After(e.expires) {
		delete(r.cache, key)
		return nil, false
	}
	if e.point == nil {
		return nil, true
	}
	p := *e.point
	return &p, true
}

func (r *Resolver) store(key string, p *domain.Point) {
	if r.ttl <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache[key] = cacheEntry{point: p, expires: r.now().Add(r.ttl)}
}

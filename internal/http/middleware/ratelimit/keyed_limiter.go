package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config stores KeyedLimiter settings.
type Config struct {
	Rate    float64       // tokens per second
	Burst   int           // bucket capacity
	TTL     time.Duration // idle keys are dropped after TTL (0 disables)
	MaxKeys int           // 0 means unlimited
}

// KeyedLimiter keeps one token bucket per key.
type KeyedLimiter struct {
	cfg         Config
	clock       Clock
	mu          sync.Mutex
	keys        map[string]*entry
	lastCleanup time.Time
}

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter creates a limiter with an injected clock.
func NewKeyedLimiter(clock Clock, cfg Config) *KeyedLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxKeys < 0 {
		cfg.MaxKeys = 0
	}
	return &KeyedLimiter{
		cfg:   cfg,
		clock: clock,
		keys:  make(map[string]*entry),
	}
}

// Allow reports whether key may proceed now. New keys are refused once
// MaxKeys is reached.
func (l *KeyedLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	l.cleanupLocked(now)
	e, ok := l.keys[key]
	if !ok {
		if l.cfg.MaxKeys > 0 && len(l.keys) >= l.cfg.MaxKeys {
			l.mu.Unlock()
			return false
		}
		e = &entry{lim: rate.NewLimiter(rate.Limit(l.cfg.Rate), l.cfg.Burst)}
		l.keys[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.lim.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *KeyedLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.keys)
}

func (l *KeyedLimiter) cleanupLocked(now time.Time) {
	if l.cfg.TTL <= 0 {
		return
	}
	interval := time.Minute
	if half := l.cfg.TTL / 2; half > interval {
		interval = half
	}
	if !l.lastCleanup.IsZero() && now.Sub(l.lastCleanup) < interval {
		return
	}
	l.lastCleanup = now

	for k, e := range l.keys {
		if now.Sub(e.lastSeen) > l.cfg.TTL {
			delete(l.keys, k)
		}
	}
}

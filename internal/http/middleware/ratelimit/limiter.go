package ratelimit

import "time"

// Limiter decides whether a request keyed by key may proceed.
type Limiter interface {
	Allow(key string) bool
}

// Clock lets tests drive token refills.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time { return time.Now() }

// NopLimiter admits every request. It stands in when RATE_LIMIT_ENABLED is off.
type NopLimiter struct{}

// Allow always returns true.
func (NopLimiter) Allow(string) bool { return true }

// NewNopLimiter returns NopLimiter.
func NewNopLimiter() Limiter { return NopLimiter{} }

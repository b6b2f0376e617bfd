// Package ratelimit paces line processing, mainly for replaying captured
// streams into downstream consumers at a bounded rate.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter throttles line processing to a fixed number of lines per second.
type Limiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing linesPerSecond lines. Zero or negative
// means no limit.
func New(linesPerSecond float64) *Limiter {
	if linesPerSecond <= 0 {
		return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	// Burst of 1: the first line goes through immediately, subsequent
	// lines wait out the configured rate.
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(linesPerSecond), 1)}
}

// Wait blocks until the next line may be processed or ctx is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// Limit returns the configured rate; 0 means unlimited.
func (l *Limiter) Limit() float64 {
	limit := l.limiter.Limit()
	if limit == rate.Inf {
		return 0
	}
	return float64(limit)
}

package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Policy describes how often a single provider may be called.
//   - MinInterval: minimum spacing between two consecutive calls
//   - MaxRequestsPerMinute: sustained cap, 0 disables it
//   - Burst: calls allowed back to back under the per-minute cap
type Policy struct {
	MinInterval          time.Duration
	MaxRequestsPerMinute int
	Burst                int
}

// Limiter enforces a Policy. A nil *Limiter never blocks.
type Limiter struct {
	spacing   *rate.Limiter
	perMinute *rate.Limiter
}

// New builds a limiter for p, or nil when p imposes no limit.
func New(p Policy) *Limiter {
	l := &Limiter{}
	if p.MinInterval > 0 {
		// burst 1 so the first call passes and the next waits a full interval
		l.spacing = rate.NewLimiter(rate.Every(p.MinInterval), 1)
	}
	if p.MaxRequestsPerMinute > 0 {
		burst := p.Burst
		if burst <= 0 {
			burst = 1
		}
		l.perMinute = rate.NewLimiter(rate.Limit(float64(p.MaxRequestsPerMinute)/60.0), burst)
	}
	if l.spacing == nil && l.perMinute == nil {
		return nil
	}
	return l
}

// Wait blocks until the next call is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil {
		return ctx.Err()
	}
	if l.perMinute != nil {
		if err := l.perMinute.Wait(ctx); err != nil {
			return err
		}
	}
	if l.spacing != nil {
		if err := l.spacing.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

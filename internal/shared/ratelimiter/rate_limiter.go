package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface limits the frequency of an operation, typically
// calls against the provider API.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter is a fixed-window counter: at most limit calls per interval,
// blocking until the window resets once exhausted.
type RateLimiter struct {
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

func New(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks when the current window is exhausted.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit reached, sleeping", "calls", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}

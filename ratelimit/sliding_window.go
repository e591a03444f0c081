// Package ratelimit provides a thread-safe blocking sliding window rate
// limiter.
package ratelimit

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// SlidingWindowLimiter limits the number of allowed acquisitions within a
// sliding time window. Acquire blocks callers instead of rejecting them,
// optionally giving up after a configured timeout. It is safe for use from
// multiple goroutines.
type SlidingWindowLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	timeout     time.Duration
	timestamps  []time.Time
	log         *log.Entry
}

// NewSlidingWindowLimiter returns a limiter allowing at most maxRequests
// acquisitions per window. Callers beyond the limit block indefinitely until
// a slot frees up or their context is canceled.
func NewSlidingWindowLimiter(maxRequests int, window time.Duration) (*SlidingWindowLimiter, error) {
	return newLimiter(maxRequests, window, 0)
}

// NewSlidingWindowLimiterWithTimeout returns a limiter allowing at most
// maxRequests acquisitions per window. Callers beyond the limit give up
// after waiting timeout for a slot.
func NewSlidingWindowLimiterWithTimeout(maxRequests int, window, timeout time.Duration) (*SlidingWindowLimiter, error) {
	if timeout <= 0 {
		return nil, ErrNonPositiveTimeout
	}
	return newLimiter(maxRequests, window, timeout)
}

func newLimiter(maxRequests int, window, timeout time.Duration) (*SlidingWindowLimiter, error) {
	if maxRequests <= 0 {
		return nil, ErrNonPositiveMaxRequests
	}
	if window <= 0 {
		return nil, ErrNonPositiveWindow
	}
	return &SlidingWindowLimiter{
		maxRequests: maxRequests,
		window:      window,
		timeout:     timeout,
		log: log.WithFields(log.Fields{
			"limiter":     "sliding_window",
			"maxRequests": maxRequests,
			"window":      window,
		}),
	}, nil
}

// Acquire blocks until permission is granted under the rate limit. It
// returns true when permission was acquired, false when the configured
// timeout elapsed or ctx was canceled before a slot became available.
func (l *SlidingWindowLimiter) Acquire(ctx context.Context) bool {
	var deadline time.Time
	if l.timeout > 0 {
		deadline = time.Now().Add(l.timeout)
	}
	for {
		if ctx.Err() != nil {
			l.log.Debug("acquire canceled")
			return false
		}
		now := time.Now()
		if l.timeout > 0 && !now.Before(deadline) {
			l.log.Debug("acquire timed out")
			return false
		}
		wait, granted := l.tryAcquire(now)
		if granted {
			return true
		}
		if l.timeout > 0 {
			if remaining := deadline.Sub(now); remaining < wait {
				wait = remaining
			}
		}
		if wait <= 0 {
			continue
		}
		clock := time.NewTimer(wait)
		select {
		case <-clock.C:
		case <-ctx.Done():
			if !clock.Stop() {
				select {
				case <-clock.C:
				default:
				}
			}
			l.log.Debug("acquire canceled")
			return false
		}
	}
}

// tryAcquire drops timestamps that slid out of the window, then either
// records the acquisition or reports how long until the oldest in-window
// timestamp ages out.
func (l *SlidingWindowLimiter) tryAcquire(now time.Time) (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.timestamps) && !l.timestamps[i].After(cutoff) {
		i++
	}
	if i > 0 {
		l.timestamps = append(l.timestamps[:0], l.timestamps[i:]...)
	}
	if len(l.timestamps) < l.maxRequests {
		l.timestamps = append(l.timestamps, now)
		l.log.Debug("permission granted", " inWindow=", len(l.timestamps))
		return 0, true
	}
	wait := l.timestamps[0].Add(l.window).Sub(now)
	l.log.Debug("window full", " wait=", wait)
	return wait, false
}

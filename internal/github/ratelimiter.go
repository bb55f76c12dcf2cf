package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
)

// * RateLimiter tracks GitHub's X-RateLimit headers and holds requests back
// * once the quota is spent. A single retry is made on a rate limited response.
type RateLimiter struct {
	mu         sync.Mutex
	remaining  int
	reset      time.Time
	lowWarn    int
	retryAfter time.Duration
	maxWait    time.Duration
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining:  5000,
		reset:      time.Now(),
		lowWarn:    100,
		retryAfter: time.Second,
		maxWait:    15 * time.Minute,
	}
}

func (r *RateLimiter) delay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining > 0 || !time.Now().Before(r.reset) {
		return 0
	}
	return min(time.Until(r.reset), r.maxWait)
}

func (r *RateLimiter) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	logger.Warn("[RateLimiter] Rate limit exceeded. Waiting %v", d)
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *RateLimiter) updateFromHeaders(headers http.Header) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := headers.Get("X-RateLimit-Remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if reset := headers.Get("X-RateLimit-Reset"); reset != "" {
		if val, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.reset = time.Unix(val, 0)
		}
	}

	if retry := headers.Get("Retry-After"); retry != "" {
		if seconds, err := strconv.Atoi(retry); err == nil {
			r.retryAfter = time.Duration(seconds) * time.Second
		}
	}

	if r.remaining < r.lowWarn {
		logger.Warn("[RateLimiter] Low rate limit: %d remaining. Resets at %s", r.remaining, r.reset.Format(time.RFC1123))
	}
}

// * limited reports whether GitHub refused the request for quota reasons
func limited(resp *http.Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0"
}

func (r *RateLimiter) Middleware(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if err := r.wait(req.Context(), r.delay()); err != nil {
			return nil, err
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			logger.Error("Network error in RoundTrip: %v", err)
			return nil, err
		}

		r.updateFromHeaders(resp.Header)
		if !limited(resp) {
			return resp, nil
		}

		resp.Body.Close()

		r.mu.Lock()
		backoff := r.retryAfter
		r.mu.Unlock()

		logger.Warn("[RateLimiter] Received %d. Retrying after %v...", resp.StatusCode, backoff)
		if err := r.wait(req.Context(), max(backoff, r.delay())); err != nil {
			return nil, err
		}
		return next.RoundTrip(req)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

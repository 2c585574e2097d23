package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter paces outbound requests with one token bucket per key
// (the REST resource being called).
type RateLimiter struct {
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
	mutex   sync.RWMutex
}

// NewRateLimiter creates a limiter allowing rps requests per second per key.
// A non-positive rps disables pacing.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
	}
}

func (rl *RateLimiter) bucket(key string) *rate.Limiter {
	rl.mutex.RLock()
	bucket, exists := rl.buckets[key]
	rl.mutex.RUnlock()
	if exists {
		return bucket
	}

	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	// Double-check pattern
	if bucket, exists = rl.buckets[key]; !exists {
		bucket = rate.NewLimiter(rl.limit, rl.burst)
		rl.buckets[key] = bucket
	}
	return bucket
}

// Wait blocks until a request for key may proceed or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context, key string) error {
	return rl.bucket(key).Wait(ctx)
}

// Allow reports whether a request for key may proceed right now, consuming a token if so.
func (rl *RateLimiter) Allow(key string) bool {
	return rl.bucket(key).Allow()
}

// GetStatus returns the tokens currently available for key and the burst size.
func (rl *RateLimiter) GetStatus(key string) (tokens float64, burst int) {
	return rl.bucket(key).Tokens(), rl.burst
}

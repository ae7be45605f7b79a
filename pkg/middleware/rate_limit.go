package middleware

import (
	"net/http"
	"sync"
	"time"

	"stayhub/pkg/logger"
)

// UserRateLimiter limits requests per authenticated user within a sliding
// window. Unauthenticated requests pass through; the auth middleware deals
// with those.
type UserRateLimiter struct {
	mu       sync.RWMutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	log      *logger.Logger
	stopCh   chan struct{}
}

func NewUserRateLimiter(limit int, window time.Duration, log *logger.Logger) *UserRateLimiter {
	limiter := &UserRateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		log:      log,
		stopCh:   make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *UserRateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for userID, timestamps := range rl.requests {
				if len(timestamps) == 0 || time.Since(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, userID)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *UserRateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *UserRateLimiter) Allow(userID string) bool {
	if userID == "" {
		return true
	}

	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := make([]time.Time, 0, len(rl.requests[userID]))
	for _, ts := range rl.requests[userID] {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[userID] = valid
		return false
	}

	rl.requests[userID] = append(valid, now)
	return true
}

func UserRateLimit(limiter *UserRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get(UserIDHeader)

			if userID == "" || limiter.Allow(userID) {
				next.ServeHTTP(w, r)
				return
			}

			limiter.log.Warn("Rate limit exceeded",
				"request_id", requestIDFrom(r.Context()),
				"user_id", userID,
				"path", r.URL.Path,
			)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":"Rate limit exceeded"}`))
		})
	}
}

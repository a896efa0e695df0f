package middleware

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// Counter counts hits per key inside a fixed window.
type Counter interface {
	// Increment records one hit for key and returns the number of hits in
	// the current window, this one included.
	Increment(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimiter allows at most limit requests per client IP and window. When
// the counter fails the request is let through.
func RateLimiter(counter Counter, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := counter.Increment(c.Request().Context(), c.RealIP(), window)
			if err != nil {
				log.Printf("rate limiter: %v", err)
				return next(c)
			}

			if count > int64(limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}

// sweepThreshold bounds how many buckets MemoryCounter keeps before dropping
// expired ones.
const sweepThreshold = 1024

type MemoryCounter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	count int64
	start time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (m *MemoryCounter) Increment(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if len(m.buckets) >= sweepThreshold {
		for k, b := range m.buckets {
			if now.Sub(b.start) > window {
				delete(m.buckets, k)
			}
		}
	}

	b, ok := m.buckets[key]
	if !ok || now.Sub(b.start) > window {
		b = &bucket{start: now}
		m.buckets[key] = b
	}

	b.count++
	return b.count, nil
}

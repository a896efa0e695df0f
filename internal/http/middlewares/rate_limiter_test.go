package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCounter struct{}

func (failingCounter) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("redis unreachable")
}

func serve(e *echo.Echo, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func newLimitedEcho(counter Counter, limit int) *echo.Echo {
	e := echo.New()
	e.Use(RateLimiter(counter, limit, time.Minute))
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	return e
}

func TestRateLimiter_RejectsOverLimit(t *testing.T) {
	e := newLimitedEcho(NewMemoryCounter(), 2)

	assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serve(e, "10.0.0.1:1234"))

	// other clients have their own budget
	assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.2:1234"))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	e := newLimitedEcho(failingCounter{}, 1)

	assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusNoContent, serve(e, "10.0.0.1:1234"))
}

func TestMemoryCounter_WindowResets(t *testing.T) {
	counter := NewMemoryCounter()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	counter.now = func() time.Time { return now }
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := counter.Increment(ctx, "client", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	now = now.Add(61 * time.Second)
	got, err := counter.Increment(ctx, "client", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestMemoryCounter_SweepsExpiredBuckets(t *testing.T) {
	counter := NewMemoryCounter()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	counter.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < sweepThreshold; i++ {
		_, err := counter.Increment(ctx, fmt.Sprintf("client-%d", i), time.Minute)
		require.NoError(t, err)
	}
	require.Len(t, counter.buckets, sweepThreshold)

	now = now.Add(2 * time.Minute)
	_, err := counter.Increment(ctx, "fresh", time.Minute)
	require.NoError(t, err)
	assert.Len(t, counter.buckets, 1)
}

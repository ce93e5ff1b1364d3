package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests move the limiter's notion of time.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(rps float64, burst int) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(rps, burst)
	rl.now = clock.Now
	return rl, clock
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	rl, clock := newTestLimiter(1, 3)

	for i := range 3 {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// buckets are per key
	assert.True(t, rl.Allow("10.0.0.2"))

	clock.Advance(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
}

func TestRateLimiter_ZeroBurstAllowsOne(t *testing.T) {
	rl, _ := newTestLimiter(1, 0)

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl, clock := newTestLimiter(1, 1)

	rl.Allow("old")
	clock.Advance(10 * time.Minute)
	rl.Allow("fresh")
	require.Equal(t, 2, rl.Len())

	removed := rl.Cleanup(5 * time.Minute)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, rl.Len())
	// a dropped client starts with a full bucket
	assert.True(t, rl.Allow("old"))
}

func TestRateLimiter_RetryAfter(t *testing.T) {
	tests := []struct {
		rps      float64
		expected int
	}{
		{10, 1},
		{1, 1},
		{0.5, 2},
		{0, 1},
	}

	for _, tt := range tests {
		rl := NewRateLimiter(tt.rps, 1)
		assert.Equal(t, tt.expected, rl.retryAfter(), "rps %v", tt.rps)
	}
}

func TestWithRateLimit_DisabledPassesThrough(t *testing.T) {
	h := newTestHandler(t, newTestServices())
	require.Nil(t, h.limiter)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for range 20 {
		rec := httptest.NewRecorder()
		h.withRateLimit(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestWithRateLimit_KeysOnClientIP(t *testing.T) {
	h := newTestHandler(t, newTestServices())
	h.limiter, _ = newTestLimiter(1, 1)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	send := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		h.withRateLimit(next).ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("198.51.100.7:5000"))
	// same host, different port
	assert.Equal(t, http.StatusTooManyRequests, send("198.51.100.7:5001"))
	assert.Equal(t, http.StatusNoContent, send("198.51.100.8:5000"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	req.RemoteAddr = "203.0.113.9:443"
	assert.Equal(t, "203.0.113.9", clientIP(req))

	req.RemoteAddr = "[2001:db8::1]:443"
	assert.Equal(t, "2001:db8::1", clientIP(req))

	// chi's RealIP stores a bare address
	req.RemoteAddr = "203.0.113.10"
	assert.Equal(t, "203.0.113.10", clientIP(req))
}

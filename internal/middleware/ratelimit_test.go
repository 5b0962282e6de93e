// SPDX-License-Identifier: MIT
package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func streamContext(remoteAddr string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tokens/stream", nil)
	c.Request.RemoteAddr = remoteAddr
	return w, c
}

func TestRateLimitAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(t.Context(), 5, time.Minute)

	w, c := streamContext("10.0.0.1:1234")
	RateLimitMiddleware(limiter, "/tokens/stream")(c)

	if w.Code == 429 {
		t.Error("Expected request to be allowed")
	}
	if got := w.Header().Get("X-RateLimit-Remaining"); got != "4" {
		t.Errorf("Expected X-RateLimit-Remaining: 4, got %s", got)
	}
}

func TestRateLimitExceeded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(t.Context(), 2, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/tokens/stream")

	for i := 0; i < 2; i++ {
		w, c := streamContext("10.0.0.1:1234")
		middleware(c)
		if w.Code == 429 {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	w, c := streamContext("10.0.0.1:1234")
	middleware(c)

	if w.Code != 429 {
		t.Errorf("Third request should be rate limited, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") != "2" {
		t.Errorf("Expected X-RateLimit-Limit: 2, got %s", w.Header().Get("X-RateLimit-Limit"))
	}
	if w.Header().Get("Retry-After") != "60" {
		t.Errorf("Expected Retry-After: 60, got %s", w.Header().Get("Retry-After"))
	}

	// A different client has its own bucket
	w, c = streamContext("10.0.0.2:1234")
	middleware(c)
	if w.Code == 429 {
		t.Error("Other client should not be rate limited")
	}
}

func TestRateLimitDifferentPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(t.Context(), 1, time.Minute)
	middleware := RateLimitMiddleware(limiter, "/tokens/stream")

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/tokens?progress=0.5", nil)
		c.Request.RemoteAddr = "10.0.0.1:1234"
		middleware(c)

		if w.Code == 429 {
			t.Error("Different path should not be rate limited")
		}
	}
}

func TestRateLimitRefill(t *testing.T) {
	limiter := NewRateLimiter(context.Background(), 1, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	if ok, _ := limiter.Allow("a"); !ok {
		t.Fatal("first request should be allowed")
	}
	if ok, _ := limiter.Allow("a"); ok {
		t.Fatal("second request should be denied")
	}

	now = now.Add(2 * time.Minute)
	if ok, _ := limiter.Allow("a"); !ok {
		t.Fatal("request after refill should be allowed")
	}
}

func TestRateLimitSweepDropsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter(context.Background(), 1, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.Allow("idle")
	now = now.Add(time.Hour)
	limiter.sweep()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	if _, ok := limiter.buckets["idle"]; ok {
		t.Error("idle bucket should have been swept")
	}
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, c := streamContext("10.0.0.1:1234")
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	if ip := ClientIP(c); ip != "203.0.113.9" {
		t.Errorf("Expected forwarded client IP, got %s", ip)
	}
}

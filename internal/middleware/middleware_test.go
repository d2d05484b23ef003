package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"maxbot-api/internal/middleware"
	"maxbot-api/pkg/log"
)

func newEngine(mw middleware.Middleware, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(mw.RequestID())
	r.GET("/limited", mw.RateLimit(), func(c *gin.Context) {
		*seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID(t *testing.T) {
	var seen string
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 600}), &seen)

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

		id := w.Header().Get(middleware.RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected uuid request id, got %q", id)
		}
		if seen != id {
			t.Errorf("context id %q differs from header %q", seen, id)
		}
	})

	t.Run("Propagated", func(t *testing.T) {
		want := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set(middleware.RequestIDHeader, want)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Garbage replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(middleware.RequestIDHeader); got == "<script>" {
			t.Errorf("invalid id must be replaced")
		}
	})
}

func TestRateLimit(t *testing.T) {
	var seen string
	// 10 per minute gives a burst of 1.
	r := newEngine(middleware.New(log.NewNop(), middleware.Config{RequestsPerMin: 10}), &seen)

	call := func(remote string, forwardedFor ...string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil).WithContext(context.Background())
		req.RemoteAddr = remote
		for _, ip := range forwardedFor {
			req.Header.Add("X-Forwarded-For", ip)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if code := call("10.0.0.1:1000"); code != http.StatusOK {
		t.Fatalf("expected first call to pass, got %d", code)
	}
	if code := call("10.0.0.1:1001"); code != http.StatusTooManyRequests {
		t.Fatalf("expected second call to be limited, got %d", code)
	}
	if code := call("10.0.0.2:1000"); code != http.StatusOK {
		t.Fatalf("other sources must have their own budget, got %d", code)
	}

	for i := 0; i < 5; i++ {
		if code := call("10.0.0.2:1001", fmt.Sprintf("1.2.3.%d", i)); code != http.StatusTooManyRequests {
			t.Fatalf("spoofed X-Forwarded-For must not reset the budget, got %d", code)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRedirectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(HTTPSRedirectMiddleware())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/tokens", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestHTTPSRedirectForwardedHTTP(t *testing.T) {
	req := httptest.NewRequest("GET", "/tokens?progress=0.5", nil)
	req.Host = "theme.example.com"
	req.Header.Set("X-Forwarded-Proto", "http")
	w := httptest.NewRecorder()
	newRedirectRouter().ServeHTTP(w, req)

	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("Expected 301, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "https://theme.example.com/tokens?progress=0.5" {
		t.Errorf("Unexpected Location %q", loc)
	}
}

func TestHTTPSRedirectPassThrough(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		proto string
	}{
		{"no proxy header", "/tokens", ""},
		{"already https", "/tokens", "https"},
		{"health probe", "/health", "http"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.proto != "" {
				req.Header.Set("X-Forwarded-Proto", tt.proto)
			}
			w := httptest.NewRecorder()
			newRedirectRouter().ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected 200, got %d", w.Code)
			}
		})
	}
}

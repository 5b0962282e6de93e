package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func runIPFilter(blocklist []string, remoteAddr, forwarded string) int {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/tokens?progress=0.5", nil)
	c.Request.RemoteAddr = remoteAddr
	if forwarded != "" {
		c.Request.Header.Set("X-Forwarded-For", forwarded)
	}

	IPFilterMiddleware(blocklist, zerolog.Nop())(c)
	return w.Code
}

func TestIPFilterBlocklist(t *testing.T) {
	if code := runIPFilter([]string{"192.168.1.0/24"}, "192.168.1.100:1234", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IP, got %d", code)
	}
}

func TestIPFilterAllowsOthers(t *testing.T) {
	if code := runIPFilter([]string{"192.168.1.0/24"}, "10.0.0.1:1234", ""); code == 403 {
		t.Error("Expected allowed for non-blocked IP")
	}
}

func TestIPFilterForwardedFor(t *testing.T) {
	code := runIPFilter([]string{"203.0.113.0/24"}, "10.0.0.1:1234", "203.0.113.9, 10.0.0.1")
	if code != 403 {
		t.Errorf("Expected 403 for blocked forwarded IP, got %d", code)
	}
}

func TestIPFilterIPv6(t *testing.T) {
	if code := runIPFilter([]string{"2001:db8::/32"}, "[2001:db8::1]:443", ""); code != 403 {
		t.Errorf("Expected 403 for blocked IPv6 address, got %d", code)
	}
}

func TestIPFilterSkipsInvalidEntries(t *testing.T) {
	if code := runIPFilter([]string{"not-a-cidr"}, "10.0.0.1:1234", ""); code == 403 {
		t.Error("Invalid blocklist entries should not block requests")
	}
}

func TestIPFilterUnparseableClient(t *testing.T) {
	if code := runIPFilter([]string{"10.0.0.0/8"}, "garbage", ""); code != 403 {
		t.Errorf("Expected 403 for unparseable client IP, got %d", code)
	}
}

package middleware

import (
	"net"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// IPFilterMiddleware blocks requests whose client IP falls in any of the
// blocked CIDR ranges. Entries that do not parse are logged and skipped.
func IPFilterMiddleware(blocklist []string, logger zerolog.Logger) gin.HandlerFunc {
	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, cidr := range blocklist {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			logger.Warn().Str("cidr", cidr).Err(err).Msg("ignoring invalid blocklist entry")
			continue
		}
		blockedCIDRs = append(blockedCIDRs, ipNet)
	}

	return func(c *gin.Context) {
		if len(blockedCIDRs) == 0 {
			c.Next()
			return
		}

		clientIP := net.ParseIP(ClientIP(c))
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}

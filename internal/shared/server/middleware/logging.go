package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akashpersetti/hired-eventually/internal/shared/telemetry"
)

// Logging emits a structured log per request. Handlers may set "model" and
// "ledgerRow" on the gin context to enrich the completion line.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if model := c.GetString("model"); model != "" {
			fields["model"] = model
		}
		if row, ok := c.Get("ledgerRow"); ok {
			fields["ledger_row"] = row
		}

		telemetry.Info("request.complete", fields)
	}
}

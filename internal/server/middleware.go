package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CorrelationIDHeader carries the request correlation id in both directions.
const CorrelationIDHeader = "X-Correlation-ID"

const correlationIDKey = "correlationID"

type contextKey string

const correlationIDContextKey contextKey = "correlationID"

// correlationID ensures every request has a correlation id, echoes it in the
// response and logs one line per request once the handler chain finishes.
func correlationID(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(correlationIDKey, id)
		c.Header(CorrelationIDHeader, id)
		c.Request = c.Request.WithContext(withCorrelationID(c.Request.Context(), id))

		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("correlation_id", id),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// GetCorrelationID retrieves the correlation id from the gin context.
func GetCorrelationID(c *gin.Context) string {
	if id, ok := c.Get(correlationIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

func withCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, id)
}

// CorrelationIDFromContext retrieves the correlation id from a request
// context.
func CorrelationIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// requestLogger returns log tagged with the request's correlation id.
func requestLogger(c *gin.Context, log *zap.Logger) *zap.Logger {
	if id := GetCorrelationID(c); id != "" {
		return log.With(zap.String("correlation_id", id))
	}
	return log
}

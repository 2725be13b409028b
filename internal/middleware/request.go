package middleware

import (
	"net/http"
	"time"

	"taskboard/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
	loggerKey       = "logger"
)

// RequestID reuses the caller's X-Request-ID or generates a new one, and
// echoes it back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestLogger writes one entry per request once the handler chain is done.
func RequestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := logger.WithField("request_id", c.GetString(RequestIDKey))
		c.Set(loggerKey, entry)

		c.Next()

		fields := log.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		if userID, ok := c.Get(UserIDKey); ok {
			fields["user_id"] = userID
		}

		entry = entry.WithFields(fields)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request served")
		}
	}
}

// Logger returns the request-scoped entry, or the standard logger when
// RequestLogger is not mounted.
func Logger(c *gin.Context) *log.Entry {
	if v, ok := c.Get(loggerKey); ok {
		if entry, ok := v.(*log.Entry); ok {
			return entry
		}
	}
	return log.NewEntry(log.StandardLogger())
}

// Abort renders err as the JSON error body and stops the chain. Internal
// causes are logged and never reach the client.
func Abort(c *gin.Context, err error) {
	appErr := apperr.From(err)
	if appErr.Kind == apperr.KindInternal {
		Logger(c).WithError(err).Error("internal error")
	}
	c.AbortWithStatusJSON(appErr.Status(), gin.H{
		"error": appErr.Message,
		"kind":  appErr.Kind,
	})
}

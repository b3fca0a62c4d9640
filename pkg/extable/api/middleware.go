package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ukaji3/extable-go/internal/logging"
)

// RequestIDHeader carries the request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestID echoes an incoming X-Request-ID or assigns a new UUID, and stores
// it in the context under "request_id".
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// Recovery turns a panic in a handler into a 500 JSON response.
func Recovery(log *logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(log.Writer(), func(c *gin.Context, recovered any) {
		log.Error("panic serving %s %s (request %s): %v",
			c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal server error"})
	})
}

// AccessLog writes one line per request to the logger's destination when
// the logger is at INFO or more verbose.
func AccessLog(log *logging.Logger) gin.HandlerFunc {
	if log.Level() < logging.LevelInfo {
		return func(c *gin.Context) { c.Next() }
	}
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Output: log.Writer(),
		Formatter: func(p gin.LogFormatterParams) string {
			return fmt.Sprintf("[HTTP] %s %s %s %d %s %s\n",
				p.TimeStamp.Format("2006/01/02 15:04:05"),
				p.Method, p.Path, p.StatusCode, p.Latency, p.Keys["request_id"])
		},
	})
}

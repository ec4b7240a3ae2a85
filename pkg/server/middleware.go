package server

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ginLogger logs one line per request through logger.
func ginLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// other handler can change c.Path so:
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000000.0))
		statusCode := c.Writer.Status()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		entry := logger.WithFields(logrus.Fields{
			"statusCode": statusCode,
			"latency":    latency,
			"method":     c.Request.Method,
			"path":       path,
			"dataLength": dataLength,
			"clientIP":   c.ClientIP(),
		})

		msg := fmt.Sprintf("%s %s %d (%dms)", c.Request.Method, path, statusCode, latency)
		if len(c.Errors) > 0 {
			msg = c.Errors.ByType(gin.ErrorTypePrivate).String()
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			entry.Error(msg)
		case statusCode >= http.StatusBadRequest:
			entry.Warn(msg)
		case len(c.Errors) > 0:
			entry.Error(msg)
		default:
			entry.Debug(msg)
		}
	}
}

// preflight answers CORS preflight requests for the waitlist API.
func preflight(origin func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin())
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Status(http.StatusOK)
	}
}

package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

const (
	RequestIdHeader = "X-Request-Id"
	requestIdKey    = "request_id"
)

var requestLog = NewSublogger("request")

// Assigns an unique id to every request, reuses the one sent by the client
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIdHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set(requestIdKey, id)
		c.Header(RequestIdHeader, id)
		c.Next()
	}
}

// Log entry bound to the request
func LOG(c *gin.Context) *logrus.Entry {
	return requestLog.WithFields(logrus.Fields{
		"id":     c.GetString(requestIdKey),
		"method": c.Request.Method,
		"path":   c.FullPath(),
	})
}

// Aborts the request with the given status and returns a log entry bound to the request.
// Client errors carry the error's message, server errors only the status text.
func LOGE(c *gin.Context, err error, status int) *logrus.Entry {
	message := http.StatusText(status)
	if err != nil && status < http.StatusInternalServerError {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"message": message})

	entry := LOG(c).WithField("status", status)
	if err != nil {
		entry = entry.WithError(err)
	}
	return entry
}

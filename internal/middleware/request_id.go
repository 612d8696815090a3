package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intent-coordinator/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-ID or generates one, echoes it back
// and stores it in the request context for logging.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

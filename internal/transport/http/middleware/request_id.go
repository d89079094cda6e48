package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-ID"

// RequestID присваивает каждому запросу идентификатор для трассировки в логах.
// Пришедший от клиента идентификатор сохраняется.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// RequestIDFrom возвращает идентификатор текущего запроса.
func RequestIDFrom(c *gin.Context) string {
	if v, ok := c.Get(HeaderRequestID); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

package middleware

import (
	"strconv"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
)

// Заголовки, которыми вышестоящий шлюз передаёт личность запроса.
// Проверка токена — зона ответственности шлюза, не этого сервиса.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Identity переносит X-User-ID/X-User-Role в контекст запроса.
// Отсутствие заголовка не ошибка: защищённые операции сами вернут 401.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(HeaderUserID); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
				ctx := service.WithUserID(c.Request.Context(), uint(id))
				role := models.Role(c.GetHeader(HeaderUserRole))
				switch role {
				case models.RoleCustomer, models.RoleAdministrator:
					ctx = service.WithRole(ctx, role)
				}
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

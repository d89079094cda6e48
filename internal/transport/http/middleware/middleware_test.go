package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cl7paBka/goar-tomsk-web/internal/models"
	"github.com/cl7paBka/goar-tomsk-web/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_ParsesHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotID uint
	var gotIDOk bool
	var gotRole models.Role
	var gotRoleOk bool

	r := gin.New()
	r.Use(Identity())
	r.GET("/probe", func(c *gin.Context) {
		gotID, gotIDOk = service.UserIDFromContext(c.Request.Context())
		gotRole, gotRoleOk = service.RoleFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderUserID, "7")
	req.Header.Set(HeaderUserRole, "administrator")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.True(t, gotIDOk)
	assert.Equal(t, uint(7), gotID)
	require.True(t, gotRoleOk)
	assert.Equal(t, models.RoleAdministrator, gotRole)
}

func TestIdentity_AbsentHeadersNotAnError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotIDOk bool

	r := gin.New()
	r.Use(Identity())
	r.GET("/probe", func(c *gin.Context) {
		_, gotIDOk = service.UserIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, gotIDOk)
}

func TestIdentity_UnknownRoleIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var roleOk bool

	r := gin.New()
	r.Use(Identity())
	r.GET("/probe", func(c *gin.Context) {
		_, roleOk = service.RoleFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderUserID, "7")
	req.Header.Set(HeaderUserRole, "superuser")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.False(t, roleOk)
}

func TestRequestID_GeneratedAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/probe", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})

	// Сгенерированный идентификатор попадает в ответ
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))
	generated := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	// Клиентский идентификатор сохраняется
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(HeaderRequestID, "trace-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get(HeaderRequestID))
}

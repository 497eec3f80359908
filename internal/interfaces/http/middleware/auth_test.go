package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

func newAuthRouter(t *testing.T, jwtSvc *auth.JWTService, handlerCalls *int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtSvc, logger.NewNop())
	r := gin.New()
	r.POST("/protected", m.RequireAuth(), func(c *gin.Context) {
		*handlerCalls++
		c.String(http.StatusOK, utils.CurrentUser(c))
	})
	r.GET("/optional", m.OptionalAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, utils.CurrentUser(c))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("middleware-secret", 7)
	session, err := jwtSvc.Issue("admin")
	require.NoError(t, err)
	other, err := auth.NewJWTService("other-secret", 7).Issue("admin")
	require.NoError(t, err)

	tests := []struct {
		name     string
		prepare  func(req *http.Request)
		wantCode int
	}{
		{"no credentials", func(*http.Request) {}, http.StatusUnauthorized},
		{"garbage bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer garbage") }, http.StatusUnauthorized},
		{"foreign signature", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+other.Token) }, http.StatusUnauthorized},
		{"bearer", func(req *http.Request) { req.Header.Set("Authorization", "Bearer "+session.Token) }, http.StatusOK},
		{"cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: session.Token})
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			r := newAuthRouter(t, jwtSvc, &calls)

			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, 1, calls)
				assert.Equal(t, "admin", w.Body.String())
			} else {
				assert.Zero(t, calls, "handler must not run")
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			}
		})
	}
}

func TestOptionalAuth_ContinuesWithoutSession(t *testing.T) {
	jwtSvc := auth.NewJWTService("middleware-secret", 7)
	calls := 0
	r := newAuthRouter(t, jwtSvc, &calls)

	req := httptest.NewRequest(http.MethodGet, "/optional", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authApp "github.com/lumenhq/lumen/internal/application/auth"
	"github.com/lumenhq/lumen/internal/application/auth/dto"
	"github.com/lumenhq/lumen/internal/infrastructure/auth"
	"github.com/lumenhq/lumen/internal/interfaces/http/handlers/testutil"
	"github.com/lumenhq/lumen/internal/shared/config"
	"github.com/lumenhq/lumen/internal/shared/logger"
	"github.com/lumenhq/lumen/internal/shared/utils"
)

func newTestAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.AuthConfig{
		Admin:      config.AdminConfig{Username: "admin", PasswordHash: string(hash)},
		Cookie:     config.CookieConfig{Path: "/", SameSite: "Lax"},
		BcryptCost: bcrypt.MinCost,
	}
	service := authApp.NewServiceDDD(cfg, auth.NewJWTService("test-secret", 7), logger.NewNop())
	return NewAuthHandler(service, cfg.Cookie, testutil.NewMockLogger())
}

func sessionCookie(t *testing.T, header http.Header) *http.Cookie {
	t.Helper()
	resp := http.Response{Header: header}
	for _, c := range resp.Cookies() {
		if c.Name == utils.SessionCookie {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("valid credentials set the session cookie", func(t *testing.T) {
		handler := newTestAuthHandler(t)
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login",
			dto.LoginRequest{Username: "admin", Password: "hunter2"})

		handler.Login(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.SessionResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Authenticated)
		assert.Equal(t, "admin", resp.Username)
		require.NotNil(t, resp.ExpiresAt)

		cookie := sessionCookie(t, w.Header())
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, 7*24*3600, cookie.MaxAge)
		assert.NotEmpty(t, cookie.Value)
	})

	t.Run("wrong password", func(t *testing.T) {
		handler := newTestAuthHandler(t)
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login",
			dto.LoginRequest{Username: "admin", Password: "wrong"})

		handler.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var resp testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "Invalid username or password", resp.Error)
		assert.Nil(t, sessionCookie(t, w.Header()))
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := newTestAuthHandler(t)
		c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/login", map[string]string{"username": "admin"})

		handler.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Session(t *testing.T) {
	handler := newTestAuthHandler(t)

	login, lw := testutil.NewTestContext(http.MethodPost, "/api/admin/login",
		dto.LoginRequest{Username: "admin", Password: "hunter2"})
	handler.Login(login)
	cookie := sessionCookie(t, lw.Header())
	require.NotNil(t, cookie)

	t.Run("cookie", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/session", nil)
		c.Request.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: cookie.Value})

		handler.Session(c)

		var resp dto.SessionResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Authenticated)
		assert.Equal(t, "admin", resp.Username)
	})

	t.Run("bearer header", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/session", nil)
		c.Request.Header.Set("Authorization", "Bearer "+cookie.Value)

		handler.Session(c)

		var resp dto.SessionResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.True(t, resp.Authenticated)
	})

	t.Run("tampered token", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/session", nil)
		c.Request.Header.Set("Authorization", "Bearer x"+cookie.Value)

		handler.Session(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.SessionResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.False(t, resp.Authenticated)
	})

	t.Run("anonymous", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodGet, "/api/admin/session", nil)

		handler.Session(c)

		assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := newTestAuthHandler(t)
	c, w := testutil.NewTestContext(http.MethodPost, "/api/admin/logout", nil)

	handler.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookie := sessionCookie(t, w.Header())
	require.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

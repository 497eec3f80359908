package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumenhq/lumen/internal/shared/config"
)

const SessionCookie = "lumen_session"

// SetSessionCookie stores the admin session token as an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, cookieConfig config.CookieConfig, token string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(SessionCookie, token, maxAge, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// ClearSessionCookie expires the admin session cookie.
func ClearSessionCookie(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(SessionCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
}

// SessionToken returns the session token from the cookie, or from a
// "Bearer" Authorization header when no cookie is present.
func SessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

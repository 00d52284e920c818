package utils

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/shared/config"
)

const (
	AccessTokenCookie = "access_token"
	CSRFTokenCookie   = "csrf_token"
	CSRFTokenHeader   = "X-CSRF-Token"
	csrfTokenBytes    = 32
)

// SetAccessTokenCookie sets the access token as an HttpOnly cookie.
func SetAccessTokenCookie(c *gin.Context, cookieConfig config.CookieConfig, accessToken string, maxAge int) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		AccessTokenCookie,
		accessToken,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		true, // HttpOnly
	)
}

// SetCSRFCookie issues a fresh random CSRF token readable by the frontend
// for the double-submit pattern.
func SetCSRFCookie(c *gin.Context, cookieConfig config.CookieConfig, maxAge int) (string, error) {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(
		CSRFTokenCookie,
		token,
		maxAge,
		cookieConfig.Path,
		cookieConfig.Domain,
		cookieConfig.Secure,
		false, // readable by JS so it can be echoed in the header
	)
	return token, nil
}

// ClearAuthCookies clears the access token and CSRF cookies.
func ClearAuthCookies(c *gin.Context, cookieConfig config.CookieConfig) {
	c.SetSameSite(parseSameSite(cookieConfig.SameSite))
	c.SetCookie(AccessTokenCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, true)
	c.SetCookie(CSRFTokenCookie, "", -1, cookieConfig.Path, cookieConfig.Domain, cookieConfig.Secure, false)
}

// GetTokenFromCookie reads a cookie value, returning "" when absent.
func GetTokenFromCookie(c *gin.Context, name string) string {
	value, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return value
}

func parseSameSite(value string) http.SameSite {
	switch value {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/shared/utils"
)

// csrfExactPaths lists exact paths exempt from CSRF validation.
// Login has no cookie session to protect yet; logout is exempt because
// the CSRF cookie may have expired alongside the access token and the
// endpoint is already behind RequireAuth.
var csrfExactPaths = map[string]struct{}{
	"/auth/login":  {},
	"/auth/logout": {},
}

// CSRF validates mutating requests with the double submit cookie pattern:
// the csrf_token cookie must match the X-CSRF-Token header. Safe methods
// are always skipped.
func CSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSafeMethod(c.Request.Method) {
			c.Next()
			return
		}

		if _, ok := csrfExactPaths[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		cookieToken, err := c.Cookie(utils.CSRFTokenCookie)
		if err != nil || cookieToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token")
			c.Abort()
			return
		}

		headerToken := c.GetHeader(utils.CSRFTokenHeader)
		if headerToken == "" {
			utils.ErrorResponse(c, http.StatusForbidden, "missing CSRF token header")
			c.Abort()
			return
		}

		// Constant-time comparison to prevent timing attacks
		if subtle.ConstantTimeCompare([]byte(cookieToken), []byte(headerToken)) != 1 {
			utils.ErrorResponse(c, http.StatusForbidden, "invalid CSRF token")
			c.Abort()
			return
		}

		c.Next()
	}
}

// isSafeMethod returns true for HTTP methods that do not mutate state.
func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

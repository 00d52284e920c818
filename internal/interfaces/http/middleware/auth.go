package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/infrastructure/auth"
	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth resolves the access token from the auth cookie, falling back
// to a Bearer header for non-browser clients, and loads the verified
// claims into the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.GetTokenFromCookie(c, utils.AccessTokenCookie)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
				c.Abort()
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		c.Set(constants.ContextKeySessionID, claims.SessionID)

		c.Next()
	}
}

package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"incidentdesk/internal/shared/constants"
	"incidentdesk/internal/shared/utils"
)

// RequireAdmin aborts the request unless the auth middleware resolved an
// admin role for the current actor.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

type OwnedResource interface {
	GetOwnerID() uint
}

func CanAccessResource(userID uint, userRole UserRole, resource OwnedResource) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resource.GetOwnerID()
}

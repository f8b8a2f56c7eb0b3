package middleware

import (
	"net/http"

	"github.com/codeAntu/battle-zone-sub000/internal/domain"
	"github.com/codeAntu/battle-zone-sub000/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminRequired is the single authorization predicate for admin-only
// operations: the role claim must be ADMIN.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(string) != domain.RoleAdmin {
			response.AbortErr(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

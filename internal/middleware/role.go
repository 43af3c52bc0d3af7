package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// RoleAuthMiddleware 驗證使用者角色權限，必須接在 AuthMiddleware 之後
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("userRole")
		if !exists {
			utils.FailAbort(c, http.StatusForbidden, utils.CodeForbidden, "無法取得使用者角色")
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		// 會長擁有所有權限
		if role == models.RoleCommissioner {
			hasPermission = true
		}

		if !hasPermission {
			utils.FailAbort(c, http.StatusForbidden, utils.CodeForbidden, "權限不足")
			return
		}
		c.Next()
	}
}

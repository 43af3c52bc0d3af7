package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AuthMiddleware 驗證請求身份
// 優先讀取 session cookie，其次接受 Authorization: Bearer，供非瀏覽器客戶端使用
func AuthMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			utils.FailAbort(c, http.StatusUnauthorized, utils.CodeUnauthorized, "請先登入")
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.FailAbort(c, http.StatusUnauthorized, utils.CodeUnauthorized, "無效或過期的憑證")
			return
		}

		// 將使用者信息設置到上下文中
		c.Set("userID", claims.UserID)
		c.Set("userRole", models.UserRole(claims.Role))
		c.Next()
	}
}

// TryAuthMiddleware 嘗試解析身份，失敗也放行
// 公開頁面對已登入的使用者可多給一點資訊
func TryAuthMiddleware(cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}

		if claims, err := utils.ParseToken(token); err == nil {
			c.Set("userID", claims.UserID)
			c.Set("userRole", models.UserRole(claims.Role))
		}
		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUserID 從上下文取出已驗證的使用者 ID
func CurrentUserID(c *gin.Context) uint {
	if userID, exists := c.Get("userID"); exists {
		return userID.(uint)
	}
	return 0
}

// CurrentUserRole 從上下文取出已驗證的使用者角色
func CurrentUserRole(c *gin.Context) models.UserRole {
	if role, exists := c.Get("userRole"); exists {
		return role.(models.UserRole)
	}
	return ""
}

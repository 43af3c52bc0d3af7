package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	userService  *service.UserService
	cookieName   string
	cookieSecure bool
	tokenHours   int
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(userService *service.UserService, cookieName string, cookieSecure bool, tokenHours int) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		tokenHours:   tokenHours,
	}
}

// RegisterInput 定義註冊請求的結構
type RegisterInput struct {
	Username    string `json:"username" binding:"required,min=3,max=50"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name"`
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register 處理使用者註冊
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	user, err := h.userService.Register(input.Username, input.Email, input.Password, input.DisplayName)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.Created(c, user)
}

// Login 處理使用者登入，成功時簽發 token 並寫入 session cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	user, err := h.userService.Authenticate(input.Username, input.Password)
	if err != nil {
		// 認證失敗一律回 401，不洩漏帳號是否存在
		utils.Fail(c, http.StatusUnauthorized, utils.CodeUnauthorized, "帳號或密碼錯誤")
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.CodeInternal, "簽發憑證失敗")
		return
	}

	maxAge := h.tokenHours * 3600
	c.SetCookie(h.cookieName, token, maxAge, "/", "", h.cookieSecure, true)

	utils.OK(c, gin.H{"token": token, "user": user})
}

// Logout 清除 session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", h.cookieSecure, true)
	utils.OK(c, gin.H{"message": "已登出"})
}

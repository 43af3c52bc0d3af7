package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AdminUserHandler 處理後台的使用者管理
type AdminUserHandler struct {
	userService *service.UserService
}

func NewAdminUserHandler(userService *service.UserService) *AdminUserHandler {
	return &AdminUserHandler{userService: userService}
}

// List 列出使用者，可依角色與狀態過濾
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Query("role"), c.Query("status"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, users)
}

// SetRole 變更使用者角色（路由層限定會長）
func (h *AdminUserHandler) SetRole(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	user, err := h.userService.SetRole(userID, input.Role)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, user)
}

// SetStatus 啟用或停權使用者帳號
func (h *AdminUserHandler) SetStatus(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	user, err := h.userService.SetStatus(userID, input.Status)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, user)
}

// Delete 刪除使用者帳號
func (h *AdminUserHandler) Delete(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(userID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "使用者已刪除"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// ProfileHandler 處理會員個人資料相關的請求
type ProfileHandler struct {
	userService *service.UserService
}

func NewProfileHandler(userService *service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// Me 回傳目前登入的使用者資料
func (h *ProfileHandler) Me(c *gin.Context) {
	user, err := h.userService.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, user)
}

// UpdateMe 更新個人資料，未帶的欄位不變更
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var input struct {
		DisplayName  *string `json:"display_name"`
		JerseyNumber *int    `json:"jersey_number"`
		Bats         *string `json:"bats" binding:"omitempty,oneof=L R S"`
		Throws       *string `json:"throws" binding:"omitempty,oneof=L R"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(middleware.CurrentUserID(c), service.ProfileUpdate{
		DisplayName:  input.DisplayName,
		JerseyNumber: input.JerseyNumber,
		Bats:         input.Bats,
		Throws:       input.Throws,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, user)
}

// ChangePassword 更換密碼，須驗證舊密碼
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	var input struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	if err := h.userService.ChangePassword(middleware.CurrentUserID(c), input.OldPassword, input.NewPassword); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "密碼已更新"})
}

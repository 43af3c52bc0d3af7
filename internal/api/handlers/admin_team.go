package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AdminTeamHandler 處理後台的球隊管理
type AdminTeamHandler struct {
	teamService *service.TeamService
}

func NewAdminTeamHandler(teamService *service.TeamService) *AdminTeamHandler {
	return &AdminTeamHandler{teamService: teamService}
}

// Create 建立球隊並指派經理
func (h *AdminTeamHandler) Create(c *gin.Context) {
	var input struct {
		Name         string `json:"name" binding:"required,max=100"`
		Abbreviation string `json:"abbreviation" binding:"max=10"`
		HomeField    string `json:"home_field" binding:"max=100"`
		ManagerID    uint   `json:"manager_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	team, err := h.teamService.Create(input.Name, input.Abbreviation, input.HomeField, input.ManagerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Created(c, team)
}

// Update 修改球隊資料
func (h *AdminTeamHandler) Update(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Name         string `json:"name" binding:"max=100"`
		Abbreviation string `json:"abbreviation" binding:"max=10"`
		HomeField    string `json:"home_field" binding:"max=100"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	team, err := h.teamService.Update(teamID, input.Name, input.Abbreviation, input.HomeField)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, team)
}

// Delete 解散球隊
func (h *AdminTeamHandler) Delete(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(teamID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "球隊已解散"})
}

// ResetInviteCode 重設球隊邀請碼
func (h *AdminTeamHandler) ResetInviteCode(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	code, err := h.teamService.ResetInviteCode(teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"invite_code": code})
}

// SetManager 轉移球隊經理職務
func (h *AdminTeamHandler) SetManager(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	team, err := h.teamService.SetManager(teamID, input.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, team)
}

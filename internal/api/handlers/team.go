package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// TeamHandler 處理球隊公開頁面與加入、離開請求
type TeamHandler struct {
	teamService *service.TeamService
}

func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// List 列出所有球隊
func (h *TeamHandler) List(c *gin.Context) {
	teams, err := h.teamService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, teams)
}

// Get 查詢單一球隊
func (h *TeamHandler) Get(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.Get(teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, team)
}

// Roster 查詢球隊名單
func (h *TeamHandler) Roster(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	roster, err := h.teamService.Roster(teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, roster)
}

// Join 憑邀請碼加入球隊
func (h *TeamHandler) Join(c *gin.Context) {
	var input struct {
		InviteCode string `json:"invite_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	team, err := h.teamService.Join(middleware.CurrentUserID(c), input.InviteCode)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, team)
}

// Leave 離開目前的球隊
func (h *TeamHandler) Leave(c *gin.Context) {
	if err := h.teamService.Leave(middleware.CurrentUserID(c)); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "已離開球隊"})
}

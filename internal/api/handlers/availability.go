package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AvailabilityHandler 處理比賽出席回覆
type AvailabilityHandler struct {
	gameService *service.GameService
}

func NewAvailabilityHandler(gameService *service.GameService) *AvailabilityHandler {
	return &AvailabilityHandler{gameService: gameService}
}

// List 查詢某場比賽所有人的出席回覆
func (h *AvailabilityHandler) List(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	availabilities, err := h.gameService.GameAvailability(gameID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, availabilities)
}

// Set 回覆自己的出席狀況
func (h *AvailabilityHandler) Set(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
		Note   string `json:"note" binding:"max=255"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	availability, err := h.gameService.SetAvailability(middleware.CurrentUserID(c), gameID, input.Status, input.Note)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, availability)
}

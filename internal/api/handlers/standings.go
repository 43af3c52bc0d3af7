package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// StandingsHandler 處理戰績榜查詢
type StandingsHandler struct {
	standingsService *service.StandingsService
}

func NewStandingsHandler(standingsService *service.StandingsService) *StandingsHandler {
	return &StandingsHandler{standingsService: standingsService}
}

// Get 回傳戰績榜，未指定賽季時採用啟用中的賽季
func (h *StandingsHandler) Get(c *gin.Context) {
	var seasonID uint
	if parsed, err := strconv.ParseUint(c.Query("season_id"), 10, 32); err == nil {
		seasonID = uint(parsed)
	}

	rows, err := h.standingsService.Standings(seasonID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, rows)
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// StatsHandler 處理打擊統計查詢
type StatsHandler struct {
	scorebookService *service.ScorebookService
	seasonService    *service.SeasonService
}

func NewStatsHandler(scorebookService *service.ScorebookService, seasonService *service.SeasonService) *StatsHandler {
	return &StatsHandler{scorebookService: scorebookService, seasonService: seasonService}
}

// Batting 查詢整季打擊成績，min_pa 過濾打席數不足的打者
func (h *StatsHandler) Batting(c *gin.Context) {
	var seasonID uint
	if parsed, err := strconv.ParseUint(c.Query("season_id"), 10, 32); err == nil {
		seasonID = uint(parsed)
	} else {
		season, err := h.seasonService.Active()
		if err != nil {
			handleServiceError(c, err)
			return
		}
		seasonID = season.ID
	}

	minPA := 0
	if parsed, err := strconv.Atoi(c.Query("min_pa")); err == nil && parsed > 0 {
		minPA = parsed
	}

	lines, err := h.scorebookService.BattingStats(seasonID, minPA)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, lines)
}

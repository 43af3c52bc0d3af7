package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// GameHandler 處理賽程與比賽的公開查詢
type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// Schedule 查詢賽程，可依球隊、賽季、日期區間過濾
func (h *GameHandler) Schedule(c *gin.Context) {
	var filter repository.ScheduleFilter

	if seasonID, err := strconv.ParseUint(c.Query("season_id"), 10, 32); err == nil {
		filter.SeasonID = uint(seasonID)
	}
	if teamID, err := strconv.ParseUint(c.Query("team_id"), 10, 32); err == nil {
		filter.TeamID = uint(teamID)
	}
	if from, err := time.Parse(time.RFC3339, c.Query("from")); err == nil {
		filter.From = from
	}
	if to, err := time.Parse(time.RFC3339, c.Query("to")); err == nil {
		filter.To = to
	}

	games, err := h.gameService.Schedule(filter)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, games)
}

// Get 查詢單場比賽，包含即時比分
func (h *GameHandler) Get(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.Get(gameID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

// Health 基本的健康檢查
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AdminGameHandler 處理後台的比賽管理與狀態轉換
type AdminGameHandler struct {
	gameService *service.GameService
}

func NewAdminGameHandler(gameService *service.GameService) *AdminGameHandler {
	return &AdminGameHandler{gameService: gameService}
}

// Create 排定新比賽
func (h *AdminGameHandler) Create(c *gin.Context) {
	var input struct {
		SeasonID    uint      `json:"season_id" binding:"required"`
		HomeTeamID  uint      `json:"home_team_id" binding:"required"`
		AwayTeamID  uint      `json:"away_team_id" binding:"required"`
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
		Field       string    `json:"field" binding:"max=100"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	game, err := h.gameService.Create(input.SeasonID, input.HomeTeamID, input.AwayTeamID, input.ScheduledAt, input.Field)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Created(c, game)
}

// Reschedule 重新排定比賽時間
func (h *AdminGameHandler) Reschedule(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
		Field       string    `json:"field" binding:"max=100"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	game, err := h.gameService.Reschedule(gameID, input.ScheduledAt, input.Field)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

// noteInput 是延賽、取消、中斷時附帶的原因
type noteInput struct {
	Note string `json:"note" binding:"max=255"`
}

func bindNote(c *gin.Context) (string, bool) {
	var input noteInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
			return "", false
		}
	}
	return input.Note, true
}

// StartWarmup 比賽進入熱身
func (h *AdminGameHandler) StartWarmup(c *gin.Context) {
	h.simpleTransition(c, func(id uint) (*models.Game, error) {
		return h.gameService.StartWarmup(id)
	})
}

// Start 比賽開打
func (h *AdminGameHandler) Start(c *gin.Context) {
	h.simpleTransition(c, func(id uint) (*models.Game, error) {
		return h.gameService.Start(id)
	})
}

// Resume 中斷的比賽續賽
func (h *AdminGameHandler) Resume(c *gin.Context) {
	h.simpleTransition(c, func(id uint) (*models.Game, error) {
		return h.gameService.Resume(id)
	})
}

// Suspend 比賽中斷
func (h *AdminGameHandler) Suspend(c *gin.Context) {
	h.notedTransition(c, func(id uint, note string) (*models.Game, error) {
		return h.gameService.Suspend(id, note)
	})
}

// Postpone 延賽
func (h *AdminGameHandler) Postpone(c *gin.Context) {
	h.notedTransition(c, func(id uint, note string) (*models.Game, error) {
		return h.gameService.Postpone(id, note)
	})
}

// Cancel 取消比賽
func (h *AdminGameHandler) Cancel(c *gin.Context) {
	h.notedTransition(c, func(id uint, note string) (*models.Game, error) {
		return h.gameService.Cancel(id, note)
	})
}

// SetScore 更新即時比分
func (h *AdminGameHandler) SetScore(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		HomeScore *int `json:"home_score" binding:"required"`
		AwayScore *int `json:"away_score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	game, err := h.gameService.SetScore(gameID, *input.HomeScore, *input.AwayScore)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

// Finalize 比賽結束並確定最終比分
func (h *AdminGameHandler) Finalize(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		HomeScore *int `json:"home_score"`
		AwayScore *int `json:"away_score"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
			return
		}
	}

	game, err := h.gameService.Finalize(gameID, input.HomeScore, input.AwayScore)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

func (h *AdminGameHandler) simpleTransition(c *gin.Context, apply func(id uint) (*models.Game, error)) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	game, err := apply(gameID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

func (h *AdminGameHandler) notedTransition(c *gin.Context, apply func(id uint, note string) (*models.Game, error)) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	note, ok := bindNote(c)
	if !ok {
		return
	}

	game, err := apply(gameID, note)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, game)
}

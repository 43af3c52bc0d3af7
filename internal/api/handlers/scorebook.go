package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// ScorebookHandler 處理記錄簿：打席的查詢、登錄與撤銷
type ScorebookHandler struct {
	scorebookService *service.ScorebookService
}

func NewScorebookHandler(scorebookService *service.ScorebookService) *ScorebookHandler {
	return &ScorebookHandler{scorebookService: scorebookService}
}

// List 依序號列出某場比賽的全部打席
func (h *ScorebookHandler) List(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	pas, err := h.scorebookService.List(gameID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, pas)
}

// Record 登錄一個打席
func (h *ScorebookHandler) Record(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		BatterID uint   `json:"batter_id" binding:"required"`
		TeamID   uint   `json:"team_id" binding:"required"`
		Inning   int    `json:"inning" binding:"required,min=1"`
		Result   string `json:"result" binding:"required"`
		Subtype  string `json:"subtype" binding:"required"`
		RBI      int    `json:"rbi" binding:"min=0,max=4"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	pa, err := h.scorebookService.Record(middleware.CurrentUserID(c), gameID, service.RecordInput{
		BatterID: input.BatterID,
		TeamID:   input.TeamID,
		Inning:   input.Inning,
		Result:   models.PAResultType(input.Result),
		Subtype:  models.PAResultSubtype(input.Subtype),
		RBI:      input.RBI,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Created(c, pa)
}

// DeleteLast 撤銷最後一個打席
func (h *ScorebookHandler) DeleteLast(c *gin.Context) {
	gameID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.scorebookService.DeleteLast(middleware.CurrentUserID(c), gameID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "已撤銷最後一個打席"})
}

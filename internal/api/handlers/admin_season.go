package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// AdminSeasonHandler 處理後台的賽季管理
type AdminSeasonHandler struct {
	seasonService *service.SeasonService
}

func NewAdminSeasonHandler(seasonService *service.SeasonService) *AdminSeasonHandler {
	return &AdminSeasonHandler{seasonService: seasonService}
}

// List 列出所有賽季
func (h *AdminSeasonHandler) List(c *gin.Context) {
	seasons, err := h.seasonService.List()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, seasons)
}

// Create 建立賽季
func (h *AdminSeasonHandler) Create(c *gin.Context) {
	var input struct {
		Name      string    `json:"name" binding:"required,max=100"`
		Year      int       `json:"year" binding:"required"`
		StartDate time.Time `json:"start_date" binding:"required"`
		EndDate   time.Time `json:"end_date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	season, err := h.seasonService.Create(input.Name, input.Year, input.StartDate, input.EndDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Created(c, season)
}

// Update 修改賽季資料
func (h *AdminSeasonHandler) Update(c *gin.Context) {
	seasonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input struct {
		Name      string    `json:"name" binding:"max=100"`
		StartDate time.Time `json:"start_date"`
		EndDate   time.Time `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	season, err := h.seasonService.Update(seasonID, input.Name, input.StartDate, input.EndDate)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, season)
}

// Activate 啟用指定賽季
func (h *AdminSeasonHandler) Activate(c *gin.Context) {
	seasonID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	season, err := h.seasonService.Activate(seasonID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, season)
}

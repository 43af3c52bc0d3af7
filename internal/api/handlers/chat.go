package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// ChatHandler 處理球隊頻道聊天的 REST 請求
type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// channelParam 解析並驗證路徑中的頻道名稱
func channelParam(c *gin.Context) (models.Channel, bool) {
	name := c.Param("channel")
	if !models.ValidChannel(name) {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, "無效的頻道名稱")
		return "", false
	}
	return models.Channel(name), true
}

// Messages 分頁查詢頻道訊息，before 為時間游標
func (h *ChatHandler) Messages(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	channel, ok := channelParam(c)
	if !ok {
		return
	}

	var before time.Time
	if parsed, err := time.Parse(time.RFC3339, c.Query("before")); err == nil {
		before = parsed
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	messages, err := h.chatService.Messages(middleware.CurrentUserID(c), teamID, channel, before, limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, messages)
}

// Post 在頻道發言
func (h *ChatHandler) Post(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	channel, ok := channelParam(c)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	message, err := h.chatService.Post(middleware.CurrentUserID(c), teamID, channel, input.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.Created(c, message)
}

// Edit 編輯自己的訊息
func (h *ChatHandler) Edit(c *gin.Context) {
	messageID, ok := parseIDParam(c, "messageID")
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, err.Error())
		return
	}

	message, err := h.chatService.Edit(middleware.CurrentUserID(c), messageID, input.Content)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, message)
}

// Delete 軟刪除訊息
func (h *ChatHandler) Delete(c *gin.Context) {
	messageID, ok := parseIDParam(c, "messageID")
	if !ok {
		return
	}

	if err := h.chatService.Delete(middleware.CurrentUserID(c), messageID); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "訊息已刪除"})
}

// Pin 置頂訊息
func (h *ChatHandler) Pin(c *gin.Context) {
	h.setPinned(c, true)
}

// Unpin 取消置頂
func (h *ChatHandler) Unpin(c *gin.Context) {
	h.setPinned(c, false)
}

func (h *ChatHandler) setPinned(c *gin.Context, pinned bool) {
	messageID, ok := parseIDParam(c, "messageID")
	if !ok {
		return
	}

	message, err := h.chatService.Pin(middleware.CurrentUserID(c), messageID, pinned)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, message)
}

// Pinned 查詢頻道的置頂訊息
func (h *ChatHandler) Pinned(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	channel, ok := channelParam(c)
	if !ok {
		return
	}

	messages, err := h.chatService.Pinned(middleware.CurrentUserID(c), teamID, channel)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, messages)
}

// Unread 回報各頻道的未讀數
func (h *ChatHandler) Unread(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	counts, err := h.chatService.UnreadCounts(middleware.CurrentUserID(c), teamID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, counts)
}

// MarkRead 將頻道標記為已讀
func (h *ChatHandler) MarkRead(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	channel, ok := channelParam(c)
	if !ok {
		return
	}

	if err := h.chatService.MarkRead(middleware.CurrentUserID(c), teamID, channel); err != nil {
		handleServiceError(c, err)
		return
	}
	utils.OK(c, gin.H{"message": "已標記為已讀"})
}

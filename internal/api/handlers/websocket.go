package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 注意：在生產環境中，應該檢查 origin
	},
}

// WebSocketHandler 處理聊天頻道的 WebSocket 連接
type WebSocketHandler struct {
	hub         *service.ChatHub
	chatService *service.ChatService
}

func NewWebSocketHandler(hub *service.ChatHub, chatService *service.ChatService) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, chatService: chatService}
}

// HandleChatWS 升級連接並訂閱球隊頻道；客戶端送出的文字訊息視同發言
func (h *WebSocketHandler) HandleChatWS(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	channelName := c.DefaultQuery("channel", string(models.ChannelGeneral))
	if !models.ValidChannel(channelName) {
		utils.Fail(c, http.StatusBadRequest, utils.CodeBadRequest, "無效的頻道名稱")
		return
	}
	channel := models.Channel(channelName)

	userID := middleware.CurrentUserID(c)

	// 未加入球隊的人不可訂閱，先以一次空查詢驗證權限
	if _, err := h.chatService.UnreadCounts(userID, teamID); err != nil {
		handleServiceError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, utils.CodeInternal, "升級 WebSocket 失敗")
		return
	}

	client := &service.Client{
		UserID:  userID,
		TeamID:  teamID,
		Channel: channel,
	}

	h.hub.HandleConnection(conn, client, func(content string) error {
		_, err := h.chatService.Post(userID, teamID, channel, content)
		return err
	})
}

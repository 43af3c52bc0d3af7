package service

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
)

// chatKey 標識一個廣播範圍：某球隊的某個頻道
type chatKey struct {
	TeamID  uint
	Channel models.Channel
}

// Client 代表一個 WebSocket 客戶端連接
type Client struct {
	Conn     *websocket.Conn      // WebSocket 連接
	UserID   uint                 // 使用者 ID
	TeamID   uint                 // 球隊 ID
	Channel  models.Channel       // 訂閱的頻道
	SendChan chan *models.Message // 訊息發送通道，用於異步傳送訊息
}

// inboundMessage 是客戶端經由 WebSocket 送出的訊息格式
type inboundMessage struct {
	Content string `json:"content"`
}

// ChatHub 管理所有的 WebSocket 連接和訊息廣播
type ChatHub struct {
	clients    map[chatKey]map[*Client]bool // 兩層 map: (球隊, 頻道) -> client -> bool
	clientsMux sync.RWMutex                 // 用於保護 clients map 的讀寫鎖
	log        *logger.Logger
}

// NewChatHub 創建並初始化聊天訊息的廣播中心
func NewChatHub(log *logger.Logger) *ChatHub {
	return &ChatHub{
		clients: make(map[chatKey]map[*Client]bool),
		log:     log,
	}
}

// HandleConnection 處理新的 WebSocket 連接
// onText 在客戶端傳來文字訊息時被呼叫，由呼叫端決定如何儲存與廣播
func (h *ChatHub) HandleConnection(conn *websocket.Conn, client *Client, onText func(content string) error) {
	client.Conn = conn
	if client.SendChan == nil {
		client.SendChan = make(chan *models.Message, 256)
	}

	h.addClient(client)

	// 確保連接關閉時清理資源
	defer func() {
		h.removeClient(client)
		conn.Close()
		close(client.SendChan)
	}()

	go h.writePump(client)
	h.readPump(client, onText)
}

// readPump 持續監聽並處理從客戶端接收的訊息
func (h *ChatHub) readPump(client *Client, onText func(content string) error) {
	client.Conn.SetReadLimit(4096) // 訊息上限 4KB
	client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	client.Conn.SetPongHandler(func(string) error {
		client.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Warn("websocket unexpected close", "error", err)
			}
			break
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.log.Warn("websocket message parse error", "error", err)
			continue
		}
		if msg.Content == "" {
			continue
		}

		if err := onText(msg.Content); err != nil {
			// 發言被拒絕（權限或驗證失敗），只通知該客戶端
			h.sendTo(client, &models.Message{
				TeamID:  client.TeamID,
				Channel: client.Channel,
				Type:    models.MessageTypeSystem,
				Content: err.Error(),
			})
		}
	}
}

// writePump 處理向客戶端發送訊息的邏輯
func (h *ChatHub) writePump(client *Client) {
	// 心跳計時器
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.SendChan:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := client.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}

			messageBytes, err := json.Marshal(message)
			if err != nil {
				h.log.Error("websocket message encoding error", "error", err)
				continue
			}

			if _, err := w.Write(messageBytes); err != nil {
				return
			}
			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			client.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Broadcast 向訂閱該球隊頻道的所有客戶端廣播訊息
func (h *ChatHub) Broadcast(teamID uint, channel models.Channel, message *models.Message) {
	key := chatKey{TeamID: teamID, Channel: channel}

	h.clientsMux.RLock()
	clients := h.clients[key]
	h.clientsMux.RUnlock()

	for client := range clients {
		select {
		case client.SendChan <- message:
			// 訊息成功加入發送隊列
		default:
			// 客戶端訊息隊列已滿，關閉連接
			h.removeClient(client)
			client.Conn.Close()
		}
	}
}

// BroadcastSystemMessage 發送系統訊息到指定球隊頻道
func (h *ChatHub) BroadcastSystemMessage(teamID uint, channel models.Channel, content string) {
	msg := &models.Message{
		TeamID:  teamID,
		Channel: channel,
		Type:    models.MessageTypeSystem,
		Content: content,
	}
	h.Broadcast(teamID, channel, msg)
}

func (h *ChatHub) sendTo(client *Client, message *models.Message) {
	select {
	case client.SendChan <- message:
	default:
	}
}

// addClient 安全地添加新的客戶端連接
func (h *ChatHub) addClient(client *Client) {
	key := chatKey{TeamID: client.TeamID, Channel: client.Channel}

	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if h.clients[key] == nil {
		h.clients[key] = make(map[*Client]bool)
	}
	h.clients[key][client] = true
}

// removeClient 安全地移除客戶端連接
func (h *ChatHub) removeClient(client *Client) {
	key := chatKey{TeamID: client.TeamID, Channel: client.Channel}

	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if clients, ok := h.clients[key]; ok {
		delete(clients, client)
		// 頻道沒人訂閱時移除
		if len(clients) == 0 {
			delete(h.clients, key)
		}
	}
}

// ChannelClients 回報某球隊頻道目前在線的客戶端數量
func (h *ChatHub) ChannelClients(teamID uint, channel models.Channel) int {
	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	return len(h.clients[chatKey{TeamID: teamID, Channel: channel}])
}

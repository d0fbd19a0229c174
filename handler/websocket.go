package handler

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type wsClient interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub giữ các client websocket đang theo dõi ghế trống
type Hub struct {
	mu      sync.Mutex
	clients map[uuid.UUID]wsClient
}

func NewHub() *Hub {
	return &Hub{clients: make(map[uuid.UUID]wsClient)}
}

func (h *Hub) Register(conn wsClient) uuid.UUID {
	id := uuid.New()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	return id
}

func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast gửi payload cho tất cả client, client lỗi bị đóng và xoá
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(h.clients, id)
		}
	}
}

type SeatNotifier interface {
	NotifySeats(ctx context.Context, update SeatUpdate) error
}

// HubNotifier broadcast trực tiếp, dùng khi chạy một instance không có Redis
type HubNotifier struct {
	Hub *Hub
}

func (n HubNotifier) NotifySeats(_ context.Context, update SeatUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	n.Hub.Broadcast(payload)
	return nil
}

// RedisSeatNotifier publish lên channel, mỗi instance relay về hub của nó
type RedisSeatNotifier struct {
	Client  *redis.Client
	Channel string
}

func (n RedisSeatNotifier) NotifySeats(ctx context.Context, update SeatUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return n.Client.Publish(ctx, n.Channel, payload).Err()
}

// RelaySeatUpdates sub kênh Redis và đẩy message vào hub cho tới khi ctx bị huỷ
func RelaySeatUpdates(ctx context.Context, client *redis.Client, channel string, hub *Hub, log *zap.Logger) error {
	pubsub := client.Subscribe(ctx, channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	log.Info("seat relay subscribed", zap.String("channel", channel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			hub.Broadcast([]byte(msg.Payload))
		}
	}
}

func (h *Handler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebSocketConnection gửi danh sách ghế lần đầu rồi giữ kết nối tới khi client đóng
func (h *Handler) WebSocketConnection(c *websocket.Conn) {
	defer c.Close()

	if err := c.WriteJSON(h.seatUpdate()); err != nil {
		h.log.Debug("websocket initial write failed", zap.Error(err))
		return
	}

	id := h.hub.Register(c)
	defer h.hub.Unregister(id)
	h.log.Debug("websocket client connected", zap.String("clientId", id.String()))

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			h.log.Debug("websocket client disconnected", zap.String("clientId", id.String()))
			return
		}
	}
}

package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"timo-intelligence-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisChannel carries broadcasts between instances when Redis is
// configured. Without Redis the hub is single-instance only.
const redisChannel = "content_events"

// Hub fans save-status frames out to every connected admin session.
type Hub struct {
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.SessionID]; ok {
				delete(h.clients, client.SessionID)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"session_id": client.SessionID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes one frame to all local clients and, when Redis is
// configured, to the other instances.
func (h *Hub) Broadcast(frame []byte) {
	h.broadcastLocal(frame)

	if h.rdb != nil {
		h.rdb.Publish(context.Background(), redisChannel, frame)
	}
}

func (h *Hub) broadcastLocal(frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- frame:
		default:
			// Slow consumer; drop the connection rather than block
			// the broadcast.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if !json.Valid([]byte(msg.Payload)) {
			h.logger.Warn("Hub", "Dropping malformed cluster frame", nil)
			continue
		}
		h.broadcastLocal([]byte(msg.Payload))
	}
}

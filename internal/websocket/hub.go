package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"plot-editor-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const relayChannel = "editor_events"

// Event is the envelope pushed to connected editors.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type Hub struct {
	// UserID -> connected clients (multi-device)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis relays events to clients connected to other instances. Nil
	// disables the relay.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
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
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Send delivers an event to every connection the user has, on this instance
// directly and on others via the redis relay.
func (h *Hub) Send(userID uuid.UUID, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Hub", "event marshal failed", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, client := range h.deliver(userID, data) {
		h.logger.Warn("Hub", "send buffer full, dropping client", map[string]interface{}{"user_id": userID})
		h.unregister <- client
	}

	if h.rdb != nil {
		payload, _ := json.Marshal(relayPayload{
			TargetUserID: userID.String(),
			Message:      data,
		})
		h.rdb.Publish(context.Background(), relayChannel, payload)
	}
}

// deliver pushes data to every connection the user has on this instance and
// returns the clients whose buffers were full. Run is the only closer of
// Send channels; callers must hand stalled clients to unregister after the
// read lock is released.
func (h *Hub) deliver(userID uuid.UUID, data []byte) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var stalled []*Client
	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	return stalled
}

type relayPayload struct {
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, relayChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload relayPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "relay payload parse failed", map[string]interface{}{"error": err.Error()})
			continue
		}

		uid, err := uuid.Parse(payload.TargetUserID)
		if err != nil {
			continue
		}

		for _, client := range h.deliver(uid, payload.Message) {
			h.unregister <- client
		}
	}
}

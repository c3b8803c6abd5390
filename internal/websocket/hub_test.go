package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"plot-editor-be/internal/pkg/logger"
)

type quietLogger struct{}

var _ logger.ILogger = quietLogger{}

func (quietLogger) Debug(module, message string, details map[string]interface{}) {}
func (quietLogger) Info(module, message string, details map[string]interface{})  {}
func (quietLogger) Warn(module, message string, details map[string]interface{})  {}
func (quietLogger) Error(module, message string, details map[string]interface{}) {}
func (quietLogger) Sync() error                                                  { return nil }

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func (h *Hub) connectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

func TestHubDropsStalledClients(t *testing.T) {
	hub := NewHub(nil, quietLogger{})
	go hub.Run()

	userID := uuid.New()
	stalled := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 1)}
	healthy := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	hub.register <- stalled
	hub.register <- healthy
	waitFor(t, func() bool { return hub.connectionCount(userID) == 2 })

	// First event fills the stalled client's one-slot buffer; the second
	// overflows it and must evict that client without panicking or
	// deadlocking the hub.
	hub.Send(userID, Event{Type: "summaries_invalidated"})
	hub.Send(userID, Event{Type: "summaries_invalidated"})
	waitFor(t, func() bool { return hub.connectionCount(userID) == 1 })

	// The evicted client drains its buffered event and then sees the
	// channel closed exactly once.
	<-stalled.Send
	if _, ok := <-stalled.Send; ok {
		t.Error("evicted client's send channel should be closed")
	}

	// The healthy client received both events and stays registered.
	if got := len(healthy.Send); got != 2 {
		t.Errorf("healthy client buffered %d events, want 2", got)
	}

	// A later send still reaches the surviving client.
	hub.Send(userID, Event{Type: "summaries_invalidated"})
	waitFor(t, func() bool { return len(healthy.Send) == 3 })
}

func TestHubUnregisterIsIdempotent(t *testing.T) {
	hub := NewHub(nil, quietLogger{})
	go hub.Run()

	client := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}
	hub.register <- client
	waitFor(t, func() bool { return hub.connectionCount(client.UserID) == 1 })

	// A client can be reported twice, once by a full-buffer eviction and
	// once by its read pump. The second report must be a no-op.
	hub.unregister <- client
	hub.unregister <- client
	waitFor(t, func() bool { return hub.connectionCount(client.UserID) == 0 })

	if _, ok := <-client.Send; ok {
		t.Error("send channel should be closed after unregister")
	}
}

package events

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Frame is what the hub writes to browsers: the topic plus the event
// payload as published on the bus.
type Frame struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Hub relays bus events to websocket clients. One goroutine per topic
// fans in to Broadcast; clients that fail a write are dropped.
type Hub struct {
	bus    *Bus
	logger *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub(bus *Bus, logger *zap.Logger) *Hub {
	return &Hub{
		bus:    bus,
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Run subscribes to the load topics and forwards messages until ctx is
// cancelled.
func (h *Hub) Run(ctx context.Context) error {
	for _, topic := range []string{TopicDocumentationIndexLoaded, TopicProjectsDataLoaded} {
		ch, err := h.bus.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go h.forward(topic, ch)
	}
	return nil
}

func (h *Hub) forward(topic string, msgs <-chan *message.Message) {
	for msg := range msgs {
		h.Broadcast(topic, msg.Payload)
		msg.Ack()
	}
}

// ServeWS upgrades the request and registers the connection. The read
// loop exists only to notice the client going away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("websocket read", zap.Error(err))
				}
				return
			}
		}
	}()
}

// Broadcast writes a frame to every connected client.
func (h *Hub) Broadcast(topic string, payload []byte) {
	frame := Frame{Topic: topic, Payload: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(frame); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	conn.Close()
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

package events

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs, err := bus.Subscribe(ctx, TopicDocumentationIndexLoaded)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	want := IndexLoaded{Count: 3, LoadedAt: time.Now().UTC()}
	if err := bus.Publish(TopicDocumentationIndexLoaded, want); err != nil {
		t.Fatalf("publish: %v", err)
	}

	select {
	case msg := <-msgs:
		var got IndexLoaded
		if err := json.Unmarshal(msg.Payload, &got); err != nil {
			t.Fatalf("decoding payload: %v", err)
		}
		if got.Count != want.Count || got.Fallback {
			t.Errorf("got %+v, want count=3 fallback=false", got)
		}
		msg.Ack()
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestHubBroadcastsToWebsocketClients(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	hub := NewHub(bus, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := hub.Run(ctx); err != nil {
		t.Fatalf("hub run: %v", err)
	}

	r := chi.NewRouter()
	r.Get("/ws/events", hub.ServeWS)
	server := httptest.NewServer(r)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	// Give the read loop a moment to register the connection.
	time.Sleep(50 * time.Millisecond)

	if err := bus.Publish(TopicProjectsDataLoaded, ProjectsLoaded{Count: 2}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame Frame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("reading frame: %v", err)
	}
	if frame.Topic != TopicProjectsDataLoaded {
		t.Errorf("got topic %q, want %q", frame.Topic, TopicProjectsDataLoaded)
	}
	var payload ProjectsLoaded
	if err := json.Unmarshal(frame.Payload, &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Count != 2 {
		t.Errorf("got count %d, want 2", payload.Count)
	}
}

// Package events carries the site's load notifications. Loaders
// publish to an in-process pub/sub bus; the websocket hub relays the
// messages to connected browsers so pages can react to data becoming
// available.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	TopicDocumentationIndexLoaded = "documentation.index.loaded"
	TopicProjectsDataLoaded       = "projects.data.loaded"
)

// IndexLoaded is published after every attempt to load the
// documentation index, including failed ones that fell back to an
// empty index.
type IndexLoaded struct {
	Count    int       `json:"count"`
	Fallback bool      `json:"fallback"`
	LoadedAt time.Time `json:"loadedAt"`
}

// ProjectsLoaded is published after every attempt to load project data.
type ProjectsLoaded struct {
	Count     int       `json:"count"`
	FromCache bool      `json:"fromCache"`
	Fallback  bool      `json:"fallback"`
	LoadedAt  time.Time `json:"loadedAt"`
}

// Bus wraps an in-process go-channel pub/sub. Payloads travel as JSON
// so the websocket hub can forward them to browsers unchanged.
type Bus struct {
	pubsub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, watermill.NopLogger{}),
	}
}

func (b *Bus) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	return ch, nil
}

func (b *Bus) Close() error {
	return b.pubsub.Close()
}

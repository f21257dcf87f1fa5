// Package realtime implements the in-process fan-out broker behind the
// /ws endpoint. Channels are addressed by name (user:<uuid>,
// thread:<id>); delivery is fire-and-forget to currently connected
// subscribers with no persistence or replay.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/s21platform/forum-service/internal/model"
)

type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*client]struct{}),
	}
}

// Publish delivers a named event to every current subscriber of the
// channel. Subscribers that cannot keep up are skipped; they recover
// state on the next poll or reconnect.
func (h *Hub) Publish(ctx context.Context, channel, event string, payload interface{}) error {
	data, err := json.Marshal(model.RealtimeEvent{
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.subscribers[channel] {
		select {
		case c.send <- data:
		default:
			// slow consumer, drop
		}
	}

	return nil
}

func (h *Hub) join(c *client, channel string) {
	if channel == "" {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subscribers[channel] == nil {
		h.subscribers[channel] = make(map[*client]struct{})
	}
	h.subscribers[channel][c] = struct{}{}
	c.channels[channel] = struct{}{}
}

func (h *Hub) leave(c *client, channel string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.detach(c, channel)
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for channel := range c.channels {
		h.detach(c, channel)
	}
}

// detach expects h.mu to be held.
func (h *Hub) detach(c *client, channel string) {
	subscribers, ok := h.subscribers[channel]
	if !ok {
		return
	}

	delete(subscribers, c)
	delete(c.channels, channel)

	if len(subscribers) == 0 {
		delete(h.subscribers, channel)
	}
}

// SubscriberCount reports how many connections are currently joined to
// a channel.
func (h *Hub) SubscriberCount(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[channel])
}

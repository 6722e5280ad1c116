package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"porter-saathi/internal/emergency"
	"porter-saathi/pkg/log"
)

// Hub tracks connected clients and broadcasts to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	l       log.Logger
}

var _ emergency.Notifier = (*Hub)(nil)

func NewHub(l log.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		l:       l,
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	c.close()
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends a frame to every client. Clients that cannot keep up are
// disconnected.
func (h *Hub) Broadcast(msgType string, payload any) error {
	frame, err := encode(msgType, payload)
	if err != nil {
		return err
	}

	h.mu.RLock()
	var slow []*client
	for c := range h.clients {
		if !c.enqueue(frame) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.unregister(c)
	}
	return nil
}

// Notify pushes an emergency alert to every connected client.
func (h *Hub) Notify(ctx context.Context, alert emergency.Alert) error {
	if err := h.Broadcast(TypeEmergencyNotification, alert); err != nil {
		return err
	}
	h.l.Debugf(ctx, "realtime.Hub.Notify: alert %s sent to %d clients", alert.ID, h.Len())
	return nil
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.close()
		delete(h.clients, c)
	}
}

func encode(msgType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", msgType, err)
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

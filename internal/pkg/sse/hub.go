package sse

import (
	"encoding/json"
	"sync"
)

// Event is a single broadcast event
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client is a subscriber connection
type Client struct {
	ID      string
	Channel chan Event
	Topic   string
}

// Hub fans broadcast events out to subscribed clients
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]bool // topic -> clients
}

// NewHub creates a Hub
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]bool),
	}
}

// Register subscribes a client to its topic
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.Topic] == nil {
		h.clients[client.Topic] = make(map[*Client]bool)
	}
	h.clients[client.Topic][client] = true
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.Topic]; ok {
		if _, exists := clients[client]; exists {
			delete(clients, client)
			close(client.Channel)

			if len(clients) == 0 {
				delete(h.clients, client.Topic)
			}
		}
	}
}

// Broadcast delivers an event to every client subscribed to the topic.
// Delivery is fire-and-forget: clients with a full buffer are skipped.
func (h *Hub) Broadcast(topic string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[topic]; ok {
		for client := range clients {
			select {
			case client.Channel <- event:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of clients subscribed to the topic
func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.clients[topic]; ok {
		return len(clients)
	}
	return 0
}

// FormatSSE renders the event in SSE wire format
func (e Event) FormatSSE() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + e.Type + "\ndata: " + string(data) + "\n\n"
}

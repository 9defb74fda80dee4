package ws

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// Hub manages all active WebSocket clients and fans blog events out to them.
type Hub struct {
	// clients maps userID → client.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run starts the Hub's main event loop. Call this in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.userID] = client
			slog.Info("ws hub: client connected", "user_id", client.userID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client.userID]; ok {
				delete(h.clients, client.userID)
				close(client.send)
				close(client.done)
				slog.Info("ws hub: client disconnected", "user_id", client.userID, "total", len(h.clients))
			}

		case data := <-h.broadcast:
			for _, client := range h.clients {
				select {
				case client.send <- data:
				default:
					// Client buffer full - disconnect
					delete(h.clients, client.userID)
					close(client.send)
					close(client.done)
				}
			}
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("ws hub: marshal error", "error", err)
		return
	}
	h.broadcast <- data
}

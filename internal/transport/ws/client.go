package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait    = 10 * time.Second
	pingInterval = 30 * time.Second
	sendBufSize  = 256
)

// Client represents a single WebSocket connection.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID uuid.UUID

	send chan []byte
	done chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uuid.UUID) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, sendBufSize),
		done:   make(chan struct{}),
	}
}

// ReadPump reads messages from the WebSocket until the peer goes away.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var event Event
		err := wsjson.Read(context.Background(), c.conn, &event)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Info("ws: client disconnected", "user_id", c.userID)
			} else {
				slog.Error("ws: read error", "user_id", c.userID, "error", err)
			}
			return
		}

		c.handleEvent(&event)
	}
}

// WritePump writes messages from the send channel to the WebSocket.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Write(ctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Error("ws: write error", "user_id", c.userID, "error", err)
				return
			}

		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), writeWait)
			err := c.conn.Ping(ctx)
			cancel()
			if err != nil {
				slog.Error("ws: ping error", "user_id", c.userID, "error", err)
				return
			}

		case <-c.done:
			return
		}
	}
}

// handleEvent routes an incoming client event. The feed is one-way besides
// keepalives, so anything but ping is rejected.
func (c *Client) handleEvent(event *Event) {
	switch event.Type {
	case EventTypePing:
		c.sendPong()
	default:
		c.sendError("UNKNOWN_EVENT", "unknown event type: "+event.Type)
	}
}

func (c *Client) sendPong() {
	data, _ := json.Marshal(Event{Type: EventTypePong})
	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) sendError(code, message string) {
	evt, err := NewEvent(EventTypeError, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

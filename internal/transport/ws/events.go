package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypeBlogCreated = "blog.created"
	EventTypeBlogUpdated = "blog.updated"
	EventTypeBlogDeleted = "blog.deleted"
	EventTypePong        = "pong"
	EventTypeError       = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

type BlogPayload struct {
	domain.Blog
}

type BlogDeletedPayload struct {
	ID uuid.UUID `json:"id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}

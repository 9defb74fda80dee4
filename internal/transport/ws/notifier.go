package ws

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyBlogCreated(blog *domain.Blog) {
	evt, err := NewEvent(EventTypeBlogCreated, BlogPayload{Blog: *blog})
	if err != nil {
		slog.Error("ws notifier: marshal error", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyBlogUpdated(blog *domain.Blog) {
	evt, err := NewEvent(EventTypeBlogUpdated, BlogPayload{Blog: *blog})
	if err != nil {
		slog.Error("ws notifier: marshal error", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}

func (n *HubNotifier) NotifyBlogDeleted(id uuid.UUID) {
	evt, err := NewEvent(EventTypeBlogDeleted, BlogDeletedPayload{ID: id})
	if err != nil {
		slog.Error("ws notifier: marshal error", "error", err)
		return
	}
	n.hub.Broadcast(evt)
}

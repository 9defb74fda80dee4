package ws

import (
	"log/slog"
	"net/http"

	"github.com/vedran77/quill/internal/auth"
	"nhooyr.io/websocket"
)

// ServeWS returns an HTTP handler that upgrades to WebSocket.
// Auth is done via ?token=xxx query param (WebSocket can't send headers).
func ServeWS(hub *Hub, codec *auth.TokenCodec) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.URL.Query().Get("token")
		if tokenStr == "" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}

		userID, err := codec.Verify(tokenStr)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true, // Allow any origin (dev mode)
		})
		if err != nil {
			slog.Error("ws: accept error", "error", err)
			return
		}

		client := NewClient(hub, conn, userID)
		hub.register <- client

		go client.WritePump()
		go client.ReadPump()
	}
}

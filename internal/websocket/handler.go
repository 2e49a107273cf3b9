package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches one websocket connection to a conversation session.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID uuid.UUID, onMessage func(sessionID uuid.UUID, payload []byte)) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: sessionID,
		Send:      make(chan []byte, 256),
		OnMessage: onMessage,
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}

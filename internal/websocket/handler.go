package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches one upgraded connection to the hub and blocks until
// the connection drops.
func ServeWs(hub *Hub, c *websocket.Conn) {
	client := &Client{
		Hub:       hub,
		Conn:      c,
		SessionID: uuid.New(),
		Send:      make(chan []byte, 256),
	}
	client.Hub.register <- client

	go client.writePump()
	client.readPump()
}

package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches an upgraded connection to its conversation and runs the
// pumps until the peer goes away.
func ServeWs(broker *Broker, c *websocket.Conn, conversationId string, role Role) {
	client := &Client{
		Broker:         broker,
		Conn:           c,
		ConversationId: conversationId,
		Role:           role,
		Send:           make(chan []byte, 256),
	}
	client.Broker.Connect(client)

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}

package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// inboundFrame is what an endpoint sends us.
type inboundFrame struct {
	Content string `json:"content"`
}

// outboundFrame is what the opposite endpoint receives.
type outboundFrame struct {
	Id        string `json:"id"`
	Content   string `json:"content"`
	Sender    string `json:"sender"`
	Timestamp int64  `json:"timestamp"`
	IsUser    bool   `json:"isUser"`
}

// Client is a middleman between the websocket connection and the broker.
type Client struct {
	Broker *Broker

	// The websocket connection.
	Conn *websocket.Conn

	// Conversation this connection belongs to
	ConversationId string

	// Which side of the conversation this connection is
	Role Role

	// Buffered channel of outbound messages.
	Send chan []byte

	closeOnce sync.Once
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() {
		close(c.Send)
	})
}

// readPump pumps frames from the websocket connection to the broker.
func (c *Client) readPump() {
	defer func() {
		c.Broker.Disconnect(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("readPump error for conversation %s (%s): %v", c.ConversationId, c.Role, err)
			}
			break
		}

		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}

		out, err := json.Marshal(outboundFrame{
			Id:        uuid.NewString(),
			Content:   frame.Content,
			Sender:    string(c.Role),
			Timestamp: time.Now().UnixMilli(),
			IsUser:    c.Role == RoleCustomer,
		})
		if err != nil {
			continue
		}
		c.Broker.Relay(c, out)
	}
}

// writePump pumps frames from the broker to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The broker closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

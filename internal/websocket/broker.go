package websocket

import (
	"sync"

	"securebank-assist-be/internal/pkg/logger"
)

// Role identifies which side of a conversation a connection belongs to.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAgent    Role = "agent"
)

// Opposite returns the other side of the conversation.
func (r Role) Opposite() Role {
	if r == RoleCustomer {
		return RoleAgent
	}
	return RoleCustomer
}

// ParseRole maps a query parameter to a role. Unknown values fall back to
// customer.
func ParseRole(s string) Role {
	if s == string(RoleAgent) {
		return RoleAgent
	}
	return RoleCustomer
}

// Broker routes live chat frames between the customer and agent endpoints
// of a conversation. A conversation entry exists only while at least one
// endpoint is connected; nothing is buffered for absent endpoints.
type Broker struct {
	// Registered clients map: ConversationId -> Role -> Client
	conversations map[string]map[Role]*Client

	// Lock for safe map access
	mu sync.RWMutex

	// Dedicated Logger
	logger logger.ILogger
}

func NewBroker(log logger.ILogger) *Broker {
	return &Broker{
		conversations: make(map[string]map[Role]*Client),
		logger:        log,
	}
}

// Connect registers a client for its conversation and role. A second
// connection for the same role replaces the first.
func (b *Broker) Connect(client *Client) {
	b.mu.Lock()
	endpoints, ok := b.conversations[client.ConversationId]
	if !ok {
		endpoints = make(map[Role]*Client)
		b.conversations[client.ConversationId] = endpoints
	}
	previous := endpoints[client.Role]
	endpoints[client.Role] = client
	b.mu.Unlock()

	if previous != nil {
		previous.closeSend()
	}
	b.logger.Info("Broker", "Client connected", map[string]interface{}{
		"conversation_id": client.ConversationId,
		"role":            client.Role,
	})
}

// Disconnect removes a client from the registry and closes its send channel.
// The conversation entry is dropped once its last endpoint is gone.
func (b *Broker) Disconnect(client *Client) {
	b.mu.Lock()
	removed := false
	if endpoints, ok := b.conversations[client.ConversationId]; ok {
		if endpoints[client.Role] == client {
			delete(endpoints, client.Role)
			removed = true
		}
		if len(endpoints) == 0 {
			delete(b.conversations, client.ConversationId)
		}
	}
	b.mu.Unlock()

	client.closeSend()
	if removed {
		b.logger.Info("Broker", "Client disconnected", map[string]interface{}{
			"conversation_id": client.ConversationId,
			"role":            client.Role,
		})
	}
}

// Relay forwards a frame to the opposite endpoint of the sender's
// conversation. The frame is dropped when the opposite endpoint is not
// connected. A send that cannot be accepted counts as an implicit
// disconnect of the receiver.
func (b *Broker) Relay(from *Client, message []byte) {
	b.mu.RLock()
	var target *Client
	if endpoints, ok := b.conversations[from.ConversationId]; ok {
		target = endpoints[from.Role.Opposite()]
	}
	if target == nil {
		b.mu.RUnlock()
		b.logger.Debug("Broker", "No recipient connected, message dropped", map[string]interface{}{
			"conversation_id": from.ConversationId,
			"sender":          from.Role,
		})
		return
	}

	delivered := false
	select {
	case target.Send <- message:
		delivered = true
	default:
	}
	b.mu.RUnlock()

	if !delivered {
		b.logger.Warn("Broker", "Client send buffer full, dropping connection", map[string]interface{}{
			"conversation_id": target.ConversationId,
			"role":            target.Role,
		})
		b.Disconnect(target)
	}
}

// Connected reports whether a client is registered for the given
// conversation and role.
func (b *Broker) Connected(conversationId string, role Role) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	endpoints, ok := b.conversations[conversationId]
	if !ok {
		return false
	}
	_, ok = endpoints[role]
	return ok
}

// Conversations returns the number of conversations with at least one live
// endpoint.
func (b *Broker) Conversations() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.conversations)
}

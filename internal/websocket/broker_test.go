package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestClient(b *Broker, conversationId string, role Role, buffer int) *Client {
	return &Client{
		Broker:         b,
		ConversationId: conversationId,
		Role:           role,
		Send:           make(chan []byte, buffer),
	}
}

func TestConnectionLifecycle(t *testing.T) {
	b := NewBroker(nopLogger{})

	assert.Equal(t, 0, b.Conversations())

	customer := newTestClient(b, "conv-1", RoleCustomer, 4)
	b.Connect(customer)
	assert.True(t, b.Connected("conv-1", RoleCustomer))
	assert.False(t, b.Connected("conv-1", RoleAgent))

	agent := newTestClient(b, "conv-1", RoleAgent, 4)
	b.Connect(agent)
	assert.True(t, b.Connected("conv-1", RoleAgent))
	assert.Equal(t, 1, b.Conversations())

	b.Disconnect(customer)
	assert.False(t, b.Connected("conv-1", RoleCustomer))
	assert.True(t, b.Connected("conv-1", RoleAgent))
	assert.Equal(t, 1, b.Conversations())

	b.Disconnect(agent)
	assert.Equal(t, 0, b.Conversations())
}

func TestRelayForwardsToOppositeRole(t *testing.T) {
	b := NewBroker(nopLogger{})
	customer := newTestClient(b, "conv-1", RoleCustomer, 4)
	agent := newTestClient(b, "conv-1", RoleAgent, 4)
	b.Connect(customer)
	b.Connect(agent)

	b.Relay(customer, []byte("hello agent"))

	select {
	case got := <-agent.Send:
		assert.Equal(t, "hello agent", string(got))
	default:
		t.Fatal("agent did not receive the frame")
	}
	assert.Empty(t, customer.Send)

	b.Relay(agent, []byte("hello customer"))
	select {
	case got := <-customer.Send:
		assert.Equal(t, "hello customer", string(got))
	default:
		t.Fatal("customer did not receive the frame")
	}
}

func TestRelayDropsWhenOppositeAbsent(t *testing.T) {
	b := NewBroker(nopLogger{})
	customer := newTestClient(b, "conv-1", RoleCustomer, 4)
	b.Connect(customer)

	b.Relay(customer, []byte("anyone there?"))

	assert.Empty(t, customer.Send)
	assert.True(t, b.Connected("conv-1", RoleCustomer))
}

func TestRelayUnknownConversationDrops(t *testing.T) {
	b := NewBroker(nopLogger{})
	orphan := newTestClient(b, "ghost", RoleCustomer, 4)

	b.Relay(orphan, []byte("ping"))

	assert.Equal(t, 0, b.Conversations())
}

func TestRelayFullBufferDisconnectsReceiver(t *testing.T) {
	b := NewBroker(nopLogger{})
	customer := newTestClient(b, "conv-1", RoleCustomer, 4)
	agent := newTestClient(b, "conv-1", RoleAgent, 1)
	b.Connect(customer)
	b.Connect(agent)

	b.Relay(customer, []byte("first"))
	b.Relay(customer, []byte("second"))

	assert.False(t, b.Connected("conv-1", RoleAgent))
	assert.True(t, b.Connected("conv-1", RoleCustomer))

	// Channel was closed by the implicit disconnect; drain the delivered frame.
	got, ok := <-agent.Send
	assert.True(t, ok)
	assert.Equal(t, "first", string(got))
	_, ok = <-agent.Send
	assert.False(t, ok)
}

func TestConnectReplacesSameRole(t *testing.T) {
	b := NewBroker(nopLogger{})
	first := newTestClient(b, "conv-1", RoleCustomer, 4)
	second := newTestClient(b, "conv-1", RoleCustomer, 4)
	b.Connect(first)
	b.Connect(second)

	// The replaced connection's channel is closed.
	_, ok := <-first.Send
	assert.False(t, ok)

	agent := newTestClient(b, "conv-1", RoleAgent, 4)
	b.Connect(agent)
	b.Relay(agent, []byte("hi"))

	got := <-second.Send
	assert.Equal(t, "hi", string(got))
}

func TestDisconnectStaleClientKeepsCurrent(t *testing.T) {
	b := NewBroker(nopLogger{})
	first := newTestClient(b, "conv-1", RoleCustomer, 4)
	second := newTestClient(b, "conv-1", RoleCustomer, 4)
	b.Connect(first)
	b.Connect(second)

	// The stale client disconnecting must not evict its replacement.
	b.Disconnect(first)
	assert.True(t, b.Connected("conv-1", RoleCustomer))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAgent, ParseRole("agent"))
	assert.Equal(t, RoleCustomer, ParseRole("customer"))
	assert.Equal(t, RoleCustomer, ParseRole(""))
	assert.Equal(t, RoleCustomer, ParseRole("admin"))
}

func TestOpposite(t *testing.T) {
	assert.Equal(t, RoleAgent, RoleCustomer.Opposite())
	assert.Equal(t, RoleCustomer, RoleAgent.Opposite())
}

package servicerequest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securebank-assist-be/pkg/session"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "service_requests.jsonl"))
	require.NoError(t, err)
	return store
}

func TestCreateFillsDefaults(t *testing.T) {
	store := newTestStore(t)

	req, err := store.Create(CreateInput{
		CustomerId:    "cust-1",
		CustomerName:  "Alice Smith",
		CustomerEmail: "alice@example.com",
		ChatHistory: []session.Message{
			{Role: session.RoleUser, Content: "I need a manager"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, req.Id)
	assert.Equal(t, StatusNew, req.Status)
	assert.Equal(t, "auto_escalated", req.EscalationReason)
	assert.Equal(t, "medium", req.Priority)
	assert.NotZero(t, req.Timestamp)
	assert.Equal(t, req.Timestamp, req.CreatedAt)
	assert.Equal(t, req.Timestamp, req.LastUpdated)
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create(CreateInput{CustomerId: "c1"})
	require.NoError(t, err)
	second, err := store.Create(CreateInput{CustomerId: "c2"})
	require.NoError(t, err)

	// Force distinct ordering regardless of clock resolution.
	require.NoError(t, store.UpdateStatus(second.Id, "in_progress"))

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.GreaterOrEqual(t, all[0].Timestamp, all[1].Timestamp)

	ids := []string{all[0].Id, all[1].Id}
	assert.Contains(t, ids, first.Id)
	assert.Contains(t, ids, second.Id)
}

func TestListEmptyFile(t *testing.T) {
	store := newTestStore(t)

	all, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateStatus(t *testing.T) {
	store := newTestStore(t)

	req, err := store.Create(CreateInput{CustomerId: "c1"})
	require.NoError(t, err)
	_, err = store.Create(CreateInput{CustomerId: "c2"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateStatus(req.Id, "resolved"))

	got, err := store.Get(req.Id)
	require.NoError(t, err)
	assert.Equal(t, "resolved", got.Status)
	assert.GreaterOrEqual(t, got.LastUpdated, got.CreatedAt)

	all, err := store.List()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStatusUnknownId(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create(CreateInput{CustomerId: "c1"})
	require.NoError(t, err)

	err = store.UpdateStatus("missing-id", "resolved")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestGetUnknownId(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestReadSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "service_requests.jsonl")
	store, err := NewStore(path)
	require.NoError(t, err)

	req, err := store.Create(CreateInput{CustomerId: "c1"})
	require.NoError(t, err)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{not json}\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	all, err := store.List()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, req.Id, all[0].Id)
}

package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestAppendAndLoadPreservesOrder(t *testing.T) {
	store := newTestStore(t)

	first := Message{Role: RoleUser, Content: "I forgot my password", Timestamp: 1000}
	second := Message{Role: RoleAssistant, Content: "Go to settings > security.", Timestamp: 1001}

	require.NoError(t, store.Append("s1", first))
	require.NoError(t, store.Append("s1", second))

	messages := store.Load("s1")
	require.Len(t, messages, 2)
	assert.Equal(t, first, messages[0])
	assert.Equal(t, second, messages[1])
}

func TestLoadAbsentSession(t *testing.T) {
	store := newTestStore(t)
	assert.Empty(t, store.Load("never-seen"))
}

func TestLoadCorruptSession(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(store.dir, "broken.json"), []byte("{not json"), 0o644))
	assert.Empty(t, store.Load("broken"))
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append("s1", Message{Role: RoleUser, Content: "hi", Timestamp: 1}))

	require.NoError(t, store.Clear("s1"))
	assert.Empty(t, store.Load("s1"))

	// Clearing an absent session is a no-op.
	require.NoError(t, store.Clear("s1"))
}

func TestArchiveKeepsLiveSession(t *testing.T) {
	store := newTestStore(t)
	msg := Message{Role: RoleUser, Content: "archive me", Timestamp: 42}
	require.NoError(t, store.Append("s1", msg))

	require.NoError(t, store.ArchiveSession("s1", "user-7", "logout"))

	// Live session still readable.
	assert.Len(t, store.Load("s1"), 1)

	archive, found := store.GetArchive("s1")
	require.True(t, found)
	assert.Equal(t, "s1", archive.SessionId)
	assert.Equal(t, "user-7", archive.UserId)
	assert.Equal(t, "logout", archive.Reason)
	require.Len(t, archive.Messages, 1)
	assert.Equal(t, msg, archive.Messages[0])
	assert.NotZero(t, archive.ArchivedAt)
}

func TestListArchives(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append("a", Message{Role: RoleUser, Content: "one", Timestamp: 1}))
	require.NoError(t, store.ArchiveSession("a", "u1", ""))
	require.NoError(t, store.Append("b", Message{Role: RoleUser, Content: "two", Timestamp: 2}))
	require.NoError(t, store.ArchiveSession("b", "u2", ""))

	archives, err := store.ListArchives()
	require.NoError(t, err)
	assert.Len(t, archives, 2)
}

func TestDeleteArchive(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.ArchiveSession("s1", "u1", ""))

	require.NoError(t, store.DeleteArchive("s1"))
	_, found := store.GetArchive("s1")
	assert.False(t, found)

	assert.ErrorIs(t, store.DeleteArchive("s1"), os.ErrNotExist)
}

func TestConcurrentAppendsSameSession(t *testing.T) {
	store := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Append("shared", Message{Role: RoleUser, Content: "msg", Timestamp: int64(n)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Load("shared"), writers, "no appends may be lost")
}

func TestConcurrentAppendsDifferentSessions(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n))
			_ = store.Append(id, Message{Role: RoleUser, Content: "msg", Timestamp: int64(n)})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		assert.Len(t, store.Load(string(rune('a'+i))), 1)
	}
}

package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn. Immutable once appended.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// record is the on-disk shape of a live session file.
type record struct {
	SessionId   string    `json:"session_id"`
	Messages    []Message `json:"messages"`
	LastUpdated int64     `json:"last_updated"`
}

// Archive is the immutable snapshot written by Archive. The live
// session is untouched.
type Archive struct {
	SessionId  string    `json:"session_id"`
	UserId     string    `json:"user_id"`
	Reason     string    `json:"reason,omitempty"`
	Messages   []Message `json:"messages"`
	ArchivedAt int64     `json:"archived_at"`
}

// Store keeps one JSON file per session id under dir. Appends to the
// same session are serialized by a per-session mutex; different
// sessions never block each other. Unreadable or corrupt files are
// treated as empty history, never surfaced as errors on the read path.
type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates the session directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create sessions dir: %w", err)
	}
	return &Store{dir: dir, locks: map[string]*sync.Mutex{}}, nil
}

func (s *Store) sessionLock(sessionId string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[sessionId]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionId] = lock
	}
	return lock
}

func (s *Store) sessionPath(sessionId string) string {
	return filepath.Join(s.dir, sanitize(sessionId)+".json")
}

func (s *Store) archivePath(sessionId string) string {
	return filepath.Join(s.dir, sanitize(sessionId)+"_archive.json")
}

// sanitize keeps session ids usable as file names.
func sanitize(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, id)
}

// Append adds messages to the end of the session log in the given order.
func (s *Store) Append(sessionId string, msgs ...Message) error {
	if len(msgs) == 0 {
		return nil
	}
	lock := s.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	messages := s.readMessages(sessionId)
	messages = append(messages, msgs...)
	return s.writeMessages(sessionId, messages)
}

// Load returns the ordered message log, empty if the session is absent
// or its file is unreadable.
func (s *Store) Load(sessionId string) []Message {
	lock := s.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	return s.readMessages(sessionId)
}

// Clear removes the persisted session. Absent sessions are a no-op.
func (s *Store) Clear(sessionId string) error {
	lock := s.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	if err := os.Remove(s.sessionPath(sessionId)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ArchiveSession writes an immutable snapshot of the live session. The
// live session file is not deleted.
func (s *Store) ArchiveSession(sessionId, userId, reason string) error {
	lock := s.sessionLock(sessionId)
	lock.Lock()
	defer lock.Unlock()

	snapshot := Archive{
		SessionId:  sessionId,
		UserId:     userId,
		Reason:     reason,
		Messages:   s.readMessages(sessionId),
		ArchivedAt: time.Now().Unix(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal archive: %w", err)
	}
	if err := writeFileAtomic(s.archivePath(sessionId), data); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	return nil
}

// ListArchives returns every archived snapshot, newest first.
func (s *Store) ListArchives() ([]Archive, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list archives: %w", err)
	}

	archives := []Archive{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_archive.json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var archive Archive
		if err := json.Unmarshal(data, &archive); err != nil {
			continue
		}
		archives = append(archives, archive)
	}

	sort.Slice(archives, func(i, j int) bool {
		return archives[i].ArchivedAt > archives[j].ArchivedAt
	})
	return archives, nil
}

// GetArchive returns a single snapshot, with found=false when absent.
func (s *Store) GetArchive(sessionId string) (Archive, bool) {
	data, err := os.ReadFile(s.archivePath(sessionId))
	if err != nil {
		return Archive{}, false
	}
	var archive Archive
	if err := json.Unmarshal(data, &archive); err != nil {
		return Archive{}, false
	}
	return archive, true
}

// DeleteArchive removes an archived snapshot.
func (s *Store) DeleteArchive(sessionId string) error {
	if err := os.Remove(s.archivePath(sessionId)); err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("delete archive: %w", err)
	}
	return nil
}

func (s *Store) readMessages(sessionId string) []Message {
	data, err := os.ReadFile(s.sessionPath(sessionId))
	if err != nil {
		return []Message{}
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt history reads as empty, never as an error.
		return []Message{}
	}
	return rec.Messages
}

func (s *Store) writeMessages(sessionId string, messages []Message) error {
	rec := record{
		SessionId:   sessionId,
		Messages:    messages,
		LastUpdated: time.Now().Unix(),
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := writeFileAtomic(s.sessionPath(sessionId), data); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// writeFileAtomic writes via a temp file plus rename so a concurrent
// reader never observes a half-written session.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "session-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	stateSuffix       = "_document.json"
	cacheExpiration   = 5 * time.Minute
	cacheSweepPeriod  = 10 * time.Minute
	previewRuneLength = 500
)

// State records the document attached to a session. While a state file
// exists the session answers from the document instead of the knowledge base.
type State struct {
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
	ChunksCreated int    `json:"chunks_created"`
	UploadedAt    int64  `json:"uploaded_at"`
}

// Preview returns the leading part of the extracted text for upload responses.
func (s *State) Preview() string {
	runes := []rune(s.ExtractedText)
	if len(runes) <= previewRuneLength {
		return s.ExtractedText
	}
	return string(runes[:previewRuneLength])
}

// Repository stores per-session document state as flat files, with a
// read-through cache in front of the disk.
type Repository struct {
	dir   string
	cache *gocache.Cache
}

// NewRepository creates a document state repository rooted at dir.
func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create document state dir: %w", err)
	}
	return &Repository{
		dir:   dir,
		cache: gocache.New(cacheExpiration, cacheSweepPeriod),
	}, nil
}

// Save writes the state file for a session and refreshes the cache.
func (r *Repository) Save(sessionId string, state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document state: %w", err)
	}
	if err := os.WriteFile(r.path(sessionId), data, 0o644); err != nil {
		return fmt.Errorf("write document state: %w", err)
	}
	r.cache.Set(sessionId, state, gocache.DefaultExpiration)
	return nil
}

// Get returns the document state for a session, or ok=false when the session
// has no document attached.
func (r *Repository) Get(sessionId string) (*State, bool, error) {
	if cached, found := r.cache.Get(sessionId); found {
		return cached.(*State), true, nil
	}

	data, err := os.ReadFile(r.path(sessionId))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read document state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, false, nil
	}
	r.cache.Set(sessionId, &state, gocache.DefaultExpiration)
	return &state, true, nil
}

// Clear removes the session's document state. Clearing a session without a
// document is a no-op.
func (r *Repository) Clear(sessionId string) error {
	r.cache.Delete(sessionId)
	if err := os.Remove(r.path(sessionId)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove document state: %w", err)
	}
	return nil
}

func (r *Repository) path(sessionId string) string {
	return filepath.Join(r.dir, sanitize(sessionId)+stateSuffix)
}

func sanitize(id string) string {
	return strings.Map(func(ch rune) rune {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
			return ch
		case ch == '-' || ch == '_' || ch == '.':
			return ch
		default:
			return '_'
		}
	}, id)
}

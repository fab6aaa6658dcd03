package servicerequest

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"securebank-assist-be/pkg/session"
)

// ErrRequestNotFound is returned when no service request matches the given id.
var ErrRequestNotFound = errors.New("service request not found")

// StatusNew is the status every freshly created service request starts in.
const StatusNew = "new"

// ServiceRequest is an escalated conversation handed off to a human agent.
type ServiceRequest struct {
	Id               string            `json:"id"`
	CustomerId       string            `json:"customerId"`
	CustomerName     string            `json:"customerName"`
	CustomerEmail    string            `json:"customerEmail"`
	ChatHistory      []session.Message `json:"chatHistory"`
	EscalationReason string            `json:"escalationReason"`
	Priority         string            `json:"priority"`
	Status           string            `json:"status"`
	Timestamp        int64             `json:"timestamp"`
	CreatedAt        int64             `json:"createdAt"`
	PdfExtractedText string            `json:"pdfExtractedText,omitempty"`
	PdfFilename      string            `json:"pdfFilename,omitempty"`
	LastUpdated      int64             `json:"lastUpdated"`
}

// CreateInput carries the caller-supplied fields of a new service request.
type CreateInput struct {
	CustomerId       string
	CustomerName     string
	CustomerEmail    string
	ChatHistory      []session.Message
	EscalationReason string
	Priority         string
	PdfExtractedText string
	PdfFilename      string
}

// Store persists service requests in a single append-only JSON Lines file.
// Creation appends one line; status updates rewrite the whole file under
// the store lock.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a service request store backed by the given file path.
// The parent directory is created if it does not exist.
func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create service request dir: %w", err)
	}
	return &Store{path: path}, nil
}

// Create appends a new service request and returns it with its generated id
// and timestamps filled in.
func (s *Store) Create(input CreateInput) (*ServiceRequest, error) {
	now := time.Now().UnixMilli()

	req := &ServiceRequest{
		Id:               uuid.NewString(),
		CustomerId:       input.CustomerId,
		CustomerName:     input.CustomerName,
		CustomerEmail:    input.CustomerEmail,
		ChatHistory:      input.ChatHistory,
		EscalationReason: input.EscalationReason,
		Priority:         input.Priority,
		Status:           StatusNew,
		Timestamp:        now,
		CreatedAt:        now,
		PdfExtractedText: input.PdfExtractedText,
		PdfFilename:      input.PdfFilename,
		LastUpdated:      now,
	}
	if req.EscalationReason == "" {
		req.EscalationReason = "auto_escalated"
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	line, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal service request: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open service request file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return nil, fmt.Errorf("append service request: %w", err)
	}
	return req, nil
}

// List returns all service requests, newest first.
func (s *Store) List() ([]ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.readAll()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Timestamp > requests[j].Timestamp
	})
	return requests, nil
}

// Get returns the service request with the given id.
func (s *Store) Get(id string) (*ServiceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.readAll()
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].Id == id {
			return &requests[i], nil
		}
	}
	return nil, ErrRequestNotFound
}

// UpdateStatus sets the status of the request with the given id and bumps
// its lastUpdated timestamp.
func (s *Store) UpdateStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	requests, err := s.readAll()
	if err != nil {
		return err
	}

	updated := false
	for i := range requests {
		if requests[i].Id == id {
			requests[i].Status = status
			requests[i].LastUpdated = time.Now().UnixMilli()
			updated = true
			break
		}
	}
	if !updated {
		return ErrRequestNotFound
	}

	var buf strings.Builder
	for i := range requests {
		line, err := json.Marshal(&requests[i])
		if err != nil {
			return fmt.Errorf("marshal service request: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(s.path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("rewrite service request file: %w", err)
	}
	return nil
}

// readAll parses every line of the backing file. Blank and malformed lines
// are skipped so one bad record cannot take the whole queue down.
func (s *Store) readAll() ([]ServiceRequest, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open service request file: %w", err)
	}
	defer f.Close()

	var requests []ServiceRequest
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var req ServiceRequest
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			continue
		}
		requests = append(requests, req)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan service request file: %w", err)
	}
	return requests, nil
}

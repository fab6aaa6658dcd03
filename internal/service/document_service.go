package service

import (
	"fmt"
	"os"
	"time"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/document"
)

type IDocumentService interface {
	Upload(sessionId, filename, tempPath string) (*dto.UploadDocumentResponse, error)
}

type documentService struct {
	documents *document.Repository
	logger    logger.ILogger
}

func NewDocumentService(documents *document.Repository, log logger.ILogger) IDocumentService {
	return &documentService{
		documents: documents,
		logger:    log,
	}
}

// Upload extracts the text of an uploaded PDF, attaches it to the session
// and removes the temporary file.
func (s *documentService) Upload(sessionId, filename, tempPath string) (*dto.UploadDocumentResponse, error) {
	defer os.Remove(tempPath)

	text, err := document.ExtractText(tempPath)
	if err != nil {
		return nil, fmt.Errorf("process document: %w", err)
	}

	chunks := document.ChunkText(text, document.DefaultChunkSize, document.DefaultChunkOverlap)

	state := &document.State{
		Filename:      filename,
		ExtractedText: text,
		ChunksCreated: len(chunks),
		UploadedAt:    time.Now().UnixMilli(),
	}
	if err := s.documents.Save(sessionId, state); err != nil {
		return nil, err
	}

	s.logger.Info("Document", "Document attached to session", map[string]interface{}{
		"session_id": sessionId,
		"filename":   filename,
		"chunks":     len(chunks),
	})

	return &dto.UploadDocumentResponse{
		Filename:         filename,
		ChunksCreated:    len(chunks),
		ExtractedPreview: state.Preview(),
		FullText:         text,
	}, nil
}

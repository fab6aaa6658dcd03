package service

import (
	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/document"
	"securebank-assist-be/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type ISessionService interface {
	Clear(req *dto.ClearSessionRequest) error
	Archive(req *dto.ArchiveSessionRequest) error
	ListArchived() ([]*dto.ArchivedSessionResponse, error)
	GetArchived(sessionId string) (*dto.ArchivedSessionResponse, error)
	DeleteArchived(sessionId string) error
}

type sessionService struct {
	sessions  *session.Store
	documents *document.Repository
	logger    logger.ILogger
}

func NewSessionService(sessions *session.Store, documents *document.Repository, log logger.ILogger) ISessionService {
	return &sessionService{
		sessions:  sessions,
		documents: documents,
		logger:    log,
	}
}

// Clear removes the live session and any document attached to it.
func (s *sessionService) Clear(req *dto.ClearSessionRequest) error {
	if err := s.sessions.Clear(req.SessionId); err != nil {
		return err
	}
	if err := s.documents.Clear(req.SessionId); err != nil {
		return err
	}
	s.logger.Info("Session", "Session cleared", map[string]interface{}{"session_id": req.SessionId})
	return nil
}

func (s *sessionService) Archive(req *dto.ArchiveSessionRequest) error {
	userId := req.UserId
	if userId == "" {
		userId = "anonymous"
	}
	reason := req.Reason
	if reason == "" {
		reason = "logout"
	}
	return s.sessions.ArchiveSession(req.SessionId, userId, reason)
}

func (s *sessionService) ListArchived() ([]*dto.ArchivedSessionResponse, error) {
	archives, err := s.sessions.ListArchives()
	if err != nil {
		return nil, err
	}
	result := make([]*dto.ArchivedSessionResponse, 0, len(archives))
	for i := range archives {
		result = append(result, toArchivedSessionResponse(&archives[i]))
	}
	return result, nil
}

func (s *sessionService) GetArchived(sessionId string) (*dto.ArchivedSessionResponse, error) {
	archive, ok := s.sessions.GetArchive(sessionId)
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Archived session not found")
	}
	return toArchivedSessionResponse(&archive), nil
}

func (s *sessionService) DeleteArchived(sessionId string) error {
	if err := s.sessions.DeleteArchive(sessionId); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Archived session not found")
	}
	return nil
}

func toArchivedSessionResponse(archive *session.Archive) *dto.ArchivedSessionResponse {
	messages := make([]dto.ChatMessageDTO, 0, len(archive.Messages))
	for _, msg := range archive.Messages {
		messages = append(messages, dto.ChatMessageDTO{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}
	return &dto.ArchivedSessionResponse{
		SessionId:  archive.SessionId,
		UserId:     archive.UserId,
		Reason:     archive.Reason,
		Messages:   messages,
		ArchivedAt: archive.ArchivedAt,
	}
}

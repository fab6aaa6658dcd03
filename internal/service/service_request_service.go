package service

import (
	"errors"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/servicerequest"
	"securebank-assist-be/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type IServiceRequestService interface {
	Create(req *dto.CreateServiceRequestRequest) (*dto.CreateServiceRequestResponse, error)
	List() ([]servicerequest.ServiceRequest, error)
	UpdateStatus(id string, req *dto.UpdateServiceRequestStatusRequest) error
}

type serviceRequestService struct {
	store  *servicerequest.Store
	logger logger.ILogger
}

func NewServiceRequestService(store *servicerequest.Store, log logger.ILogger) IServiceRequestService {
	return &serviceRequestService{
		store:  store,
		logger: log,
	}
}

func (s *serviceRequestService) Create(req *dto.CreateServiceRequestRequest) (*dto.CreateServiceRequestResponse, error) {
	history := make([]session.Message, 0, len(req.ChatHistory))
	for _, msg := range req.ChatHistory {
		history = append(history, session.Message{
			Role:      msg.Role,
			Content:   msg.Content,
			Timestamp: msg.Timestamp,
		})
	}

	created, err := s.store.Create(servicerequest.CreateInput{
		CustomerId:       req.CustomerId,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		ChatHistory:      history,
		EscalationReason: req.EscalationReason,
		Priority:         req.Priority,
		PdfExtractedText: req.PdfExtractedText,
		PdfFilename:      req.PdfFilename,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ServiceRequest", "Service request created", map[string]interface{}{
		"id":       created.Id,
		"priority": created.Priority,
	})
	return &dto.CreateServiceRequestResponse{ServiceRequestId: created.Id}, nil
}

func (s *serviceRequestService) List() ([]servicerequest.ServiceRequest, error) {
	return s.store.List()
}

func (s *serviceRequestService) UpdateStatus(id string, req *dto.UpdateServiceRequestStatusRequest) error {
	err := s.store.UpdateStatus(id, req.Status)
	if errors.Is(err, servicerequest.ErrRequestNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Service request not found")
	}
	return err
}

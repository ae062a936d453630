package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"homecatalog/internal/model"
)

// ContactService acknowledges contact form inquiries. There is no delivery
// target; inquiries are only logged.
type ContactService struct {
	logger *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(logger *zap.Logger) *ContactService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContactService{logger: logger}
}

// Submit records an already validated inquiry in the log
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest) *model.ContactResponse {
	s.logger.Info("Contact inquiry received",
		zap.String("name", strings.TrimSpace(req.Name)),
		zap.String("email", req.Email),
		zap.String("home_id", req.HomeID),
		zap.Int("message_length", len(req.Message)))

	return &model.ContactResponse{
		Success: true,
		Message: "Thanks for reaching out! A member of our team will contact you shortly.",
	}
}

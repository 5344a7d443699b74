package services

import (
	"context"
	"log/slog"

	"github.com/cybershield/backend/internal/models"
)

const contactListLimit = 50

// ContactRepository defines the contact data access the service needs
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
	ListRecent(ctx context.Context, limit int) ([]*models.ContactMessage, error)
}

// ContactService handles contact form submissions
type ContactService struct {
	repo         ContactRepository
	notifier     *Notifier
	adminAddress string
	logger       *slog.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo ContactRepository, notifier *Notifier, adminAddress string, logger *slog.Logger) *ContactService {
	return &ContactService{
		repo:         repo,
		notifier:     notifier,
		adminAddress: adminAddress,
		logger:       logger,
	}
}

// ContactInput carries validated contact form fields
type ContactInput struct {
	Name    string
	Email   string
	Message string
	Company string
	Phone   string
}

// Submit persists a contact message and queues the admin notification.
// The notification is best-effort; persistence failure aborts the call.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Company: in.Company,
		Phone:   in.Phone,
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("failed to save contact message", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.notifier.Enqueue(contactNotificationEmail(s.adminAddress, created))

	s.logger.Info("contact message received", slog.String("contact_id", created.ID))
	return created, nil
}

// ListRecent returns the latest contact messages, newest first
func (s *ContactService) ListRecent(ctx context.Context) ([]*models.ContactMessage, error) {
	messages, err := s.repo.ListRecent(ctx, contactListLimit)
	if err != nil {
		s.logger.Error("failed to list contact messages", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return messages, nil
}

package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cybershield/backend/internal/models"
)

const auditListLimit = 100

// AuditRequestRepository defines the audit data access the service needs
type AuditRequestRepository interface {
	Create(ctx context.Context, req *models.AuditRequest) (*models.AuditRequest, error)
	GetByID(ctx context.Context, id string) (*models.AuditRequest, error)
	ListRecent(ctx context.Context, limit int) ([]*models.AuditRequest, error)
}

// AuditService handles free audit request intake
type AuditService struct {
	repo         AuditRequestRepository
	notifier     *Notifier
	adminAddress string
	logger       *slog.Logger
}

// NewAuditService creates a new AuditService
func NewAuditService(repo AuditRequestRepository, notifier *Notifier, adminAddress string, logger *slog.Logger) *AuditService {
	return &AuditService{
		repo:         repo,
		notifier:     notifier,
		adminAddress: adminAddress,
		logger:       logger,
	}
}

// AuditRequestInput carries validated audit request fields
type AuditRequestInput struct {
	Name             string
	Email            string
	Company          string
	Employees        int
	Industry         string
	Description      string
	Urgency          string
	Budget           string
	Phone            string
	PreferredContact string
}

// Submit persists an audit request and queues two independent
// notifications: the operator alert and the requester confirmation.
// Both are best-effort; persistence failure aborts the call.
func (s *AuditService) Submit(ctx context.Context, in AuditRequestInput) (*models.AuditRequest, error) {
	req := &models.AuditRequest{
		Name:             in.Name,
		Email:            in.Email,
		Company:          in.Company,
		Employees:        in.Employees,
		Industry:         in.Industry,
		Description:      in.Description,
		Urgency:          in.Urgency,
		Budget:           in.Budget,
		Phone:            in.Phone,
		PreferredContact: in.PreferredContact,
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Error("failed to save audit request", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	s.notifier.Enqueue(auditAlertEmail(s.adminAddress, created))
	s.notifier.Enqueue(auditConfirmationEmail(created))

	s.logger.Info("audit request received",
		slog.String("request_id", created.ID),
		slog.String("urgency", created.Urgency),
		slog.String("priority", created.Priority))

	return created, nil
}

// ListRecent returns the latest audit requests, newest first
func (s *AuditService) ListRecent(ctx context.Context) ([]*models.AuditRequest, error) {
	requests, err := s.repo.ListRecent(ctx, auditListLimit)
	if err != nil {
		s.logger.Error("failed to list audit requests", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return requests, nil
}

// GetStatus returns the public status view of a single request
func (s *AuditService) GetStatus(ctx context.Context, id string) (*models.AuditRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		s.logger.Error("failed to get audit request", slog.String("request_id", id), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return req, nil
}

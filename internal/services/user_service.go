package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/cybershield/backend/internal/models"
)

const (
	userListLimit   = 50
	statsMonthsBack = 6
)

// UserStatsRepository defines the user data access the service needs
type UserStatsRepository interface {
	ListActive(ctx context.Context, limit int) ([]*models.User, error)
	CountActive(ctx context.Context) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
	MonthlyActiveCounts(ctx context.Context, since time.Time) (map[string]int, error)
}

// UserService handles user listing and statistics
type UserService struct {
	repo   UserStatsRepository
	logger *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo UserStatsRepository, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		logger: logger,
	}
}

// UserStats aggregates registration statistics
type UserStats struct {
	TotalUsers   int            `json:"totalUsers"`
	TodayUsers   int            `json:"todayUsers"`
	MonthlyStats map[string]int `json:"monthlyStats"`
}

// ListActive returns active users, newest first
func (s *UserService) ListActive(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.ListActive(ctx, userListLimit)
	if err != nil {
		s.logger.Error("failed to list users", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return users, nil
}

// Stats returns active-user totals: overall, registered today, and a
// per-month breakdown of the last six months.
func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	total, err := s.repo.CountActive(ctx)
	if err != nil {
		s.logger.Error("failed to count users", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	now := time.Now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	today, err := s.repo.CountActiveSince(ctx, todayStart)
	if err != nil {
		s.logger.Error("failed to count today's users", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	monthly, err := s.repo.MonthlyActiveCounts(ctx, now.AddDate(0, -statsMonthsBack, 0))
	if err != nil {
		s.logger.Error("failed to aggregate monthly stats", slog.Any("error", err))
		return nil, models.ErrInternalServer
	}

	return &UserStats{
		TotalUsers:   total,
		TodayUsers:   today,
		MonthlyStats: monthly,
	}, nil
}

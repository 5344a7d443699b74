package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cybershield/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatsRepo records the time arguments the service derives
type fakeStatsRepo struct {
	users   []*models.User
	total   int
	today   int
	monthly map[string]int

	sinceArg        time.Time
	monthlySinceArg time.Time

	listErr    error
	countErr   error
	sinceErr   error
	monthlyErr error
}

func (r *fakeStatsRepo) ListActive(_ context.Context, limit int) ([]*models.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit < len(r.users) {
		return r.users[:limit], nil
	}
	return r.users, nil
}

func (r *fakeStatsRepo) CountActive(_ context.Context) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return r.total, nil
}

func (r *fakeStatsRepo) CountActiveSince(_ context.Context, since time.Time) (int, error) {
	if r.sinceErr != nil {
		return 0, r.sinceErr
	}
	r.sinceArg = since
	return r.today, nil
}

func (r *fakeStatsRepo) MonthlyActiveCounts(_ context.Context, since time.Time) (map[string]int, error) {
	if r.monthlyErr != nil {
		return nil, r.monthlyErr
	}
	r.monthlySinceArg = since
	return r.monthly, nil
}

func TestUserStats_Aggregation(t *testing.T) {
	repo := &fakeStatsRepo{
		total:   42,
		today:   3,
		monthly: map[string]int{"2026-07": 12, "2026-08": 9},
	}
	svc := NewUserService(repo, testLogger())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 42, stats.TotalUsers)
	assert.Equal(t, 3, stats.TodayUsers)
	assert.Equal(t, map[string]int{"2026-07": 12, "2026-08": 9}, stats.MonthlyStats)

	// Today starts at UTC midnight
	now := time.Now().UTC()
	assert.Equal(t, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), repo.sinceArg)

	// Monthly breakdown reaches six months back
	assert.WithinDuration(t, now.AddDate(0, -6, 0), repo.monthlySinceArg, time.Minute)
}

func TestUserStats_RepoFailures(t *testing.T) {
	svc := NewUserService(&fakeStatsRepo{countErr: errors.New("connection refused")}, testLogger())
	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, models.ErrInternalServer)

	svc = NewUserService(&fakeStatsRepo{sinceErr: errors.New("connection refused")}, testLogger())
	_, err = svc.Stats(context.Background())
	assert.ErrorIs(t, err, models.ErrInternalServer)

	svc = NewUserService(&fakeStatsRepo{monthlyErr: errors.New("connection refused")}, testLogger())
	_, err = svc.Stats(context.Background())
	assert.ErrorIs(t, err, models.ErrInternalServer)
}

func TestListActive(t *testing.T) {
	repo := &fakeStatsRepo{users: []*models.User{
		{ID: "a", Email: "a@example.com"},
		{ID: "b", Email: "b@example.com"},
	}}
	svc := NewUserService(repo, testLogger())

	users, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	repo.listErr = errors.New("connection refused")
	_, err = svc.ListActive(context.Background())
	assert.ErrorIs(t, err, models.ErrInternalServer)
}

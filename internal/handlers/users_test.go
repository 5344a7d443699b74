package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/cybershield/backend/internal/handlers"
	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserList(t *testing.T) {
	mockUsers := &handlers.MockUserService{
		ListActiveFunc: func(ctx context.Context) ([]*models.User, error) {
			return []*models.User{
				{ID: "u-2", Name: "Beto", Email: "b@x.com", PasswordHash: "$2a$12$secret", IsActive: true},
				{ID: "u-1", Name: "Ana", Email: "a@x.com", PasswordHash: "$2a$12$secret", IsActive: true},
			}, nil
		},
	}

	handler := handlers.NewUserHandler(mockUsers)
	req := handlers.NewTestRequest(t, "GET", "/api/users", nil)
	req = handlers.WithAuthContext(req, "u-1", "a@x.com")

	w := httptest.NewRecorder()
	handler.List(w, req)

	var resp struct {
		Success bool                     `json:"success"`
		Data    []map[string]interface{} `json:"data"`
		Count   int                      `json:"count"`
	}
	handlers.AssertJSONResponse(t, w, 200, &resp)
	assert.Equal(t, 2, resp.Count)

	for _, user := range resp.Data {
		_, hasPassword := user["password_hash"]
		assert.False(t, hasPassword, "password hash must not be serialized")
	}
}

func TestUserList_ServiceError(t *testing.T) {
	mockUsers := &handlers.MockUserService{
		ListActiveFunc: func(ctx context.Context) ([]*models.User, error) {
			return nil, models.ErrInternalServer
		},
	}

	handler := handlers.NewUserHandler(mockUsers)
	req := handlers.NewTestRequest(t, "GET", "/api/users", nil)

	w := httptest.NewRecorder()
	handler.List(w, req)

	handlers.AssertErrorResponse(t, w, 500)
}

func TestUserStats(t *testing.T) {
	mockUsers := &handlers.MockUserService{
		StatsFunc: func(ctx context.Context) (*services.UserStats, error) {
			return &services.UserStats{
				TotalUsers: 42,
				TodayUsers: 3,
				MonthlyStats: map[string]int{
					"2026-07": 10,
					"2026-08": 5,
				},
			}, nil
		},
	}

	handler := handlers.NewUserHandler(mockUsers)
	req := handlers.NewTestRequest(t, "GET", "/api/users/stats", nil)

	w := httptest.NewRecorder()
	handler.Stats(w, req)

	assert.Equal(t, 200, w.Code)

	var resp struct {
		Success bool               `json:"success"`
		Data    services.UserStats `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.Data.TotalUsers)
	assert.Equal(t, 3, resp.Data.TodayUsers)
	assert.Equal(t, 10, resp.Data.MonthlyStats["2026-07"])
}

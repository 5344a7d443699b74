package handlers_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cybershield/backend/internal/handlers"
	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestContactSubmit_Success(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	mockContact := &handlers.MockContactService{
		SubmitFunc: func(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error) {
			return &models.ContactMessage{
				ID:        "contact-1",
				Name:      in.Name,
				Email:     in.Email,
				Message:   in.Message,
				Status:    models.ContactStatusPending,
				CreatedAt: created,
			}, nil
		},
	}

	handler := handlers.NewContactHandler(mockContact)
	req := handlers.NewTestRequest(t, "POST", "/api/contact", handlers.ContactRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Message: "Hola, necesito ayuda con seguridad",
	})

	w := httptest.NewRecorder()
	handler.Submit(w, req)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID        string `json:"id"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	handlers.AssertJSONResponse(t, w, 200, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "contact-1", resp.Data.ID)
	assert.Equal(t, "2026-08-01T12:00:00Z", resp.Data.Timestamp)
}

func TestContactSubmit_MessageLengthBoundary(t *testing.T) {
	mockContact := &handlers.MockContactService{
		SubmitFunc: func(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error) {
			return &models.ContactMessage{ID: "contact-2", CreatedAt: time.Now().UTC()}, nil
		},
	}
	handler := handlers.NewContactHandler(mockContact)

	// 9 characters fails the min=10 constraint
	req := handlers.NewTestRequest(t, "POST", "/api/contact", handlers.ContactRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Message: "123456789",
	})
	w := httptest.NewRecorder()
	handler.Submit(w, req)
	resp := handlers.AssertErrorResponse(t, w, 400)
	assert.NotEmpty(t, resp.Errors)

	// 10 characters passes
	req = handlers.NewTestRequest(t, "POST", "/api/contact", handlers.ContactRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Message: "1234567890",
	})
	w = httptest.NewRecorder()
	handler.Submit(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestContactSubmit_PersistFailure(t *testing.T) {
	mockContact := &handlers.MockContactService{
		SubmitFunc: func(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error) {
			return nil, models.ErrInternalServer
		},
	}

	handler := handlers.NewContactHandler(mockContact)
	req := handlers.NewTestRequest(t, "POST", "/api/contact", handlers.ContactRequest{
		Name:    "Ana",
		Email:   "a@x.com",
		Message: "Hola, necesito ayuda con seguridad",
	})

	w := httptest.NewRecorder()
	handler.Submit(w, req)

	handlers.AssertErrorResponse(t, w, 500)
}

func TestContactList(t *testing.T) {
	mockContact := &handlers.MockContactService{
		ListRecentFunc: func(ctx context.Context) ([]*models.ContactMessage, error) {
			return []*models.ContactMessage{
				{ID: "c-2", Name: "Beto"},
				{ID: "c-1", Name: "Ana"},
			}, nil
		},
	}

	handler := handlers.NewContactHandler(mockContact)
	req := handlers.NewTestRequest(t, "GET", "/api/contact", nil)

	w := httptest.NewRecorder()
	handler.List(w, req)

	var resp struct {
		Success bool                    `json:"success"`
		Data    []models.ContactMessage `json:"data"`
		Count   int                     `json:"count"`
	}
	handlers.AssertJSONResponse(t, w, 200, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Data, 2)
}

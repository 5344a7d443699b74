package handlers

import (
	"context"
	"net/http"

	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	pkghttp "github.com/cybershield/backend/pkg/http"
)

// UserServiceInterface defines the interface for user business logic
type UserServiceInterface interface {
	ListActive(ctx context.Context) ([]*models.User, error)
	Stats(ctx context.Context) (*services.UserStats, error)
}

// UserHandler handles user listing and statistics HTTP requests
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListActive(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Error fetching users")
		return
	}

	pkghttp.WriteList(w, users, len(users))
}

// Stats handles GET /api/users/stats
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Error fetching statistics")
		return
	}

	pkghttp.WriteSuccess(w, http.StatusOK, "", stats)
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	pkghttp "github.com/cybershield/backend/pkg/http"
)

// ContactServiceInterface defines the interface for contact business logic
type ContactServiceInterface interface {
	Submit(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error)
	ListRecent(ctx context.Context) ([]*models.ContactMessage, error)
}

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	service ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: service}
}

// ContactRequest represents the request body for a contact submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=10,max=1000"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if errs := ValidateRequest(req); errs != nil {
		pkghttp.WriteValidationError(w, errs)
		return
	}

	created, err := h.service.Submit(r.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Company: req.Company,
		Phone:   req.Phone,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Internal server error. Please try again later.")
		return
	}

	pkghttp.WriteSuccess(w, http.StatusOK, "Message sent successfully. We will contact you soon.",
		map[string]interface{}{
			"id":        created.ID,
			"timestamp": created.CreatedAt.Format(time.RFC3339),
		})
}

// List handles GET /api/contact
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListRecent(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Error fetching messages")
		return
	}

	pkghttp.WriteList(w, messages, len(messages))
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	pkghttp "github.com/cybershield/backend/pkg/http"
	"github.com/go-chi/chi/v5"
)

// AuditServiceInterface defines the interface for audit request business logic
type AuditServiceInterface interface {
	Submit(ctx context.Context, in services.AuditRequestInput) (*models.AuditRequest, error)
	ListRecent(ctx context.Context) ([]*models.AuditRequest, error)
	GetStatus(ctx context.Context, id string) (*models.AuditRequest, error)
}

// AuditHandler handles audit request HTTP requests
type AuditHandler struct {
	service AuditServiceInterface
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(service AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// AuditRequestBody represents the request body for an audit request
type AuditRequestBody struct {
	Name             string `json:"name" validate:"required,min=2,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Company          string `json:"company" validate:"required,min=2,max=100"`
	Employees        int    `json:"employees" validate:"required,gte=1,lte=10000"`
	Industry         string `json:"industry" validate:"omitempty,max=100"`
	Description      string `json:"description" validate:"required,min=20,max=2000"`
	Urgency          string `json:"urgency" validate:"omitempty,oneof=low medium high critical"`
	Budget           string `json:"budget" validate:"omitempty,oneof=under_1k 1k_5k 5k_10k 10k_plus to_discuss"`
	Phone            string `json:"phone" validate:"omitempty,max=20"`
	PreferredContact string `json:"preferred_contact" validate:"omitempty,oneof=email phone both"`
}

// Submit handles POST /api/audit/request
func (h *AuditHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req AuditRequestBody

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkghttp.WriteBadRequest(w, "Invalid request body")
		return
	}

	if errs := ValidateRequest(req); errs != nil {
		pkghttp.WriteValidationError(w, errs)
		return
	}

	// Apply schema defaults
	if req.Urgency == "" {
		req.Urgency = models.UrgencyMedium
	}
	if req.PreferredContact == "" {
		req.PreferredContact = "email"
	}

	created, err := h.service.Submit(r.Context(), services.AuditRequestInput{
		Name:             req.Name,
		Email:            req.Email,
		Company:          req.Company,
		Employees:        req.Employees,
		Industry:         req.Industry,
		Description:      req.Description,
		Urgency:          req.Urgency,
		Budget:           req.Budget,
		Phone:            req.Phone,
		PreferredContact: req.PreferredContact,
	})
	if err != nil {
		pkghttp.WriteInternalError(w, "Error processing the request")
		return
	}

	pkghttp.WriteSuccess(w, http.StatusCreated,
		"Audit request submitted successfully. We will contact you within 24 hours.",
		map[string]interface{}{
			"id":         created.ID,
			"status":     created.Status,
			"created_at": created.CreatedAt.Format(time.RFC3339),
		})
}

// List handles GET /api/audit/requests
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListRecent(r.Context())
	if err != nil {
		pkghttp.WriteInternalError(w, "Error fetching audit requests")
		return
	}

	pkghttp.WriteList(w, requests, len(requests))
}

// Status handles GET /api/audit/status/{id}
func (h *AuditHandler) Status(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	req, err := h.service.GetStatus(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			pkghttp.WriteNotFound(w, "Request not found")
			return
		}
		pkghttp.WriteInternalError(w, "Error checking status")
		return
	}

	pkghttp.WriteSuccess(w, http.StatusOK, "", map[string]interface{}{
		"id":         req.ID,
		"status":     req.Status,
		"created_at": req.CreatedAt.Format(time.RFC3339),
		"company":    req.Company,
		"urgency":    req.Urgency,
	})
}

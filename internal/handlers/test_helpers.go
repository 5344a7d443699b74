package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cybershield/backend/internal/auth"
	"github.com/cybershield/backend/internal/models"
	"github.com/cybershield/backend/internal/services"
	pkghttp "github.com/cybershield/backend/pkg/http"
	"github.com/stretchr/testify/assert"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithAuthContext adds user claims to request context for testing authenticated endpoints
func WithAuthContext(req *http.Request, userID, email string) *http.Request {
	claims := &models.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   "user",
	}
	ctx := context.WithValue(req.Context(), auth.UserContextKey, claims)
	return req.WithContext(ctx)
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error envelope
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int) pkghttp.ErrorResponse {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.False(t, resp.Success, "Error envelope should have success=false")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
	return resp
}

// MockAuthService implements AuthServiceInterface for testing
type MockAuthService struct {
	RegisterFunc   func(ctx context.Context, in services.RegisterInput) (*services.AuthResponse, error)
	LoginFunc      func(ctx context.Context, email, password, ipAddress string) (*services.AuthResponse, error)
	GetProfileFunc func(ctx context.Context, userID string) (*models.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResponse, error) {
	return m.RegisterFunc(ctx, in)
}

func (m *MockAuthService) Login(ctx context.Context, email, password, ipAddress string) (*services.AuthResponse, error) {
	return m.LoginFunc(ctx, email, password, ipAddress)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return m.GetProfileFunc(ctx, userID)
}

// MockContactService implements ContactServiceInterface for testing
type MockContactService struct {
	SubmitFunc     func(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error)
	ListRecentFunc func(ctx context.Context) ([]*models.ContactMessage, error)
}

func (m *MockContactService) Submit(ctx context.Context, in services.ContactInput) (*models.ContactMessage, error) {
	return m.SubmitFunc(ctx, in)
}

func (m *MockContactService) ListRecent(ctx context.Context) ([]*models.ContactMessage, error) {
	return m.ListRecentFunc(ctx)
}

// MockAuditService implements AuditServiceInterface for testing
type MockAuditService struct {
	SubmitFunc     func(ctx context.Context, in services.AuditRequestInput) (*models.AuditRequest, error)
	ListRecentFunc func(ctx context.Context) ([]*models.AuditRequest, error)
	GetStatusFunc  func(ctx context.Context, id string) (*models.AuditRequest, error)
}

func (m *MockAuditService) Submit(ctx context.Context, in services.AuditRequestInput) (*models.AuditRequest, error) {
	return m.SubmitFunc(ctx, in)
}

func (m *MockAuditService) ListRecent(ctx context.Context) ([]*models.AuditRequest, error) {
	return m.ListRecentFunc(ctx)
}

func (m *MockAuditService) GetStatus(ctx context.Context, id string) (*models.AuditRequest, error) {
	return m.GetStatusFunc(ctx, id)
}

// MockUserService implements UserServiceInterface for testing
type MockUserService struct {
	ListActiveFunc func(ctx context.Context) ([]*models.User, error)
	StatsFunc      func(ctx context.Context) (*services.UserStats, error)
}

func (m *MockUserService) ListActive(ctx context.Context) ([]*models.User, error) {
	return m.ListActiveFunc(ctx)
}

func (m *MockUserService) Stats(ctx context.Context) (*services.UserStats, error) {
	return m.StatsFunc(ctx)
}

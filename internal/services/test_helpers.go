package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/cybershield/backend/internal/models"
	pkglogger "github.com/cybershield/backend/pkg/logger"
)

// testLogger returns a logger that discards output
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testAuditLogger() *pkglogger.AuditLogger {
	return pkglogger.NewAuditLogger(testLogger())
}

// recordingSender captures sent messages and can be told to fail
type recordingSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg EmailMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) sentMessages() []EmailMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmailMessage, len(s.sent))
	copy(out, s.sent)
	return out
}

// fakeUserRepo is an in-memory AuthUserRepository mimicking the real
// repository's defaulting behavior on Create
type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.User
	nextID  int

	createErr    error
	lastLoginErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, exists := r.byEmail[user.Email]; exists {
		return nil, models.ErrConflict
	}

	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	user.CreatedAt = time.Now().UTC()
	user.IsActive = true
	if user.Role == "" {
		user.Role = "user"
	}

	copied := *user
	r.byEmail[user.Email] = &copied
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

// fakeContactRepo is an in-memory ContactRepository
type fakeContactRepo struct {
	mu       sync.Mutex
	messages []*models.ContactMessage

	createErr error
	listErr   error
}

func (r *fakeContactRepo) Create(_ context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	msg.ID = fmt.Sprintf("contact-%d", len(r.messages)+1)
	msg.Status = models.ContactStatusPending
	msg.CreatedAt = time.Now().UTC()
	r.messages = append(r.messages, msg)
	return msg, nil
}

func (r *fakeContactRepo) ListRecent(_ context.Context, limit int) ([]*models.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit > len(r.messages) {
		limit = len(r.messages)
	}
	out := make([]*models.ContactMessage, 0, limit)
	for i := len(r.messages) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.messages[i])
	}
	return out, nil
}

// fakeAuditRepo is an in-memory AuditRequestRepository mimicking the
// real repository's defaulting behavior on Create
type fakeAuditRepo struct {
	mu       sync.Mutex
	requests []*models.AuditRequest

	createErr error
	getErr    error
	listErr   error
}

func (r *fakeAuditRepo) Create(_ context.Context, req *models.AuditRequest) (*models.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}
	req.ID = fmt.Sprintf("audit-%d", len(r.requests)+1)
	req.Status = models.AuditStatusPending
	req.Priority = models.PriorityForUrgency(req.Urgency)
	req.CreatedAt = time.Now().UTC()
	r.requests = append(r.requests, req)
	return req, nil
}

func (r *fakeAuditRepo) GetByID(_ context.Context, id string) (*models.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeAuditRepo) ListRecent(_ context.Context, limit int) ([]*models.AuditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.listErr != nil {
		return nil, r.listErr
	}
	if limit > len(r.requests) {
		limit = len(r.requests)
	}
	out := make([]*models.AuditRequest, 0, limit)
	for i := len(r.requests) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.requests[i])
	}
	return out, nil
}

func (r *fakeUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lastLoginErr != nil {
		return r.lastLoginErr
	}
	for _, user := range r.byEmail {
		if user.ID == id {
			user.LastLogin = &at
			return nil
		}
	}
	return models.ErrNotFound
}

package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/cybershield/backend/internal/database"
	"github.com/cybershield/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRequestRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRequestRepository(db *database.DB) *AuditRequestRepository {
	return &AuditRequestRepository{pool: db.Pool}
}

const auditColumns = `id, name, email, company, employees, industry, description, urgency, budget, phone, preferred_contact, priority, status, created_at`

func scanAuditRow(scanner rowScanner) (*models.AuditRequest, error) {
	var req models.AuditRequest
	var industry, budget, phone *string

	err := scanner.Scan(
		&req.ID, &req.Name, &req.Email, &req.Company, &req.Employees,
		&industry, &req.Description, &req.Urgency, &budget, &phone,
		&req.PreferredContact, &req.Priority, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if industry != nil {
		req.Industry = *industry
	}
	if budget != nil {
		req.Budget = *budget
	}
	if phone != nil {
		req.Phone = *phone
	}

	return &req, nil
}

func (r *AuditRequestRepository) Create(ctx context.Context, req *models.AuditRequest) (*models.AuditRequest, error) {
	req.ID = uuid.New().String()
	req.CreatedAt = time.Now().UTC()
	req.Status = models.AuditStatusPending
	req.Priority = models.PriorityForUrgency(req.Urgency)

	query := `
		INSERT INTO audit_requests
			(id, name, email, company, employees, industry, description, urgency, budget, phone, preferred_contact, priority, status, created_at)
		VALUES
			($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query,
		req.ID, req.Name, req.Email, req.Company, req.Employees,
		req.Industry, req.Description, req.Urgency, req.Budget, req.Phone,
		req.PreferredContact, req.Priority, req.Status, req.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return req, nil
}

func (r *AuditRequestRepository) GetByID(ctx context.Context, id string) (*models.AuditRequest, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_requests WHERE id = $1`

	return scanAuditRow(r.pool.QueryRow(ctx, query, id))
}

// ListRecent returns audit requests, newest first.
func (r *AuditRequestRepository) ListRecent(ctx context.Context, limit int) ([]*models.AuditRequest, error) {
	query := `
		SELECT ` + auditColumns + `
		FROM audit_requests
		ORDER BY created_at DESC LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit requests: %w", err)
	}

	return scanAuditRows(rows)
}

func scanAuditRows(rows pgx.Rows) ([]*models.AuditRequest, error) {
	defer rows.Close()

	requests := make([]*models.AuditRequest, 0)

	for rows.Next() {
		req, err := scanAuditRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit request: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return requests, nil
}

// UpdateStatus advances the request lifecycle (pending -> in_progress ->
// resolved). Driven by back-office tooling, not by any public route.
func (r *AuditRequestRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE audit_requests SET status = $2 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return database.MapPostgresError(err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

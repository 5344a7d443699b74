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

type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(db *database.DB) *ContactRepository {
	return &ContactRepository{pool: db.Pool}
}

func scanContactRow(scanner rowScanner) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	var company, phone *string

	err := scanner.Scan(
		&msg.ID, &msg.Name, &msg.Email, &msg.Message,
		&company, &phone, &msg.Status, &msg.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	if company != nil {
		msg.Company = *company
	}
	if phone != nil {
		msg.Phone = *phone
	}

	return &msg, nil
}

func (r *ContactRepository) Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	msg.ID = uuid.New().String()
	msg.CreatedAt = time.Now().UTC()
	if msg.Status == "" {
		msg.Status = models.ContactStatusPending
	}

	query := `
		INSERT INTO contacts (id, name, email, message, company, phone, status, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.Name, msg.Email, msg.Message,
		msg.Company, msg.Phone, msg.Status, msg.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return msg, nil
}

// ListRecent returns contact messages, newest first.
func (r *ContactRepository) ListRecent(ctx context.Context, limit int) ([]*models.ContactMessage, error) {
	query := `
		SELECT id, name, email, message, company, phone, status, created_at
		FROM contacts
		ORDER BY created_at DESC LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	return scanContactRows(rows)
}

func scanContactRows(rows pgx.Rows) ([]*models.ContactMessage, error) {
	defer rows.Close()

	messages := make([]*models.ContactMessage, 0)

	for rows.Next() {
		msg, err := scanContactRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return messages, nil
}

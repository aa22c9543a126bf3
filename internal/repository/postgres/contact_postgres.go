package postgres

import (
	"context"
	"database/sql"

	"portfolioapi/internal/model"
	"portfolioapi/internal/repository"
)

// ContactPostgres appends contact messages.
type ContactPostgres struct {
	db *sql.DB
}

func NewContactPostgres(db *sql.DB) *ContactPostgres {
	return &ContactPostgres{db: db}
}

var _ repository.ContactRepository = (*ContactPostgres)(nil)

// Create inserts a message; id and received_at come from the database.
func (r *ContactPostgres) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	const q = `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, received_at
	`
	var out model.ContactMessage
	if err := r.db.QueryRowContext(ctx, q, msg.Name, msg.Email, msg.Subject, msg.Message).Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.Subject,
		&out.Message,
		&out.ReceivedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ContactRepository persists contact-form messages. Submissions are
// write-only here; reading and deleting them is dashboard work and goes
// through the admin registry.
type ContactRepository struct {
	db *sqlx.DB
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(db *sqlx.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message and returns its ID.
func (r *ContactRepository) Create(ctx context.Context, contact *Contact) (int64, error) {
	res, err := r.db.NamedExecContext(ctx,
		"INSERT INTO contacts (name, email, message) VALUES (:name, :email, :message)", contact)
	if err != nil {
		return 0, fmt.Errorf("failed to create contact: %w", err)
	}
	return res.LastInsertId()
}

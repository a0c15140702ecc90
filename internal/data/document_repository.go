package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// DocumentRepository handles database operations for documents.
type DocumentRepository struct {
	db *sqlx.DB
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *sqlx.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// List returns one page of documents plus pagination metadata. The category
// filter is an exact match on category_id; the search filter is a
// case-insensitive substring match on the filename. They never combine.
func (r *DocumentRepository) List(ctx context.Context, params ListParams) ([]*Document, Pagination, error) {
	where := ""
	args := []interface{}{}
	switch {
	case params.CategoryID != nil:
		where = " WHERE category_id = ?"
		args = append(args, *params.CategoryID)
	case params.Search != "":
		where = " WHERE LOWER(filename) LIKE LOWER(?)"
		args = append(args, "%"+params.Search+"%")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM documents"+where, args...); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count documents: %w", err)
	}
	p := Paginate(total, params.Page, params.PerPage)

	limit, offset := PageBounds(params.Page, params.PerPage)
	query := "SELECT id, filename, category_id FROM documents" + where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	docs := []*Document{}
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list documents: %w", err)
	}
	return docs, p, nil
}

// GetByID finds a document by its ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*Document, error) {
	var doc Document
	err := r.db.GetContext(ctx, &doc, "SELECT id, filename, category_id FROM documents WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found is not an error
		}
		return nil, fmt.Errorf("failed to get document by id: %w", err)
	}
	return &doc, nil
}

// Create inserts a new document and returns its ID.
func (r *DocumentRepository) Create(ctx context.Context, doc *Document) (int64, error) {
	res, err := r.db.NamedExecContext(ctx,
		"INSERT INTO documents (filename, category_id) VALUES (:filename, :category_id)", doc)
	if err != nil {
		return 0, fmt.Errorf("failed to create document: %w", err)
	}
	return res.LastInsertId()
}

// Update rewrites an existing document.
func (r *DocumentRepository) Update(ctx context.Context, doc *Document) error {
	res, err := r.db.NamedExecContext(ctx,
		"UPDATE documents SET filename = :filename, category_id = :category_id WHERE id = :id", doc)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no document found to update with id %d", doc.ID)
	}
	return nil
}

// Delete removes a document by its ID.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no document found to delete with id %d", id)
	}
	return nil
}

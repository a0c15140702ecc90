package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// VideoRepository handles database operations for YouTube links.
type VideoRepository struct {
	db *sqlx.DB
}

// NewVideoRepository creates a new VideoRepository.
func NewVideoRepository(db *sqlx.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// List returns one page of videos plus pagination metadata. Videos have no
// category concept, so only the search filter applies (case-insensitive
// substring match on the title).
func (r *VideoRepository) List(ctx context.Context, params ListParams) ([]*Video, Pagination, error) {
	where := ""
	args := []interface{}{}
	if params.Search != "" {
		where = " WHERE LOWER(title) LIKE LOWER(?)"
		args = append(args, "%"+params.Search+"%")
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM videos"+where, args...); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to count videos: %w", err)
	}
	p := Paginate(total, params.Page, params.PerPage)

	limit, offset := PageBounds(params.Page, params.PerPage)
	query := "SELECT id, title, url FROM videos" + where + " ORDER BY id LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	videos := []*Video{}
	if err := r.db.SelectContext(ctx, &videos, query, args...); err != nil {
		return nil, Pagination{}, fmt.Errorf("failed to list videos: %w", err)
	}
	return videos, p, nil
}

// Latest returns the n most recently added videos, newest first.
func (r *VideoRepository) Latest(ctx context.Context, n int) ([]*Video, error) {
	videos := []*Video{}
	err := r.db.SelectContext(ctx, &videos, "SELECT id, title, url FROM videos ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest videos: %w", err)
	}
	return videos, nil
}

// GetByID finds a video by its ID.
func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*Video, error) {
	var video Video
	err := r.db.GetContext(ctx, &video, "SELECT id, title, url FROM videos WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Not found is not an error
		}
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	}
	return &video, nil
}

// Create inserts a new video and returns its ID.
func (r *VideoRepository) Create(ctx context.Context, video *Video) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, "INSERT INTO videos (title, url) VALUES (:title, :url)", video)
	if err != nil {
		return 0, fmt.Errorf("failed to create video: %w", err)
	}
	return res.LastInsertId()
}

// Update rewrites an existing video.
func (r *VideoRepository) Update(ctx context.Context, video *Video) error {
	res, err := r.db.NamedExecContext(ctx, "UPDATE videos SET title = :title, url = :url WHERE id = :id", video)
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no video found to update with id %d", video.ID)
	}
	return nil
}

// Delete removes a video by its ID.
func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM videos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("no video found to delete with id %d", id)
	}
	return nil
}

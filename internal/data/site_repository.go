package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SiteRepository handles database operations for the site-wide display
// records: page information, contact details, categories and the profile
// sections. These tables are small and read whole.
type SiteRepository struct {
	db *sqlx.DB
}

// NewSiteRepository creates a new SiteRepository.
func NewSiteRepository(db *sqlx.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// PageInformation returns the site-wide text row. When several rows exist
// the one with the lowest id wins. A missing row is not an error.
func (r *SiteRepository) PageInformation(ctx context.Context) (*PageInformation, error) {
	var info PageInformation
	err := r.db.GetContext(ctx, &info,
		"SELECT id, title, tagline, about FROM page_information ORDER BY id LIMIT 1")
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page information: %w", err)
	}
	return &info, nil
}

// ContactInfos retrieves all contact-detail rows.
func (r *SiteRepository) ContactInfos(ctx context.Context) ([]*ContactInfo, error) {
	infos := []*ContactInfo{}
	err := r.db.SelectContext(ctx, &infos, "SELECT id, label, value FROM contact_infos ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get contact infos: %w", err)
	}
	return infos, nil
}

// Categories retrieves all categories ordered by name.
func (r *SiteRepository) Categories(ctx context.Context) ([]*Category, error) {
	categories := []*Category{}
	err := r.db.SelectContext(ctx, &categories, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// ProfileAbouts retrieves all profile sections in insertion order.
func (r *SiteRepository) ProfileAbouts(ctx context.Context) ([]*ProfileAbout, error) {
	profiles := []*ProfileAbout{}
	err := r.db.SelectContext(ctx, &profiles, "SELECT id, title, detail FROM profile_abouts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to get profile sections: %w", err)
	}
	return profiles, nil
}

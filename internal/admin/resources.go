package admin

import (
	"context"
	"fmt"

	"go-cms-app/internal/auth"
	"go-cms-app/internal/data"

	"github.com/jmoiron/sqlx"
)

// NewDefaultRegistry registers every managed entity of the site. Each
// resource names its table and columns explicitly; the dashboard never
// inspects the schema.
func NewDefaultRegistry(db *sqlx.DB) *Registry {
	documents := []Field{
		{Name: "filename"},
		{Name: "category_id", Optional: true},
	}
	categories := []Field{
		{Name: "name"},
	}
	contacts := []Field{
		{Name: "name"},
		{Name: "email"},
		{Name: "message"},
	}
	contactInfos := []Field{
		{Name: "label"},
		{Name: "value"},
	}
	pageInformation := []Field{
		{Name: "title"},
		{Name: "tagline"},
		{Name: "about"},
	}
	profileAbouts := []Field{
		{Name: "title"},
		{Name: "detail"},
	}
	videos := []Field{
		{Name: "title"},
		{Name: "url"},
	}
	users := []Field{
		{Name: "username"},
		{Name: "password", Secret: true},
	}

	return NewRegistry(
		&Resource{Name: "documents", Title: "Documents", Fields: documents,
			Store: newTableStore(db, "documents", documents)},
		&Resource{Name: "categories", Title: "Categories", Fields: categories,
			Store: newTableStore(db, "categories", categories)},
		&Resource{Name: "contacts", Title: "Contact Messages", Fields: contacts,
			Store: newTableStore(db, "contacts", contacts)},
		&Resource{Name: "contact_infos", Title: "Contact Info", Fields: contactInfos,
			Store: newTableStore(db, "contact_infos", contactInfos)},
		&Resource{Name: "page_information", Title: "Page Information", Fields: pageInformation,
			Store: newTableStore(db, "page_information", pageInformation)},
		&Resource{Name: "profile_abouts", Title: "Profile Sections", Fields: profileAbouts,
			Store: newTableStore(db, "profile_abouts", profileAbouts)},
		&Resource{Name: "videos", Title: "YouTube Links", Fields: videos,
			Store: newTableStore(db, "videos", videos)},
		&Resource{Name: "users", Title: "Users", Fields: users,
			Store: &userStore{inner: newTableStore(db, "users", users)}},
	)
}

// userStore wraps the users table so plaintext passwords never reach the
// database: submitted passwords are hashed, and an empty password on update
// keeps the stored hash.
type userStore struct {
	inner *tableStore
}

var _ Store = (*userStore)(nil)

func (s *userStore) List(ctx context.Context, page, perPage int) ([]Record, data.Pagination, error) {
	records, p, err := s.inner.List(ctx, page, perPage)
	for i := range records {
		maskPassword(&records[i])
	}
	return records, p, err
}

func (s *userStore) Get(ctx context.Context, id int64) (*Record, error) {
	rec, err := s.inner.Get(ctx, id)
	if rec != nil {
		maskPassword(rec)
	}
	return rec, err
}

func (s *userStore) Create(ctx context.Context, values []string) error {
	if len(values) != 2 {
		return fmt.Errorf("expected 2 values for users, got %d", len(values))
	}
	if values[1] == "" {
		return fmt.Errorf("password is required")
	}
	hash, err := auth.HashPassword(values[1])
	if err != nil {
		return err
	}
	return s.inner.Create(ctx, []string{values[0], hash})
}

func (s *userStore) Update(ctx context.Context, id int64, values []string) error {
	if len(values) != 2 {
		return fmt.Errorf("expected 2 values for users, got %d", len(values))
	}
	if values[1] == "" {
		// Keep the existing hash when the password field is left blank.
		current, err := s.inner.Get(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("no users record found with id %d", id)
		}
		return s.inner.Update(ctx, id, []string{values[0], current.Values[1]})
	}
	hash, err := auth.HashPassword(values[1])
	if err != nil {
		return err
	}
	return s.inner.Update(ctx, id, []string{values[0], hash})
}

func (s *userStore) Delete(ctx context.Context, id int64) error {
	return s.inner.Delete(ctx, id)
}

func maskPassword(rec *Record) {
	if len(rec.Values) == 2 && rec.Values[1] != "" {
		rec.Values[1] = "********"
	}
}

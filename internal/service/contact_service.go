package service

import (
	"context"
	"html"

	"go-cms-app/internal/data"

	"github.com/microcosm-cc/bluemonday"
)

// ContactCreator defines the interface for persisting contact messages.
type ContactCreator interface {
	Create(ctx context.Context, contact *data.Contact) (int64, error)
}

// ContactSubmitter defines the interface for contact-form submissions.
type ContactSubmitter interface {
	Submit(ctx context.Context, name, email, message string) (bool, error)
}

// ContactService handles public contact-form submissions.
type ContactService struct {
	repo      ContactCreator
	sanitizer *bluemonday.Policy
}

var _ ContactSubmitter = (*ContactService)(nil)

// NewContactService creates a new ContactService.
func NewContactService(repo ContactCreator) *ContactService {
	// The contact form is plain text; strip all markup before storing.
	return &ContactService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// Submit persists a contact message when all three fields are present.
// An incomplete submission is skipped silently: the caller still shows the
// thank-you page and no error is reported. The returned bool says whether a
// row was written.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (bool, error) {
	if name == "" || email == "" || message == "" {
		return false, nil
	}

	contact := &data.Contact{
		Name:    s.clean(name),
		Email:   s.clean(email),
		Message: s.clean(message),
	}
	if _, err := s.repo.Create(ctx, contact); err != nil {
		return false, err
	}
	return true, nil
}

// clean strips markup from a form value. The sanitizer escapes what it
// keeps, so plain text like "5 < 6" must be unescaped back to the submitted
// characters before storing.
func (s *ContactService) clean(value string) string {
	return html.UnescapeString(s.sanitizer.Sanitize(value))
}

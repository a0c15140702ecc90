package handler

import (
	"net/http"

	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
)

// ContactHandler handles the public contact-form submission.
type ContactHandler struct {
	contacts service.ContactSubmitter
	log      logger.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contacts service.ContactSubmitter, log logger.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// submitHandler persists a complete submission and always redirects to the
// thank-you page. An incomplete form is skipped without surfacing an error
// to the visitor.
func (h *ContactHandler) submitHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid form submission", Code: http.StatusBadRequest}
	}

	persisted, err := h.contacts.Submit(r.Context(),
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("message"),
	)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to save message", Code: http.StatusInternalServerError}
	}
	if !persisted {
		h.log.Warn("Incomplete contact form submission skipped")
	}

	http.Redirect(w, r, "/thank_you", http.StatusFound)
	return nil
}

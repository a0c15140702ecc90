package handler

import (
	"net/http"

	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"go-cms-app/internal/view"
)

// SiteHandler holds the dependencies for the read-only public pages.
type SiteHandler struct {
	site service.SiteServicer
	view *view.View
	log  logger.Logger
}

// NewSiteHandler creates a new SiteHandler with the given dependencies.
func NewSiteHandler(site service.SiteServicer, v *view.View, log logger.Logger) *SiteHandler {
	return &SiteHandler{site: site, view: v, log: log}
}

// homeHandler renders the home page.
func (h *SiteHandler) homeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	home, err := h.site.HomePage(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load home page", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Info":         home.Info,
		"ContactInfos": home.ContactInfos,
		"Categories":   home.Categories,
		"Videos":       home.Videos,
	}
	if err := h.view.Render(w, r, "home.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render home page", Code: http.StatusInternalServerError}
	}
	return nil
}

// thankYouHandler renders the static confirmation page shown after a
// contact-form submission.
func (h *SiteHandler) thankYouHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.view.Render(w, r, "thank_you.html", nil); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render page", Code: http.StatusInternalServerError}
	}
	return nil
}

// profileHandler renders the profile sections, detail text split into
// paragraphs.
func (h *SiteHandler) profileHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	entries, err := h.site.ProfileEntries(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load profile", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Profiles": entries,
	}
	if err := h.view.Render(w, r, "profile.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render profile", Code: http.StatusInternalServerError}
	}
	return nil
}

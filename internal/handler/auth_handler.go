package handler

import (
	"context"
	"net/http"

	"go-cms-app/internal/auth"
	"go-cms-app/internal/data"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/session"
	"go-cms-app/internal/view"
)

// invalidCredentialsMessage is deliberately generic: it never reveals
// whether the username or the password was wrong.
const invalidCredentialsMessage = "Invalid username or password."

// UserFinder defines the interface for looking up admin accounts.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*data.User, error)
}

// AuthHandler holds the dependencies for the login and logout handlers.
type AuthHandler struct {
	users    UserFinder
	sessions session.Manager
	view     *view.View
	log      logger.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserFinder, sessions session.Manager, v *view.View, log logger.Logger) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, view: v, log: log}
}

// loginFormHandler renders the login form.
func (h *AuthHandler) loginFormHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return h.renderLogin(w, r, h.sessions.PopString(r.Context(), "flash"))
}

// loginHandler validates the submitted credentials. Success stores the
// subject in a renewed session and redirects to the dashboard; any failure
// re-renders the form with one generic message.
func (h *AuthHandler) loginHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := r.ParseForm(); err != nil {
		return &middleware.AppError{Error: err, Message: "Invalid form submission", Code: http.StatusBadRequest}
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		return h.renderLogin(w, r, invalidCredentialsMessage)
	}

	user, err := h.users.FindByUsername(r.Context(), username)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Login failed", Code: http.StatusInternalServerError}
	}
	if user == nil {
		return h.renderLogin(w, r, invalidCredentialsMessage)
	}

	match, err := auth.VerifyPassword(password, user.Password)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Login failed", Code: http.StatusInternalServerError}
	}
	if !match {
		return h.renderLogin(w, r, invalidCredentialsMessage)
	}

	// Renew the session token on privilege change to prevent fixation.
	if err := h.sessions.RenewToken(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Login failed", Code: http.StatusInternalServerError}
	}
	h.sessions.Put(r.Context(), "user_subject", user.Username)

	http.Redirect(w, r, "/admin", http.StatusFound)
	return nil
}

// logoutHandler destroys the session and sends the visitor home.
func (h *AuthHandler) logoutHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Logout failed", Code: http.StatusInternalServerError}
	}
	http.Redirect(w, r, "/", http.StatusFound)
	return nil
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, flash string) *middleware.AppError {
	data := map[string]interface{}{
		"Flash": flash,
	}
	if err := h.view.Render(w, r, "login.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render login page", Code: http.StatusInternalServerError}
	}
	return nil
}

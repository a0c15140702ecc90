package handler

import (
	"context"
	"net/http"

	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
)

// SystemHandler exposes the manually-triggered bootstrap route.
type SystemHandler struct {
	bootstrap func(ctx context.Context) error
	log       logger.Logger
}

// NewSystemHandler creates a new SystemHandler. bootstrap must be the same
// idempotent operation the process runs at startup.
func NewSystemHandler(bootstrap func(ctx context.Context) error, log logger.Logger) *SystemHandler {
	return &SystemHandler{bootstrap: bootstrap, log: log}
}

// setupHandler ensures the schema and the admin account exist. Safe to call
// repeatedly.
func (h *SystemHandler) setupHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if err := h.bootstrap(r.Context()); err != nil {
		return &middleware.AppError{Error: err, Message: "Bootstrap failed", Code: http.StatusInternalServerError}
	}
	h.log.Info("Bootstrap completed via /settup")

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Success"))
	return nil
}

//go:build unit || integration

package handler

import (
	"testing"

	"go-cms-app/internal/config"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/view"
	"go-cms-app/web"
)

func newTestView(t *testing.T) *view.View {
	t.Helper()
	v, err := view.New(web.TemplateFS)
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	return v
}

func newTestLogger() logger.Logger {
	return logger.New(config.LogConfig{Level: "error", Format: "json"})
}

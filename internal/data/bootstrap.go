package data

import (
	"context"
	"fmt"

	"go-cms-app/internal/auth"

	"github.com/jmoiron/sqlx"
)

// Bootstrap ensures the configured admin account exists. It is idempotent:
// re-running it never creates a duplicate user or resets an existing
// password. The schema must already be in place (see ApplyMigrations); the
// two together back both process startup and the /settup route.
func Bootstrap(ctx context.Context, db *sqlx.DB, adminUsername, adminPassword string) error {
	if adminUsername == "" || adminPassword == "" {
		return fmt.Errorf("admin credentials are not configured")
	}

	users := NewUserRepository(db)
	existing, err := users.FindByUsername(ctx, adminUsername)
	if err != nil {
		return fmt.Errorf("failed to look up admin user: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if _, err := users.Create(ctx, &User{Username: adminUsername, Password: hash}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	return nil
}

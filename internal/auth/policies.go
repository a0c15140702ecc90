package auth

import (
	"fmt"

	"go-cms-app/internal/logger"

	"github.com/casbin/casbin/v2"
)

// SeedDefaultPolicies ensures that the application has a baseline set of
// authorization rules. It checks if each policy exists before adding it,
// making the operation idempotent and safe to run on every start.
//
// adminUsername is the bootstrap account; it is granted the 'admin' role so
// that a successful login opens the dashboard.
func SeedDefaultPolicies(e casbin.IEnforcer, adminUsername string, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	// Anonymous visitors get the whole public surface. The admin role
	// inherits it and adds the dashboard subtree.
	policies := [][]string{
		{"anonymous", "/", "GET"},
		{"anonymous", "/thank_you", "GET"},
		{"anonymous", "/download_page", "GET"},
		{"anonymous", "/youtube_page", "GET"},
		{"anonymous", "/search", "GET"},
		{"anonymous", "/youtube_search", "GET"},
		{"anonymous", "/get_document", "GET"},
		{"anonymous", "/submit_contact_form", "POST"},
		{"anonymous", "/profile", "GET"},
		{"anonymous", "/login", "GET"},
		{"anonymous", "/login", "POST"},
		{"anonymous", "/logout", "GET"},
		{"anonymous", "/settup", "GET"},
		{"anonymous", "/robots.txt", "GET"},
		{"anonymous", "/sitemap.xml", "GET"},
		{"anonymous", "/static/*", "GET"},

		{"admin", "/admin", "GET"},
		{"admin", "/admin/*", "GET"},
		{"admin", "/admin/*", "POST"},
	}
	for _, p := range policies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	// The admin role keeps all anonymous permissions.
	if has, _ := e.HasRoleForUser("admin", "anonymous"); !has {
		if _, err := e.AddRoleForUser("admin", "anonymous"); err != nil {
			log.Error(err, "Failed to add role 'admin' -> 'anonymous'")
		}
	}

	// The bootstrap account is the only admin.
	if adminUsername != "" {
		if has, _ := e.HasRoleForUser(adminUsername, "admin"); !has {
			if _, err := e.AddRoleForUser(adminUsername, "admin"); err != nil {
				log.Error(err, fmt.Sprintf("Failed to grant admin role to %q", adminUsername))
			}
		}
	}
	log.Info("Policy seeding complete.")
}

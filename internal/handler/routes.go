package handler

import (
	"io/fs"
	"net/http"

	appmw "go-cms-app/internal/middleware"
	"go-cms-app/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Site    *SiteHandler
	Catalog *CatalogHandler
	Contact *ContactHandler
	Auth    *AuthHandler
	System  *SystemHandler
	Admin   *AdminHandler
	Seo     *SeoHandler
}

// NewRouter creates and configures a new chi router.
func NewRouter(
	h Handlers,
	authzMiddleware func(http.Handler) http.Handler,
	errorMiddleware func(appmw.AppHandler) http.Handler,
	sessionManager session.Manager,
	staticFS fs.FS,
) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Sessions and authorization wrap every route; the casbin policies
	// decide which of them anonymous visitors may reach.
	r.Use(sessionManager.LoadAndSave)
	r.Use(authzMiddleware)

	// Public pages
	r.Method(http.MethodGet, "/", errorMiddleware(h.Site.homeHandler))
	r.Method(http.MethodGet, "/thank_you", errorMiddleware(h.Site.thankYouHandler))
	r.Method(http.MethodGet, "/profile", errorMiddleware(h.Site.profileHandler))
	r.Method(http.MethodGet, "/download_page", errorMiddleware(h.Catalog.downloadPageHandler))
	r.Method(http.MethodGet, "/youtube_page", errorMiddleware(h.Catalog.youtubePageHandler))
	r.Method(http.MethodGet, "/search", errorMiddleware(h.Catalog.searchHandler))
	r.Method(http.MethodGet, "/youtube_search", errorMiddleware(h.Catalog.youtubeSearchHandler))
	r.Method(http.MethodGet, "/get_document", errorMiddleware(h.Catalog.getDocumentHandler))
	r.Method(http.MethodPost, "/submit_contact_form", errorMiddleware(h.Contact.submitHandler))

	// Authentication and bootstrap
	r.Method(http.MethodGet, "/login", errorMiddleware(h.Auth.loginFormHandler))
	r.Method(http.MethodPost, "/login", errorMiddleware(h.Auth.loginHandler))
	r.Method(http.MethodGet, "/logout", errorMiddleware(h.Auth.logoutHandler))
	r.Method(http.MethodGet, "/settup", errorMiddleware(h.System.setupHandler))

	// Crawlers
	r.Get("/robots.txt", h.Seo.robotsHandler)
	r.Get("/sitemap.xml", h.Seo.sitemapHandler)

	// Record-management dashboard. The authorization middleware only lets
	// the admin role through.
	r.Route("/admin", func(r chi.Router) {
		r.Method(http.MethodGet, "/", errorMiddleware(h.Admin.indexHandler))
		r.Method(http.MethodGet, "/{resource}", errorMiddleware(h.Admin.listHandler))
		r.Method(http.MethodPost, "/{resource}", errorMiddleware(h.Admin.createHandler))
		r.Method(http.MethodGet, "/{resource}/new", errorMiddleware(h.Admin.newFormHandler))
		r.Method(http.MethodGet, "/{resource}/{id}/edit", errorMiddleware(h.Admin.editFormHandler))
		r.Method(http.MethodPost, "/{resource}/{id}", errorMiddleware(h.Admin.updateHandler))
		r.Method(http.MethodPost, "/{resource}/{id}/delete", errorMiddleware(h.Admin.deleteHandler))
	})

	// Static assets
	if staticFS != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	return r
}

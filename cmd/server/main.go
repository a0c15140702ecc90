package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-cms-app/internal/admin"
	"go-cms-app/internal/auth"
	"go-cms-app/internal/config"
	"go-cms-app/internal/data"
	"go-cms-app/internal/filestore"
	"go-cms-app/internal/handler"
	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"go-cms-app/internal/view"
	"go-cms-app/web"

	"io/fs"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log)

	// --- Pre-flight Checks ---
	if cfg.Session.SecretKey == "" || cfg.Session.SecretKey == "CHANGE_ME_IN_PRODUCTION_SECRET!!" {
		log.Fatal(errors.New("session secret key not set"), "Please set a secure CMS_SESSION_SECRET_KEY environment variable.")
	}
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		log.Fatal(errors.New("admin credentials not set"), "Please set CMS_ADMIN_USERNAME and CMS_ADMIN_PASSWORD.")
	}

	// --- Database Initialization and Bootstrap ---
	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB.DSN)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	bootstrap := func(ctx context.Context) error {
		if err := data.ApplyMigrations(cfg.DB.DSN, "migrations"); err != nil {
			return err
		}
		return data.Bootstrap(ctx, db, cfg.Admin.Username, cfg.Admin.Password)
	}
	log.Info("Applying migrations and seeding the admin account...")
	if err := bootstrap(context.Background()); err != nil {
		log.Fatal(err, "Failed to bootstrap database")
	}
	log.Info("Bootstrap complete.")

	// --- Session Management Setup ---
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db.DB)
	sessionManager.Lifetime = time.Duration(cfg.Session.Lifetime) * time.Hour
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	sessionManager.Cookie.Secure = cfg.Server.TLS.Enabled

	// --- Authorization Setup ---
	log.Info("Initializing authorization...")
	enforcer, err := auth.NewEnforcer("sqlite3", cfg.DB.DSN, "auth_model.conf")
	if err != nil {
		log.Fatal(err, "Failed to initialize enforcer")
	}
	auth.SeedDefaultPolicies(enforcer, cfg.Admin.Username, log)
	log.Info("Authorization initialized and policies seeded.")

	// --- View Template Initialization ---
	log.Info("Initializing view templates...")
	viewService, err := view.New(web.TemplateFS)
	if err != nil {
		log.Fatal(err, "Failed to initialize view templates")
	}
	log.Info("View templates initialized.")

	// --- Remote File Store ---
	fileStore := filestore.NewHTTPStore(cfg.FileStore.BaseURL, time.Duration(cfg.FileStore.Timeout)*time.Second)

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	documentRepository := data.NewDocumentRepository(db)
	videoRepository := data.NewVideoRepository(db)
	contactRepository := data.NewContactRepository(db)
	siteRepository := data.NewSiteRepository(db)
	userRepository := data.NewUserRepository(db)

	catalogService := service.NewCatalogService(documentRepository, videoRepository, fileStore)
	siteService := service.NewSiteService(siteRepository, videoRepository)
	contactService := service.NewContactService(contactRepository)

	registry := admin.NewDefaultRegistry(db)

	handlers := handler.Handlers{
		Site:    handler.NewSiteHandler(siteService, viewService, log),
		Catalog: handler.NewCatalogHandler(catalogService, viewService, log),
		Contact: handler.NewContactHandler(contactService, log),
		Auth:    handler.NewAuthHandler(userRepository, sessionManager, viewService, log),
		System:  handler.NewSystemHandler(bootstrap, log),
		Admin:   handler.NewAdminHandler(registry, viewService, log),
		Seo:     handler.NewSeoHandler(cfg.Server.BaseURL),
	}

	authzMiddleware := middleware.Authorizer(enforcer, sessionManager)
	errorMiddleware := middleware.Error(log, viewService)

	staticFS, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		log.Fatal(err, "Failed to load static assets")
	}

	// --- Router Setup ---
	// The router is the central hub that directs incoming requests to the correct handlers.
	router := handler.NewRouter(handlers, authzMiddleware, errorMiddleware, sessionManager, staticFS)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}

//go:build integration

package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-cms-app/internal/admin"
	"go-cms-app/internal/auth"
	"go-cms-app/internal/data"
	"go-cms-app/internal/filestore"
	appmw "go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"go-cms-app/internal/view"
	"go-cms-app/web"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// stubFileStore avoids remote calls in the routing tests.
type stubFileStore struct{}

var _ filestore.Store = (*stubFileStore)(nil)

func (stubFileStore) GetFile(ctx context.Context, filename string) (string, error) {
	return "https://files.example.com/" + filename, nil
}

// newTestServer wires the full application stack against a shared in-memory
// database and returns a running test server plus the database handle.
func newTestServer(t *testing.T) (*httptest.Server, *sqlx.DB) {
	t.Helper()

	// The casbin adapter and the session store open their own connections;
	// shared cache keeps them all on the same in-memory database.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		t.Fatalf("Failed to connect to sqlite test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	db.MustExec(`
	CREATE TABLE categories (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL);
	CREATE TABLE documents (id INTEGER PRIMARY KEY AUTOINCREMENT, filename TEXT NOT NULL, category_id INTEGER REFERENCES categories(id));
	CREATE TABLE contacts (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT NOT NULL, email TEXT NOT NULL, message TEXT NOT NULL);
	CREATE TABLE contact_infos (id INTEGER PRIMARY KEY AUTOINCREMENT, label TEXT NOT NULL, value TEXT NOT NULL);
	CREATE TABLE page_information (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL, tagline TEXT NOT NULL DEFAULT '', about TEXT NOT NULL DEFAULT '');
	CREATE TABLE profile_abouts (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL, detail TEXT NOT NULL);
	CREATE TABLE videos (id INTEGER PRIMARY KEY AUTOINCREMENT, title TEXT NOT NULL, url TEXT NOT NULL);
	CREATE TABLE users (id INTEGER PRIMARY KEY AUTOINCREMENT, username TEXT NOT NULL UNIQUE, password TEXT NOT NULL);
	CREATE TABLE casbin_rule (
		ptype VARCHAR(32) DEFAULT '' NOT NULL,
		v0 VARCHAR(255) DEFAULT '' NOT NULL,
		v1 VARCHAR(255) DEFAULT '' NOT NULL,
		v2 VARCHAR(255) DEFAULT '' NOT NULL,
		v3 VARCHAR(255) DEFAULT '' NOT NULL,
		v4 VARCHAR(255) DEFAULT '' NOT NULL,
		v5 VARCHAR(255) DEFAULT '' NOT NULL
	);
	CREATE TABLE sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX sessions_expiry_idx ON sessions(expiry);`)

	log := newTestLogger()

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.New(db.DB)
	sessionManager.Lifetime = time.Hour

	enforcer, err := auth.NewEnforcer("sqlite3", dsn, "../../auth_model.conf")
	if err != nil {
		t.Fatalf("Failed to create enforcer: %v", err)
	}
	auth.SeedDefaultPolicies(enforcer, "admin", log)

	v, err := view.New(web.TemplateFS)
	if err != nil {
		t.Fatalf("Failed to parse templates: %v", err)
	}

	documentRepo := data.NewDocumentRepository(db)
	videoRepo := data.NewVideoRepository(db)
	contactRepo := data.NewContactRepository(db)
	siteRepo := data.NewSiteRepository(db)
	userRepo := data.NewUserRepository(db)

	catalogService := service.NewCatalogService(documentRepo, videoRepo, stubFileStore{})
	siteService := service.NewSiteService(siteRepo, videoRepo)
	contactService := service.NewContactService(contactRepo)

	bootstrap := func(ctx context.Context) error {
		return data.Bootstrap(ctx, db, "admin", "s3cret")
	}
	if err := bootstrap(context.Background()); err != nil {
		t.Fatalf("Failed to bootstrap: %v", err)
	}

	h := Handlers{
		Site:    NewSiteHandler(siteService, v, log),
		Catalog: NewCatalogHandler(catalogService, v, log),
		Contact: NewContactHandler(contactService, log),
		Auth:    NewAuthHandler(userRepo, sessionManager, v, log),
		System:  NewSystemHandler(bootstrap, log),
		Admin:   NewAdminHandler(admin.NewDefaultRegistry(db), v, log),
		Seo:     NewSeoHandler("http://example.com"),
	}

	router := NewRouter(h,
		appmw.Authorizer(enforcer, sessionManager),
		appmw.Error(log, v),
		sessionManager,
		nil,
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

// newTestClient returns a cookie-keeping client that does not follow
// redirects, so tests can assert on Location headers.
func newTestClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestRouter_PublicPages(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	for _, path := range []string{"/", "/download_page", "/youtube_page", "/profile", "/thank_you", "/robots.txt", "/sitemap.xml"} {
		resp, err := client.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		readBody(t, resp)
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, resp.StatusCode)
		}
	}
}

func TestRouter_AdminRequiresLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	resp, err := client.Get(srv.URL + "/admin")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("GET /admin = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}

	// Following the redirect shows the flashed prompt once.
	resp, err = client.Get(srv.URL + "/login")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "Please log in to access this page.") {
		t.Error("the login form must show the flashed prompt")
	}
	resp, err = client.Get(srv.URL + "/login")
	if err != nil {
		t.Fatal(err)
	}
	body = readBody(t, resp)
	if strings.Contains(body, "Please log in to access this page.") {
		t.Error("the flash must be consumed by the first render")
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	client := newTestClient(t)

	// A wrong password re-renders the form with the generic message.
	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	resp, err := client.PostForm(srv.URL+"/login", form)
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("failed login status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Invalid username or password.") {
		t.Error("failed login must show the generic credentials message")
	}

	// Correct credentials redirect to the dashboard.
	form.Set("password", "s3cret")
	resp, err = client.PostForm(srv.URL+"/login", form)
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin" {
		t.Fatalf("login = %d -> %q, want 302 -> /admin", resp.StatusCode, resp.Header.Get("Location"))
	}

	// The session cookie now opens the dashboard.
	resp, err = client.Get(srv.URL + "/admin")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET /admin after login = %d, want 200", resp.StatusCode)
	}

	// Logout drops the privilege again.
	resp, err = client.Get(srv.URL + "/logout")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/" {
		t.Errorf("logout = %d -> %q, want 302 -> /", resp.StatusCode, resp.Header.Get("Location"))
	}
	resp, err = client.Get(srv.URL + "/admin")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound {
		t.Errorf("GET /admin after logout = %d, want 302", resp.StatusCode)
	}
}

func TestRouter_SetupIsIdempotent(t *testing.T) {
	srv, db := newTestServer(t)
	client := newTestClient(t)

	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL + "/settup")
		if err != nil {
			t.Fatal(err)
		}
		body := readBody(t, resp)
		if resp.StatusCode != http.StatusOK || body != "Success" {
			t.Fatalf("GET /settup = %d %q, want 200 Success", resp.StatusCode, body)
		}
	}

	var count int64
	if err := db.Get(&count, "SELECT COUNT(*) FROM users WHERE username = 'admin'"); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected exactly 1 admin user, got %d", count)
	}
}

func TestRouter_ContactForm(t *testing.T) {
	srv, db := newTestServer(t)
	client := newTestClient(t)

	// A complete form is stored.
	form := url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}}
	resp, err := client.PostForm(srv.URL+"/submit_contact_form", form)
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/thank_you" {
		t.Fatalf("submit = %d -> %q, want 302 -> /thank_you", resp.StatusCode, resp.Header.Get("Location"))
	}

	// An incomplete form still redirects but stores nothing.
	resp, err = client.PostForm(srv.URL+"/submit_contact_form", url.Values{"name": {"Ada"}})
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/thank_you" {
		t.Fatalf("incomplete submit = %d -> %q, want 302 -> /thank_you", resp.StatusCode, resp.Header.Get("Location"))
	}

	var count int64
	if err := db.Get(&count, "SELECT COUNT(*) FROM contacts"); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("expected 1 stored contact, got %d", count)
	}
}

func TestRouter_GetDocument(t *testing.T) {
	srv, db := newTestServer(t)
	client := newTestClient(t)

	db.MustExec("INSERT INTO documents (filename) VALUES ('notes.pdf')")

	resp, err := client.Get(srv.URL + "/get_document?document_id=1")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status = %d, want 302", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "https://files.example.com/notes.pdf" {
		t.Errorf("Location = %q", loc)
	}

	// Missing id is a JSON 400.
	resp, err = client.Get(srv.URL + "/get_document")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if !strings.Contains(body, "No document ID provided") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestRouter_AdminCRUD(t *testing.T) {
	srv, db := newTestServer(t)
	client := newTestClient(t)

	// Log in first.
	form := url.Values{"username": {"admin"}, "password": {"s3cret"}}
	resp, err := client.PostForm(srv.URL+"/login", form)
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("login failed: %d", resp.StatusCode)
	}

	// Create a category through the dashboard.
	resp, err = client.PostForm(srv.URL+"/admin/categories", url.Values{"name": {"Grammar"}})
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/admin/categories" {
		t.Fatalf("create = %d -> %q", resp.StatusCode, resp.Header.Get("Location"))
	}

	var name string
	if err := db.Get(&name, "SELECT name FROM categories LIMIT 1"); err != nil {
		t.Fatal(err)
	}
	if name != "Grammar" {
		t.Errorf("stored category = %q, want Grammar", name)
	}

	// The listing shows it.
	resp, err = client.Get(srv.URL + "/admin/categories")
	if err != nil {
		t.Fatal(err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK || !strings.Contains(body, "Grammar") {
		t.Errorf("listing = %d, contains Grammar: %v", resp.StatusCode, strings.Contains(body, "Grammar"))
	}

	// Unknown resources are a 404.
	resp, err = client.Get(srv.URL + "/admin/nonexistent")
	if err != nil {
		t.Fatal(err)
	}
	readBody(t, resp)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown resource = %d, want 404", resp.StatusCode)
	}
}

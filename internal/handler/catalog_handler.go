package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"go-cms-app/internal/logger"
	"go-cms-app/internal/middleware"
	"go-cms-app/internal/service"
	"go-cms-app/internal/view"
)

// CatalogHandler holds the dependencies for the document and video routes.
type CatalogHandler struct {
	catalog service.CatalogServicer
	view    *view.View
	log     logger.Logger
}

// NewCatalogHandler creates a new CatalogHandler with the given dependencies.
func NewCatalogHandler(catalog service.CatalogServicer, v *view.View, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, view: v, log: log}
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or unparseable.
func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// pageArgs returns the request's query string minus the page parameter,
// ready to prefix a page link. Pagination links keep the active filters
// (category, page size) this way.
func pageArgs(r *http.Request) template.URL {
	q := r.URL.Query()
	q.Del("page")
	if len(q) == 0 {
		return ""
	}
	return template.URL(q.Encode() + "&")
}

// jsonError writes a JSON error body with the given status code.
func jsonError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// downloadPageHandler renders the paginated document listing, optionally
// filtered by category.
func (h *CatalogHandler) downloadPageHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", service.DefaultPerPage)

	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			categoryID = &id
		}
	}

	result, err := h.catalog.ListDocuments(r.Context(), page, perPage, categoryID)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load documents", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Documents":       result.Documents,
		"Pagination":      result.Pagination,
		"PageArgs":        pageArgs(r),
		"CurrentCategory": categoryID,
	}
	if err := h.view.Render(w, r, "download_page.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render document listing", Code: http.StatusInternalServerError}
	}
	return nil
}

// youtubePageHandler renders the paginated video listing.
func (h *CatalogHandler) youtubePageHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	page := queryInt(r, "page", 1)
	perPage := queryInt(r, "per_page", service.DefaultPerPage)

	result, err := h.catalog.ListVideos(r.Context(), page, perPage)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load videos", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Videos":     result.Videos,
		"Pagination": result.Pagination,
		"PageArgs":   pageArgs(r),
	}
	if err := h.view.Render(w, r, "youtube_page.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render video listing", Code: http.StatusInternalServerError}
	}
	return nil
}

// searchHandler renders document search results. A blank query renders the
// empty result view without querying.
func (h *CatalogHandler) searchHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	query := r.URL.Query().Get("q")

	result, searched, err := h.catalog.SearchDocuments(r.Context(), query)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Search failed", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Documents":  result.Documents,
		"Pagination": result.Pagination,
		"Query":      query,
		"Searched":   searched,
	}
	if err := h.view.Render(w, r, "document_list.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render search results", Code: http.StatusInternalServerError}
	}
	return nil
}

// youtubeSearchHandler renders video search results.
func (h *CatalogHandler) youtubeSearchHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	query := r.URL.Query().Get("q")

	result, searched, err := h.catalog.SearchVideos(r.Context(), query)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Search failed", Code: http.StatusInternalServerError}
	}

	data := map[string]interface{}{
		"Videos":     result.Videos,
		"Pagination": result.Pagination,
		"Query":      query,
		"Searched":   searched,
	}
	if err := h.view.Render(w, r, "video_list.html", data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render search results", Code: http.StatusInternalServerError}
	}
	return nil
}

// getDocumentHandler redirects the caller to the document's download URL.
// Errors are JSON: 400 for a missing or malformed id, 404 for an unknown
// document or a file absent from the remote store.
func (h *CatalogHandler) getDocumentHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	raw := r.URL.Query().Get("document_id")
	if raw == "" {
		jsonError(w, http.StatusBadRequest, "No document ID provided")
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid document ID")
		return nil
	}

	url, err := h.catalog.ResolveDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) || errors.Is(err, service.ErrFileMissing) {
			jsonError(w, http.StatusNotFound, "Document not found")
			return nil
		}
		h.log.Error(err, "Failed to resolve document")
		jsonError(w, http.StatusInternalServerError, "Failed to resolve document")
		return nil
	}

	http.Redirect(w, r, url, http.StatusFound)
	return nil
}

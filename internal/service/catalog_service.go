package service

import (
	"context"
	"errors"
	"strings"

	"go-cms-app/internal/data"
	"go-cms-app/internal/filestore"
)

const (
	// DefaultPerPage is the page size used by the public listings.
	DefaultPerPage = 9
	// searchPerPage is the page size of the document search results.
	searchPerPage = 2
	// homeVideoCount is how many recent videos the home page shows.
	homeVideoCount = 4
)

// ErrDocumentNotFound is returned when no document has the requested id.
var ErrDocumentNotFound = errors.New("document not found")

// ErrFileMissing is returned when a document row exists but the remote
// store no longer holds its file.
var ErrFileMissing = errors.New("document file missing from store")

// DocumentReader defines the interface for document reads.
type DocumentReader interface {
	List(ctx context.Context, params data.ListParams) ([]*data.Document, data.Pagination, error)
	GetByID(ctx context.Context, id int64) (*data.Document, error)
}

// VideoReader defines the interface for video reads.
type VideoReader interface {
	List(ctx context.Context, params data.ListParams) ([]*data.Video, data.Pagination, error)
	Latest(ctx context.Context, n int) ([]*data.Video, error)
}

// CatalogServicer defines the interface for the document and video catalog.
type CatalogServicer interface {
	ListDocuments(ctx context.Context, page, perPage int, categoryID *int64) (*DocumentPage, error)
	SearchDocuments(ctx context.Context, query string) (*DocumentPage, bool, error)
	ListVideos(ctx context.Context, page, perPage int) (*VideoPage, error)
	SearchVideos(ctx context.Context, query string) (*VideoPage, bool, error)
	LatestVideos(ctx context.Context) ([]*data.Video, error)
	ResolveDocument(ctx context.Context, id int64) (string, error)
}

// DocumentPage is one page of the document listing.
type DocumentPage struct {
	Documents  []*data.Document
	Pagination data.Pagination
}

// VideoPage is one page of the video listing.
type VideoPage struct {
	Videos     []*data.Video
	Pagination data.Pagination
}

// CatalogService provides the listing, search and download-resolution logic
// for documents and videos.
type CatalogService struct {
	documents DocumentReader
	videos    VideoReader
	files     filestore.Store
}

var _ CatalogServicer = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService.
func NewCatalogService(documents DocumentReader, videos VideoReader, files filestore.Store) *CatalogService {
	return &CatalogService{
		documents: documents,
		videos:    videos,
		files:     files,
	}
}

// ListDocuments returns one page of documents, optionally filtered by
// category.
func (s *CatalogService) ListDocuments(ctx context.Context, page, perPage int, categoryID *int64) (*DocumentPage, error) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	docs, p, err := s.documents.List(ctx, data.ListParams{
		Page:       page,
		PerPage:    perPage,
		CategoryID: categoryID,
	})
	if err != nil {
		return nil, err
	}
	return &DocumentPage{Documents: docs, Pagination: p}, nil
}

// SearchDocuments returns the first page of documents whose filename
// contains the query, case-insensitively. An empty or whitespace-only query
// short-circuits to no results without touching the database; the second
// return value reports whether a search was actually run.
func (s *CatalogService) SearchDocuments(ctx context.Context, query string) (*DocumentPage, bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &DocumentPage{Documents: []*data.Document{}}, false, nil
	}
	docs, p, err := s.documents.List(ctx, data.ListParams{
		Page:    1,
		PerPage: searchPerPage,
		Search:  query,
	})
	if err != nil {
		return nil, true, err
	}
	return &DocumentPage{Documents: docs, Pagination: p}, true, nil
}

// ListVideos returns one page of the video listing.
func (s *CatalogService) ListVideos(ctx context.Context, page, perPage int) (*VideoPage, error) {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	videos, p, err := s.videos.List(ctx, data.ListParams{Page: page, PerPage: perPage})
	if err != nil {
		return nil, err
	}
	return &VideoPage{Videos: videos, Pagination: p}, nil
}

// SearchVideos returns the first page of videos whose title contains the
// query, case-insensitively. Empty queries short-circuit like
// SearchDocuments.
func (s *CatalogService) SearchVideos(ctx context.Context, query string) (*VideoPage, bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return &VideoPage{Videos: []*data.Video{}}, false, nil
	}
	videos, p, err := s.videos.List(ctx, data.ListParams{
		Page:    1,
		PerPage: DefaultPerPage,
		Search:  query,
	})
	if err != nil {
		return nil, true, err
	}
	return &VideoPage{Videos: videos, Pagination: p}, true, nil
}

// LatestVideos returns the most recent videos for the home page.
func (s *CatalogService) LatestVideos(ctx context.Context) ([]*data.Video, error) {
	return s.videos.Latest(ctx, homeVideoCount)
}

// ResolveDocument maps a document id to its downloadable URL. It returns
// ErrDocumentNotFound for an unknown id and ErrFileMissing when the remote
// store has no file for the stored filename.
func (s *CatalogService) ResolveDocument(ctx context.Context, id int64) (string, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", ErrDocumentNotFound
	}
	url, err := s.files.GetFile(ctx, doc.Filename)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", ErrFileMissing
	}
	return url, nil
}

// Package filestore resolves stored filenames against the remote object
// store that actually holds the downloadable documents.
package filestore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Store resolves a stored filename to a downloadable URL. An empty URL with
// a nil error means the file is absent from the store.
type Store interface {
	GetFile(ctx context.Context, filename string) (string, error)
}

// HTTPStore is a Store backed by a plain HTTP object store: files live under
// a public base URL and presence is probed with a HEAD request.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore creates an HTTPStore for the given base URL. The timeout
// bounds the single remote call; there is no retry.
func NewHTTPStore(baseURL string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ Store = (*HTTPStore)(nil)

// GetFile probes the store for filename and returns its URL when present.
func (s *HTTPStore) GetFile(ctx context.Context, filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	fileURL := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(filename))

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, fileURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build file store request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach file store: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Anything but a positive answer is treated as absence, not as a
		// distinguished transient failure.
		return "", nil
	}
	return fileURL, nil
}

package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
)

// publicPages are the crawlable routes listed in the sitemap. Document
// downloads live in the remote store and are not listed.
var publicPages = []string{"/", "/download_page", "/youtube_page", "/profile"}

// SeoHandler serves robots.txt and the sitemap.
type SeoHandler struct {
	baseURL string
}

// NewSeoHandler creates a new SeoHandler. baseURL is the externally visible
// origin, without a trailing slash.
func NewSeoHandler(baseURL string) *SeoHandler {
	return &SeoHandler{baseURL: baseURL}
}

// robotsHandler serves a static robots.txt file.
func (h *SeoHandler) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "User-agent: *")
	fmt.Fprintln(w, "Allow: /")
	fmt.Fprintln(w, "Disallow: /admin")
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "Sitemap: %s/sitemap.xml\n", h.baseURL)
}

type sitemapURL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// sitemapHandler serves a sitemap.xml of the public pages.
func (h *SeoHandler) sitemapHandler(w http.ResponseWriter, r *http.Request) {
	sitemap := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, len(publicPages)),
	}
	for i, page := range publicPages {
		sitemap.URLs[i] = sitemapURL{Loc: h.baseURL + page}
	}

	w.Header().Set("Content-Type", "application/xml")
	w.Write([]byte(xml.Header))
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(sitemap); err != nil {
		http.Error(w, "Failed to generate sitemap XML", http.StatusInternalServerError)
		return
	}
}
